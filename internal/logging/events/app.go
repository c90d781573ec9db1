package events

import "github.com/atomicstack/tabdeck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(err error) {
	entry := logging.Entry{Event: "app.stop"}
	if err != nil {
		entry.Error = err.Error()
	}
	logging.Emit(entry)
}
