package events

import "github.com/atomicstack/tabdeck/internal/logging"

type UITracer struct{}

type PromptTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Prompt = PromptTracer{}
	Action = ActionTracer{}
)

func (UITracer) Focus(pane string) {
	logging.Emit(logging.Entry{Event: "ui.focus", Container: pane})
}

func (UITracer) Click(pane, part string, index int) {
	logging.Emit(logging.Entry{
		Event:     "ui.click",
		Container: pane,
		Index:     logging.At(index),
		Detail:    map[string]interface{}{"part": part},
	})
}

func (UITracer) Flush(deliveries int) {
	logging.Emit(logging.Entry{Event: "ui.flush", Count: logging.At(deliveries)})
}

func (PromptTracer) Open(kind, pane string) {
	logging.Emit(logging.Entry{Event: "prompt.open", Container: pane, Detail: map[string]interface{}{"kind": kind}})
}

func (PromptTracer) Submit(kind, value string) {
	logging.Trace("prompt.submit", map[string]interface{}{"kind": kind, "value": value})
}

func (PromptTracer) Cancel(kind string) {
	logging.Trace("prompt.cancel", map[string]interface{}{"kind": kind})
}

func (PromptTracer) Find(query, match string, candidates int) {
	logging.Emit(logging.Entry{
		Event:  "prompt.find",
		Count:  logging.At(candidates),
		Detail: map[string]interface{}{"query": query, "match": match},
	})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Emit(logging.Entry{Event: "action.error", Error: err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
