package events

import "github.com/atomicstack/tabdeck/internal/logging"

type TabsTracer struct{}

var Tabs = TabsTracer{}

// Resync records a rebuild; active is -1 for an empty container.
func (TabsTracer) Resync(container string, items, active int) {
	logging.Emit(logging.Entry{Event: "tabs.resync", Container: container, Count: logging.At(items), Index: logging.At(active)})
}

func (TabsTracer) Empty(container string) {
	logging.Emit(logging.Entry{Event: "tabs.empty", Container: container})
}

func (TabsTracer) Assign(container, id string) {
	logging.Emit(logging.Entry{Event: "tabs.assign", Container: container, Tab: id})
}

func (TabsTracer) Select(container string, index int, id string) {
	logging.Emit(logging.Entry{Event: "tabs.select", Container: container, Tab: id, Index: logging.At(index)})
}

func (TabsTracer) Close(container string, index int, id string) {
	logging.Emit(logging.Entry{Event: "tabs.close", Container: container, Tab: id, Index: logging.At(index)})
}
