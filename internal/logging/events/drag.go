package events

import "github.com/atomicstack/tabdeck/internal/logging"

type DragTracer struct{}

var Drag = DragTracer{}

func (DragTracer) Start(container, id string) {
	logging.Emit(logging.Entry{Event: "drag.start", Container: container, Tab: id})
}

func (DragTracer) Drop(container, id string, index int) {
	logging.Emit(logging.Entry{Event: "drag.drop", Container: container, Tab: id, Index: logging.At(index)})
}

// Move records a relocation into to; from is empty when the source is not a
// known container.
func (DragTracer) Move(id, from, to string, index int) {
	logging.Emit(logging.Entry{Event: "drag.move", Container: to, From: from, Tab: id, Index: logging.At(index)})
}

func (DragTracer) Stale(container, id string) {
	logging.Emit(logging.Entry{Event: "drag.stale", Container: container, Tab: id})
}

func (DragTracer) Cancel(id string) {
	logging.Emit(logging.Entry{Event: "drag.cancel", Tab: id})
}

func (DragTracer) Error(container string, err error) {
	if err == nil {
		return
	}
	logging.Emit(logging.Entry{Event: "drag.error", Container: container, Error: err.Error()})
}
