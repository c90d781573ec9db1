package tabs

import "github.com/atomicstack/tabdeck/internal/tree"

// Surface renders handles. The container calls it whenever a handle is built,
// discarded, retitled or re-marked.
type Surface interface {
	Construct(h *Handle)
	Destroy(h *Handle)
	SetTitle(h *Handle, title string)
	SetMarker(h *Handle, name string, on bool)
}

type nopSurface struct{}

func (nopSurface) Construct(*Handle)               {}
func (nopSurface) Destroy(*Handle)                 {}
func (nopSurface) SetTitle(*Handle, string)        {}
func (nopSurface) SetMarker(*Handle, string, bool) {}

// Observer receives mutation batches for the nodes it observes.
type Observer interface {
	Observe(target *tree.Node, opts tree.ObserveOptions)
	Disconnect()
}

// Watcher creates observers. Implementations must coalesce mutations made in
// one turn into a single callback per observer.
type Watcher interface {
	NewObserver(callback tree.Callback) Observer
}

type documentWatcher struct {
	doc *tree.Document
}

// DocumentWatcher adapts a tree.Document to the Watcher interface.
func DocumentWatcher(doc *tree.Document) Watcher {
	return documentWatcher{doc: doc}
}

func (w documentWatcher) NewObserver(callback tree.Callback) Observer {
	return w.doc.NewObserver(callback)
}

func (c *Container) setTitle(h *Handle, title string) {
	if h.title == title {
		return
	}
	h.title = title
	c.surface.SetTitle(h, title)
}

func (c *Container) setMarker(h *Handle, name string, on bool) {
	if h.markers[name] == on {
		return
	}
	if on {
		h.markers[name] = true
	} else {
		delete(h.markers, name)
	}
	c.surface.SetMarker(h, name, on)
}
