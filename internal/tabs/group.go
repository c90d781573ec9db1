package tabs

import (
	"fmt"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tree"
)

// Group is the shared context for the containers of one page: the document
// used as lookup scope, the identifier allocator and the drag session.
type Group struct {
	doc        *tree.Document
	watcher    Watcher
	ids        IDAllocator
	session    DragSession
	containers []*Container
}

// GroupOption customises a Group.
type GroupOption func(*Group)

// WithAllocator replaces the default counter allocator.
func WithAllocator(ids IDAllocator) GroupOption {
	return func(g *Group) {
		if ids != nil {
			g.ids = ids
		}
	}
}

// WithWatcher replaces the document-backed mutation watcher.
func WithWatcher(w Watcher) GroupOption {
	return func(g *Group) {
		if w != nil {
			g.watcher = w
		}
	}
}

// NewGroup creates a group whose lookups search doc.
func NewGroup(doc *tree.Document, opts ...GroupOption) *Group {
	g := &Group{
		doc:     doc,
		watcher: DocumentWatcher(doc),
		ids:     CounterAllocator{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Document returns the lookup scope.
func (g *Group) Document() *tree.Document {
	return g.doc
}

// Session exposes the shared drag session.
func (g *Group) Session() *DragSession {
	return &g.session
}

// Containers returns the live containers in creation order.
func (g *Group) Containers() []*Container {
	dup := make([]*Container, len(g.containers))
	copy(dup, g.containers)
	return dup
}

// ContainerFor returns the container bound to host, or nil.
func (g *Group) ContainerFor(host *tree.Node) *Container {
	for _, c := range g.containers {
		if c.host == host {
			return c
		}
	}
	return nil
}

// Lookup finds the live item carrying id anywhere in the document.
func (g *Group) Lookup(id string) *tree.Node {
	if id == "" {
		return nil
	}
	return g.doc.FindByAttr(AttrID, id)
}

// Move relocates the item identified by id into dest so that it lands
// immediately before the item currently at index in dest, or at the end when
// index is past the last item. Dropping an item onto itself, or onto its
// right-hand neighbour, leaves the tree unchanged. Move clears the drag
// session and touches no handles; both containers rebuild from their own
// notifications. It reports whether the tree changed.
func (g *Group) Move(id string, dest *Container, index int) (bool, error) {
	g.session.Clear()
	item := g.Lookup(id)
	if item == nil {
		return false, fmt.Errorf("move %q: %w", id, ErrStaleDrag)
	}
	if dest == nil {
		return false, fmt.Errorf("move %q: nil destination: %w", id, ErrInvalidReference)
	}
	if index < 0 {
		index = 0
	}
	anchor := dest.host.ChildAt(index)

	from := ""
	target := dest.host.Len()
	if anchor != nil {
		target = siblingIndex(anchor)
	}
	if src := item.Parent(); src == dest.host {
		if anchor == item {
			return false, nil
		}
		current := siblingIndex(item)
		if current < target {
			target--
		}
		if current == target {
			return false, nil
		}
		from = dest.name
	} else if c := g.ContainerFor(src); c != nil {
		from = c.name
	}
	if err := dest.host.InsertAt(item, target); err != nil {
		return false, fmt.Errorf("move %q into %s: %w", id, dest.name, err)
	}
	events.Drag.Move(id, from, dest.name, target)
	return true, nil
}

// CancelDrag clears the session and every dragover marker.
func (g *Group) CancelDrag() {
	if id, ok := g.session.ID(); ok {
		events.Drag.Cancel(id)
	}
	g.session.Clear()
	g.clearDragOver(nil)
}

func (g *Group) clearDragOver(except *Container) {
	for _, c := range g.containers {
		if c != except {
			c.DragLeave()
		}
	}
}

func (g *Group) remove(c *Container) {
	for i, other := range g.containers {
		if other == c {
			g.containers = append(g.containers[:i], g.containers[i+1:]...)
			return
		}
	}
}
