package tabs

import "github.com/atomicstack/tabdeck/internal/tree"

// Element is anything a pointer event can land on inside a tab strip: the
// strip itself (a Container), a Handle, or one of a handle's parts.
type Element interface {
	Parent() Element
}

// Part names the pieces of a handle a pointer can hit.
const (
	PartLabel = "label"
	PartClose = "close"
)

// Part is a descendant of a Handle, such as its close glyph.
type Part struct {
	name   string
	handle *Handle
}

// Parent returns the owning handle.
func (p *Part) Parent() Element {
	return p.handle
}

// Name returns PartLabel or PartClose.
func (p *Part) Name() string {
	return p.name
}

// Handle returns the owning handle.
func (p *Part) Handle() *Handle {
	return p.handle
}

// Handle is the render-only proxy for one item. Handles are discarded and
// rebuilt on every resync.
type Handle struct {
	container *Container
	item      *tree.Node
	title     string
	markers   map[string]bool
	destroyed bool

	Label *Part
	Close *Part

	// View is owned by the Surface that rendered the handle.
	View any
}

func newHandle(c *Container, item *tree.Node) *Handle {
	h := &Handle{
		container: c,
		item:      item,
		title:     ItemTitle(item),
		markers:   make(map[string]bool, 2),
	}
	h.Label = &Part{name: PartLabel, handle: h}
	h.Close = &Part{name: PartClose, handle: h}
	return h
}

// Parent returns the strip the handle lives in.
func (h *Handle) Parent() Element {
	return h.container
}

// Contains reports whether el is h or one of its descendants.
func (h *Handle) Contains(el Element) bool {
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur == Element(h) {
			return true
		}
	}
	return false
}

func (h *Handle) Item() *tree.Node      { return h.item }
func (h *Handle) Title() string         { return h.title }
func (h *Handle) Container() *Container { return h.container }

// Marker reports whether the named marker is set.
func (h *Handle) Marker(name string) bool {
	return h.markers[name]
}

// Live reports whether the handle belongs to the current resync generation.
func (h *Handle) Live() bool {
	return !h.destroyed
}

// HandleOf returns the handle that el belongs to, or nil for a strip or an
// unknown element.
func HandleOf(el Element) *Handle {
	for cur := el; cur != nil; cur = cur.Parent() {
		if h, ok := cur.(*Handle); ok {
			return h
		}
	}
	return nil
}
