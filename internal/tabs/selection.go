package tabs

import "github.com/atomicstack/tabdeck/internal/tree"

// selection tracks the active item/handle pair of one container.
type selection struct {
	item   *tree.Node
	handle *Handle
}

func (s *selection) set(item *tree.Node, h *Handle) {
	s.item = item
	s.handle = h
}

func (s *selection) clear() {
	s.item = nil
	s.handle = nil
}

// activate makes item the only active item of the container, mirroring the
// flag onto its handle when one exists.
func (c *Container) activate(item *tree.Node) {
	for _, child := range c.host.Children() {
		if child != item && child.HasAttr(AttrActive) {
			child.RemoveAttr(AttrActive)
		}
	}
	for _, h := range c.registry.handles {
		if h.item != item && h.markers[MarkerActive] {
			c.setMarker(h, MarkerActive, false)
		}
	}
	item.SetAttr(AttrActive, "")
	h := c.registry.HandleFor(item)
	if h != nil {
		c.setMarker(h, MarkerActive, true)
	}
	c.selection.set(item, h)
}

// activeItem returns the first child carrying the active flag.
func (c *Container) activeItem() *tree.Node {
	for _, child := range c.host.Children() {
		if IsActive(child) {
			return child
		}
	}
	return nil
}

// Active returns the active handle, or nil when the container is empty or a
// resync is pending.
func (c *Container) Active() *Handle {
	return c.selection.handle
}

// ActiveItem returns the active item.
func (c *Container) ActiveItem() *tree.Node {
	return c.selection.item
}

// ActiveIndex returns the position of the active handle, or -1.
func (c *Container) ActiveIndex() int {
	return c.registry.IndexOfHandle(c.selection.handle)
}
