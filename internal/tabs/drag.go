package tabs

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tabdeck/internal/logging/events"
)

// DropEvent is a drop delivered to a container. Target is the element under
// the pointer; Payload carries the dragged identifier across containers and
// falls back to the group's session when empty.
type DropEvent struct {
	Target  Element
	Payload string
}

// BeginDrag starts a drag of h and returns the identifier placed in the
// session.
func (c *Container) BeginDrag(h *Handle) (string, error) {
	if h == nil || h.container != c || h.destroyed {
		return "", fmt.Errorf("drag in %s: %w", c.name, ErrInvalidReference)
	}
	id := ItemID(h.item)
	if id == "" {
		id = c.group.ids.Next()
		h.item.SetAttr(AttrID, id)
	}
	c.group.session.Start(id)
	events.Drag.Start(c.name, id)
	if c.onDragStart != nil {
		c.onDragStart(c, id)
	}
	return id, nil
}

// DragOver marks the handle under target, or the strip background when target
// is not inside any handle, and clears dragover markers elsewhere in the group.
func (c *Container) DragOver(target Element) {
	c.group.clearDragOver(c)
	over := HandleOf(target)
	if over != nil && over.container != c {
		over = nil
	}
	for _, h := range c.registry.handles {
		c.setMarker(h, MarkerDragOver, h == over)
	}
	if over == nil {
		c.stripMarks[MarkerDragOver] = true
	} else {
		delete(c.stripMarks, MarkerDragOver)
	}
}

// DragLeave clears all dragover markers of the container.
func (c *Container) DragLeave() {
	for _, h := range c.registry.handles {
		c.setMarker(h, MarkerDragOver, false)
	}
	delete(c.stripMarks, MarkerDragOver)
}

// DropIndex scans handles left to right and stops at the first one that is,
// or contains, target. The result is the insertion position; it equals Len()
// when target is the strip background or not part of this container.
func (c *Container) DropIndex(target Element) int {
	idx := 0
	for _, h := range c.registry.handles {
		if h.Contains(target) {
			break
		}
		idx++
	}
	return idx
}

// Drop completes a drag over this container. The session is cleared whatever
// the outcome. A stale identifier is ignored. Drop reports whether an item was
// relocated.
func (c *Container) Drop(ev DropEvent) bool {
	c.group.clearDragOver(nil)
	id := ev.Payload
	if sid, ok := c.group.session.ID(); id == "" && ok {
		id = sid
	}
	c.group.session.Clear()
	if id == "" {
		return false
	}
	index := c.DropIndex(ev.Target)
	events.Drag.Drop(c.name, id, index)
	moved, err := c.group.Move(id, c, index)
	if err != nil {
		if errors.Is(err, ErrStaleDrag) {
			events.Drag.Stale(c.name, id)
		} else {
			events.Drag.Error(c.name, err)
		}
		return false
	}
	return moved
}
