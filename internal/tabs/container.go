// Package tabs keeps a container's tab handles consistent with the content
// items of its host node, and implements selection, closing and drag-and-drop
// moves between containers of the same Group.
//
// Containers never edit their handle sequence directly in response to a
// move or close. They only relocate items in the tree; the resulting child
// list notification triggers Resync, which is the single place handles are
// derived from items.
package tabs

import (
	"fmt"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tree"
)

// Container is one tabbed widget bound to a host node whose children are its
// items.
type Container struct {
	group   *Group
	host    *tree.Node
	name    string
	surface Surface

	registry  Registry
	selection selection

	childObs Observer
	attrObs  Observer

	resyncing   bool
	dirty       bool
	empty       bool
	torn        bool
	afterResync []func()
	stripMarks  map[string]bool

	onEmpty     func(*Container)
	onDragStart func(*Container, string)
}

// Option customises a Container.
type Option func(*Container)

// WithName sets the name used in traces and messages.
func WithName(name string) Option {
	return func(c *Container) { c.name = name }
}

// WithSurface attaches a render surface.
func WithSurface(s Surface) Option {
	return func(c *Container) {
		if s != nil {
			c.surface = s
		}
	}
}

// OnEmpty registers the "empty" notification.
func OnEmpty(fn func(*Container)) Option {
	return func(c *Container) { c.onEmpty = fn }
}

// OnDragStart registers the "tab-drag-start" notification.
func OnDragStart(fn func(c *Container, id string)) Option {
	return func(c *Container) { c.onDragStart = fn }
}

// NewContainer binds a container to host, builds handles for its current
// children and starts watching it.
func (g *Group) NewContainer(host *tree.Node, opts ...Option) *Container {
	c := &Container{
		group:      g,
		host:       host,
		name:       host.Tag,
		surface:    nopSurface{},
		empty:      true,
		stripMarks: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.childObs = g.watcher.NewObserver(c.onChildList)
	c.attrObs = g.watcher.NewObserver(c.onAttributes)
	c.childObs.Observe(host, tree.ObserveOptions{ChildList: true})
	g.containers = append(g.containers, c)
	c.Resync()
	return c
}

// Teardown stops watching the host and discards all handles. The host and its
// items are left untouched.
func (c *Container) Teardown() {
	if c.torn {
		return
	}
	c.torn = true
	c.childObs.Disconnect()
	c.attrObs.Disconnect()
	c.discardHandles()
	c.selection.clear()
	c.afterResync = nil
	c.group.remove(c)
}

func (c *Container) Name() string        { return c.name }
func (c *Container) Host() *tree.Node    { return c.host }
func (c *Container) Group() *Group       { return c.group }
func (c *Container) Len() int            { return c.registry.Len() }
func (c *Container) Registry() *Registry { return &c.registry }

// Parent makes the container usable as the strip Element; strips are roots.
func (c *Container) Parent() Element {
	return nil
}

// Items returns the current item sequence.
func (c *Container) Items() []*tree.Node {
	return c.host.Children()
}

// Handles returns the current handle sequence.
func (c *Container) Handles() []*Handle {
	return c.registry.Handles()
}

// StripMarker reports a marker set on the strip background.
func (c *Container) StripMarker(name string) bool {
	return c.stripMarks[name]
}

// AfterNextResync queues fn to run once the next resync pass completes.
func (c *Container) AfterNextResync(fn func()) {
	if fn != nil {
		c.afterResync = append(c.afterResync, fn)
	}
}

// SelectTab makes ref the active tab.
func (c *Container) SelectTab(ref Ref) error {
	if ref == nil {
		return fmt.Errorf("select tab in %s: %w", c.name, ErrInvalidReference)
	}
	item, err := ref.resolve(c)
	if err != nil {
		return fmt.Errorf("select tab in %s: %w", c.name, err)
	}
	c.activate(item)
	events.Tabs.Select(c.name, siblingIndex(item), ItemID(item))
	return nil
}

// CloseTab detaches the item behind ref from the host. Handles are rebuilt by
// the resync that follows.
func (c *Container) CloseTab(ref Ref) error {
	if ref == nil {
		return fmt.Errorf("close tab in %s: %w", c.name, ErrInvalidReference)
	}
	item, err := ref.resolve(c)
	if err != nil {
		return fmt.Errorf("close tab in %s: %w", c.name, err)
	}
	events.Tabs.Close(c.name, siblingIndex(item), ItemID(item))
	item.Remove()
	return nil
}

func (c *Container) onChildList(records []tree.Record) {
	added := make(map[*tree.Node]bool)
	for _, rec := range records {
		for _, n := range rec.Added {
			added[n] = true
		}
		for _, n := range rec.Removed {
			delete(added, n)
		}
	}
	c.resync(added)
}

// onAttributes applies title and active changes in place. When several items
// gain the active flag in one batch the last one to gain it wins, as in
// rebuild.
func (c *Container) onAttributes(records []tree.Record) {
	var gained *tree.Node
	for _, rec := range records {
		item := rec.Target
		if item.Parent() != c.host {
			continue
		}
		h := c.registry.HandleFor(item)
		switch rec.AttributeName {
		case AttrTitle:
			if h != nil {
				c.setTitle(h, ItemTitle(item))
			}
		case AttrActive:
			if IsActive(item) {
				gained = item
				continue
			}
			if h != nil {
				c.setMarker(h, MarkerActive, false)
			}
			if c.selection.item == item {
				c.selection.clear()
			}
		}
	}
	if gained != nil {
		c.activate(gained)
		return
	}
	if c.host.Len() > 0 && c.activeItem() == nil {
		c.activate(c.host.ChildAt(0))
	}
}

// Resync rebuilds every handle from the current items.
func (c *Container) Resync() {
	c.resync(nil)
}

func (c *Container) resync(added map[*tree.Node]bool) {
	if c.torn {
		return
	}
	if c.resyncing {
		c.dirty = true
		return
	}
	c.resyncing = true
	for {
		c.dirty = false
		c.rebuild(added)
		added = nil
		if !c.dirty {
			break
		}
	}
	c.resyncing = false

	pending := c.afterResync
	c.afterResync = nil
	for _, fn := range pending {
		fn()
	}
}

func (c *Container) discardHandles() {
	for _, h := range c.registry.reset() {
		h.destroyed = true
		c.surface.Destroy(h)
	}
}

func (c *Container) rebuild(added map[*tree.Node]bool) {
	c.discardHandles()
	c.attrObs.Disconnect()
	c.selection.clear()

	items := c.host.Children()
	if len(items) == 0 {
		if !c.empty {
			c.empty = true
			events.Tabs.Empty(c.name)
			if c.onEmpty != nil {
				c.onEmpty(c)
			}
		}
		events.Tabs.Resync(c.name, 0, -1)
		return
	}
	c.empty = false

	var first, arrived *tree.Node
	for _, item := range items {
		if ItemID(item) == "" {
			id := c.group.ids.Next()
			item.SetAttr(AttrID, id)
			events.Tabs.Assign(c.name, id)
		}
		h := newHandle(c, item)
		c.registry.add(h)
		c.surface.Construct(h)
		if IsActive(item) {
			c.setMarker(h, MarkerActive, true)
			if first == nil {
				first = item
			}
			if added[item] {
				arrived = item
			}
		}
		c.attrObs.Observe(item, tree.ObserveOptions{Attributes: []string{AttrTitle, AttrActive}})
	}

	winner := arrived
	if winner == nil {
		winner = first
	}
	if winner == nil {
		winner = items[0]
	}
	c.activate(winner)
	events.Tabs.Resync(c.name, len(items), c.registry.IndexOf(winner))
}
