package tabs

import (
	"fmt"

	"github.com/atomicstack/tabdeck/internal/tree"
)

// Ref identifies a tab for SelectTab and CloseTab: an Index, an Item, or a
// *Handle.
type Ref interface {
	resolve(c *Container) (*tree.Node, error)
}

// Index refers to a tab by position in the handle sequence.
type Index int

func (i Index) resolve(c *Container) (*tree.Node, error) {
	h := c.registry.At(int(i))
	if h == nil {
		return nil, fmt.Errorf("tab %d of %d: %w", int(i), c.registry.Len(), ErrOutOfRange)
	}
	return h.resolve(c)
}

type itemRef struct {
	node *tree.Node
}

// Item refers to a tab by its content item. The item is located through its
// sibling chain, so it need not carry an identifier yet.
func Item(node *tree.Node) Ref {
	return itemRef{node: node}
}

func (r itemRef) resolve(c *Container) (*tree.Node, error) {
	if r.node == nil {
		return nil, fmt.Errorf("nil item: %w", ErrInvalidReference)
	}
	if r.node.Parent() != c.host {
		return nil, fmt.Errorf("item %q is not a tab of %s: %w", ItemID(r.node), c.name, ErrInvalidReference)
	}
	return r.node, nil
}

func (h *Handle) resolve(c *Container) (*tree.Node, error) {
	if h == nil {
		return nil, fmt.Errorf("nil handle: %w", ErrInvalidReference)
	}
	if h.container != c || h.destroyed {
		return nil, fmt.Errorf("handle %q does not belong to %s: %w", h.title, c.name, ErrInvalidReference)
	}
	return itemRef{node: h.item}.resolve(c)
}
