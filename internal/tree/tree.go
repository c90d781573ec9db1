// Package tree models the embedding document that owns tab content. Nodes form
// an ordered tree; structural and attribute changes are queued as records and
// delivered to observers in coalesced batches by Document.Flush.
package tree

import (
	"errors"
	"sort"
)

// ErrHierarchy is returned when an insertion would make a node its own ancestor.
var ErrHierarchy = errors.New("tree: node cannot contain itself")

// Node is an element of a Document. A node has at most one parent and keeps its
// children in order.
type Node struct {
	doc      *Document
	parent   *Node
	children []*Node
	attrs    map[string]string
	text     string

	Tag string
}

// Document owns the root node and the observer registry.
type Document struct {
	root      *Node
	observers []*Observer
	pending   bool
	flushing  bool
}

// NewDocument returns an empty document with a "root" node.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.NewNode("root")
	return d
}

// Root returns the document root.
func (d *Document) Root() *Node {
	return d.root
}

// NewNode creates a detached node owned by the document.
func (d *Document) NewNode(tag string) *Node {
	return &Node{doc: d, Tag: tag, attrs: make(map[string]string)}
}

// Find walks the document depth-first and returns the first node matching fn.
func (d *Document) Find(fn func(*Node) bool) *Node {
	return d.root.find(fn)
}

// FindByAttr returns the first node in document order carrying name=value.
func (d *Document) FindByAttr(name, value string) *Node {
	return d.Find(func(n *Node) bool {
		v, ok := n.attrs[name]
		return ok && v == value
	})
}

func (n *Node) find(fn func(*Node) bool) *Node {
	if fn(n) {
		return n
	}
	for _, child := range n.children {
		if hit := child.find(fn); hit != nil {
			return hit
		}
	}
	return nil
}

// Document returns the owning document.
func (n *Node) Document() *Document {
	return n.doc
}

// Parent returns the parent node or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Len reports the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// ChildAt returns the child at index i, or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child slice.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	dup := make([]*Node, len(n.children))
	copy(dup, n.children)
	return dup
}

// PreviousSibling returns the sibling immediately before n.
func (n *Node) PreviousSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parent.indexOf(n) - 1)
}

// NextSibling returns the sibling immediately after n.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parent.indexOf(n) + 1)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Text returns the node's body text.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the node's body text. Text is not observed.
func (n *Node) SetText(text string) {
	n.text = text
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// AttrNames returns the attribute names in sorted order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetAttr sets an attribute. A record is queued only when the value changes.
func (n *Node) SetAttr(name, value string) {
	old, ok := n.attrs[name]
	if ok && old == value {
		return
	}
	n.attrs[name] = value
	n.doc.enqueue(Record{Type: Attributes, Target: n, AttributeName: name, OldValue: old, HadValue: ok})
}

// RemoveAttr deletes an attribute when present.
func (n *Node) RemoveAttr(name string) {
	old, ok := n.attrs[name]
	if !ok {
		return
	}
	delete(n.attrs, name)
	n.doc.enqueue(Record{Type: Attributes, Target: n, AttributeName: name, OldValue: old, HadValue: true})
}

// Append inserts children at the end, moving them from any previous parent.
func (n *Node) Append(children ...*Node) error {
	for _, child := range children {
		if err := n.InsertAt(child, len(n.children)); err != nil {
			return err
		}
	}
	return nil
}

// InsertAt moves child under n at index. The index is clamped to the valid
// range after child has been detached from its previous parent, so detaching
// and inserting is a single transfer from the observers' point of view.
func (n *Node) InsertAt(child *Node, index int) error {
	if child == nil {
		return nil
	}
	if child.Contains(n) {
		return ErrHierarchy
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.doc.enqueue(Record{Type: ChildList, Target: n, Added: []*Node{child}})
	return nil
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.removeChild(n)
}

func (n *Node) removeChild(child *Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	n.doc.enqueue(Record{Type: ChildList, Target: n, Removed: []*Node{child}})
}
