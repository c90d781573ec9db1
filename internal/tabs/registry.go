package tabs

import "github.com/atomicstack/tabdeck/internal/tree"

// Registry maps positions in the item sequence to positions in the handle
// sequence. Both sequences are index aligned after every resync.
type Registry struct {
	handles []*Handle
	index   map[*tree.Node]int
}

func (r *Registry) reset() []*Handle {
	old := r.handles
	r.handles = nil
	r.index = make(map[*tree.Node]int, len(old))
	return old
}

func (r *Registry) add(h *Handle) {
	if r.index == nil {
		r.index = make(map[*tree.Node]int)
	}
	r.index[h.item] = len(r.handles)
	r.handles = append(r.handles, h)
}

// Len returns the number of handles.
func (r *Registry) Len() int {
	return len(r.handles)
}

// At returns the handle at i or nil.
func (r *Registry) At(i int) *Handle {
	if i < 0 || i >= len(r.handles) {
		return nil
	}
	return r.handles[i]
}

// IndexOf returns the position of item's handle, or -1.
func (r *Registry) IndexOf(item *tree.Node) int {
	if i, ok := r.index[item]; ok {
		return i
	}
	return -1
}

// HandleFor returns the handle mirroring item, or nil.
func (r *Registry) HandleFor(item *tree.Node) *Handle {
	return r.At(r.IndexOf(item))
}

// IndexOfHandle returns the position of h, or -1.
func (r *Registry) IndexOfHandle(h *Handle) int {
	if h == nil {
		return -1
	}
	if i := r.IndexOf(h.item); i >= 0 && r.handles[i] == h {
		return i
	}
	return -1
}

// Handles returns a copy of the handle sequence.
func (r *Registry) Handles() []*Handle {
	dup := make([]*Handle, len(r.handles))
	copy(dup, r.handles)
	return dup
}
