package tabs

import "github.com/atomicstack/tabdeck/internal/tree"

// Attributes persisted on items.
const (
	AttrID     = "data-tab-id"
	AttrTitle  = "tab-name"
	AttrActive = "active"
)

// Markers toggled on handles and strips.
const (
	MarkerActive   = "active"
	MarkerDragOver = "dragover"
)

// ItemID returns the identifier of item, or "" when none is assigned yet.
func ItemID(item *tree.Node) string {
	if item == nil {
		return ""
	}
	id, _ := item.Attr(AttrID)
	return id
}

// ItemTitle returns the display title; a missing title is empty.
func ItemTitle(item *tree.Node) string {
	if item == nil {
		return ""
	}
	title, _ := item.Attr(AttrTitle)
	return title
}

// IsActive reports whether item carries the active flag.
func IsActive(item *tree.Node) bool {
	return item != nil && item.HasAttr(AttrActive)
}

// siblingIndex locates item by walking its previous-sibling chain.
func siblingIndex(item *tree.Node) int {
	idx := 0
	for prev := item.PreviousSibling(); prev != nil; prev = prev.PreviousSibling() {
		idx++
	}
	return idx
}
