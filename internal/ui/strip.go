package ui

import (
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const closeGlyph = "×"

// tabView is the per-handle render cache kept in tabs.Handle.View.
type tabView struct {
	label    string
	width    int
	active   bool
	dragOver bool
}

// stripSurface renders handles into tabView caches.
type stripSurface struct {
	titleWidth int
}

func (s stripSurface) Construct(h *tabs.Handle) {
	v := &tabView{
		active:   h.Marker(tabs.MarkerActive),
		dragOver: h.Marker(tabs.MarkerDragOver),
	}
	v.setLabel(h.Title(), s.titleWidth)
	h.View = v
}

func (s stripSurface) Destroy(h *tabs.Handle) {
	h.View = nil
}

func (s stripSurface) SetTitle(h *tabs.Handle, title string) {
	viewOf(h).setLabel(title, s.titleWidth)
}

func (s stripSurface) SetMarker(h *tabs.Handle, name string, on bool) {
	v := viewOf(h)
	switch name {
	case tabs.MarkerActive:
		v.active = on
	case tabs.MarkerDragOver:
		v.dragOver = on
	}
}

func (v *tabView) setLabel(title string, limit int) {
	label := title
	if limit > 0 && ansi.StringWidth(label) > limit {
		label = truncate.StringWithTail(label, uint(limit), "…")
	}
	v.label = label
	v.width = ansi.StringWidth(label)
}

// viewOf returns the cache of h, creating one for handles rendered without a
// stripSurface.
func viewOf(h *tabs.Handle) *tabView {
	if v, ok := h.View.(*tabView); ok {
		return v
	}
	v := &tabView{
		active:   h.Marker(tabs.MarkerActive),
		dragOver: h.Marker(tabs.MarkerDragOver),
	}
	v.setLabel(h.Title(), 0)
	h.View = v
	return v
}

// segment is the horizontal extent of one handle in a strip, relative to the
// pane's left edge. A handle renders as " label × ".
type segment struct {
	handle   *tabs.Handle
	start    int
	labelEnd int
	closeAt  int
	end      int
}

func segments(c *tabs.Container) []segment {
	handles := c.Handles()
	out := make([]segment, 0, len(handles))
	x := 0
	for _, h := range handles {
		w := viewOf(h).width
		s := segment{
			handle:   h,
			start:    x,
			labelEnd: x + 1 + w,
			closeAt:  x + w + 2,
			end:      x + w + 4,
		}
		out = append(out, s)
		x = s.end
	}
	return out
}

func (s segment) target(x int) tabs.Element {
	switch {
	case x > s.start && x < s.labelEnd:
		return s.handle.Label
	case x == s.closeAt:
		return s.handle.Close
	default:
		return s.handle
	}
}

type region int

const (
	regionNone region = iota
	regionStrip
	regionRule
	regionBody
)

// hit is the result of mapping a screen cell to the widget under it.
type hit struct {
	pane   int
	region region
	target tabs.Element
}

// layout splits the width between panes, leaving one column per divider.
func (m *Model) layout() {
	n := len(m.panes)
	if n == 0 {
		return
	}
	usable := m.viewWidth() - (n - 1)
	each := usable / n
	if each < 1 {
		each = 1
	}
	x := 0
	for i, p := range m.panes {
		p.x = x
		p.width = each
		if i == n-1 {
			p.width = max(usable-each*(n-1), 1)
		}
		x += p.width + 1
	}
}

func (m *Model) hitTest(x, y int) hit {
	for i, p := range m.panes {
		if x < p.x || x >= p.x+p.width {
			continue
		}
		h := hit{pane: i}
		switch {
		case y == 0:
			h.region = regionStrip
			h.target = p.container
			rel := x - p.x
			for _, s := range segments(p.container) {
				if rel >= s.start && rel < s.end {
					h.target = s.target(rel)
					break
				}
			}
		case y == 1:
			h.region = regionRule
		case y >= 2 && y < 2+m.bodyRows():
			h.region = regionBody
		}
		return h
	}
	return hit{pane: -1}
}
