package ui

import (
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	tea "github.com/charmbracelet/bubbletea"
)

// pressState remembers where the left button went down. Motion away from that
// cell turns the press into a drag; a release without motion is a click.
type pressState struct {
	x  int
	y  int
	at hit
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		m.mousePress(ev)
	case tea.MouseActionMotion:
		m.mouseMotion(ev)
	case tea.MouseActionRelease:
		m.mouseRelease(ev)
	}
	return nil
}

func (m *Model) mousePress(ev tea.MouseMsg) {
	if ev.Button != tea.MouseButtonLeft {
		return
	}
	at := m.hitTest(ev.X, ev.Y)
	if at.pane >= 0 {
		m.setFocus(at.pane)
	}
	m.press = &pressState{x: ev.X, y: ev.Y, at: at}
}

func (m *Model) mouseMotion(ev tea.MouseMsg) {
	press := m.press
	if press == nil {
		return
	}
	if !m.dragging {
		if ev.X == press.x && ev.Y == press.y {
			return
		}
		h := tabs.HandleOf(press.at.target)
		if h == nil || !h.Live() {
			return
		}
		if _, err := h.Container().BeginDrag(h); err != nil {
			m.press = nil
			m.setError(err)
			return
		}
		m.dragging = true
		m.errMsg = ""
	}
	m.dragOver(m.hitTest(ev.X, ev.Y))
}

func (m *Model) dragOver(at hit) {
	if at.region == regionStrip {
		m.panes[at.pane].container.DragOver(at.target)
		return
	}
	for _, p := range m.panes {
		p.container.DragLeave()
	}
}

func (m *Model) mouseRelease(ev tea.MouseMsg) {
	press := m.press
	m.press = nil
	if press == nil {
		return
	}
	at := m.hitTest(ev.X, ev.Y)
	if m.dragging {
		m.dragging = false
		m.dragTitle = ""
		m.finishDrag(at)
		return
	}
	m.click(press.at, at)
}

// finishDrag drops over a strip and cancels anywhere else.
func (m *Model) finishDrag(at hit) {
	if at.region != regionStrip {
		m.group.CancelDrag()
		return
	}
	dest := m.panes[at.pane].container
	id, _ := m.group.Session().ID()
	if !dest.Drop(tabs.DropEvent{Target: at.target}) {
		return
	}
	m.setFocus(at.pane)
	if !m.selectDropped {
		return
	}
	if node := m.group.Lookup(id); node != nil {
		dest.AfterNextResync(func() {
			if err := dest.SelectTab(tabs.Item(node)); err != nil {
				m.setError(err)
			}
		})
	}
}

// click acts on press and release landing on the same handle: the close
// glyph closes the tab, anything else selects it.
func (m *Model) click(press, release hit) {
	h := tabs.HandleOf(press.target)
	if h == nil || !h.Live() || tabs.HandleOf(release.target) != h {
		return
	}
	c := h.Container()
	index := c.Registry().IndexOfHandle(h)
	if part, ok := press.target.(*tabs.Part); ok && part.Name() == tabs.PartClose {
		events.UI.Click(c.Name(), tabs.PartClose, index)
		if err := c.CloseTab(h); err != nil {
			m.setError(err)
			return
		}
		m.errMsg = ""
		return
	}
	events.UI.Click(c.Name(), tabs.PartLabel, index)
	if err := c.SelectTab(h); err != nil {
		m.setError(err)
		return
	}
	m.errMsg = ""
}
