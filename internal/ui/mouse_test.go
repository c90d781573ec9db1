package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tabdeck/internal/tabs"
	tea "github.com/charmbracelet/bubbletea"
)

func TestClickSelectsTab(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2"}, []string{"b1", "b2"})
	m := h.Model()
	h.Click(labelX(m, 1, 1), 0)
	if got := activeTitle(m.Container(1)); got != "b2" {
		t.Fatalf("expected b2 active, got %s", got)
	}
	if m.Focus() != 1 {
		t.Fatalf("expected focus on the clicked pane, got %d", m.Focus())
	}
}

func TestClickCloseGlyphClosesTab(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2", "a3"})
	m := h.Model()
	h.Click(closeX(m, 0, 0), 0)
	left := m.Container(0)
	expectTitles(t, left, "a2", "a3")
	if got := activeTitle(left); got != "a2" {
		t.Fatalf("expected a2 promoted, got %s", got)
	}
}

func TestDragReordersWithinPane(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2", "a3"})
	m := h.Model()
	h.Drag(labelX(m, 0, 0), 0, labelX(m, 0, 2), 0)
	expectTitles(t, m.Container(0), "a2", "a1", "a3")
	h.Drag(labelX(m, 0, 0), 0, 20, 0)
	expectTitles(t, m.Container(0), "a1", "a3", "a2")
	if m.group.Session().Active() {
		t.Fatalf("expected drag session cleared")
	}
}

func TestDragMovesAcrossPanes(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2"}, []string{"b1", "b2"})
	m := h.Model()
	h.Drag(labelX(m, 0, 1), 0, labelX(m, 1, 0), 0)
	expectTitles(t, m.Container(0), "a1")
	expectTitles(t, m.Container(1), "a2", "b1", "b2")
	if got := activeTitle(m.Container(1)); got != "b1" {
		t.Fatalf("expected b1 to stay active, got %s", got)
	}
	if m.Focus() != 1 {
		t.Fatalf("expected focus to follow the drop, got %d", m.Focus())
	}
}

func TestDropOnStripBackgroundAppends(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2"}, []string{"b1", "b2"})
	m := h.Model()
	h.Drag(labelX(m, 0, 0), 0, 70, 0)
	expectTitles(t, m.Container(0), "a2")
	expectTitles(t, m.Container(1), "b1", "b2", "a1")
	if got := activeTitle(m.Container(0)); got != "a2" {
		t.Fatalf("expected a2 promoted in left, got %s", got)
	}
	if got := activeTitle(m.Container(1)); got != "a1" {
		t.Fatalf("expected the arriving active tab to stay active, got %s", got)
	}
}

func TestSelectDroppedActivatesMovedTab(t *testing.T) {
	h := newTestHarness(t, Options{SelectDropped: true}, []string{"a1", "a2"}, []string{"b1"})
	m := h.Model()
	h.Drag(labelX(m, 0, 1), 0, labelX(m, 1, 0), 0)
	right := m.Container(1)
	expectTitles(t, right, "a2", "b1")
	if got := activeTitle(right); got != "a2" {
		t.Fatalf("expected dropped tab selected, got %s", got)
	}
}

func TestReleaseOutsideStripCancels(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2"}, []string{"b1"})
	m := h.Model()
	h.Drag(labelX(m, 0, 0), 0, 10, 5)
	expectTitles(t, m.Container(0), "a1", "a2")
	expectTitles(t, m.Container(1), "b1")
	if m.group.Session().Active() {
		t.Fatalf("expected session cleared")
	}
}

func TestEscCancelsDragInProgress(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2"}, []string{"b1"})
	m := h.Model()
	right := m.Container(1)
	h.Send(tea.MouseMsg{X: labelX(m, 0, 0), Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: 70, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !m.group.Session().Active() || !right.StripMarker(tabs.MarkerDragOver) {
		t.Fatalf("expected drag in progress over the right strip")
	}
	if view := strings.Join(plainLines(h.View()), "\n"); !strings.Contains(view, "moving a1") {
		t.Fatalf("expected drag status, got:\n%s", view)
	}

	h.Key(tea.KeyEsc)
	if m.group.Session().Active() || right.StripMarker(tabs.MarkerDragOver) {
		t.Fatalf("expected esc to cancel the drag")
	}
	h.Send(tea.MouseMsg{X: 70, Y: 0, Action: tea.MouseActionRelease})
	expectTitles(t, right, "b1")
}

func TestDragOverHighlightsHandleUnderPointer(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1", "a2", "a3"})
	m := h.Model()
	left := m.Container(0)
	h.Send(tea.MouseMsg{X: labelX(m, 0, 0), Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: closeX(m, 0, 2), Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	handles := left.Handles()
	if !handles[2].Marker(tabs.MarkerDragOver) || handles[1].Marker(tabs.MarkerDragOver) {
		t.Fatalf("expected only a3 highlighted")
	}
	h.Send(tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if handles[2].Marker(tabs.MarkerDragOver) {
		t.Fatalf("expected highlight cleared when leaving the strip")
	}
}

func TestDraggingLastTabEmptiesPane(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1"}, []string{"b1"})
	m := h.Model()
	h.Drag(labelX(m, 0, 0), 0, labelX(m, 1, 0), 0)
	expectTitles(t, m.Container(0))
	expectTitles(t, m.Container(1), "a1", "b1")
	view := strings.Join(plainLines(h.View()), "\n")
	if !strings.Contains(view, "left is empty") {
		t.Fatalf("expected empty notification in status line, got:\n%s", view)
	}
	if !strings.Contains(view, emptyPaneMsg) {
		t.Fatalf("expected empty pane placeholder, got:\n%s", view)
	}
}

func TestPressOutsideHandleDoesNotDrag(t *testing.T) {
	h := newTestHarness(t, Options{}, []string{"a1"}, []string{"b1"})
	m := h.Model()
	h.Drag(30, 0, labelX(m, 1, 0), 0)
	if m.group.Session().Active() {
		t.Fatalf("expected no session")
	}
	expectTitles(t, m.Container(0), "a1")
}
