package ui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var errTabClosed = errors.New("tab was closed")

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		if m.dragging || m.group.Session().Active() {
			m.press = nil
			m.dragging = false
			m.dragTitle = ""
			m.group.CancelDrag()
			return nil
		}
		m.errMsg = ""
		m.forceClearInfo()
	case "n":
		m.openPrompt(promptNew, nil, "")
	case "r":
		c := m.focused()
		if c == nil {
			return nil
		}
		item := c.ActiveItem()
		if item == nil {
			m.setInfo(fmt.Sprintf("%s has no tabs", c.Name()))
			return nil
		}
		m.openPrompt(promptRename, item, tabs.ItemTitle(item))
	case "x":
		m.closeActive()
	case "/":
		m.openPrompt(promptFind, nil, "")
	}
	return nil
}

func (m *Model) closeActive() {
	c := m.focused()
	if c == nil {
		return
	}
	item := c.ActiveItem()
	if item == nil {
		m.setInfo(fmt.Sprintf("%s has no tabs", c.Name()))
		return
	}
	if err := c.CloseTab(tabs.Item(item)); err != nil {
		m.setError(err)
		return
	}
	m.errMsg = ""
	events.Action.Success("closed " + tabs.ItemTitle(item))
}

// newTab appends an item to the pane's host and selects it before the
// container has resynced; the resync keeps the pre-marked item active.
func (m *Model) newTab(paneIndex int, title string) {
	c := m.Container(paneIndex)
	if c == nil {
		return
	}
	node := m.doc.NewNode("pane")
	node.SetAttr(tabs.AttrTitle, title)
	node.SetText(fmt.Sprintf("%s\n\nOpened in %s.", title, c.Name()))
	if err := c.Host().Append(node); err != nil {
		m.setError(err)
		return
	}
	if err := c.SelectTab(tabs.Item(node)); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("opened %s", title))
}

// renameTab writes the title attribute; the container picks it up through its
// attribute watch.
func (m *Model) renameTab(item *tree.Node, title string) {
	if item == nil || item.Parent() == nil {
		m.setError(errTabClosed)
		return
	}
	item.SetAttr(tabs.AttrTitle, title)
	m.errMsg = ""
}

type findCandidate struct {
	pane int
	item *tree.Node
}

// findTab selects the best fuzzy match for query among the titles of every
// pane, then focuses that pane.
func (m *Model) findTab(query string) {
	var (
		titles     []string
		candidates []findCandidate
	)
	for i, p := range m.panes {
		for _, item := range p.container.Items() {
			titles = append(titles, tabs.ItemTitle(item))
			candidates = append(candidates, findCandidate{pane: i, item: item})
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		events.Prompt.Find(query, "", 0)
		m.errMsg = fmt.Sprintf("No tab matches %q", query)
		return
	}
	sort.Stable(ranks)
	best := candidates[ranks[0].OriginalIndex]
	events.Prompt.Find(query, ranks[0].Target, len(ranks))
	c := m.panes[best.pane].container
	if err := c.SelectTab(tabs.Item(best.item)); err != nil {
		m.setError(err)
		return
	}
	m.setFocus(best.pane)
	m.errMsg = ""
}
