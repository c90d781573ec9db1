package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/tree"
	"github.com/charmbracelet/x/ansi"
)

var paneNames = []string{"left", "right", "third"}

func newTestHarness(t *testing.T, opts Options, panes ...[]string) *Harness {
	t.Helper()
	doc := tree.NewDocument()
	hosts := make([]*tree.Node, 0, len(panes))
	for i, titles := range panes {
		host := doc.NewNode(paneNames[i])
		if err := doc.Root().Append(host); err != nil {
			t.Fatalf("append host: %v", err)
		}
		for _, title := range titles {
			n := doc.NewNode("pane")
			n.SetAttr(tabs.AttrTitle, title)
			n.SetText(title + " body")
			if err := host.Append(n); err != nil {
				t.Fatalf("append item: %v", err)
			}
		}
		hosts = append(hosts, host)
	}
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 12
	}
	return NewHarness(NewModel(doc, tabs.NewGroup(doc), hosts, opts))
}

func titlesOf(c *tabs.Container) []string {
	out := []string{}
	for _, item := range c.Items() {
		out = append(out, tabs.ItemTitle(item))
	}
	return out
}

func expectTitles(t *testing.T, c *tabs.Container, want ...string) {
	t.Helper()
	got := titlesOf(c)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %s to hold %v, got %v", c.Name(), want, got)
	}
	if c.Len() != len(want) {
		t.Fatalf("expected %d handles in %s, got %d", len(want), c.Name(), c.Len())
	}
}

func activeTitle(c *tabs.Container) string {
	return tabs.ItemTitle(c.ActiveItem())
}

func labelX(m *Model, pane, index int) int {
	p := m.panes[pane]
	return p.x + segments(p.container)[index].start + 1
}

func closeX(m *Model, pane, index int) int {
	p := m.panes[pane]
	return p.x + segments(p.container)[index].closeAt
}

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}
