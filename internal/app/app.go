package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/tree"
	"github.com/atomicstack/tabdeck/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	TitleWidth    int
	SelectDropped bool
	IDs           string
	Layout        []ContainerSpec
}

// ContainerSpec is the initial content of one tab container.
type ContainerSpec struct {
	Name string
	Tabs []TabSpec
}

// TabSpec is one initial tab.
type TabSpec struct {
	Title  string
	Body   string
	Active bool
}

// Build creates a document holding one host node per container spec, each
// populated with its tabs. Hosts are returned in layout order.
func Build(layout []ContainerSpec) (*tree.Document, []*tree.Node, error) {
	doc := tree.NewDocument()
	hosts := make([]*tree.Node, 0, len(layout))
	for i, spec := range layout {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("pane-%d", i+1)
		}
		host := doc.NewNode(name)
		if err := doc.Root().Append(host); err != nil {
			return nil, nil, fmt.Errorf("add container %s: %w", name, err)
		}
		for _, tab := range spec.Tabs {
			item := doc.NewNode("pane")
			item.SetAttr(tabs.AttrTitle, tab.Title)
			if tab.Active {
				item.SetAttr(tabs.AttrActive, "")
			}
			body := tab.Body
			if body == "" {
				body = tab.Title
			}
			item.SetText(body)
			if err := host.Append(item); err != nil {
				return nil, nil, fmt.Errorf("add tab %q to %s: %w", tab.Title, name, err)
			}
		}
		hosts = append(hosts, host)
	}
	return doc, hosts, nil
}

// NewModel builds the document, the shared group and the UI model.
func NewModel(cfg Config) (*ui.Model, error) {
	ids, err := tabs.NewAllocator(cfg.IDs)
	if err != nil {
		return nil, err
	}
	doc, hosts, err := Build(cfg.Layout)
	if err != nil {
		return nil, err
	}
	group := tabs.NewGroup(doc, tabs.WithAllocator(ids))
	return ui.NewModel(doc, group, hosts, ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		TitleWidth:    cfg.TitleWidth,
		ShowFooter:    cfg.ShowFooter,
		SelectDropped: cfg.SelectDropped,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	events.App.Stop(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
