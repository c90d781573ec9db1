package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tree"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNew promptKind = iota
	promptRename
	promptFind
)

func (k promptKind) String() string {
	switch k {
	case promptNew:
		return "new"
	case promptRename:
		return "rename"
	case promptFind:
		return "find"
	default:
		return "unknown"
	}
}

// promptForm is a single line text prompt shown in the status line.
type promptForm struct {
	kind   promptKind
	pane   int
	target *tree.Node
	input  textinput.Model
	title  string
	help   string
}

func newPromptForm(kind promptKind, pane int, paneName string, target *tree.Node, initial string) *promptForm {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	form := &promptForm{kind: kind, pane: pane, target: target}
	switch kind {
	case promptNew:
		ti.Placeholder = "tab title"
		form.title = fmt.Sprintf("New tab in %s:", paneName)
		form.help = "enter to open, esc to cancel"
	case promptRename:
		ti.Placeholder = "tab title"
		form.title = fmt.Sprintf("Rename %s:", initial)
		form.help = "enter to rename, esc to cancel"
	case promptFind:
		ti.Placeholder = "(type to search)"
		form.title = "Find tab:"
		form.help = "enter to jump, esc to cancel"
	}
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	ti.Focus()
	form.input = ti
	return form
}

func (f *promptForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *promptForm) InputView() string { return f.input.View() }

// Update feeds msg to the input and reports whether the prompt was submitted
// or cancelled. An empty submission counts as a cancel.
func (f *promptForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if f.Value() == "" {
				return nil, false, true
			}
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) openPrompt(kind promptKind, target *tree.Node, initial string) {
	c := m.focused()
	if c == nil {
		return
	}
	m.prompt = newPromptForm(kind, m.focus, c.Name(), target, initial)
	m.errMsg = ""
	m.forceClearInfo()
	events.Prompt.Open(kind.String(), c.Name())
}

// handlePrompt routes key presses to the open prompt. Other messages, such as
// flushes and resizes, keep flowing through the handler registry.
func (m *Model) handlePrompt(msg tea.Msg) (bool, tea.Cmd) {
	if m.prompt == nil {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	form := m.prompt
	cmd, done, cancel := form.Update(msg)
	if cancel {
		m.prompt = nil
		events.Prompt.Cancel(form.kind.String())
		return true, cmd
	}
	if done {
		m.prompt = nil
		m.submitPrompt(form)
		return true, cmd
	}
	return true, cmd
}

func (m *Model) submitPrompt(form *promptForm) {
	value := form.Value()
	events.Prompt.Submit(form.kind.String(), value)
	switch form.kind {
	case promptNew:
		m.newTab(form.pane, value)
	case promptRename:
		m.renameTab(form.target, value)
	case promptFind:
		m.findTab(value)
	}
}
