package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	footerText   = "n new · r rename · x close · / find · drag tabs to reorder or move · q quit"
	emptyPaneMsg = "(no tabs; drop one here)"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	rows := m.bodyRows()
	columns := make([][]string, len(m.panes))
	for i, p := range m.panes {
		columns[i] = m.renderPane(i, p, rows)
	}
	divider := theme.Render(styles.Divider, "│")
	lines := make([]string, 0, rows+4)
	for r := 0; r < rows+2; r++ {
		parts := make([]string, len(columns))
		for i, col := range columns {
			parts[i] = col[r]
		}
		lines = append(lines, strings.Join(parts, divider))
	}
	lines = append(lines, m.statusLine(width))
	if m.showFooter {
		lines = append(lines, theme.Render(styles.Footer, fit(footerText, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPane(index int, p *pane, rows int) []string {
	lines := make([]string, 0, rows+2)
	lines = append(lines, m.renderStrip(index, p))
	lines = append(lines, theme.Render(styles.Rule, strings.Repeat("─", p.width)))

	item := p.container.ActiveItem()
	if item == nil {
		lines = append(lines, theme.Render(styles.Empty, fit(emptyPaneMsg, p.width)))
	} else {
		text := strings.ReplaceAll(item.Text(), "\t", "    ")
		for _, line := range strings.Split(text, "\n") {
			if len(lines) == rows+2 {
				break
			}
			lines = append(lines, theme.Render(styles.Content, fit(line, p.width)))
		}
	}
	blank := strings.Repeat(" ", p.width)
	for len(lines) < rows+2 {
		lines = append(lines, blank)
	}
	return lines
}

func (m *Model) renderStrip(index int, p *pane) string {
	var b strings.Builder
	focused := index == m.focus
	for _, s := range segments(p.container) {
		v := viewOf(s.handle)
		style := styles.Tab
		switch {
		case v.dragOver:
			style = styles.DragOverTab
		case v.active && focused:
			style = styles.FocusedActiveTab
		case v.active:
			style = styles.ActiveTab
		}
		b.WriteString(theme.Render(style, " "+v.label+" "))
		b.WriteString(theme.Render(styles.CloseGlyph, closeGlyph))
		b.WriteString(theme.Render(style, " "))
	}
	strip := b.String()
	if ansi.StringWidth(strip) > p.width {
		strip = truncate.String(strip, uint(p.width))
	}
	bg := styles.Strip
	if p.container.StripMarker(tabs.MarkerDragOver) {
		bg = styles.StripDragOver
	}
	if pad := p.width - ansi.StringWidth(strip); pad > 0 {
		strip += theme.Render(bg, strings.Repeat(" ", pad))
	}
	return strip
}

func (m *Model) statusLine(width int) string {
	if m.prompt != nil {
		title := theme.Render(styles.PromptTitle, m.prompt.title)
		help := theme.Render(styles.PromptHelp, "  "+m.prompt.help)
		return fitStyled(title+" "+m.prompt.InputView()+help, width)
	}
	if m.errMsg != "" {
		return theme.Render(styles.Error, fit(m.errMsg, width))
	}
	if m.dragging {
		msg := fmt.Sprintf("moving %s: release on a tab strip to drop, esc to cancel", m.dragTitle)
		return theme.Render(styles.Info, fit(msg, width))
	}
	if info := m.currentInfo(); info != "" {
		return theme.Render(styles.Info, fit(info, width))
	}
	c := m.focused()
	if c == nil {
		return strings.Repeat(" ", width)
	}
	return theme.Render(styles.Info, fit(fmt.Sprintf("%s · %d tabs", c.Name(), c.Len()), width))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	return nil
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// bodyRows is the number of content rows below each strip and its rule.
func (m *Model) bodyRows() int {
	rows := m.viewHeight() - 3
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		return 1
	}
	return rows
}

// fit truncates plain text to width and pads it with spaces.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// fitStyled is fit for text that already carries escape sequences.
func fitStyled(text string, width int) string {
	if lipgloss.Width(text) > width {
		text = truncate.String(text, uint(width))
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
