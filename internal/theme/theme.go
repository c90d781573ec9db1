package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. Strip
// styles carry colours only; padding is laid out by the strip renderer so
// hit testing can rely on plain text widths.
type Styles struct {
	Strip             *lipgloss.Style
	StripDragOver     *lipgloss.Style
	Tab               *lipgloss.Style
	ActiveTab         *lipgloss.Style
	FocusedActiveTab  *lipgloss.Style
	DragOverTab       *lipgloss.Style
	CloseGlyph        *lipgloss.Style
	Divider           *lipgloss.Style
	Rule              *lipgloss.Style
	Content           *lipgloss.Style
	Empty             *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	PromptTitle       *lipgloss.Style
	PromptHelp        *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Strip: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")),
	),
	StripDragOver: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("24")),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	FocusedActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	DragOverTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	),
	CloseGlyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PromptTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style when it is set.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
