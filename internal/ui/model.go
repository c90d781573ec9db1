package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/theme"
	"github.com/atomicstack/tabdeck/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth      = 80
	defaultHeight     = 24
	defaultTitleWidth = 18
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// flushMsg asks the model to deliver pending tree mutations.
type flushMsg struct{}

// Options tunes the model. Zero values select the defaults.
type Options struct {
	Width         int
	Height        int
	TitleWidth    int
	ShowFooter    bool
	SelectDropped bool
}

type pane struct {
	container *tabs.Container
	x         int
	width     int
}

// Model implements the Bubble Tea model for a row of tab containers.
type Model struct {
	doc   *tree.Document
	group *tabs.Group
	panes []*pane
	focus int

	width         int
	height        int
	fixedWidth    bool
	fixedHeight   bool
	titleWidth    int
	showFooter    bool
	selectDropped bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	press     *pressState
	dragging  bool
	dragTitle string

	prompt *promptForm

	handlers map[reflect.Type]msgHandler
}

// NewModel binds one container per host, in order, all sharing group.
func NewModel(doc *tree.Document, group *tabs.Group, hosts []*tree.Node, opts Options) *Model {
	m := &Model{
		doc:           doc,
		group:         group,
		titleWidth:    opts.TitleWidth,
		showFooter:    opts.ShowFooter,
		selectDropped: opts.SelectDropped,
	}
	if m.titleWidth <= 0 {
		m.titleWidth = defaultTitleWidth
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	surface := stripSurface{titleWidth: m.titleWidth}
	for _, host := range hosts {
		c := group.NewContainer(host,
			tabs.WithSurface(surface),
			tabs.OnEmpty(m.noteEmpty),
			tabs.OnDragStart(m.noteDragStart),
		)
		m.panes = append(m.panes, &pane{container: c})
	}
	m.layout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.finishUpdate(nil)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handlePrompt(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(flushMsg{}):          m.handleFlushMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.doc.Pending() {
		cmds = append(cmds, flushCmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func flushCmd() tea.Msg {
	return flushMsg{}
}

func (m *Model) handleFlushMsg(tea.Msg) tea.Cmd {
	if n := m.doc.Flush(); n > 0 {
		events.UI.Flush(n)
	}
	return nil
}

// Container returns the container shown in pane i, or nil.
func (m *Model) Container(i int) *tabs.Container {
	if i < 0 || i >= len(m.panes) {
		return nil
	}
	return m.panes[i].container
}

// Panes reports how many containers are shown.
func (m *Model) Panes() int {
	return len(m.panes)
}

// Focus returns the index of the focused pane.
func (m *Model) Focus() int {
	return m.focus
}

func (m *Model) focused() *tabs.Container {
	return m.Container(m.focus)
}

func (m *Model) setFocus(i int) {
	if i == m.focus || m.Container(i) == nil {
		return
	}
	m.focus = i
	events.UI.Focus(m.panes[i].container.Name())
}

func (m *Model) noteEmpty(c *tabs.Container) {
	m.setInfo(fmt.Sprintf("%s is empty", c.Name()))
}

func (m *Model) noteDragStart(_ *tabs.Container, id string) {
	m.dragTitle = tabs.ItemTitle(m.group.Lookup(id))
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	m.forceClearInfo()
	events.Action.Error(err)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
