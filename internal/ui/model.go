package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/appengine-ltd/forge-and-field/internal/docs"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
)

type model struct {
	cfg     AppConfig
	session *screen.Session
	active  screen.Controller

	search  textinput.Model
	logView viewport.Model

	controls string
	width    int
	height   int
}

func newModel(cfg AppConfig) *model {
	ti := textinput.New()
	ti.Placeholder = "search items..."
	ti.CharLimit = 32
	ti.Width = 32

	m := &model{
		cfg:     cfg,
		session: screen.NewSession(cfg.Env),
		search:  ti,
		logView: viewport.New(80, 20),
		width:   100,
		height:  30,
	}
	m.controls = renderControls(m.width)
	m.syncActive()
	return m
}

// renderControls renders the controls reference for the home screen, or
// falls back to the raw Markdown.
func renderControls(width int) string {
	md := docs.Controls()
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(max(40, width/2-4)))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logView.Width = max(20, msg.Width*2/3)
		m.logView.Height = max(5, msg.Height-8)
		m.controls = renderControls(msg.Width)
		m.refreshLog()
		return m, nil
	case tickMsg:
		m.session.Update()
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		m.syncActive()
		return m, cmd
	}
	return m, nil
}

// handleKey gives the search box the keyboard while the forge is editing
// and routes everything else through the session's router.
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if f, ok := m.session.Active().(*screen.Forge); ok && f.Editing() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			f.BlurSearch()
			m.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		f.SetSearch(m.search.Value())
		return cmd
	}
	m.session.Router().HandleKey(keyEvent(msg))
	if f, ok := m.session.Active().(*screen.Forge); ok && f.Editing() && !m.search.Focused() {
		m.search.SetValue(f.Query().Text)
		return m.search.Focus()
	}
	if l, ok := m.session.Active().(*screen.Log); ok {
		m.followLog(l)
	}
	return nil
}

// syncActive resets per-screen widgets when the session swapped controllers.
func (m *model) syncActive() {
	active := m.session.Active()
	if active == m.active {
		return
	}
	m.active = active
	m.search.Blur()
	m.search.SetValue("")
	m.refreshLog()
}

func (m *model) refreshLog() {
	if l, ok := m.session.Active().(*screen.Log); ok {
		m.logView.SetContent(renderLogEntries(l, m.logView.Width))
		m.logView.GotoTop()
	}
}

// followLog scrolls the log so the focused entry stays visible.
func (m *model) followLog(l *screen.Log) {
	m.logView.SetContent(renderLogEntries(l, m.logView.Width))
	line := l.Focus().Index
	switch {
	case line < m.logView.YOffset:
		m.logView.SetYOffset(line)
	case line >= m.logView.YOffset+m.logView.Height:
		m.logView.SetYOffset(line - m.logView.Height + 1)
	}
}

// keyEvent converts a terminal key to the router's form. Terminals do not
// report auto-repeat, so Repeat is never set.
func keyEvent(msg tea.KeyMsg) input.KeyEvent {
	if msg.Type == tea.KeySpace {
		return input.KeyEvent{Key: " "}
	}
	s := msg.String()
	ev := input.KeyEvent{}
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && rest != "" {
		ev.Ctrl = true
		s = rest
	}
	if rest, ok := strings.CutPrefix(s, "shift+"); ok && rest != "" {
		ev.Shift = true
		s = rest
	}
	ev.Key = s
	return ev
}
