// Package ui is the terminal client: the same screens and controls as the
// windowed client, rendered with lipgloss.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/forge-and-field/internal/logger"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
)

type AppConfig struct {
	Version string
	Env     screen.Env
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newModel(a.cfg)
	defer m.session.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	logger.Log.WithField("component", "tui").Info("terminal client started")
	_, err := p.Run()
	return err
}

// tickInterval is how often the session is advanced; it drives forge
// completions and toast expiry.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
