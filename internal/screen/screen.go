// Package screen holds the per-screen controllers and the session that
// swaps them as the player navigates. Controllers are frontend-agnostic:
// the raylib and terminal clients both render from their state.
package screen

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/journal"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
)

// Env is shared by every controller of a session.
type Env struct {
	Dataset    *catalog.Dataset
	Journal    *journal.Journal
	Engine     forge.Engine
	ForgeDelay time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller is the live state of one screen.
type Controller interface {
	input.Handler
	Screen() input.Screen
	Focus() focus.State
	// Update runs once per frame.
	Update(now time.Time)
}

// Session owns the active controller. Navigating tears the old controller
// down (its context is cancelled and it is detached from the router) and
// builds a fresh one.
type Session struct {
	env     Env
	router  *input.Router
	current input.Screen
	active  Controller
	cancel  context.CancelFunc
	detach  func()
	preload string
}

// NewSession starts on the home screen.
func NewSession(env Env) *Session {
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Dataset == nil {
		env.Dataset = catalog.Demo()
	}
	if env.Journal == nil {
		env.Journal = journal.New(journal.NewMemoryStore())
	}
	s := &Session{env: env}
	s.router = input.NewRouter(s)
	s.enter(input.ScreenHome)
	return s
}

func (s *Session) log() *logrus.Entry {
	return logger.Log.WithField("component", "session")
}

func (s *Session) Env() Env { return s.env }

func (s *Session) Router() *input.Router { return s.router }

func (s *Session) Current() input.Screen { return s.current }

func (s *Session) Active() Controller { return s.active }

// Navigate replaces the active controller. Navigating to the current
// screen does nothing.
func (s *Session) Navigate(to input.Screen) {
	if s.active != nil && to == s.current {
		return
	}
	s.leave()
	s.enter(to)
}

// OpenInForge navigates to the forge with item id preloaded as the base.
func (s *Session) OpenInForge(id string) {
	s.preload = id
	if s.current == input.ScreenForge {
		s.leave()
		s.enter(input.ScreenForge)
		return
	}
	s.Navigate(input.ScreenForge)
}

// Update advances the active controller by one frame.
func (s *Session) Update() {
	if s.active != nil {
		s.active.Update(s.env.Now())
	}
}

// Close tears down the active controller and the router's gamepad
// subscription.
func (s *Session) Close() {
	s.leave()
	s.router.Close()
}

func (s *Session) leave() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.active = nil
}

func (s *Session) enter(to input.Screen) {
	ctx, cancel := context.WithCancel(context.Background())
	var c Controller
	switch to {
	case input.ScreenInventory:
		c = NewInventory(s.env, s.OpenInForge)
	case input.ScreenQuests:
		c = NewQuests(s.env)
	case input.ScreenForge:
		c = NewForge(ctx, s.env, s.preload)
		s.preload = ""
	case input.ScreenLog:
		c = NewLog(s.env)
	default:
		to = input.ScreenHome
		c = NewHome(s.Navigate)
	}
	s.current = to
	s.active = c
	s.cancel = cancel
	s.detach = s.router.Attach(c)
	s.log().WithField("screen", to.String()).Debug("entered screen")
}
