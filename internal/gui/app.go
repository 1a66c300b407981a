// Package gui is the windowed client. It polls raylib for keys and the
// gamepad, feeds them through the session's router and draws the active
// screen every frame.
package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
	legacyui "github.com/appengine-ltd/forge-and-field/internal/ui"
	uitheme "github.com/appengine-ltd/forge-and-field/internal/ui/theme"
)

type AppConfig struct {
	Version string
	Width   int32
	Height  int32
	Env     screen.Env
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

const searchMaxLen = 32

type gameUI struct {
	cfg AppConfig

	width         int32
	height        int32
	quit          bool
	launchClassic bool

	session *screen.Session
	frames  *input.FrameClock
	keys    *keyboard
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	return ui.Run()
}

func newGameUI(cfg AppConfig) *gameUI {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	return &gameUI{
		cfg:     cfg,
		width:   cfg.Width,
		height:  cfg.Height,
		session: screen.NewSession(cfg.Env),
		frames:  input.NewFrameClock(),
		keys:    newKeyboard(),
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Forge & Field")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	uitheme.InitSkin()

	ui.session.Router().Listen(input.NewPoller(raylibGamepad{}, ui.frames))
	logger.Log.WithField("component", "gui").Info("window opened")

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.frames.Advance()
		ui.update()
		if ui.launchClassic {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(uitheme.BG)
		uitheme.DrawFrame(ui.width, ui.height)
		ui.draw()
		rl.EndDrawing()
	}

	ui.session.Close()
	uitheme.UnloadSkin()
	shutdownTypography()
	rl.CloseWindow()
	if ui.launchClassic {
		app := legacyui.NewApp(legacyui.AppConfig{
			Version: ui.cfg.Version,
			Env:     ui.cfg.Env,
		})
		return app.Run()
	}
	return nil
}

// update routes this frame's key presses. While the forge search box is
// focused, typing goes to the box and enter or esc hands the keyboard back.
func (ui *gameUI) update() {
	events := ui.keys.poll()
	if f, ok := ui.session.Active().(*screen.Forge); ok && f.Editing() {
		text := f.Query().Text
		if captureTextInput(&text, searchMaxLen) {
			f.SetSearch(text)
		}
		for _, ev := range events {
			if ev.Repeat {
				continue
			}
			if name := ev.Name(); name == "enter" || name == "esc" {
				f.BlurSearch()
			}
		}
	} else {
		for _, ev := range events {
			if ev.Name() == "f2" {
				ui.launchClassic = true
				return
			}
			if ev.Name() == "ctrl+q" {
				ui.quit = true
				return
			}
			ui.session.Router().HandleKey(ev)
		}
	}
	ui.session.Update()
}

func (ui *gameUI) draw() {
	switch c := ui.session.Active().(type) {
	case *screen.Home:
		ui.drawHome(c)
	case *screen.Inventory:
		ui.drawInventory(c)
	case *screen.Quests:
		ui.drawQuests(c)
	case *screen.Forge:
		ui.drawForge(c)
	case *screen.Log:
		ui.drawLog(c)
	}
	ui.drawNav()
}

// drawNav draws the screen tabs along the bottom edge.
func (ui *gameUI) drawNav() {
	inset := uitheme.FrameInset(ui.width, ui.height)
	y := int32(inset.Y+inset.Height) - 34
	x := int32(inset.X) + 14
	for _, s := range input.Screens() {
		label := navLabel(s)
		clr := AppTheme.TextOnBG
		if s == ui.session.Current() {
			clr = AppTheme.Gold
		}
		drawText(label, x, y, typeScale.Small, clr)
		x += measureText(label, typeScale.Small) + 28
	}
	hint := "F2 terminal  Ctrl+Q quit"
	drawText(hint, int32(inset.X+inset.Width)-measureText(hint, typeScale.Small)-14, y, typeScale.Small, AppTheme.TextMuted)
}

// navLabel is a tab title with its keyboard binding.
func navLabel(s input.Screen) string {
	a := screenAction(s)
	keys := input.KeysFor(a)
	title := strings.ToUpper(s.String()[:1]) + s.String()[1:]
	if len(keys) == 0 {
		return title
	}
	return fmt.Sprintf("%s [%s]", title, keys[0])
}

func screenAction(s input.Screen) input.Action {
	for _, a := range input.Actions() {
		if to, ok := input.ScreenFor(a); ok && a.IsGlobal() && to == s {
			return a
		}
	}
	return input.ActionNone
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := measureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	drawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawWrappedText(text string, rect rl.Rectangle, y int32, size int32, clr rl.Color) int32 {
	maxWidth := int32(rect.Width) - 2*int32(spaceM)
	lines := wrapText(text, size, maxWidth)
	for i, line := range lines {
		drawText(line, int32(rect.X+spaceM), int32(rect.Y)+y+int32(i)*textLineHeight(size), size, clr)
	}
	return y + int32(len(lines))*textLineHeight(size)
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 8)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func safeText(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
