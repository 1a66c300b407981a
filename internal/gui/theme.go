package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/forge-and-field/internal/ui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	Divider       rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	TextOnBG      rl.Color
	Accent        rl.Color
	Gold          rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	Divider:       uitheme.Divider,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	TextOnBG:      uitheme.TextOnBG,
	Accent:        uitheme.AccentRune,
	Gold:          uitheme.AccentGold,
	Danger:        uitheme.Danger,
}

type ButtonState = uitheme.ButtonState

const (
	buttonStateNormal   = uitheme.ButtonNormal
	buttonStateFocused  = uitheme.ButtonFocused
	buttonStateDisabled = uitheme.ButtonDisabled
)

type ListItemState = uitheme.ListItemState

const (
	listStateNormal   = uitheme.ListItemNormal
	listStateSelected = uitheme.ListItemSelected
	listStateFocused  = uitheme.ListItemFocused
)

// DrawPanel draws a parchment panel. A non-empty title gets a header and a
// divider inside the panel top.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		drawText(title, int32(rect.X+spaceM), int32(rect.Y+spaceS), typeScale.Header, AppTheme.TextPrimary)
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 8
		uitheme.DrawDivider(rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

// panelBody is the y offset below a titled panel's divider.
func panelBody() int32 {
	return int32(spaceS) + typeScale.Header + 18
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	uitheme.DrawButton(rect, state, text)
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	uitheme.DrawListItem(rect, state, leftText, rightText)
}

func DrawInputField(rect rl.Rectangle, text, placeholder string, focused bool) {
	uitheme.DrawInput(rect, text, placeholder, focused)
}

func DrawHeader(text string, x, y int32) {
	uitheme.DrawHeader(text, x, y)
}

func DrawHintText(text string, x, y int32) {
	uitheme.DrawHintText(text, x, y)
}

func DrawLabelValue(label, value string, x, y int32, valueColor rl.Color) {
	drawText(label, x, y, typeScale.Body, AppTheme.TextSecondary)
	drawText(value, x+140, y, typeScale.Body, valueColor)
}

// DrawHealthBar draws an item's health percentage as a labelled bar.
func DrawHealthBar(value int, rect rl.Rectangle) {
	v := clampInt(value, 0, 100)
	barHeight := float32(8)
	barY := rect.Y + float32(typeScale.Small) + 2
	track := rl.NewRectangle(rect.X, barY, rect.Width, barHeight)
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(v)/100.0, track.Height-2)

	drawText(fmt.Sprintf("Health %d%%", v), int32(rect.X), int32(rect.Y), typeScale.Small, AppTheme.TextSecondary)
	rl.DrawRectangleRec(track, rl.Fade(AppTheme.Divider, 0.9))
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, healthFillColor(v))
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(AppTheme.Border, 0.95))
}

func listRowRect(x, y, width float32) rl.Rectangle {
	return rl.NewRectangle(x, y, width, uitheme.RowHeight)
}

func healthFillColor(value int) rl.Color {
	switch {
	case value <= 40:
		return AppTheme.Danger
	case value <= 75:
		return AppTheme.Gold
	default:
		return AppTheme.Accent
	}
}
