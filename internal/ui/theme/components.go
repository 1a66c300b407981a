package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(40)
	ButtonHeight     = float32(56)
	AccentStripWidth = float32(4)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonFocused
	ButtonDisabled
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	ListItemFocused
	ListItemDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	if variant == PanelStandard && Skin.Panel.Tex.ID != 0 {
		DrawNineSlice(Skin.Panel, rect, rl.White)
		return
	}
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentRune, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	inner := rl.NewRectangle(rect.X+1, rect.Y+1, rect.Width-2, rect.Height-2)
	if inner.Width > 4 && inner.Height > 4 {
		rl.DrawRectangleRoundedLinesEx(inner, CornerRadius, CornerSegments, 1.0, rl.Fade(Divider, 0.65))
	}
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := Panel
	stroke := Border
	label := TextPrimary
	strokeWidth := BorderWidth

	switch state {
	case ButtonSelected, ButtonFocused:
		fill = PanelRaised
		stroke = AccentRune
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	if text == "" {
		return
	}
	size := Type.Body
	labelW := measureText(text, size)
	textX := int32(rect.X + (rect.Width-float32(labelW))/2)
	textY := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	drawText(text, textX, textY, size, label)
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	left := TextPrimary
	right := TextSecondary
	strokeWidth := BorderWidth
	strip := rl.Color{}
	drawStrip := false

	switch state {
	case ListItemSelected, ListItemFocused:
		fill = PanelRaised
		stroke = AccentRune
		strokeWidth = BorderWidthFocus
		strip = AccentRune
		drawStrip = true
		right = AccentRune
	case ListItemDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		left = DisabledText
		right = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	if drawStrip {
		stripRect := rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4)
		if stripRect.Height > 0 {
			rl.DrawRectangleRec(stripRect, strip)
		}
	}

	if leftText != "" {
		drawText(leftText, int32(rect.X+PaddingM), int32(rect.Y+10), Type.Body, left)
	}
	if rightText != "" {
		rightW := measureText(rightText, Type.Body)
		rightX := int32(rect.X + rect.Width - PaddingM - float32(rightW))
		drawText(rightText, rightX, int32(rect.Y+10), Type.Body, right)
	}
}

// DrawHeader draws a section title on the background with a gold underline.
func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextOnBG)
	w := measureText(text, Type.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentGold)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

// DrawFrame draws the outer window border from the skin, or a flat rune
// outline when no skin texture is loaded.
func DrawFrame(screenW, screenH int32) {
	rect := rl.NewRectangle(0, 0, float32(screenW), float32(screenH))
	if Skin.Frame.Tex.ID != 0 {
		DrawNineSlice(Skin.Frame, rect, rl.White)
		return
	}
	inset := FrameInset(screenW, screenH)
	rl.DrawRectangleLinesEx(rect, float32(frameSlice), BGDeep)
	rl.DrawRectangleLinesEx(inset, BorderWidth, rl.Fade(AccentRune, 0.4))
}

// DrawInput draws a one-line text field. The caret is drawn while focused.
func DrawInput(rect rl.Rectangle, text, placeholder string, focused bool) {
	if Skin.Input.Tex.ID != 0 {
		DrawNineSlice(Skin.Input, rect, rl.White)
	} else {
		rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, PanelRaised)
	}
	stroke, width := Border, BorderWidth
	if focused {
		stroke, width = AccentRune, BorderWidthFocus
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, width, stroke)

	x := int32(rect.X + PaddingS)
	y := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	if text == "" && !focused {
		drawText(placeholder, x, y, Type.Body, TextMuted)
		return
	}
	drawText(text, x, y, Type.Body, TextPrimary)
	if focused {
		cx := float32(x + measureText(text, Type.Body) + 2)
		drawLine(cx, float32(y), cx, float32(y+Type.Body), 2, AccentRune)
	}
}

// DrawSlot draws one square inventory or pot cell.
func DrawSlot(rect rl.Rectangle, focused, marked bool, label string) {
	fill := rl.Fade(PanelRaised, 0.85)
	if label == "" {
		fill = rl.Fade(Panel, 0.35)
	}
	stroke, width := Border, BorderWidth
	switch {
	case focused:
		stroke, width = AccentRune, BorderWidthFocus+1
	case marked:
		stroke, width = AccentGold, BorderWidthFocus
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, width, stroke)
	if label == "" {
		return
	}
	size := Type.Small
	for measureText(label, size) > int32(rect.Width-PaddingXS) && len(label) > 4 {
		label = label[:len(label)-4] + "..."
	}
	lx := int32(rect.X + (rect.Width-float32(measureText(label, size)))/2)
	ly := int32(rect.Y + rect.Height - float32(size) - PaddingXS)
	drawText(label, lx, ly, size, TextPrimary)
}

// DrawToast draws a centred gold banner near the top of the screen.
func DrawToast(text string, screenW int32) {
	if text == "" {
		return
	}
	w := float32(measureText(text, Type.Body)) + PaddingL*2
	rect := rl.NewRectangle((float32(screenW)-w)/2, PaddingL*2, w, ButtonHeight)
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, AccentGold)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidthFocus, BGDeep)
	drawText(text, int32(rect.X+PaddingL), int32(rect.Y+(rect.Height-float32(Type.Body))/2), Type.Body, BGDeep)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
