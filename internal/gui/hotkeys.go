package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/input"
)

// keyNames maps the raylib keys the client listens to onto KeyEvent names.
var keyNames = map[int32]string{
	rl.KeyEscape:    "esc",
	rl.KeyEnter:     "enter",
	rl.KeyKpEnter:   "enter",
	rl.KeySpace:     " ",
	rl.KeyBackspace: "backspace",
	rl.KeyTab:       "tab",
	rl.KeyUp:        "up",
	rl.KeyDown:      "down",
	rl.KeyLeft:      "left",
	rl.KeyRight:     "right",
	rl.KeyMinus:     "-",
	rl.KeySlash:     "/",
	rl.KeyF2:        "f2",
}

func init() {
	keyNames[rl.KeyKpSubtract] = "-"
	for k := int32(rl.KeyA); k <= rl.KeyZ; k++ {
		keyNames[k] = string(rune('a' + k - rl.KeyA))
	}
	for k := int32(rl.KeyZero); k <= rl.KeyNine; k++ {
		keyNames[k] = string(rune('0' + k - rl.KeyZero))
	}
}

// keyboard turns raylib's key-down state into KeyEvents. Presses come from
// an edge detector over the polled state; auto-repeats are reported with
// Repeat set so the router can drop them.
type keyboard struct {
	edges *input.EdgeDetector[int32]
}

func newKeyboard() *keyboard {
	return &keyboard{edges: input.NewEdgeDetector[int32]()}
}

func (kb *keyboard) poll() []input.KeyEvent {
	down := make(map[int32]bool, len(keyNames))
	for k := range keyNames {
		if rl.IsKeyDown(k) {
			down[k] = true
		}
	}
	ctrl, shift := ctrlDown(), shiftDown()
	var out []input.KeyEvent
	for _, k := range kb.edges.Update(down) {
		out = append(out, input.KeyEvent{Key: keyNames[k], Ctrl: ctrl, Shift: shift})
	}
	for k, name := range keyNames {
		if rl.IsKeyPressedRepeat(k) {
			out = append(out, input.KeyEvent{Key: name, Ctrl: ctrl, Shift: shift, Repeat: true})
		}
	}
	return out
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

// captureTextInput appends typed printable characters to target and handles
// backspace. It reports whether target changed.
func captureTextInput(target *string, maxLen int) bool {
	before := *target
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
	return *target != before
}
