package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/input"
)

// standardButtons maps standard-layout indices to raylib buttons.
var standardButtons = [input.ButtonCount]int32{
	0:  rl.GamepadButtonRightFaceDown,
	1:  rl.GamepadButtonRightFaceRight,
	2:  rl.GamepadButtonRightFaceLeft,
	3:  rl.GamepadButtonRightFaceUp,
	4:  rl.GamepadButtonLeftTrigger1,
	5:  rl.GamepadButtonRightTrigger1,
	6:  rl.GamepadButtonLeftTrigger2,
	7:  rl.GamepadButtonRightTrigger2,
	8:  rl.GamepadButtonMiddleLeft,
	9:  rl.GamepadButtonMiddleRight,
	10: rl.GamepadButtonLeftThumb,
	11: rl.GamepadButtonRightThumb,
	12: rl.GamepadButtonLeftFaceUp,
	13: rl.GamepadButtonLeftFaceDown,
	14: rl.GamepadButtonLeftFaceLeft,
	15: rl.GamepadButtonLeftFaceRight,
	16: rl.GamepadButtonMiddle,
}

// raylibGamepad reads the first gamepad raylib knows about.
type raylibGamepad struct {
	index int32
}

func (g raylibGamepad) Buttons() (map[int]bool, bool) {
	if !rl.IsGamepadAvailable(g.index) {
		return nil, false
	}
	down := make(map[int]bool, len(standardButtons))
	for idx, button := range standardButtons {
		if rl.IsGamepadButtonDown(g.index, button) {
			down[idx] = true
		}
	}
	return down, true
}
