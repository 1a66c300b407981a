package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette for the temple-and-parchment workshop UI.
var (
	BG            = rl.NewColor(0x1E, 0x34, 0x40, 255) // #1E3440 temple
	BGDeep        = rl.NewColor(0x15, 0x26, 0x2F, 255) // #15262F
	Panel         = rl.NewColor(0xE8, 0xDD, 0xC7, 255) // #E8DDC7 parchment
	PanelRaised   = rl.NewColor(0xF3, 0xEC, 0xDD, 255) // #F3ECDD
	Border        = rl.NewColor(0x8C, 0x7A, 0x5B, 255) // #8C7A5B
	Divider       = rl.NewColor(0xC9, 0xBA, 0x9C, 255) // #C9BA9C
	TextPrimary   = rl.NewColor(0x1E, 0x34, 0x40, 255) // temple on parchment
	TextSecondary = rl.NewColor(0x4A, 0x5C, 0x66, 255) // #4A5C66
	TextMuted     = rl.NewColor(0x7D, 0x85, 0x8A, 255) // #7D858A
	TextOnBG      = rl.NewColor(0xE8, 0xDD, 0xC7, 255)
	AccentRune    = rl.NewColor(0x78, 0xB7, 0xC3, 255) // #78B7C3
	AccentGold    = rl.NewColor(0xC9, 0xA2, 0x27, 255) // #C9A227
	Danger        = rl.NewColor(0xB8, 0x4A, 0x3A, 255) // #B84A3A
	DisabledPanel = rl.NewColor(0xCF, 0xC6, 0xB4, 255)
	DisabledText  = TextMuted
)
