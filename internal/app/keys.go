package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/riffle/internal/input/key"
)

// namedKeys maps the ebiten keys the keymap can bind to their internal
// names. Character keys arrive through the input-chars path instead.
var namedKeys = map[ebiten.Key]key.Key{
	ebiten.KeyEscape:       key.KeyEscape,
	ebiten.KeyEnter:        key.KeyEnter,
	ebiten.KeySpace:        key.KeySpace,
	ebiten.KeyTab:          key.KeyTab,
	ebiten.KeyBackspace:    key.KeyBackspace,
	ebiten.KeyArrowUp:      key.KeyUp,
	ebiten.KeyArrowDown:    key.KeyDown,
	ebiten.KeyArrowLeft:    key.KeyLeft,
	ebiten.KeyArrowRight:   key.KeyRight,
	ebiten.KeyHome:         key.KeyHome,
	ebiten.KeyEnd:          key.KeyEnd,
	ebiten.KeyPageUp:       key.KeyPageUp,
	ebiten.KeyPageDown:     key.KeyPageDown,
	ebiten.KeyF11:          key.KeyF11,
	ebiten.KeyNumpad0:      key.KeyKP0,
	ebiten.KeyNumpad1:      key.KeyKP1,
	ebiten.KeyNumpad2:      key.KeyKP2,
	ebiten.KeyNumpad3:      key.KeyKP3,
	ebiten.KeyNumpad4:      key.KeyKP4,
	ebiten.KeyNumpad5:      key.KeyKP5,
	ebiten.KeyNumpad6:      key.KeyKP6,
	ebiten.KeyNumpad7:      key.KeyKP7,
	ebiten.KeyNumpad8:      key.KeyKP8,
	ebiten.KeyNumpad9:      key.KeyKP9,
	ebiten.KeyControlLeft:  key.KeyControl,
	ebiten.KeyControlRight: key.KeyControl,
}

// heldModifiers reads the current modifier keys.
func heldModifiers() key.Modifier {
	mods := key.ModNone
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods = mods.With(key.ModShift)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods = mods.With(key.ModCtrl)
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods = mods.With(key.ModAlt)
	}
	return mods
}
