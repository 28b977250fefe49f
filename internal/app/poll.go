package app

import (
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/riffle/internal/input"
	"github.com/dshills/riffle/internal/input/key"
)

// poller turns ebiten's per-frame polled state into discrete input
// events for the queue.
type poller struct {
	keys  []ebiten.Key
	chars []rune

	// Last seen cursor position, to emit motion events only on change.
	lastX, lastY int
}

// buttons pairs the ebiten mouse buttons with the internal names.
var buttons = []struct {
	eb ebiten.MouseButton
	b  input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// poll appends this frame's events to the queue.
func (p *poller) poll(q *input.Queue) {
	mods := heldModifiers()
	p.pollKeys(q, mods)
	p.pollPointer(q, mods)
	p.pollDrops(q)
}

func (p *poller) pollKeys(q *input.Queue, mods key.Modifier) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		named, ok := namedKeys[k]
		if !ok {
			continue
		}
		q.Push(input.Event{Kind: input.KindKeyPress, Key: key.NewEvent(named, mods)})
	}

	// Character keys come through the input-chars path with the shift
	// state already applied. Space is named above and skipped here.
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == ' ' {
			continue
		}
		q.Push(input.Event{Kind: input.KindKeyPress, Key: key.NewRuneEvent(r, mods&^key.ModShift)})
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyControlLeft) || inpututil.IsKeyJustReleased(ebiten.KeyControlRight) {
		q.Push(input.Event{Kind: input.KindKeyRelease, Key: key.NewEvent(key.KeyControl, mods)})
	}
}

func (p *poller) pollPointer(q *input.Queue, mods key.Modifier) {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	var held uint8
	for _, bp := range buttons {
		if ebiten.IsMouseButtonPressed(bp.eb) {
			held |= input.HoldMask(bp.b)
		}
	}

	for _, bp := range buttons {
		if inpututil.IsMouseButtonJustPressed(bp.eb) {
			q.Push(input.Event{
				Kind: input.KindPointerPress, Button: bp.b, Mods: mods,
				X: fx, Y: fy, ButtonsHeld: held,
			})
		}
		if inpututil.IsMouseButtonJustReleased(bp.eb) {
			q.Push(input.Event{
				Kind: input.KindPointerRelease, Button: bp.b, Mods: mods,
				X: fx, Y: fy, ButtonsHeld: held,
			})
		}
	}

	if x != p.lastX || y != p.lastY {
		p.lastX, p.lastY = x, y
		q.Push(input.Event{
			Kind: input.KindPointerMove,
			X:    fx, Y: fy, ButtonsHeld: held,
		})
	}

	// Ebiten reports wheel offsets with up positive; the queue wants
	// reading-forward (down, right) positive.
	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		q.Push(input.Event{
			Kind: input.KindWheel, Mods: mods,
			WheelX: -wx, WheelY: -wy,
			X: fx, Y: fy, ButtonsHeld: held,
		})
	}
}

func (p *poller) pollDrops(q *input.Queue) {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return
	}

	var paths []string
	_ = fs.WalkDir(dropped, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		paths = append(paths, osPath(path))
		return nil
	})
	if len(paths) > 0 {
		q.Push(input.Event{Kind: input.KindDrop, Paths: paths})
	}
}

// osPath restores the operating-system form of a dropped file path.
// The dropped-files FS names entries by their full path with the
// leading separator stripped.
func osPath(p string) string {
	p = filepath.FromSlash(p)
	if runtime.GOOS != "windows" && !filepath.IsAbs(p) {
		p = string(filepath.Separator) + p
	}
	return p
}
