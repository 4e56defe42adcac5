// Package input turns polled device state into a per-tick snapshot the
// gameplay systems read, and maps the pointer from screen to world space.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// State is the input snapshot of one tick, stored as a singleton.
type State struct {
	Up, Down, Left, Right bool

	// Dash and Fire are edge triggered: true only on the tick of the press.
	Dash bool
	Fire bool

	// Cursor is the pointer in screen pixels, y down.
	Cursor       cp.Vector
	CursorInside bool

	// Captured is set when an overlay (the debug UI) owns the mouse.
	Captured bool
}

// Axes returns the held direction as -1, 0 or 1 per axis, y up. Opposite
// keys cancel.
func Axes(s State) (x, y int) {
	if s.Right {
		x++
	}
	if s.Left {
		x--
	}
	if s.Up {
		y++
	}
	if s.Down {
		y--
	}
	return x, y
}

// Device is the polled input source.
type Device interface {
	KeyPressed(key ebiten.Key) bool
	KeyJustPressed(key ebiten.Key) bool
	MouseJustPressed(button ebiten.MouseButton) bool
	Cursor() (x, y int)
}

// Bindings maps actions to keys. Any bound key triggers the action.
type Bindings struct {
	Up, Down, Left, Right []ebiten.Key
	Dash, Fire            []ebiten.Key
	FireButton            []ebiten.MouseButton
}

// DefaultBindings uses WASD or arrows to move, Space to dash, and the left
// mouse button or J to fire.
func DefaultBindings() Bindings {
	return Bindings{
		Up:         []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:       []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:       []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:      []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Dash:       []ebiten.Key{ebiten.KeySpace},
		Fire:       []ebiten.Key{ebiten.KeyJ},
		FireButton: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	}
}

// Sampler fills State from a Device.
type Sampler struct {
	Device   Device
	Bindings Bindings

	// Screen is the window size in pixels, used for CursorInside.
	Screen cp.Vector
}

// NewSampler samples the real ebiten input.
func NewSampler(screen cp.Vector) *Sampler {
	return &Sampler{
		Device:   EbitenDevice{},
		Bindings: DefaultBindings(),
		Screen:   screen,
	}
}

// Sample overwrites state with the current device state. The Captured flag
// is left untouched; the overlay owns it.
func (s *Sampler) Sample(state *State) {
	b := s.Bindings
	state.Up = s.anyPressed(b.Up)
	state.Down = s.anyPressed(b.Down)
	state.Left = s.anyPressed(b.Left)
	state.Right = s.anyPressed(b.Right)
	state.Dash = s.anyJustPressed(b.Dash)

	state.Fire = s.anyJustPressed(b.Fire)
	for _, button := range b.FireButton {
		if s.Device.MouseJustPressed(button) {
			state.Fire = true
		}
	}

	x, y := s.Device.Cursor()
	state.Cursor = cp.Vector{X: float64(x), Y: float64(y)}
	state.CursorInside = x >= 0 && y >= 0 && float64(x) < s.Screen.X && float64(y) < s.Screen.Y
}

func (s *Sampler) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.Device.KeyPressed(k) {
			return true
		}
	}
	return false
}

func (s *Sampler) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.Device.KeyJustPressed(k) {
			return true
		}
	}
	return false
}

// EbitenDevice reads ebiten's global input state. It must be used from the
// game's Update.
type EbitenDevice struct{}

func (EbitenDevice) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenDevice) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenDevice) MouseJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenDevice) Cursor() (int, int) {
	return ebiten.CursorPosition()
}
