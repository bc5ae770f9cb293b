package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"warped/game"
)

// EbitenInput reads held keys from the keyboard and turns the mouse into pointer messages
type EbitenInput struct {
	keys []ebiten.Key

	// Last cursor position sent as POINTER_MOVE
	lastX, lastY int
	moved        bool
}

// NewEbitenInput creates a keyboard and mouse controller
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		keys: make([]ebiten.Key, 0, 10),
	}
}

// IsHeld maps logical keys to arrows and WASD
func (in *EbitenInput) IsHeld(key game.Key) bool {
	switch key {
	case game.KeyLeft:
		return in.pressed(ebiten.KeyArrowLeft) || in.pressed(ebiten.KeyA)
	case game.KeyUp:
		return in.pressed(ebiten.KeyArrowUp) || in.pressed(ebiten.KeyW)
	case game.KeyRight:
		return in.pressed(ebiten.KeyArrowRight) || in.pressed(ebiten.KeyD)
	case game.KeyDown:
		return in.pressed(ebiten.KeyArrowDown) || in.pressed(ebiten.KeyS)
	case game.KeyEscape:
		return in.pressed(ebiten.KeyEscape)
	default:
		return false
	}
}

func (in *EbitenInput) pressed(k ebiten.Key) bool {
	for _, held := range in.keys {
		if held == k {
			return true
		}
	}
	return false
}

// Update snapshots the pressed keys and broadcasts pointer changes.
// The layout matches the scene, so cursor coordinates are scene coordinates.
func (in *EbitenInput) Update(bus *game.Bus) {
	in.keys = inpututil.AppendPressedKeys(in.keys[:0])

	x, y := ebiten.CursorPosition()
	if !in.moved || x != in.lastX || y != in.lastY {
		in.lastX, in.lastY = x, y
		in.moved = true
		bus.Broadcast(game.Message{Action: game.ActionPointerMove, X: float64(x), Y: float64(y)})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		bus.Broadcast(game.Message{Action: game.ActionPointerDown, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		bus.Broadcast(game.Message{Action: game.ActionPointerUp, X: float64(x), Y: float64(y)})
	}
}

// Reset forces a POINTER_MOVE on the next update, used when a new session starts
func (in *EbitenInput) Reset() {
	in.moved = false
}
