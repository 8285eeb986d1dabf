package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler merges mouse and single-touch input into one pointer.
type InputHandler struct {
	mouseX, mouseY   int // Logical coordinates (unscaled)
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool

	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	if ih.updateTouch() {
		return
	}

	// Raw cursor position is in scaled space
	rawX, rawY := ebiten.CursorPosition()
	ih.mouseX, ih.mouseY = toLogical(rawX, rawY)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// updateTouch tracks the first touch as if it were the left button. It
// returns false when no touch is involved in this frame.
func (ih *InputHandler) updateTouch() bool {
	if !ih.touching {
		ih.touchIDs = inpututil.AppendJustPressedTouchIDs(ih.touchIDs[:0])
		if len(ih.touchIDs) == 0 {
			return false
		}
		ih.touchID = ih.touchIDs[0]
		ih.touching = true
		ih.mouseX, ih.mouseY = toLogical(ebiten.TouchPosition(ih.touchID))
		ih.leftJustPressed, ih.leftPressed, ih.leftJustReleased = true, true, false
		return true
	}

	if inpututil.IsTouchJustReleased(ih.touchID) {
		ih.touching = false
		ih.mouseX, ih.mouseY = toLogical(inpututil.TouchPositionInPreviousTick(ih.touchID))
		ih.leftJustPressed, ih.leftPressed, ih.leftJustReleased = false, false, true
		return true
	}

	ih.mouseX, ih.mouseY = toLogical(ebiten.TouchPosition(ih.touchID))
	ih.leftJustPressed, ih.leftPressed, ih.leftJustReleased = false, true, false
	return true
}

// toLogical converts scaled screen coordinates to logical ones.
func toLogical(x, y int) (int, int) {
	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	return int(float64(x) / scale), int(float64(y) / scale)
}

// MousePosition returns the current pointer position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the pointer was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the pointer was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the pointer is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// IsInBounds returns true if the pointer is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
