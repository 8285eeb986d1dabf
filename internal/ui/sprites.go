// Package ui implements the chessboard sandbox UI using Ebitengine.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/ui/pieceart"
)

// spriteKey identifies a rendered sprite.
type spriteKey struct {
	kind  board.Kind
	color board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// loadPieces rasterizes every kind in both colors.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, kind := range pieceart.Kinds() {
		for _, c := range []board.Color{board.White, board.Black} {
			rgba, err := pieceart.Rasterize(kind, c, renderSize)
			if err != nil {
				obslog.L().Warn("[SPRITE] rasterize failed", zap.Stringer("kind", kind), zap.Error(err))
				continue
			}
			sm.pieces[spriteKey{kind, c}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// Sprite returns the sprite for a piece, or nil for unknown kinds.
func (sm *SpriteManager) Sprite(p board.Piece) *ebiten.Image {
	return sm.pieces[spriteKey{p.Kind, pieceart.DisplayColor(p)}]
}

// DrawPieceAt draws a piece with its top-left corner at (x, y), scaled to
// size. Coordinates are logical and get scaled for HiDPI here.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y, size int, alpha float32) {
	sprite := sm.Sprite(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	s := float64(size) * sm.scale / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x)*sm.scale, float64(y)*sm.scale)
	op.ColorScale.ScaleAlpha(alpha)
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the nominal size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
