package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/sandbox"
	"github.com/hailam/chessboard/internal/ui/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Highlight   color.RGBA
	Background  color.RGBA
	TrayBg      color.RGBA
	TextColor   color.RGBA
	LabelColor  color.RGBA
}

// ThemeFromConfig builds the theme from validated configuration colors.
func ThemeFromConfig(tc config.ThemeConfig) *Theme {
	return &Theme{
		LightSquare: config.MustColor(tc.Light),
		DarkSquare:  config.MustColor(tc.Dark),
		Highlight:   config.MustColor(tc.Highlight),
		Background:  config.MustColor(tc.Background),
		TrayBg:      color.RGBA{48, 52, 58, 255},
		TextColor:   color.RGBA{220, 220, 220, 255},
		LabelColor:  color.RGBA{150, 155, 165, 255},
	}
}

// RenderOptions are the display preferences that affect drawing.
type RenderOptions struct {
	ShowCoordinates bool
	FillHighlights  bool
}

// Renderer handles all board and tray drawing.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	layout  layout.Layout
	scale   float64
}

// NewRenderer creates a new renderer.
func NewRenderer(l layout.Layout, theme *Theme) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(l.SquareSize),
		theme:   theme,
		layout:  l,
		scale:   1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

func (r *Renderer) fillRect(screen *ebiten.Image, rect layout.Rect, c color.Color) {
	vector.DrawFilledRect(screen, r.s(rect.X), r.s(rect.Y), r.s(rect.W), r.s(rect.H), c, false)
}

// DrawHeader draws the title above the board.
func (r *Renderer) DrawHeader(screen *ebiten.Image, title string) {
	h := r.layout.Header
	drawTextCentered(screen, title, BoldFace(titleFontSize), h.X+h.W/2, h.Y+h.H/2, r.theme.TextColor)
}

// DrawBoard draws the squares. Row 0 is at the top; a cell is light when
// row+col is even.
func (r *Renderer) DrawBoard(screen *ebiten.Image, opts RenderOptions) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.DarkSquare
			if (row+col)%2 == 0 {
				c = r.theme.LightSquare
			}
			r.fillRect(screen, r.layout.CellRect(board.Coord{Row: row, Col: col}), c)
		}
	}

	if opts.ShowCoordinates {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates draws rank numbers left of the board and file letters
// below it.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := RegularFace(labelFontSize)
	b := r.layout.Board
	for i := 0; i < board.Size; i++ {
		cell := r.layout.CellRect(board.Coord{Row: i, Col: i})
		rank := string(rune('8' - i))
		file := string(rune('a' + i))
		drawTextCentered(screen, rank, face, b.X-layout.Margin/2, cell.Y+cell.H/2, r.theme.LabelColor)
		drawTextCentered(screen, file, face, cell.X+cell.W/2, b.Y+b.H+layout.Margin/2, r.theme.LabelColor)
	}
}

// DrawHighlights marks every highlighted cell, either as a filled overlay or
// as a centered dot.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, st *board.State, opts RenderOptions) {
	for _, c := range st.Highlights() {
		rect := r.layout.CellRect(c)
		if opts.FillHighlights {
			r.fillRect(screen, rect, r.theme.Highlight)
			continue
		}
		cx := r.s(rect.X) + r.s(rect.W)/2
		cy := r.s(rect.Y) + r.s(rect.H)/2
		radius := r.s(rect.W) * 0.15
		vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.Highlight, true)
	}
}

// DrawPieces draws the board pieces, skipping any the session hides.
func (r *Renderer) DrawPieces(screen *ebiten.Image, sess *sandbox.Session) {
	st := sess.State()
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := board.Coord{Row: row, Col: col}
			p, ok := st.PieceAt(c)
			if !ok || sess.OriginHidden(p.ID) {
				continue
			}
			rect := r.layout.CellRect(c)
			r.sprites.DrawPieceAt(screen, p, rect.X, rect.Y, rect.W, 1)
		}
	}
}

// DrawTray draws the tray strip and its pieces in tray order.
func (r *Renderer) DrawTray(screen *ebiten.Image, sess *sandbox.Session, emptyLabel string) {
	tray := r.layout.Tray
	r.fillRect(screen, tray, r.theme.TrayBg)

	pieces := sess.State().Tray()
	if len(pieces) == 0 {
		drawTextCentered(screen, emptyLabel, RegularFace(defaultFontSize), tray.X+tray.W/2, tray.Y+tray.H/2, r.theme.LabelColor)
		return
	}
	for i, p := range pieces {
		if sess.OriginHidden(p.ID) {
			continue
		}
		slot := r.layout.SlotRect(i)
		r.sprites.DrawPieceAt(screen, p, slot.X, slot.Y, slot.W, 1)
	}
}

// DrawDraggedPiece draws the drag image centered on the pointer.
// mouseX, mouseY are in logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, p board.Piece, mouseX, mouseY int) {
	size := r.layout.SquareSize
	r.sprites.DrawPieceAt(screen, p, mouseX-size/2, mouseY-size/2, size, 0.9)
}

// Layout returns the geometry the renderer draws with.
func (r *Renderer) Layout() layout.Layout {
	return r.layout
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
