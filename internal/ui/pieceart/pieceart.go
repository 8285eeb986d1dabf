// Package pieceart holds the piece artwork as SVG and rasterizes it.
package pieceart

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
)

// shapes holds the SVG body of each kind on a 45x45 canvas. %[1]s is the
// fill color and %[2]s the outline color.
var shapes = map[board.Kind]string{
	board.Pawn: `
<circle cx="22.5" cy="13" r="5.5"/>
<path d="M16 34 C16 26 19 21.5 22.5 19.5 C26 21.5 29 26 29 34 Z"/>
<rect x="11" y="34" width="23" height="5" rx="1.5"/>`,
	board.Rook: `
<path d="M11 9 H16 V12.5 H20 V9 H25 V12.5 H29 V9 H34 V16 H11 Z"/>
<rect x="14" y="16" width="17" height="16"/>
<path d="M11 32 H34 L35.5 35 H9.5 Z"/>
<rect x="9" y="35" width="27" height="4" rx="1"/>`,
	board.Knight: `
<path d="M13 39 L13 31 C13 24 18 20.5 17.5 16 L14.5 18.5 L11 16.5 L16.5 9 L20.5 6 L22 9.5 C30.5 10 35.5 18 34 39 Z"/>
<circle cx="19" cy="12.5" r="1.2" fill="%[2]s"/>`,
	board.Bishop: `
<circle cx="22.5" cy="8.5" r="2.5"/>
<path d="M15.5 32 C15 25 17 19 22.5 12 C28 19 30 25 29.5 32 Z"/>
<path d="M20 20 L25 20 M22.5 17.5 L22.5 22.5" fill="none"/>
<rect x="10" y="33" width="25" height="5" rx="1.5"/>`,
	board.Queen: `
<path d="M11 33 L8.5 14.5 L16 25 L17.5 11 L22.5 24 L27.5 11 L29 25 L36.5 14.5 L34 33 Z"/>
<circle cx="8.5" cy="12.5" r="2.3"/>
<circle cx="17.5" cy="9" r="2.3"/>
<circle cx="27.5" cy="9" r="2.3"/>
<circle cx="36.5" cy="12.5" r="2.3"/>
<rect x="10" y="33" width="25" height="5" rx="1.5"/>`,
	board.King: `
<path d="M21 5 H24 V9 H28 V12 H24 V19 H21 V12 H17 V9 H21 Z"/>
<path d="M12.5 33 C9.5 26 13 19.5 22.5 19.5 C32 19.5 35.5 26 32.5 33 Z"/>
<rect x="10" y="33" width="25" height="5" rx="1.5"/>`,
}

// palette maps a piece color to its fill and outline.
var palette = map[board.Color][2]string{
	board.White: {"#ffffff", "#000000"},
	board.Black: {"#000000", "#ffffff"},
}

// Kinds returns every kind that has artwork.
func Kinds() []board.Kind {
	return []board.Kind{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Pawn}
}

// SVG returns a complete SVG document for the kind, or "" if the kind has no
// artwork.
func SVG(kind board.Kind, c board.Color) string {
	body, ok := shapes[kind]
	if !ok {
		return ""
	}
	colors := palette[c]
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45" width="45" height="45">`+
		`<g fill="%[1]s" stroke="%[2]s" stroke-width="1.5" stroke-linejoin="round">`+body+`</g></svg>`,
		colors[0], colors[1])
}

// Rasterize renders the kind as a size x size anti-aliased image.
func Rasterize(kind board.Kind, c board.Color, size int) (*image.RGBA, error) {
	src := SVG(kind, c)
	if src == "" {
		return nil, fmt.Errorf("no artwork for %s", kind)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s svg: %w", kind, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DisplayColor returns the color a piece is drawn in. An explicit glyph wins
// over the piece's color metadata, so a black piece shown with an outlined
// glyph is drawn outlined.
func DisplayColor(p board.Piece) board.Color {
	if p.Glyph != 0 && p.Glyph == p.Kind.Glyph(board.White) {
		return board.White
	}
	if p.Glyph != 0 && p.Glyph == p.Kind.Glyph(board.Black) {
		return board.Black
	}
	return p.Color
}
