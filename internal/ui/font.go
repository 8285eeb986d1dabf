package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hailam/chessboard/internal/obslog"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
)

const (
	defaultFontSize = 14.0
	labelFontSize   = 12.0
	titleFontSize   = 22.0
)

func init() {
	initFonts()
}

func initFonts() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		obslog.L().Error("[FONT] failed to load regular font", zap.Error(err))
		return
	}
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		obslog.L().Error("[FONT] failed to load bold font", zap.Error(err))
	}
}

// RegularFace returns the regular face at size, scaled for HiDPI.
func RegularFace(size float64) *text.GoTextFace {
	if regularSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: regularSource, Size: size * UIScale}
}

// BoldFace returns the bold face at size, scaled for HiDPI.
func BoldFace(size float64) *text.GoTextFace {
	if boldSource == nil {
		return RegularFace(size)
	}
	return &text.GoTextFace{Source: boldSource, Size: size * UIScale}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

// drawText draws s with its top-left corner at logical (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centered on logical (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy int, c color.Color) {
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(cx)-w/2, scaleD(cy)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
