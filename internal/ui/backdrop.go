package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/obslog"
)

// Kage shader for a separable 9-tap Gaussian blur. Dir is (1,0) for the
// horizontal pass and (0,1) for the vertical one; the last pass mixes in Tint.
var blurShaderSrc = []byte(`
//kage:unit pixels

package main

var Sigma float
var Dir vec2
var Tint vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    step := Dir * Sigma
    var result vec4

    result += imageSrc0At(srcPos - 4*step) * 0.0162
    result += imageSrc0At(srcPos - 3*step) * 0.0540
    result += imageSrc0At(srcPos - 2*step) * 0.1218
    result += imageSrc0At(srcPos - 1*step) * 0.1954
    result += imageSrc0At(srcPos) * 0.2252
    result += imageSrc0At(srcPos + 1*step) * 0.1954
    result += imageSrc0At(srcPos + 2*step) * 0.1218
    result += imageSrc0At(srcPos + 3*step) * 0.0540
    result += imageSrc0At(srcPos + 4*step) * 0.0162

    return mix(result, vec4(Tint.rgb, 1.0), Tint.a)
}
`)

// Backdrop blurs and darkens whatever is already on screen behind a modal.
// Without shader support it falls back to a flat translucent overlay.
type Backdrop struct {
	shader *ebiten.Shader
	tmpA   *ebiten.Image
	tmpB   *ebiten.Image
}

// NewBackdrop compiles the blur shader.
func NewBackdrop() *Backdrop {
	s, err := ebiten.NewShader(blurShaderSrc)
	if err != nil {
		obslog.L().Warn("[BACKDROP] shader unavailable, using flat overlay", zap.Error(err))
		return &Backdrop{}
	}
	return &Backdrop{shader: s}
}

// Enabled returns true if the blur shader compiled.
func (b *Backdrop) Enabled() bool {
	return b != nil && b.shader != nil
}

// ensureImages creates or resizes offscreen images as needed.
func (b *Backdrop) ensureImages(w, h int) {
	if b.tmpA == nil || b.tmpA.Bounds().Dx() != w || b.tmpA.Bounds().Dy() != h {
		b.tmpA = ebiten.NewImage(w, h)
		b.tmpB = ebiten.NewImage(w, h)
	}
}

// Draw covers the whole screen. sigma controls blur spread in pixels.
func (b *Backdrop) Draw(screen *ebiten.Image, tint color.RGBA, sigma float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if !b.Enabled() || w <= 0 || h <= 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), tint, false)
		return
	}

	b.ensureImages(w, h)
	b.tmpA.Clear()
	b.tmpA.DrawImage(screen, nil)

	pass := func(dst, src *ebiten.Image, dir [2]float32, t color.RGBA) {
		dst.Clear()
		dst.DrawRectShader(w, h, b.shader, &ebiten.DrawRectShaderOptions{
			Uniforms: map[string]any{
				"Sigma": float32(sigma),
				"Dir":   dir[:],
				"Tint": []float32{
					float32(t.R) / 255, float32(t.G) / 255,
					float32(t.B) / 255, float32(t.A) / 255,
				},
			},
			Images: [4]*ebiten.Image{src},
		})
	}
	pass(b.tmpB, b.tmpA, [2]float32{1, 0}, color.RGBA{})
	pass(b.tmpA, b.tmpB, [2]float32{0, 1}, tint)

	screen.DrawImage(b.tmpA, nil)
}
