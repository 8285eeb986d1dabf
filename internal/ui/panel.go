package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/ui/layout"
)

// Panel dimensions
const (
	PanelPadding = 20
	ButtonHeight = 40
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover     = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed   = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with the clear and settings buttons and the
// placement status.
type Panel struct {
	game *Game
	rect layout.Rect

	clearBtn    *Button
	settingsBtn *Button
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game, rect layout.Rect) *Panel {
	p := &Panel{game: g, rect: rect}
	p.createButtons()
	return p
}

// createButtons initializes the panel buttons.
func (p *Panel) createButtons() {
	contentX := p.rect.X + PanelPadding
	contentW := p.rect.W - PanelPadding*2

	clearY := layout.HeaderHeight
	p.clearBtn = &Button{
		X: contentX, Y: clearY,
		W: contentW, H: ButtonHeight,
		OnClick: p.game.ClearAction,
	}

	settingsY := clearY + ButtonHeight + 8
	p.settingsBtn = &Button{
		X: contentX, Y: settingsY,
		W: contentW, H: ButtonHeight - 6,
		OnClick: p.game.ShowSettings,
	}
	p.refreshLabels()
}

// refreshLabels re-reads the button labels for the current locale.
func (p *Panel) refreshLabels() {
	p.clearBtn.Label = p.game.text("clear_button")
	p.settingsBtn.Label = p.game.text("settings_button")
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	for _, btn := range []*Button{p.clearBtn, p.settingsBtn} {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if input.IsLeftJustPressed() {
		for _, btn := range []*Button{p.clearBtn, p.settingsBtn} {
			if btn.hovered {
				btn.OnClick()
				return true
			}
		}
	}
	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	return p.clearBtn.hovered || p.settingsBtn.hovered
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, scaleF(p.rect.X), scaleF(p.rect.Y), scaleF(p.rect.W), scaleF(p.rect.H), panelBg, false)

	p.drawPrimaryButton(screen, p.clearBtn)
	p.drawSecondaryButton(screen, p.settingsBtn)

	dividerY := p.settingsBtn.Y + p.settingsBtn.H + 20
	DrawDivider(screen, p.rect.X+PanelPadding, dividerY, p.rect.W-PanelPadding*2)

	drawText(screen, p.game.statusText(), RegularFace(defaultFontSize), p.rect.X+PanelPadding, dividerY+12, textSecondary)
}

// drawPrimaryButton draws a prominent accent button.
func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bg := accentColor
	if btn.pressed {
		bg = accentPressed
	} else if btn.hovered {
		bg = accentHover
	}
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bg, false)
	drawTextCentered(screen, btn.Label, BoldFace(defaultFontSize), btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

// drawSecondaryButton draws a bordered neutral button.
func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bg := buttonBg
	border := buttonBorder
	if btn.pressed {
		bg = buttonPressedBg
	} else if btn.hovered {
		bg = buttonHoverBg
		border = accentColor
	}
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bg, false)
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), float32(UIScale), border, false)
	drawTextCentered(screen, btn.Label, RegularFace(defaultFontSize), btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}
