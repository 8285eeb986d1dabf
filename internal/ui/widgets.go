package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (uses colors from panel.go: buttonBg, buttonHoverBg, accentColor, textPrimary, textSecondary)
var (
	widgetBg      = color.RGBA{48, 52, 58, 255}
	widgetBorder  = color.RGBA{68, 72, 78, 255}
	widgetHoverBg = color.RGBA{65, 70, 78, 255}
	radioActive   = color.RGBA{76, 175, 120, 255}
	radioInactive = color.RGBA{70, 75, 82, 255}
	checkboxCheck = color.RGBA{76, 175, 120, 255}
	brightText    = color.RGBA{240, 240, 245, 255}
)

const widgetRowWidth = 260

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label string
	Value string
}

// RadioGroup is a group of mutually exclusive radio buttons.
type RadioGroup struct {
	X, Y     int
	Options  []RadioOption
	Selected int
	ItemH    int
	hovered  int
}

// NewRadioGroup creates a new radio group.
func NewRadioGroup(x, y int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ItemH:    30,
		hovered:  -1,
	}
}

// Value returns the value of the selected option.
func (rg *RadioGroup) Value() string {
	if rg.Selected < 0 || rg.Selected >= len(rg.Options) {
		return ""
	}
	return rg.Options[rg.Selected].Value
}

// SelectValue selects the option with the given value, if present.
func (rg *RadioGroup) SelectValue(v string) {
	for i, opt := range rg.Options {
		if opt.Value == v {
			rg.Selected = i
			return
		}
	}
}

// Height returns the total height of the group.
func (rg *RadioGroup) Height() int {
	return rg.ItemH * len(rg.Options)
}

// Update handles radio group input.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	rg.hovered = -1

	for i := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		if mx >= rg.X && mx < rg.X+widgetRowWidth && my >= itemY && my < itemY+rg.ItemH {
			rg.hovered = i
			if input.IsLeftJustPressed() {
				rg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the radio group.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	face := RegularFace(defaultFontSize)

	for i, opt := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		isSelected := i == rg.Selected
		isHovered := i == rg.hovered

		if isHovered && !isSelected {
			vector.DrawFilledRect(screen, scaleF(rg.X-4), scaleF(itemY), scaleF(widgetRowWidth), scaleF(rg.ItemH), widgetHoverBg, false)
		}

		cx := scaleF(rg.X + 10)
		cy := scaleF(itemY + rg.ItemH/2)
		radius := scaleF(8)

		circleColor := radioInactive
		if isSelected {
			circleColor = radioActive
		} else if isHovered {
			circleColor = accentColor
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, circleColor, true)
		if isSelected {
			vector.DrawFilledCircle(screen, cx, cy, radius-scaleF(4), brightText, true)
		}

		textColor := textSecondary
		if isSelected {
			textColor = textPrimary
		}
		_, h := MeasureText(opt.Label, face)
		drawText(screen, opt.Label, face, rg.X+30, itemY+rg.ItemH/2-int(h/2/UIScale), textColor)
	}
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{
		X:       x,
		Y:       y,
		Label:   label,
		Checked: checked,
	}
}

// Update handles checkbox input.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = mx >= cb.X && mx < cb.X+widgetRowWidth && my >= cb.Y && my < cb.Y+24

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	boxX := scaleF(cb.X)
	boxY := scaleF(cb.Y)
	boxSize := scaleF(20)

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, scaleF(2), borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+scaleF(4), boxY+scaleF(10), boxX+scaleF(8), boxY+scaleF(14), scaleF(2), checkboxCheck, true)
		vector.StrokeLine(screen, boxX+scaleF(8), boxY+scaleF(14), boxX+scaleF(16), boxY+scaleF(6), scaleF(2), checkboxCheck, true)
	}

	face := RegularFace(defaultFontSize)
	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	}
	_, h := MeasureText(cb.Label, face)
	drawText(screen, cb.Label, face, cb.X+30, cb.Y+10-int(h/2/UIScale), textColor)
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	mb.hovered = mx >= mb.X && mx < mb.X+mb.W && my >= mb.Y && my < mb.Y+mb.H
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	var bgColor, borderC color.RGBA
	if mb.Primary {
		bgColor = accentColor
		borderC = accentPressed
		if mb.pressed {
			bgColor = accentPressed
		} else if mb.hovered {
			bgColor = accentHover
		}
	} else {
		bgColor = buttonBg
		borderC = widgetBorder
		if mb.pressed {
			bgColor = buttonPressedBg
		} else if mb.hovered {
			bgColor = buttonHoverBg
			borderC = accentColor
		}
	}

	vector.DrawFilledRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), bgColor, false)
	vector.StrokeRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), scaleF(1), borderC, false)
	drawTextCentered(screen, mb.Label, RegularFace(defaultFontSize), mb.X+mb.W/2, mb.Y+mb.H/2, textPrimary)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(1), dividerColor, false)
}

// DrawSectionHeader draws a muted section label with its top-left at (x, y).
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	drawText(screen, label, RegularFace(labelFontSize), x, y, textMuted)
}
