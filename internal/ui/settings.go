package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 340
	SettingsPadX   = 24
	SettingsPadY   = 20
	settingsHeader = 44
)

// Settings modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 120}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// SettingsModal edits the display preferences.
type SettingsModal struct {
	game    *Game
	visible bool

	// Screen size and modal position
	screenW, screenH int
	x, y, height     int

	coordsCheckbox *Checkbox
	fillCheckbox   *Checkbox
	soundCheckbox  *Checkbox
	localeRadio    *RadioGroup
	saveBtn        *ModalButton
	cancelBtn      *ModalButton

	onSave func(prefs *storage.Preferences)
}

// NewSettingsModal creates a settings modal centered on a screen of the
// given logical size. locales lists the selectable message catalog locales.
func NewSettingsModal(g *Game, screenW, screenH int, locales []string) *SettingsModal {
	sm := &SettingsModal{game: g, screenW: screenW, screenH: screenH}

	options := make([]RadioOption, len(locales))
	for i, l := range locales {
		options[i] = RadioOption{Label: g.localeName(l), Value: l}
	}
	sm.localeRadio = NewRadioGroup(0, 0, options, 0)

	// header, three checkbox rows, locale section, buttons
	sm.height = settingsHeader + SettingsPadY + 3*36 + 28 + sm.localeRadio.Height() + 24 + 38 + SettingsPadY
	sm.x = (screenW - SettingsWidth) / 2
	sm.y = (screenH - sm.height) / 2
	sm.createWidgets()
	return sm
}

// createWidgets positions every widget inside the modal.
func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX

	y := sm.y + settingsHeader + SettingsPadY
	sm.coordsCheckbox = NewCheckbox(contentX, y, "", true)
	y += 36
	sm.fillCheckbox = NewCheckbox(contentX, y, "", true)
	y += 36
	sm.soundCheckbox = NewCheckbox(contentX, y, "", true)
	y += 36 + 28
	sm.localeRadio.X = contentX
	sm.localeRadio.Y = y

	btnW := 110
	btnH := 38
	btnY := sm.y + sm.height - SettingsPadY - btnH
	btnSpacing := 12

	sm.cancelBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW*2-btnSpacing,
		btnY, btnW, btnH, "", false, sm.handleCancel,
	)
	sm.saveBtn = NewModalButton(
		sm.x+SettingsWidth-SettingsPadX-btnW,
		btnY, btnW, btnH, "", true, sm.handleSave,
	)
}

// refreshLabels re-reads widget labels for the current locale.
func (sm *SettingsModal) refreshLabels() {
	sm.coordsCheckbox.Label = sm.game.text("settings.coordinates")
	sm.fillCheckbox.Label = sm.game.text("settings.fill_highlights")
	sm.soundCheckbox.Label = sm.game.text("settings.sound")
	sm.saveBtn.Label = sm.game.text("settings.save")
	sm.cancelBtn.Label = sm.game.text("settings.cancel")
}

// Show displays the modal loaded with prefs.
func (sm *SettingsModal) Show(prefs *storage.Preferences, onSave func(*storage.Preferences)) {
	sm.visible = true
	sm.onSave = onSave

	sm.coordsCheckbox.Checked = prefs.ShowCoordinates
	sm.fillCheckbox.Checked = prefs.FillHighlights
	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.localeRadio.SelectValue(prefs.Locale)
	sm.refreshLabels()
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

// handleSave hands the edited preferences back and closes the modal.
func (sm *SettingsModal) handleSave() {
	prefs := &storage.Preferences{
		Locale:          sm.localeRadio.Value(),
		ShowCoordinates: sm.coordsCheckbox.Checked,
		FillHighlights:  sm.fillCheckbox.Checked,
		SoundEnabled:    sm.soundCheckbox.Checked,
	}
	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// handleCancel discards changes and closes the modal.
func (sm *SettingsModal) handleCancel() {
	sm.Hide()
}

// Update handles input for the settings modal. The modal consumes all input
// while visible.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.handleCancel()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		sm.handleSave()
		return true
	}

	sm.coordsCheckbox.Update(input)
	sm.fillCheckbox.Update(input)
	sm.soundCheckbox.Update(input)
	sm.localeRadio.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if any control in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.localeRadio.hovered >= 0 || sm.coordsCheckbox.hovered || sm.fillCheckbox.hovered || sm.soundCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	sm.game.backdrop.Draw(screen, modalOverlay, 2*UIScale)

	vector.DrawFilledRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(sm.height), modalBg, false)
	vector.StrokeRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(sm.height), scaleF(2), modalBorder, false)

	vector.DrawFilledRect(screen, scaleF(sm.x), scaleF(sm.y), scaleF(SettingsWidth), scaleF(settingsHeader), modalHeader, false)
	drawTextCentered(screen, sm.game.text("settings.title"), BoldFace(defaultFontSize+2),
		sm.x+SettingsWidth/2, sm.y+settingsHeader/2, textPrimary)

	DrawSectionHeader(screen, sm.game.text("settings.language"), sm.x+SettingsPadX, sm.localeRadio.Y-22)

	sm.coordsCheckbox.Draw(screen)
	sm.fillCheckbox.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.localeRadio.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}
