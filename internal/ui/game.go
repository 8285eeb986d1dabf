package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/msgcat"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/sandbox"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui/layout"
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

func scaleF(v int) float32 { return float32(float64(v) * UIScale) }
func scaleD(v int) float64 { return float64(v) * UIScale }

// Game implements ebiten.Game interface.
type Game struct {
	session *sandbox.Session
	cfg     *config.Config
	catalog *msgcat.Catalog

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	layout   layout.Layout
	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	settingsModal *SettingsModal
	backdrop      *Backdrop
	audio         *AudioManager

	// dragImageDrawn is set once a frame has shown the drag image.
	dragImageDrawn bool

	// HiDPI scaling
	scale float64

	log *zap.Logger
}

// NewGame creates the sandbox UI over a session. store may be nil, in which
// case preferences come from the configuration and are not saved.
func NewGame(sess *sandbox.Session, cfg *config.Config, cat *msgcat.Catalog, store *storage.Storage) *Game {
	l := layout.New(cfg.Board.SquareSize, len(sess.State().Pieces()))
	g := &Game{
		session:  sess,
		cfg:      cfg,
		catalog:  cat,
		storage:  store,
		layout:   l,
		renderer: NewRenderer(l, ThemeFromConfig(cfg.Theme)),
		input:    NewInputHandler(),
		scale:    1.0,
		log:      obslog.L().Named("ui"),
	}

	g.loadPreferences()

	g.audio = NewAudioManager(g.prefs.SoundEnabled)
	g.backdrop = NewBackdrop()

	g.panel = NewPanel(g, l.Panel)
	g.settingsModal = NewSettingsModal(g, l.Width, l.Height, cat.Locales())
	return g
}

// loadPreferences loads user preferences from storage, seeded from the
// configuration defaults.
func (g *Game) loadPreferences() {
	g.prefs = &storage.Preferences{
		Locale:          g.cfg.Locale,
		ShowCoordinates: g.cfg.Board.ShowCoordinates,
		FillHighlights:  g.cfg.Board.FillHighlights,
		SoundEnabled:    g.cfg.Board.Sound,
	}
	if g.storage == nil {
		return
	}

	first, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Warn("failed to check first launch", zap.Error(err))
		return
	}
	if first {
		// Nothing stored yet; persist the configured defaults.
		g.savePreferences()
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			g.log.Warn("failed to mark first launch complete", zap.Error(err))
		}
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		g.log.Warn("failed to load preferences", zap.Error(err))
		return
	}
	g.prefs = prefs
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warn("failed to save preferences", zap.Error(err))
	}
}

// Update handles input once per tick.
func (g *Game) Update() error {
	g.input.Update()

	// The drag image has been on screen for a frame; hide the origin now.
	if g.session.Dragging() && g.dragImageDrawn {
		g.session.SnapshotCaptured()
	}

	// Settings modal blocks other input
	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	if !g.session.Dragging() && g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Deselect()
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput turns pointer presses and releases into session events.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		target := g.layout.Target(g.session.State(), mx, my)
		g.session.Click(target)
		if target.Piece != 0 && g.session.BeginDrag(target.Piece) {
			g.dragImageDrawn = false
			g.log.Debug("[DRAG] start", zap.Int("piece", int(target.Piece)))
		}
		return
	}

	if g.session.Dragging() && g.input.IsLeftJustReleased() {
		target := g.layout.Target(g.session.State(), mx, my)
		switch g.session.Drop(target) {
		case sandbox.DropPlaced:
			g.audio.Play(SoundPlace)
		case sandbox.DropReturned:
			g.audio.Play(SoundReturn)
		}
		g.session.EndDrag()
		g.dragImageDrawn = false
	}
}

// updateCursor shows a pointer over anything clickable.
func (g *Game) updateCursor() {
	mx, my := g.input.MousePosition()
	overPiece := g.layout.Target(g.session.State(), mx, my).Piece != 0
	if g.session.Dragging() || overPiece || g.panel.AnyButtonHovered() || g.settingsModal.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the widget.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	opts := RenderOptions{
		ShowCoordinates: g.prefs.ShowCoordinates,
		FillHighlights:  g.prefs.FillHighlights,
	}

	g.renderer.DrawHeader(screen, g.text("title"))
	g.renderer.DrawBoard(screen, opts)
	g.renderer.DrawHighlights(screen, g.session.State(), opts)
	g.renderer.DrawPieces(screen, g.session)
	g.renderer.DrawTray(screen, g.session, g.text("tray_empty"))

	g.panel.Draw(screen)

	if p, ok := g.session.DraggedPiece(); ok {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, p, mx, my)
		g.dragImageDrawn = true
	}

	g.settingsModal.Draw(screen)
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	return int(float64(g.layout.Width) * g.scale), int(float64(g.layout.Height) * g.scale)
}

// Size returns the logical window size.
func (g *Game) Size() (int, int) {
	return g.layout.Width, g.layout.Height
}

// ClearAction returns every board piece to the tray.
func (g *Game) ClearAction() {
	if g.session.State().OnBoard() > 0 {
		g.audio.Play(SoundClear)
	}
	g.session.Clear()
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.session.Deselect()
	g.settingsModal.Show(g.prefs, func(prefs *storage.Preferences) {
		g.prefs.Locale = prefs.Locale
		g.prefs.ShowCoordinates = prefs.ShowCoordinates
		g.prefs.FillHighlights = prefs.FillHighlights
		g.prefs.SoundEnabled = prefs.SoundEnabled
		g.audio.SetEnabled(prefs.SoundEnabled)
		g.panel.refreshLabels()
		ebiten.SetWindowTitle(g.text("title"))
		g.savePreferences()
		g.log.Info("preferences updated",
			zap.String("locale", g.prefs.Locale),
			zap.Bool("coordinates", g.prefs.ShowCoordinates),
			zap.Bool("fill", g.prefs.FillHighlights),
			zap.Bool("sound", g.prefs.SoundEnabled))
	})
}

// SetLocale switches the UI language for this run without saving it.
func (g *Game) SetLocale(locale string) {
	g.prefs.Locale = locale
	g.panel.refreshLabels()
}

// Title returns the localized window title.
func (g *Game) Title() string {
	return g.text("title")
}

// text returns a localized message in the current locale.
func (g *Game) text(key string) string {
	return g.catalog.Text(g.prefs.Locale, key)
}

// localeName returns a locale's own name for itself.
func (g *Game) localeName(locale string) string {
	return g.catalog.Text(locale, "language_name")
}

// statusText renders the placement summary for the panel.
func (g *Game) statusText() string {
	st := g.session.State()
	s, err := g.catalog.Render(g.prefs.Locale, "status", map[string]int{
		"OnBoard": st.OnBoard(),
		"InTray":  len(st.Tray()),
	})
	if err != nil {
		return fmt.Sprintf("%d / %d", st.OnBoard(), len(st.Tray()))
	}
	return s
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			g.log.Warn("failed to close storage", zap.Error(err))
		}
	}
}
