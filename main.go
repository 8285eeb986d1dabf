// Chessboard - a drag-and-drop chess piece sandbox built with Ebitengine
package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/msgcat"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/sandbox"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
)

var (
	configPath   = flag.String("config", "", "config file (default: search $XDG_CONFIG_HOME/"+config.RelPath+")")
	messagesPath = flag.String("messages", "", "message catalog override file")
	locale       = flag.String("locale", "", "UI locale, overrides the saved preference")
)

func main() {
	flag.Parse()

	log := obslog.InitFromEnv()
	defer obslog.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	roster, err := cfg.Pieces()
	if err != nil {
		log.Fatal("invalid roster", zap.Error(err))
	}

	cat, err := msgcat.New(*messagesPath)
	if err != nil {
		log.Fatal("failed to load messages", zap.Error(err))
	}

	store, err := storage.Open()
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			log.Info("preferences will not be saved", zap.Error(err))
		} else {
			log.Warn("failed to initialize storage", zap.Error(err))
		}
		store = nil
	}

	game := ui.NewGame(sandbox.New(roster), cfg, cat, store)
	defer game.Close()
	if *locale != "" {
		game.SetLocale(*locale)
	}

	w, h := game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", zap.Error(err))
	}
}
