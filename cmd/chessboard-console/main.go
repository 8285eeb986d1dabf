// Command chessboard-console drives the board sandbox over stdin/stdout.
//
//	$ echo "place 2 e4
//	select e4
//	d" | chessboard-console
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/console"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/sandbox"
)

var configPath = flag.String("config", "", "config file (default: search $XDG_CONFIG_HOME/"+config.RelPath+")")

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

	c := console.New(sandbox.New(roster), os.Stdout)
	if err := c.Run(os.Stdin); err != nil {
		log.Error("read failed", zap.Error(err))
		obslog.Sync()
		os.Exit(1)
	}
}
