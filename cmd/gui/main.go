//go:build ebiten

package main

import (
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/ui"
	"github.com/mashazatsepina/GameOfLife/utils"
)

func main() {
	flags := utils.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()
	if flags.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	config, err := utils.LoadConfig(flags.ConfigPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		log.Infof("using default configuration (%s not found)", flags.ConfigPath)
		config = utils.DefaultConfig()
	}
	if err = flags.Apply(&config); err != nil {
		log.Fatalf("%+v", err)
	}

	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl := match.New(config, match.WithRand(rand.New(rand.NewPCG(uint64(seed), 0))))
	game := ui.NewGame(ctrl, config, flags.Scale, flags.TPS)

	ebiten.SetWindowTitle("Game of Life - " + ctrl.Mode().String())
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
