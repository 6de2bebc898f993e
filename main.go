package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/ui"
	"github.com/mashazatsepina/GameOfLife/utils"
)

func main() {
	flags := utils.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if flags.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.ConfigPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = flags.Apply(&config); err != nil {
		log.Fatalf("%+v", err)
	}

	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	ctrl, renderer, stats := initializeGame(config, rng)
	displayGameInfo(config, ctrl)
	seedBoard(ctrl, config, rng)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		lastFrame = time.Now()
		lastStep  = time.Now()
		redraw    = true
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				ctrl.Generation(), stats.Runtime().Seconds())
			return
		default:
			// Continue with game loop
		}

		now := time.Now()
		if ctrl.Tick(now.Sub(lastFrame)) {
			st := ctrl.Status()
			stats.Update(st.Generation, st.Alive[0]+st.Alive[1], now.Sub(lastStep))
			stats.BoundingBoxSize = st.BoundingBox
			lastStep = now
			redraw = true
		}
		lastFrame = now

		if redraw {
			renderer.Clear()
			displayGameStatus(ctrl, config, stats)
			renderer.Display(ctrl.Board())
			redraw = false
		}

		if stop, reason := checkStopConditions(ctrl, config); stop {
			fmt.Printf("\n🏁 Stopped: %s\n", reason)
			if banner := ui.Banner(ctrl.Status(), ctrl.Players()); banner != "" {
				fmt.Println(banner)
			}
			if ctrl.Mode() == match.ModePvP && ctrl.Phase() != match.PhaseEnded {
				ctrl.EndNow()
				fmt.Println(ui.Banner(ctrl.Status(), ctrl.Players()))
			}
			return
		}

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
