package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/model"
	"github.com/mashazatsepina/GameOfLife/ui"
	"github.com/mashazatsepina/GameOfLife/utils"
)

// initializeGame sets up the controller, renderer and stats for one run
func initializeGame(config utils.Config, rng *rand.Rand) (
	*match.Controller,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	ctrl := match.New(config,
		match.WithLogger(log.StandardLogger()),
		match.WithRand(rng),
	)

	players := ctrl.Players()
	renderer := model.NewTerminalRenderer(os.Stdout, players[0].Color, players[1].Color)
	stats := utils.NewStats()

	return ctrl, renderer, stats
}

// seedBoard prepares the opening position: random tokens for both seats in PvP,
// a random fill in classic mode
func seedBoard(ctrl *match.Controller, config utils.Config, rng *rand.Rand) {
	if ctrl.Mode() == match.ModeClassic {
		ctrl.RandomFill(config.RandomDensity)
		ctrl.StartRun()
		return
	}

	cells := config.Columns * config.Rows
	for ctrl.Phase() == match.PhaseSetup {
		if st := ctrl.Status(); st.Alive[0]+st.Alive[1] == cells {
			// board is full before the budgets ran out
			ctrl.StartRun()
			return
		}
		player := ctrl.CurrentPlayer()
		x, y := rng.IntN(config.Columns), rng.IntN(config.Rows)
		// only claim dead cells so the bot never takes its own token back
		if ctrl.Cell(x, y) != model.Dead {
			continue
		}
		ctrl.PlaceToken(player, x, y)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, ctrl *match.Controller) {
	fmt.Printf("Mode: %s | Grid: %dx%d | Tokens per player: %d | Bounded: %v | Pool: %v\n",
		ctrl.Mode(), config.Columns, config.Rows, ctrl.TokenBudget(),
		config.UseBoundedGrid, config.UseMemoryPool)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(ctrl *match.Controller, config utils.Config, stats *utils.Stats) {
	fmt.Print(gameStatusText(ctrl, config, stats))
}

func gameStatusText(ctrl *match.Controller, config utils.Config, stats *utils.Stats) string {
	var b strings.Builder
	st := ctrl.Status()
	for _, line := range ui.StatusLines(st, ctrl.Players()) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintf(&b, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
	if config.UseBoundedGrid {
		fmt.Fprintf(&b, " | Bounding box: %d cells", stats.BoundingBoxSize)
	}
	b.WriteString("\n\n")
	return b.String()
}

// checkStopConditions determines if the runner should stop
func checkStopConditions(ctrl *match.Controller, config utils.Config) (bool, string) {
	st := ctrl.Status()
	switch {
	case st.Phase == match.PhaseEnded:
		return true, st.Result.Reason.String()
	case st.Mode == match.ModeClassic && st.Phase == match.PhasePaused:
		return true, st.StopReason.String()
	case config.MaxGenerations > 0 && st.Generation >= config.MaxGenerations:
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
