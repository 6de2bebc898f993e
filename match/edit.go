package match

import (
	"github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/model"
)

// ManualToggle flips a cell between dead and player one. Classic mode only,
// and only while the simulation is not running.
func (c *Controller) ManualToggle(x, y int) bool {
	if c.mode != ModeClassic || !c.CanEdit() || !c.grid.InBounds(x, y) {
		c.ignored("toggle", logrus.Fields{"x": x, "y": y})
		return false
	}
	if c.grid.Get(x, y).Alive() {
		c.grid.Set(x, y, model.Dead)
	} else {
		c.grid.Set(x, y, model.Player1)
	}
	return true
}

// RandomFill seeds every cell alive with probability density in classic mode.
// In PvP mode it restarts setup instead.
func (c *Controller) RandomFill(density float64) {
	if c.mode == ModePvP {
		c.enterSetup()
		return
	}
	c.grid.Randomize(c.rng, min(max(density, 0), 1), model.Player1)
	c.resetCounters()
	c.log.WithFields(logrus.Fields{
		"density": density,
		"alive":   c.grid.CountLivingCells(),
	}).Debug("random fill")
}

// ClearAll kills every cell and resets the generation. PvP re-enters setup.
func (c *Controller) ClearAll() {
	if c.mode == ModePvP {
		c.enterSetup()
		return
	}
	c.grid.Clear()
	c.resetCounters()
}

// RestartMatch starts over in the current mode
func (c *Controller) RestartMatch() {
	if c.mode == ModePvP {
		c.enterSetup()
		return
	}
	c.grid.Clear()
	c.resetCounters()
	c.setPhase(PhasePaused)
}

// EnablePvP switches to the two-player match and opens setup
func (c *Controller) EnablePvP() {
	c.StopRun()
	c.mode = ModePvP
	c.log.Info("mode pvp")
	c.enterSetup()
}

// EnableClassic switches to free editing on an empty, paused grid
func (c *Controller) EnableClassic() {
	c.StopRun()
	c.mode = ModeClassic
	c.log.Info("mode classic")
	c.grid.Clear()
	c.resetCounters()
	c.remaining = [2]int{}
	c.currentPlayer = model.Player1
	c.setPhase(PhasePaused)
}
