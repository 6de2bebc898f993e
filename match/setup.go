package match

import (
	"github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/model"
)

// CurrentPlayer returns the player whose turn it is to place during setup
func (c *Controller) CurrentPlayer() model.Owner {
	return c.currentPlayer
}

// Remaining returns the unplaced tokens of a player
func (c *Controller) Remaining(p model.Owner) int {
	if i := p.Index(); i >= 0 {
		return c.remaining[i]
	}
	return 0
}

// TokenBudget returns the number of tokens each player starts setup with
func (c *Controller) TokenBudget() int {
	return c.seedsPerPlayer
}

/*
PlaceToken places or takes back one of player's tokens at (x, y).

Only valid during PvP setup on the player's own turn. A dead cell is claimed
when the player has tokens left; a cell the player already owns is cleared and
the token refunded. Anything else is ignored. Returns whether the grid changed.
*/
func (c *Controller) PlaceToken(player model.Owner, x, y int) bool {
	fields := logrus.Fields{"player": player.String(), "x": x, "y": y}
	if c.mode != ModePvP || c.phase != PhaseSetup || player != c.currentPlayer || !c.grid.InBounds(x, y) {
		c.ignored("place token", fields)
		return false
	}

	i := player.Index()
	switch cur := c.grid.Get(x, y); {
	case cur == model.Dead && c.remaining[i] > 0:
		c.grid.Set(x, y, player)
		c.remaining[i]--
	case cur == player:
		c.grid.Set(x, y, model.Dead)
		c.remaining[i]++
	default:
		c.ignored("place token", fields)
		return false
	}

	c.switchPlayerIfNeeded()
	return true
}

// switchPlayerIfNeeded hands the turn over once the current player is out of
// tokens and starts the simulation when both are
func (c *Controller) switchPlayerIfNeeded() {
	if c.phase != PhaseSetup {
		return
	}

	cur, other := c.currentPlayer.Index(), c.currentPlayer.Opponent().Index()
	if c.remaining[cur] == 0 && c.remaining[other] > 0 {
		c.currentPlayer = c.currentPlayer.Opponent()
		c.log.WithField("player", c.currentPlayer.String()).Debug("turn switched")
	}

	if c.remaining[0] == 0 && c.remaining[1] == 0 {
		c.exitSetupAndStart()
	}
}

// enterSetup wipes the grid and hands out fresh token budgets
func (c *Controller) enterSetup() {
	c.grid.Clear()
	c.resetCounters()
	c.currentPlayer = model.Player1
	c.remaining = [2]int{c.seedsPerPlayer, c.seedsPerPlayer}
	c.setPhase(PhaseSetup)
	c.log.WithField("tokens", c.seedsPerPlayer).Info("setup started")
}

func (c *Controller) exitSetupAndStart() {
	c.elapsed = 0
	c.setPhase(PhaseRunning)
	c.log.WithFields(logrus.Fields{
		"remaining_p1": c.remaining[0],
		"remaining_p2": c.remaining[1],
	}).Info("match started")
}

// SetTokenBudget changes the per-player token count and restarts setup.
// PvP only; n must be one of the configured budgets.
func (c *Controller) SetTokenBudget(n int) {
	if c.mode != ModePvP || !c.config.AllowsBudget(n) {
		c.ignored("set token budget", logrus.Fields{"tokens": n})
		return
	}
	c.seedsPerPlayer = n
	c.enterSetup()
}
