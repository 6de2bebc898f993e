package match

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/model"
)

// ToggleRun leaves setup and starts, or flips between running and paused
func (c *Controller) ToggleRun() {
	if c.phase == PhaseRunning {
		c.StopRun()
		return
	}
	c.StartRun()
}

// StartRun starts automatic stepping. During setup it starts the match
// regardless of unplaced tokens. An ended match stays ended.
func (c *Controller) StartRun() {
	switch c.phase {
	case PhaseSetup:
		c.exitSetupAndStart()
	case PhaseEnded:
		c.ignored("start", nil)
	default:
		c.elapsed = 0
		c.stopReason = ReasonNone
		c.setPhase(PhaseRunning)
	}
}

// StopRun pauses automatic stepping. It never interrupts a step.
func (c *Controller) StopRun() {
	if c.phase != PhaseRunning {
		return
	}
	c.setPhase(PhasePaused)
}

// StepOnce advances exactly one generation while paused
func (c *Controller) StepOnce() bool {
	if c.phase != PhasePaused {
		c.ignored("step", nil)
		return false
	}
	c.step()
	return true
}

/*
Tick feeds wall time into the automatic stepper.

While running, elapsed time accumulates; once it reaches the step interval one
generation is applied and the accumulator is zeroed, dropping any overshoot.
At most one step happens per call. Returns whether a step happened.
*/
func (c *Controller) Tick(elapsed time.Duration) bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.elapsed += elapsed
	if c.elapsed < c.stepInterval {
		return false
	}
	c.elapsed = 0
	c.step()
	return true
}

// step commits one generation, scores births and checks for the end
func (c *Controller) step() {
	next, res := c.grid.NextGeneration(c.config.UseBoundedGrid, c.pool)
	model.GridToPool(c.grid, c.pool)
	c.grid = next

	c.score[0] += res.BirthsP1
	c.score[1] += res.BirthsP2
	c.generation++

	c.evaluateTermination(res.Changed)
}

func (c *Controller) evaluateTermination(changed bool) {
	switch {
	case c.grid.CountLivingCells() == 0:
		c.end(ReasonExtinction)
	case !changed:
		c.end(ReasonStabilized)
	}
}

// EndNow forces the end of a PvP match that has left setup
func (c *Controller) EndNow() {
	if c.mode != ModePvP || (c.phase != PhaseRunning && c.phase != PhasePaused) {
		c.ignored("end now", nil)
		return
	}
	c.end(ReasonForced)
}

// end stops the simulation. Classic mode only pauses; PvP declares a winner.
func (c *Controller) end(reason EndReason) {
	c.stopReason = reason
	if c.mode == ModeClassic {
		c.setPhase(PhasePaused)
		c.log.WithFields(logrus.Fields{
			"reason":     reason.String(),
			"generation": c.generation,
		}).Info("simulation stopped")
		return
	}

	r := c.decideWinner(reason)
	c.result = &r
	c.setPhase(PhaseEnded)
	c.log.WithFields(logrus.Fields{
		"reason":     reason.String(),
		"generation": c.generation,
		"winner":     c.players.Name(r.Winner),
		"score_p1":   r.Score[0],
		"score_p2":   r.Score[1],
	}).Info("match ended")
}

// decideWinner compares births first and current population second
func (c *Controller) decideWinner(reason EndReason) Result {
	r := Result{
		Winner:     model.Dead,
		Reason:     reason,
		Score:      c.score,
		Alive:      c.aliveByPlayer(),
		Generation: c.generation,
	}
	switch {
	case r.Score[0] > r.Score[1]:
		r.Winner = model.Player1
	case r.Score[1] > r.Score[0]:
		r.Winner = model.Player2
	case r.Alive[0] > r.Alive[1]:
		r.Winner = model.Player1
	case r.Alive[1] > r.Alive[0]:
		r.Winner = model.Player2
	}
	return r
}
