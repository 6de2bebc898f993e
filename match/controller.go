package match

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mashazatsepina/GameOfLife/model"
	"github.com/mashazatsepina/GameOfLife/utils"
)

// Phase is the match state machine position
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Simulation"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Mode selects between free editing and the two-player match
type Mode int

const (
	ModeClassic Mode = iota
	ModePvP
)

func (m Mode) String() string {
	if m == ModePvP {
		return utils.ModePvP
	}
	return utils.ModeClassic
}

// ParseMode maps a configuration string to a Mode, defaulting to PvP
func ParseMode(s string) Mode {
	if s == utils.ModeClassic {
		return ModeClassic
	}
	return ModePvP
}

// EndReason says why the simulation stopped on its own or was ended
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonExtinction
	ReasonStabilized
	ReasonForced
)

func (r EndReason) String() string {
	switch r {
	case ReasonExtinction:
		return "extinction"
	case ReasonStabilized:
		return "stabilized"
	case ReasonForced:
		return "ended"
	default:
		return "none"
	}
}

// Result is the outcome of a finished PvP match. Winner is Dead on a draw.
type Result struct {
	Winner     model.Owner
	Reason     EndReason
	Score      [2]int
	Alive      [2]int
	Generation int
}

// IsDraw reports whether neither player won
func (r Result) IsDraw() bool {
	return r.Winner == model.Dead
}

// Status is the read-only snapshot handed to presenters
type Status struct {
	Phase         Phase
	Mode          Mode
	CurrentPlayer model.Owner
	Remaining     [2]int
	Score         [2]int
	Alive         [2]int
	BoundingBox   int
	Generation    int
	StepInterval  time.Duration
	TokenBudget   int
	StopReason    EndReason
	Result        *Result
}

// Controller owns the grid and all match level state.
// It is not safe for concurrent use; the host delivers one event or tick at a time.
type Controller struct {
	config  utils.Config
	players Players
	log     logrus.FieldLogger
	rng     *rand.Rand
	speed   SpeedController

	grid *model.Grid
	pool *model.GridPool

	phase          Phase
	mode           Mode
	currentPlayer  model.Owner
	seedsPerPlayer int
	remaining      [2]int
	score          [2]int
	generation     int
	stepInterval   time.Duration
	elapsed        time.Duration
	stopReason     EndReason
	result         *Result
}

// Option customizes a Controller
type Option func(*Controller)

// WithLogger routes controller events to the given logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRand sets the random source used by RandomFill
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// New builds the grid and match state from a validated configuration
func New(config utils.Config, opts ...Option) *Controller {
	c := &Controller{
		config:         config,
		players:        NewPlayers(config.Players),
		log:            logrus.StandardLogger(),
		rng:            rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		speed:          SpeedController{MinInterval: config.MinStepInterval, MaxInterval: config.MaxStepInterval},
		grid:           model.NewGrid(config.Columns, config.Rows),
		mode:           ParseMode(config.Mode),
		seedsPerPlayer: config.SeedsPerPlayer,
		currentPlayer:  model.Player1,
	}
	if config.UseMemoryPool {
		c.pool = model.NewGridPool()
	}
	for _, opt := range opts {
		opt(c)
	}

	c.SetSpeed(config.InitialSpeed)
	if c.mode == ModePvP {
		c.enterSetup()
	} else {
		c.phase = PhasePaused
	}
	return c
}

// Players returns the seat registry
func (c *Controller) Players() Players {
	return c.players
}

// Board exposes the grid read-only for renderers. Each step swaps in a new
// buffer, so fetch the board again after Tick or StepOnce.
func (c *Controller) Board() model.Board {
	return c.grid
}

// Cell returns the owner at (x, y), Dead when out of bounds
func (c *Controller) Cell(x, y int) model.Owner {
	return c.grid.Get(x, y)
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Generation returns the number of steps applied since the last reset
func (c *Controller) Generation() int {
	return c.generation
}

// CanEdit reports whether cells may be changed by input right now
func (c *Controller) CanEdit() bool {
	return c.phase != PhaseRunning && c.phase != PhaseEnded
}

// Status captures everything the presenter needs in one value
func (c *Controller) Status() Status {
	s := Status{
		Phase:         c.phase,
		Mode:          c.mode,
		CurrentPlayer: c.currentPlayer,
		Remaining:     c.remaining,
		Score:         c.score,
		Alive:         c.aliveByPlayer(),
		BoundingBox:   c.grid.GetBoundingBoxSize(),
		Generation:    c.generation,
		StepInterval:  c.stepInterval,
		TokenBudget:   c.seedsPerPlayer,
		StopReason:    c.stopReason,
	}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

// SetSpeed maps a normalized value in [0,1] to the automatic step interval
func (c *Controller) SetSpeed(normalized float64) {
	c.stepInterval = c.speed.Interval(normalized)
}

func (c *Controller) aliveByPlayer() [2]int {
	return [2]int{c.grid.CountOwned(model.Player1), c.grid.CountOwned(model.Player2)}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.log.WithFields(logrus.Fields{
		"from":       c.phase.String(),
		"to":         p.String(),
		"generation": c.generation,
	}).Debug("phase change")
	c.phase = p
}

func (c *Controller) ignored(op string, fields logrus.Fields) {
	c.log.WithFields(fields).WithField("phase", c.phase.String()).Debugf("%s ignored", op)
}

// resetCounters zeroes generation, score and any previous ending
func (c *Controller) resetCounters() {
	c.generation = 0
	c.score = [2]int{}
	c.elapsed = 0
	c.stopReason = ReasonNone
	c.result = nil
}
