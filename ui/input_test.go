package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/model"
	"github.com/mashazatsepina/GameOfLife/utils"
)

func TestLayoutCellAt(t *testing.T) {
	l := Layout{Columns: 4, Rows: 3, CellSize: 10, OffsetX: 5, OffsetY: 20}

	tests := []struct {
		name   string
		px, py int
		x, y   int
		ok     bool
	}{
		{"first cell", 5, 20, 0, 0, true},
		{"inside last cell", 44, 49, 3, 2, true},
		{"left of grid", 4, 25, 0, 0, false},
		{"above grid", 10, 19, 0, 0, false},
		{"right of grid", 45, 25, 0, 0, false},
		{"below grid", 10, 50, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := l.CellAt(tt.px, tt.py)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.x, x)
				assert.Equal(t, tt.y, y)
			}
		})
	}

	px, py := l.CellOrigin(3, 2)
	assert.Equal(t, 35, px)
	assert.Equal(t, 40, py)
	w, h := l.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
}

func TestLayoutZeroCellSize(t *testing.T) {
	_, _, ok := Layout{Columns: 2, Rows: 2}.CellAt(0, 0)
	assert.False(t, ok)
}

func newMapper(t *testing.T, mode string) (*InputMapper, *match.Controller) {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.Columns, cfg.Rows = 5, 5
	cfg.SeedsPerPlayer = 1
	cfg.Mode = mode
	ctrl := match.New(cfg)
	layout := Layout{Columns: 5, Rows: 5, CellSize: 10}
	return NewInputMapper(layout, ctrl, 1, cfg.TokenBudgets, 0.5), ctrl
}

func TestClickPlacesTokenForPlayerOnTurn(t *testing.T) {
	m, ctrl := newMapper(t, utils.ModePvP)

	require.True(t, m.Click(15, 25))
	assert.Equal(t, model.Player1, ctrl.Cell(1, 2))
	assert.Equal(t, model.Player2, ctrl.CurrentPlayer())

	require.True(t, m.Click(45, 45))
	assert.Equal(t, model.Player2, ctrl.Cell(4, 4))
	assert.Equal(t, match.PhaseRunning, ctrl.Phase())

	assert.False(t, m.Click(100, 100))
}

func TestClickTogglesInClassic(t *testing.T) {
	m, ctrl := newMapper(t, utils.ModeClassic)

	require.True(t, m.Click(0, 0))
	assert.Equal(t, model.Player1, ctrl.Cell(0, 0))
	require.True(t, m.Click(9, 9))
	assert.Equal(t, model.Dead, ctrl.Cell(0, 0))
}

func TestPressGestures(t *testing.T) {
	m, ctrl := newMapper(t, utils.ModeClassic)

	m.Press(GestureRandomFill)
	assert.Equal(t, 25, ctrl.Status().Alive[0])

	m.Press(GestureStep)
	assert.Equal(t, 1, ctrl.Generation())

	m.Press(GestureClear)
	assert.Zero(t, ctrl.Generation())

	m.Press(GestureToggleRun)
	assert.Equal(t, match.PhaseRunning, ctrl.Phase())
	m.Press(GestureToggleRun)
	assert.Equal(t, match.PhasePaused, ctrl.Phase())

	m.Press(GestureEnablePvP)
	assert.Equal(t, match.ModePvP, ctrl.Mode())
	assert.Equal(t, match.PhaseSetup, ctrl.Phase())

	m.Press(GestureBudget3)
	assert.Equal(t, 20, ctrl.TokenBudget())
	m.Press(GestureBudget1)
	assert.Equal(t, 5, ctrl.TokenBudget())

	m.Press(GestureToggleRun)
	m.Press(GestureEndNow)
	assert.Equal(t, match.PhaseEnded, ctrl.Phase())

	m.Press(GestureRestart)
	assert.Equal(t, match.PhaseSetup, ctrl.Phase())

	m.Press(GestureEnableClassic)
	assert.Equal(t, match.ModeClassic, ctrl.Mode())
}

func TestSpeedGestures(t *testing.T) {
	m, ctrl := newMapper(t, utils.ModePvP)
	mid := ctrl.Status().StepInterval

	m.Press(GestureFaster)
	assert.InDelta(t, 0.6, m.Speed(), 1e-9)
	assert.Less(t, ctrl.Status().StepInterval, mid)

	for range 20 {
		m.Press(GestureSlower)
	}
	assert.Zero(t, m.Speed())
	assert.Equal(t, utils.DefaultConfig().MaxStepInterval, ctrl.Status().StepInterval)

	m.SetSpeed(math.NaN())
	assert.Zero(t, m.Speed())
	m.Press(GestureFaster)
	assert.InDelta(t, 0.1, m.Speed(), 1e-9)
}

func TestPressAllKeepsOrder(t *testing.T) {
	stepFirst, ctrl := newMapper(t, utils.ModeClassic)
	stepFirst.PressAll([]Gesture{GestureStep, GestureToggleRun})
	assert.Equal(t, 1, ctrl.Generation())
	assert.Equal(t, match.PhaseRunning, ctrl.Phase())

	runFirst, ctrl := newMapper(t, utils.ModeClassic)
	runFirst.PressAll([]Gesture{GestureToggleRun, GestureStep})
	assert.Zero(t, ctrl.Generation(), "step is ignored while running")
	assert.Equal(t, match.PhaseRunning, ctrl.Phase())
}
