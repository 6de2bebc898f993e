package ui

import (
	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/model"
)

// Layout places the grid on screen. Row 0 is drawn at the top.
type Layout struct {
	Columns  int
	Rows     int
	CellSize int
	OffsetX  int
	OffsetY  int
}

// CellAt converts a screen pixel into grid coordinates
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if l.CellSize <= 0 {
		return 0, 0, false
	}
	px -= l.OffsetX
	py -= l.OffsetY
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/l.CellSize, py/l.CellSize
	if x >= l.Columns || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// CellOrigin returns the top-left pixel of a cell
func (l Layout) CellOrigin(x, y int) (px, py int) {
	return l.OffsetX + x*l.CellSize, l.OffsetY + y*l.CellSize
}

// Size returns the pixel size of the grid area
func (l Layout) Size() (w, h int) {
	return l.Columns * l.CellSize, l.Rows * l.CellSize
}

// Gesture is a discrete, backend independent input event
type Gesture int

const (
	GestureToggleRun Gesture = iota
	GestureStep
	GestureClear
	GestureRandomFill
	GestureRestart
	GestureEnablePvP
	GestureEnableClassic
	GestureEndNow
	GestureFaster
	GestureSlower
	GestureBudget1
	GestureBudget2
	GestureBudget3
)

const speedStep = 0.1

// Commands is the subset of the match controller driven by input
type Commands interface {
	Mode() match.Mode
	CurrentPlayer() model.Owner
	PlaceToken(player model.Owner, x, y int) bool
	ManualToggle(x, y int) bool
	ToggleRun()
	StepOnce() bool
	ClearAll()
	RandomFill(density float64)
	RestartMatch()
	EnablePvP()
	EnableClassic()
	EndNow()
	SetSpeed(normalized float64)
	SetTokenBudget(n int)
}

// InputMapper turns clicks and gestures into controller calls
type InputMapper struct {
	Layout  Layout
	Target  Commands
	Density float64
	Budgets []int

	speed float64
}

// NewInputMapper wires a mapper to a controller. speed is the initial slider position.
func NewInputMapper(layout Layout, target Commands, density float64, budgets []int, speed float64) *InputMapper {
	m := &InputMapper{Layout: layout, Target: target, Density: density, Budgets: budgets}
	m.SetSpeed(speed)
	return m
}

// Speed returns the normalized slider position
func (m *InputMapper) Speed() float64 {
	return m.speed
}

// SetSpeed moves the slider and forwards the value
func (m *InputMapper) SetSpeed(normalized float64) {
	m.speed = match.ClampSpeed(normalized)
	m.Target.SetSpeed(m.speed)
}

// Click places a token for the player on turn in PvP, or toggles a cell in classic mode
func (m *InputMapper) Click(px, py int) bool {
	x, y, ok := m.Layout.CellAt(px, py)
	if !ok {
		return false
	}
	if m.Target.Mode() == match.ModePvP {
		return m.Target.PlaceToken(m.Target.CurrentPlayer(), x, y)
	}
	return m.Target.ManualToggle(x, y)
}

// PressAll dispatches gestures in the given order
func (m *InputMapper) PressAll(gs []Gesture) {
	for _, g := range gs {
		m.Press(g)
	}
}

// Press dispatches a gesture
func (m *InputMapper) Press(g Gesture) {
	switch g {
	case GestureToggleRun:
		m.Target.ToggleRun()
	case GestureStep:
		m.Target.StepOnce()
	case GestureClear:
		m.Target.ClearAll()
	case GestureRandomFill:
		m.Target.RandomFill(m.Density)
	case GestureRestart:
		m.Target.RestartMatch()
	case GestureEnablePvP:
		m.Target.EnablePvP()
	case GestureEnableClassic:
		m.Target.EnableClassic()
	case GestureEndNow:
		m.Target.EndNow()
	case GestureFaster:
		m.SetSpeed(m.speed + speedStep)
	case GestureSlower:
		m.SetSpeed(m.speed - speedStep)
	case GestureBudget1, GestureBudget2, GestureBudget3:
		if i := int(g - GestureBudget1); i < len(m.Budgets) {
			m.Target.SetTokenBudget(m.Budgets[i])
		}
	}
}
