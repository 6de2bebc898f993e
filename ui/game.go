//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/mashazatsepina/GameOfLife/match"
	"github.com/mashazatsepina/GameOfLife/model"
	"github.com/mashazatsepina/GameOfLife/utils"
)

const (
	hudWidth   = 180
	hudPadding = 10
	lineHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	deadColor       = color.RGBA{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xff}
	textColor       = color.White
)

// keyGestures is checked in order, so keys pressed in the same frame apply deterministically
var keyGestures = []struct {
	key     ebiten.Key
	gesture Gesture
}{
	{ebiten.KeySpace, GestureToggleRun},
	{ebiten.KeyArrowRight, GestureStep},
	{ebiten.KeyC, GestureClear},
	{ebiten.KeyR, GestureRandomFill},
	{ebiten.KeyN, GestureRestart},
	{ebiten.KeyP, GestureEnablePvP},
	{ebiten.KeyK, GestureEnableClassic},
	{ebiten.KeyE, GestureEndNow},
	{ebiten.KeyArrowUp, GestureFaster},
	{ebiten.KeyArrowDown, GestureSlower},
	{ebiten.Key1, GestureBudget1},
	{ebiten.Key2, GestureBudget2},
	{ebiten.Key3, GestureBudget3},
}

// Game adapts a match controller to the ebiten.Game interface
type Game struct {
	ctrl   *match.Controller
	input  *InputMapper
	layout Layout
	colors map[model.Owner]color.RGBA
	tick   time.Duration
}

// NewGame constructs a Game drawing each cell as a scale-sized square
func NewGame(ctrl *match.Controller, config utils.Config, scale, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	layout := Layout{Columns: config.Columns, Rows: config.Rows, CellSize: scale}
	players := ctrl.Players()
	return &Game{
		ctrl:   ctrl,
		input:  NewInputMapper(layout, ctrl, config.RandomDensity, config.TokenBudgets, config.InitialSpeed),
		layout: layout,
		colors: map[model.Owner]color.RGBA{
			model.Dead:    deadColor,
			model.Player1: players[0].Color,
			model.Player2: players[1].Color,
		},
		tick: time.Second / time.Duration(tps),
	}
}

// Update handles per-frame input and advances the simulation clock
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	var pressed []Gesture
	for _, kg := range keyGestures {
		if inpututil.IsKeyJustPressed(kg.key) {
			pressed = append(pressed, kg.gesture)
		}
	}
	g.input.PressAll(pressed)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.input.Click(ebiten.CursorPosition())
	}

	g.ctrl.Tick(g.tick)
	return nil
}

// Draw renders the grid and the status panel
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	board := g.ctrl.Board()
	size := float32(g.layout.CellSize)
	gap := float32(max(g.layout.CellSize/20, 1))
	for y := range board.GetHeight() {
		for x := range board.GetWidth() {
			px, py := g.layout.CellOrigin(x, y)
			vector.DrawFilledRect(screen, float32(px), float32(py), size-gap, size-gap, g.colors[board.Get(x, y)], false)
		}
	}

	gridW, _ := g.layout.Size()
	st := g.ctrl.Status()
	for i, line := range StatusLines(st, g.ctrl.Players()) {
		text.Draw(screen, line, basicfont.Face7x13, gridW+hudPadding, hudPadding+(i+1)*lineHeight, textColor)
	}
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.Size()
	return w + hudWidth, max(h, 20*lineHeight)
}

// WindowSize returns the preferred window size in pixels
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
