package model

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mashazatsepina/GameOfLife/rules"
)

// Board is a read-only view of a grid, handed to renderers
type Board interface {
	GetWidth() int
	GetHeight() int
	Get(x, y int) Owner
}

// Grid represents the game board as a fixed arena of owner values
type Grid struct {
	width  int
	height int
	cells  [][]Owner

	// Optional bounded grid optimization
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// StepResult describes what a single generation transition produced
type StepResult struct {
	BirthsP1 int
	BirthsP2 int
	Changed  bool
}

// Births returns the number of births attributed to the given player
func (r StepResult) Births(o Owner) int {
	switch o {
	case Player1:
		return r.BirthsP1
	case Player2:
		return r.BirthsP2
	default:
		return 0
	}
}

func (r *StepResult) add(o StepResult) {
	r.BirthsP1 += o.BirthsP1
	r.BirthsP2 += o.BirthsP2
	r.Changed = r.Changed || o.Changed
}

// NewGrid creates a new grid with the given dimensions, all cells dead
func NewGrid(width, height int) *Grid {
	cells := make([][]Owner, height)
	for i := range cells {
		cells[i] = make([]Owner, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]Owner, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Owner, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set assigns an owner to a cell; out-of-bounds coordinates are ignored
func (g *Grid) Set(x, y int, owner Owner) {
	if g.InBounds(x, y) {
		g.cells[y][x] = owner
		g.activeBounds.valid = false
	}
}

// Get returns the owner of a cell, Dead when out of bounds
func (g *Grid) Get(x, y int) Owner {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[y][x]
}

/*
CountNeighbors counts the alive cells in the Moore neighborhood of (x, y).

The grid does not wrap: neighbors outside the grid are skipped, so a corner
cell never has more than three.
*/
func (g *Grid) CountNeighbors(x, y int) (total, countP1, countP2 int) {
	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			switch g.cells[ny][nx] {
			case Player1:
				countP1++
			case Player2:
				countP2++
			}
		}
	}
	return countP1 + countP2, countP1, countP2
}

// nextCell derives the next value of a single cell from the current snapshot
func (g *Grid) nextCell(x, y int) Owner {
	total, countP1, countP2 := g.CountNeighbors(x, y)
	cur := g.cells[y][x]
	if cur.Alive() {
		if rules.Survives(total) {
			return cur
		}
		return Dead
	}
	if !rules.IsBirth(total) {
		return Dead
	}
	if rules.FirstOwnsBirth(countP1, countP2) {
		return Player1
	}
	return Player2
}

// stepRegion writes the next generation of the rectangle into next and tallies births
func (g *Grid) stepRegion(next *Grid, minX, maxX, minY, maxY int) (res StepResult) {
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s := g.nextCell(x, y)
			next.cells[y][x] = s
			if s != g.cells[y][x] {
				res.Changed = true
				switch s {
				case Player1:
					res.BirthsP1 += boolToInt(!g.cells[y][x].Alive())
				case Player2:
					res.BirthsP2 += boolToInt(!g.cells[y][x].Alive())
				}
			}
		}
	}
	return
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].Alive() {
				if !g.activeBounds.valid {
					g.activeBounds.minX = x
					g.activeBounds.maxX = x
					g.activeBounds.minY = y
					g.activeBounds.maxY = y
					g.activeBounds.valid = true
				} else {
					g.activeBounds.minX = min(g.activeBounds.minX, x)
					g.activeBounds.maxX = max(g.activeBounds.maxX, x)
					g.activeBounds.minY = min(g.activeBounds.minY, y)
					g.activeBounds.maxY = max(g.activeBounds.maxY, y)
				}
			}
		}
	}
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

func (g *Grid) nextBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// NextGenerationParallel calculates the next generation using parallel row workers
func (g *Grid) NextGenerationParallel(pool *GridPool) (*Grid, StepResult) {
	next := g.nextBuffer(pool)
	if g.height == 0 || g.width == 0 {
		return next, StepResult{}
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		partial       = make([]StepResult, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			partial[i] = g.stepRegion(next, 0, g.width-1, startRow, endRow-1)
			return nil
		})
	}

	// workers never fail; Wait only joins them
	_ = eg.Wait()

	var res StepResult
	for _, p := range partial {
		res.add(p)
	}
	return next, res
}

// NextGenerationBounded calculates next generation only in active region
func (g *Grid) NextGenerationBounded(pool *GridPool) (*Grid, StepResult) {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := g.nextBuffer(pool)

	// If no active cells, return empty grid
	if !g.activeBounds.valid {
		return next, StepResult{}
	}

	// Process only the active region + 1 margin
	minX := max(0, g.activeBounds.minX-1)
	maxX := min(g.width-1, g.activeBounds.maxX+1)
	minY := max(0, g.activeBounds.minY-1)
	maxY := min(g.height-1, g.activeBounds.maxY+1)

	res := g.stepRegion(next, minX, maxX, minY, maxY)
	next.calculateActiveBounds()
	return next, res
}

// NextGeneration calculates the next generation with the selected strategy.
// The receiver is never modified.
func (g *Grid) NextGeneration(bounded bool, pool *GridPool) (*Grid, StepResult) {
	if bounded {
		return g.NextGenerationBounded(pool)
	}
	return g.NextGenerationParallel(pool)
}

// StepGeneration derives a fresh grid one generation ahead of g
func StepGeneration(g *Grid) (*Grid, StepResult) {
	return g.NextGenerationParallel(nil)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].Alive() {
				count++
			}
		}
	}
	return
}

// CountOwned returns the number of cells held by the given owner
func (g *Grid) CountOwned(owner Owner) (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == owner {
				count++
			}
		}
	}
	return
}

// Randomize makes each cell independently alive as owner with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64, owner Owner) {
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				g.cells[y][x] = owner
			} else {
				g.cells[y][x] = Dead
			}
		}
	}
	g.activeBounds.valid = false
}
