package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine whether a cell is alive in the next generation.

Conway's Game of Life rules: (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// IsBirth reports whether a dead cell comes alive with the given neighbor total
func IsBirth(neighbors int) bool {
	return ApplyConwayRules(neighbors, false)
}

// Survives reports whether a live cell keeps its owner with the given neighbor total
func Survives(neighbors int) bool {
	return ApplyConwayRules(neighbors, true)
}

/*
FirstOwnsBirth decides the owner of a newborn cell from the per-player counts
among its alive neighbors. The first player takes the cell only with a strict
majority; equal counts go to the second player.

With exactly three alive neighbors split between two players the counts can never
be equal, so the tie branch is unreachable through StepGeneration. It is kept so the
rule stays total for any input.
*/
func FirstOwnsBirth(countFirst, countSecond int) bool {
	return countFirst > countSecond
}
