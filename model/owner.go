package model

// Owner is the value held by a single grid cell
type Owner uint8

const (
	Dead Owner = iota
	Player1
	Player2
)

// Players lists the two seats in registry order
var Players = [2]Owner{Player1, Player2}

func (o Owner) String() string {
	switch o {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "dead"
	}
}

// Alive reports whether the cell is owned by either player
func (o Owner) Alive() bool {
	return o == Player1 || o == Player2
}

// Opponent returns the other player, or Dead for a dead cell
func (o Owner) Opponent() Owner {
	switch o {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Dead
	}
}

// Index maps a player to its slot in per-player arrays. Dead maps to -1.
func (o Owner) Index() int {
	switch o {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		return -1
	}
}
