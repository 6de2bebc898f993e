package ui

import (
	"fmt"

	"github.com/mashazatsepina/GameOfLife/match"
)

// Banner returns the end-of-match text, or "" while the match is undecided
func Banner(st match.Status, players match.Players) string {
	if st.Result == nil {
		return ""
	}
	if st.Result.IsDraw() {
		return "Draw"
	}
	return "Winner: " + players.Name(st.Result.Winner)
}

// StatusLines renders the HUD text for the current status
func StatusLines(st match.Status, players match.Players) []string {
	if st.Mode == match.ModeClassic {
		lines := []string{
			fmt.Sprintf("Classic - %s", st.Phase),
			fmt.Sprintf("Generation: %d", st.Generation),
			fmt.Sprintf("Alive: %d", st.Alive[0]+st.Alive[1]),
		}
		if st.StopReason != match.ReasonNone {
			lines = append(lines, fmt.Sprintf("Stopped: %s", st.StopReason))
		}
		return append(lines, fmt.Sprintf("Step: %v", st.StepInterval))
	}

	p1, p2 := players.Name(players[0].Owner), players.Name(players[1].Owner)
	lines := []string{st.Phase.String()}
	if st.Phase == match.PhaseSetup {
		lines = append(lines,
			fmt.Sprintf("Turn: %s", players.Name(st.CurrentPlayer)),
			"Tokens:",
			fmt.Sprintf("  %s=%d", p1, st.Remaining[0]),
			fmt.Sprintf("  %s=%d", p2, st.Remaining[1]),
		)
	}
	lines = append(lines,
		"Score:",
		fmt.Sprintf("  %s=%d", p1, st.Score[0]),
		fmt.Sprintf("  %s=%d", p2, st.Score[1]),
		fmt.Sprintf("Generation: %d", st.Generation),
		fmt.Sprintf("Step: %v", st.StepInterval),
	)
	if banner := Banner(st, players); banner != "" {
		lines = append(lines, "", banner, fmt.Sprintf("(%s)", st.Result.Reason))
	}
	return lines
}
