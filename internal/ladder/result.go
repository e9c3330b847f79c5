package ladder

import (
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

// ApplyResult reorders the ladder after a reported result without touching
// stats. A winner ranked below the loser moves up to the loser's former
// position; everyone from the loser down shifts one step. A winner already
// ranked above the loser stays put. Unknown or identical ids are a no-op.
func ApplyResult(players []Player, winnerId, loserId string) []Player {
	winnerIndex := indexOf(players, winnerId)
	loserIndex := indexOf(players, loserId)
	if winnerIndex < 0 || loserIndex < 0 || winnerIndex == loserIndex {
		return players
	}
	if winnerIndex < loserIndex {
		return players
	}
	return promote(players, winnerIndex, loserIndex)
}

// UpdateStats increments the winner's wins and the loser's losses without
// reordering. Degenerate input returns the ladder unchanged.
func UpdateStats(players []Player, winnerId, loserId string) []Player {
	if winnerId == loserId {
		logging.Warn("ladder result names the same player as winner and loser",
			zap.String("player_id", winnerId))
		return players
	}
	winnerIndex := indexOf(players, winnerId)
	loserIndex := indexOf(players, loserId)
	if winnerIndex < 0 || loserIndex < 0 {
		return players
	}
	next := make([]Player, len(players))
	copy(next, players)
	next[winnerIndex].Wins++
	next[loserIndex].Losses++
	return next
}

// ApplyResultWithStats is the live reporting path: stats always update for a
// valid result, position only changes when the winner was ranked below the
// loser.
func ApplyResultWithStats(players []Player, winnerId, loserId string) []Player {
	if winnerId == loserId {
		logging.Warn("ladder result names the same player as winner and loser",
			zap.String("player_id", winnerId))
		return players
	}
	winnerIndex := indexOf(players, winnerId)
	loserIndex := indexOf(players, loserId)
	if winnerIndex < 0 || loserIndex < 0 || winnerIndex == loserIndex {
		return players
	}
	next := make([]Player, len(players))
	copy(next, players)
	next[winnerIndex].Wins++
	next[loserIndex].Losses++
	if winnerIndex < loserIndex {
		return next
	}
	return promote(next, winnerIndex, loserIndex)
}

// promote moves players[winnerIndex] to loserIndex, shifting the loser and
// everyone between down one. Callers guarantee loserIndex < winnerIndex.
func promote(players []Player, winnerIndex, loserIndex int) []Player {
	next := make([]Player, 0, len(players))
	winner := players[winnerIndex]
	for i, p := range players {
		if i == winnerIndex {
			continue
		}
		if i == loserIndex {
			next = append(next, winner)
		}
		next = append(next, p)
	}
	return next
}
