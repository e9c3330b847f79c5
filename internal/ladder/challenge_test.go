package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLadder(ids ...string) []Player {
	players := make([]Player, len(ids))
	for i, id := range ids {
		players[i] = Player{Id: id, Name: id}
	}
	return players
}

func TestGetChallengeStatus(t *testing.T) {
	six := testLadder("p1", "p2", "p3", "p4", "p5", "p6")

	tests := []struct {
		name       string
		players    []Player
		challenger string
		opponent   string
		want       ChallengeStatus
	}{
		{
			name:       "within window",
			players:    six,
			challenger: "p6",
			opponent:   "p3",
			want:       ChallengeStatus{Eligible: true},
		},
		{
			name:       "exactly at window edge",
			players:    six,
			challenger: "p6",
			opponent:   "p2",
			want:       ChallengeStatus{Eligible: true},
		},
		{
			name:       "one rank up",
			players:    six,
			challenger: "p2",
			opponent:   "p1",
			want:       ChallengeStatus{Eligible: true},
		},
		{
			name:       "too far above",
			players:    six,
			challenger: "p6",
			opponent:   "p1",
			want:       ChallengeStatus{Reason: ReasonTooFar},
		},
		{
			name:       "downward challenge",
			players:    six,
			challenger: "p2",
			opponent:   "p5",
			want:       ChallengeStatus{Reason: ReasonLowerRanked},
		},
		{
			name:       "self challenge",
			players:    six,
			challenger: "p3",
			opponent:   "p3",
			want:       ChallengeStatus{Reason: ReasonSelf},
		},
		{
			name:       "self challenge on empty ladder",
			players:    nil,
			challenger: "p1",
			opponent:   "p1",
			want:       ChallengeStatus{Reason: ReasonSelf},
		},
		{
			name:       "challenger missing",
			players:    six,
			challenger: "ghost",
			opponent:   "p1",
			want:       ChallengeStatus{Reason: ReasonMissing},
		},
		{
			name:       "opponent missing",
			players:    six,
			challenger: "p1",
			opponent:   "ghost",
			want:       ChallengeStatus{Reason: ReasonMissing},
		},
		{
			name:       "empty ladder",
			players:    nil,
			challenger: "p1",
			opponent:   "p2",
			want:       ChallengeStatus{Reason: ReasonMissing},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetChallengeStatus(tt.players, tt.challenger, tt.opponent))
		})
	}
}

func TestGetChallengeStatusEligibleImpliesWindow(t *testing.T) {
	players := testLadder("p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8")
	for ci, c := range players {
		for oi, o := range players {
			status := GetChallengeStatus(players, c.Id, o.Id)
			diff := ci - oi
			wantEligible := diff >= 1 && diff <= MaxChallengeDistance
			assert.Equal(t, wantEligible, status.Eligible, "challenger %s opponent %s", c.Id, o.Id)
		}
	}
}
