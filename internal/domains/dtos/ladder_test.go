package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klubbhq/klubb/internal/ladder"
)

func TestStandingsResponseFromPlayers(t *testing.T) {
	players := []ladder.Player{
		{Id: "u2", Name: "Bo", Wins: 3, Losses: 1},
		{Id: "u1", Name: "Anna", Wins: 1, Losses: 2},
	}
	resp := StandingsResponseFromPlayers("l1", players)
	require.Len(t, resp.Players, 2)
	assert.Equal(t, "l1", resp.LadderId)
	assert.Equal(t, StandingsEntry{Rank: 1, Id: "u2", Name: "Bo", Wins: 3, Losses: 1, Record: "3–1"}, resp.Players[0])
	assert.Equal(t, 2, resp.Players[1].Rank)
}

func TestChallengeCreateRequestValidate(t *testing.T) {
	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	valid := ChallengeCreateRequest{
		LadderId:   "l1",
		OpponentId: "u2",
		Court:      "1",
		StartDate:  start,
		EndDate:    start.Add(time.Hour),
	}
	assert.NoError(t, valid.Validate())

	missingOpponent := valid
	missingOpponent.OpponentId = ""
	assert.Error(t, missingOpponent.Validate())

	badSlot := valid
	badSlot.EndDate = valid.StartDate
	assert.Error(t, badSlot.Validate())
}

func TestResultSubmitRequestValidate(t *testing.T) {
	assert.NoError(t, ResultSubmitRequest{BookingId: "b1", WinnerId: "u1"}.Validate())
	assert.Error(t, ResultSubmitRequest{WinnerId: "u1"}.Validate())
	assert.Error(t, ResultSubmitRequest{BookingId: "b1"}.Validate())
}
