package main

import (
	"context"
	"errors"
	"testing"

	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/stretchr/testify/assert"
)

type fakeLadderStore struct {
	season    entities.Ladder
	getErr    error
	conflicts int
	updates   int
}

func (f *fakeLadderStore) GetLadder(ctx context.Context, ladderId string) (entities.Ladder, error) {
	if f.getErr != nil {
		return entities.Ladder{}, f.getErr
	}
	return f.season, nil
}

func (f *fakeLadderStore) UpdateLadder(ctx context.Context, ladder entities.Ladder, expectedVersion int64) error {
	if f.conflicts > 0 {
		f.conflicts--
		f.season.Version++
		return storage.ErrLadderVersionConflict
	}
	f.season = ladder
	f.season.Version = expectedVersion + 1
	f.updates++
	return nil
}

func activeSeason(participants ...string) entities.Ladder {
	return entities.Ladder{
		LadderId:     "ladder-1",
		Name:         "Höstserien",
		Participants: participants,
		Status:       entities.LadderStatusActive,
		Version:      1,
	}
}

func TestJoinLadderAppendsParticipant(t *testing.T) {
	store := &fakeLadderStore{season: activeSeason("anna")}

	season, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.NoError(t, err)
	assert.Equal(t, []string{"anna", "bert"}, season.Participants)
	assert.Equal(t, []string{"anna", "bert"}, store.season.Participants)
	assert.Equal(t, 1, store.updates)
}

func TestJoinLadderIdempotent(t *testing.T) {
	store := &fakeLadderStore{season: activeSeason("anna", "bert")}

	season, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.NoError(t, err)
	assert.Equal(t, []string{"anna", "bert"}, season.Participants)
	assert.Zero(t, store.updates)
}

func TestJoinLadderRetriesOnConflict(t *testing.T) {
	store := &fakeLadderStore{season: activeSeason("anna"), conflicts: 1}

	season, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.NoError(t, err)
	assert.Contains(t, season.Participants, "bert")
	assert.Equal(t, 1, store.updates)
}

func TestJoinLadderContentionExhaustsRetries(t *testing.T) {
	store := &fakeLadderStore{season: activeSeason("anna"), conflicts: maxUpdateAttempts}

	season, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.ErrorIs(t, err, storage.ErrLadderVersionConflict)
	// Nothing was persisted, so no season may be reported back
	assert.Empty(t, season.Participants)
	assert.Zero(t, store.updates)
}

func TestJoinLadderArchivedSeason(t *testing.T) {
	store := &fakeLadderStore{season: entities.Ladder{
		LadderId: "ladder-1",
		Status:   entities.LadderStatusArchived,
	}}

	_, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.ErrorIs(t, err, errSeasonArchived)
}

func TestJoinLadderNotFound(t *testing.T) {
	store := &fakeLadderStore{getErr: storage.ErrLadderNotFound}

	_, err := joinLadder(context.Background(), store, "ladder-1", "bert")

	assert.True(t, errors.Is(err, storage.ErrLadderNotFound))
}
