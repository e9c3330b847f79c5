package main

import (
	"context"
	"testing"

	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/internal/ladder"
	"github.com/klubbhq/klubb/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logging.SetLogger(zap.NewNop())
	m.Run()
}

type fakeResultStore struct {
	booking   entities.Booking
	season    entities.Ladder
	profiles  []entities.UserProfile
	stats     map[string][2]int
	conflicts int

	claims  int
	updates int
}

func (f *fakeResultStore) UpdateBookingResult(ctx context.Context, bookingId, winnerId, comment string) error {
	if f.booking.LadderStatus == "completed" {
		return storage.ErrBookingAlreadyCompleted
	}
	f.booking.LadderStatus = "completed"
	f.booking.WinnerId = winnerId
	f.claims++
	return nil
}

func (f *fakeResultStore) GetLadder(ctx context.Context, ladderId string) (entities.Ladder, error) {
	return f.season, nil
}

func (f *fakeResultStore) FetchUserProfiles(ctx context.Context) ([]entities.UserProfile, error) {
	return f.profiles, nil
}

func (f *fakeResultStore) UpdateLadder(ctx context.Context, season entities.Ladder, expectedVersion int64) error {
	if f.conflicts > 0 {
		f.conflicts--
		f.season.Version++
		return storage.ErrLadderVersionConflict
	}
	f.season = season
	f.season.Version = expectedVersion + 1
	f.updates++
	return nil
}

func (f *fakeResultStore) UpdateUserStats(ctx context.Context, userId string, wins, losses int) error {
	if f.stats == nil {
		f.stats = make(map[string][2]int)
	}
	f.stats[userId] = [2]int{wins, losses}
	return nil
}

func ladderFixture() *fakeResultStore {
	return &fakeResultStore{
		booking: entities.Booking{
			BookingId: "booking-1",
			LadderId:  "ladder-1",
			PlayerAId: "user-e",
			PlayerBId: "user-b",
		},
		season: entities.Ladder{
			LadderId:     "ladder-1",
			Participants: []string{"user-a", "user-b", "user-c", "user-d", "user-e"},
			Ranking:      []string{"user-a", "user-b", "user-c", "user-d", "user-e"},
			Status:       entities.LadderStatusActive,
			Version:      1,
		},
		profiles: []entities.UserProfile{
			{UserId: "user-a", DisplayName: "Anna"},
			{UserId: "user-b", DisplayName: "Bert"},
			{UserId: "user-c", DisplayName: "Cecilia"},
			{UserId: "user-d", DisplayName: "David"},
			{UserId: "user-e", DisplayName: "Elsa"},
		},
	}
}

func TestApplyResultPromotesWinnerAndPersists(t *testing.T) {
	store := ladderFixture()

	standings, err := applyResult(context.Background(), store, store.booking, "user-e", "user-b", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"user-a", "user-e", "user-b", "user-c", "user-d"}, ladder.Ids(standings))
	assert.Equal(t, ladder.Ids(standings), store.season.Ranking)
	assert.Equal(t, "completed", store.booking.LadderStatus)
	assert.Equal(t, "user-e", store.booking.WinnerId)
	assert.Equal(t, [2]int{1, 0}, store.stats["user-e"])
	assert.Equal(t, [2]int{0, 1}, store.stats["user-b"])
}

func TestApplyResultSecondReportRejected(t *testing.T) {
	store := ladderFixture()

	_, err := applyResult(context.Background(), store, store.booking, "user-e", "user-b", "")
	require.NoError(t, err)
	rankingAfterFirst := store.season.Ranking

	_, err = applyResult(context.Background(), store, store.booking, "user-b", "user-e", "")

	assert.ErrorIs(t, err, storage.ErrBookingAlreadyCompleted)
	// The losing report never reached the ranking
	assert.Equal(t, rankingAfterFirst, store.season.Ranking)
	assert.Equal(t, 1, store.claims)
	assert.Equal(t, 1, store.updates)
}

func TestApplyResultRetriesOnVersionConflict(t *testing.T) {
	store := ladderFixture()
	store.conflicts = 1

	standings, err := applyResult(context.Background(), store, store.booking, "user-e", "user-b", "")

	require.NoError(t, err)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, ladder.Ids(standings), store.season.Ranking)
}

func TestApplyResultContentionExhaustsRetries(t *testing.T) {
	store := ladderFixture()
	store.conflicts = maxUpdateAttempts

	_, err := applyResult(context.Background(), store, store.booking, "user-e", "user-b", "")

	assert.ErrorIs(t, err, storage.ErrLadderVersionConflict)
	assert.Zero(t, store.updates)
	// No stats may be written when the ranking write never landed
	assert.Empty(t, store.stats)
}
