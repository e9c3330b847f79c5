package server

import (
	"context"
	"fmt"
	"time"

	"github.com/klubbhq/klubb/internal/domains/dtos"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/internal/ladder"
)

const boardDateLayout = "2006-01-02"

// boardSnapshot is what a clubhouse display renders: the day's court
// schedule plus the current standings of every active ladder.
type boardSnapshot struct {
	Type      string                   `json:"type"`
	Date      string                   `json:"date"`
	Bookings  []dtos.BookingResponse   `json:"bookings"`
	Standings []dtos.StandingsResponse `json:"standings"`
	At        time.Time                `json:"at"`
}

func (s *server) buildSnapshot(ctx context.Context) (boardSnapshot, error) {
	date := time.Now().UTC().Format(boardDateLayout)

	bookings, err := s.storageClient.FetchBookingsByDate(ctx, date)
	if err != nil {
		return boardSnapshot{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	ladders, err := s.storageClient.FetchLadders(ctx)
	if err != nil {
		return boardSnapshot{}, fmt.Errorf("failed to fetch ladders: %w", err)
	}
	profiles, err := s.storageClient.FetchUserProfiles(ctx)
	if err != nil {
		return boardSnapshot{}, fmt.Errorf("failed to fetch user profiles: %w", err)
	}
	records := ladder.UserRecordsFromProfiles(profiles)

	snapshot := boardSnapshot{
		Type:     "board_state",
		Date:     date,
		Bookings: dtos.BookingListResponseFromEntities(bookings).Bookings,
		At:       time.Now().UTC(),
	}
	for _, season := range ladders {
		if season.Status != entities.LadderStatusActive {
			continue
		}
		players := ladder.OrderByRanking(
			ladder.BuildPlayers(records, nil, season.Participants),
			season.Ranking,
		)
		snapshot.Standings = append(
			snapshot.Standings,
			dtos.StandingsResponseFromPlayers(season.LadderId, players),
		)
	}
	return snapshot, nil
}
