package dtos

import (
	"sort"
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/internal/ladder"
)

type MatchResponse struct {
	Id           string    `json:"id"`
	PlayerAId    string    `json:"playerAId"`
	PlayerBId    string    `json:"playerBId"`
	BookingId    string    `json:"bookingId,omitempty"`
	BookingStart time.Time `json:"bookingStart"`
	BookingEnd   time.Time `json:"bookingEnd"`
	Status       string    `json:"status"`
	WinnerId     string    `json:"winnerId,omitempty"`
	Comment      string    `json:"comment,omitempty"`
}

func MatchResponseFromMatch(m ladder.Match) MatchResponse {
	return MatchResponse{
		Id:           m.Id,
		PlayerAId:    m.PlayerAId,
		PlayerBId:    m.PlayerBId,
		BookingId:    m.BookingId,
		BookingStart: m.BookingStart,
		BookingEnd:   m.BookingEnd,
		Status:       string(m.Status),
		WinnerId:     m.WinnerId,
		Comment:      m.Comment,
	}
}

type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// MatchListResponseFromBookings projects the bookings that are ladder matches
// and lists them newest first.
func MatchListResponseFromBookings(bookings []entities.Booking) MatchListResponse {
	matches := make([]ladder.Match, 0, len(bookings))
	for _, b := range bookings {
		if m, ok := ladder.MatchFromBooking(b); ok {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].BookingStart.After(matches[j].BookingStart)
	})
	resp := MatchListResponse{Matches: make([]MatchResponse, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, MatchResponseFromMatch(m))
	}
	return resp
}
