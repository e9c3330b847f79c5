package ladder

import (
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
)

type MatchStatus string

const (
	MatchPlanned   MatchStatus = "planned"
	MatchCompleted MatchStatus = "completed"
)

// Match is one challenge/result cycle, normalized from its backing booking.
type Match struct {
	Id           string      `json:"id"`
	PlayerAId    string      `json:"playerAId"`
	PlayerBId    string      `json:"playerBId"`
	BookingId    string      `json:"bookingId,omitempty"`
	BookingStart time.Time   `json:"bookingStart,omitempty"`
	BookingEnd   time.Time   `json:"bookingEnd,omitempty"`
	Status       MatchStatus `json:"status"`
	WinnerId     string      `json:"winnerId,omitempty"`
	Comment      string      `json:"comment,omitempty"`
}

// MatchFromBooking projects a booking into a ladder match. ok is false when
// the booking carries no player pair, i.e. it is an ordinary court booking.
// A booking without an explicit ladder status is a planned match.
func MatchFromBooking(b entities.Booking) (Match, bool) {
	if b.PlayerAId == "" || b.PlayerBId == "" {
		return Match{}, false
	}
	status := MatchStatus(b.LadderStatus)
	if status == "" {
		status = MatchPlanned
	}
	return Match{
		Id:           b.BookingId,
		PlayerAId:    b.PlayerAId,
		PlayerBId:    b.PlayerBId,
		BookingId:    b.BookingId,
		BookingStart: b.StartDate,
		BookingEnd:   b.EndDate,
		Status:       status,
		WinnerId:     b.WinnerId,
		Comment:      b.Comment,
	}, true
}
