package entities

import "time"

// Booking is one reserved court slot. The Player/Ladder fields are only set
// when the slot was booked for a ladder match; an ordinary booking leaves
// them empty.
type Booking struct {
	BookingId    string    `dynamodbav:"BookingId"`
	UserId       string    `dynamodbav:"UserId"`
	Court        string    `dynamodbav:"Court"`
	Date         string    `dynamodbav:"Date"`
	StartDate    time.Time `dynamodbav:"StartDate"`
	EndDate      time.Time `dynamodbav:"EndDate"`
	PlayerAId    string    `dynamodbav:"PlayerAId,omitempty"`
	PlayerBId    string    `dynamodbav:"PlayerBId,omitempty"`
	LadderId     string    `dynamodbav:"LadderId,omitempty"`
	LadderStatus string    `dynamodbav:"LadderStatus,omitempty"`
	WinnerId     string    `dynamodbav:"WinnerId,omitempty"`
	Comment      string    `dynamodbav:"Comment,omitempty"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
}

// Overlaps reports whether a new slot collides with this booking on the same
// court. Touching end points do not collide.
func (b Booking) Overlaps(court string, start, end time.Time) bool {
	if b.Court != court {
		return false
	}
	return start.Before(b.EndDate) && b.StartDate.Before(end)
}
