package ladder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klubbhq/klubb/internal/domains/entities"
)

func TestMatchFromBooking(t *testing.T) {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("plain booking is not a match", func(t *testing.T) {
		_, ok := MatchFromBooking(entities.Booking{BookingId: "b1", StartDate: start, EndDate: end})
		assert.False(t, ok)
	})

	t.Run("one player is not enough", func(t *testing.T) {
		_, ok := MatchFromBooking(entities.Booking{BookingId: "b1", PlayerAId: "x"})
		assert.False(t, ok)
		_, ok = MatchFromBooking(entities.Booking{BookingId: "b1", PlayerBId: "y"})
		assert.False(t, ok)
	})

	t.Run("status defaults to planned", func(t *testing.T) {
		m, ok := MatchFromBooking(entities.Booking{
			BookingId: "b1",
			PlayerAId: "x",
			PlayerBId: "y",
			StartDate: start,
			EndDate:   end,
		})
		require.True(t, ok)
		assert.Equal(t, Match{
			Id:           "b1",
			PlayerAId:    "x",
			PlayerBId:    "y",
			BookingId:    "b1",
			BookingStart: start,
			BookingEnd:   end,
			Status:       MatchPlanned,
		}, m)
	})

	t.Run("completed match copies result fields", func(t *testing.T) {
		m, ok := MatchFromBooking(entities.Booking{
			BookingId:    "b2",
			PlayerAId:    "x",
			PlayerBId:    "y",
			LadderStatus: "completed",
			WinnerId:     "y",
			Comment:      "3–1 i set",
		})
		require.True(t, ok)
		assert.Equal(t, MatchCompleted, m.Status)
		assert.Equal(t, "y", m.WinnerId)
		assert.Equal(t, "3–1 i set", m.Comment)
	})
}
