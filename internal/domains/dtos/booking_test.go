package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klubbhq/klubb/internal/domains/entities"
)

func TestBookingCreateRequestValidate(t *testing.T) {
	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     BookingCreateRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  BookingCreateRequest{Court: "1", StartDate: start, EndDate: start.Add(time.Hour)},
		},
		{
			name:    "missing court",
			req:     BookingCreateRequest{StartDate: start, EndDate: start.Add(time.Hour)},
			wantErr: true,
		},
		{
			name:    "missing times",
			req:     BookingCreateRequest{Court: "1"},
			wantErr: true,
		},
		{
			name:    "end before start",
			req:     BookingCreateRequest{Court: "1", StartDate: start, EndDate: start.Add(-time.Hour)},
			wantErr: true,
		},
		{
			name:    "zero length slot",
			req:     BookingCreateRequest{Court: "1", StartDate: start, EndDate: start},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingCreateRequestToEntity(t *testing.T) {
	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	req := BookingCreateRequest{Court: "2", StartDate: start, EndDate: start.Add(time.Hour)}
	b := BookingCreateRequestToEntity(req, "u1")

	require.NotEmpty(t, b.BookingId)
	assert.Equal(t, "u1", b.UserId)
	assert.Equal(t, "2", b.Court)
	assert.Equal(t, "2026-05-02", b.Date)
	assert.Equal(t, start, b.StartDate)
	assert.Empty(t, b.PlayerAId)
	assert.Empty(t, b.LadderStatus)
}

func TestBookingOverlaps(t *testing.T) {
	start := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	existing := entities.Booking{
		Court:     "1",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}

	assert.True(t, existing.Overlaps("1", start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.True(t, existing.Overlaps("1", start.Add(-30*time.Minute), start.Add(30*time.Minute)))
	assert.False(t, existing.Overlaps("2", start, start.Add(time.Hour)))
	// Back-to-back slots are fine.
	assert.False(t, existing.Overlaps("1", start.Add(time.Hour), start.Add(2*time.Hour)))
	assert.False(t, existing.Overlaps("1", start.Add(-time.Hour), start))
}
