package dtos

import (
	"testing"
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncementCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnnouncementCreateRequest
		wantErr bool
	}{
		{"valid", AnnouncementCreateRequest{Title: "Höstserien", Body: "Anmälan öppen"}, false},
		{"missing title", AnnouncementCreateRequest{Body: "Anmälan öppen"}, true},
		{"missing body", AnnouncementCreateRequest{Title: "Höstserien"}, true},
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

func TestAnnouncementListResponseNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	announcements := []entities.Announcement{
		{AnnouncementId: "a", CreatedAt: base},
		{AnnouncementId: "c", CreatedAt: base.Add(2 * time.Hour)},
		{AnnouncementId: "b", CreatedAt: base.Add(time.Hour)},
	}

	resp := AnnouncementListResponseFromEntities(announcements)

	ids := make([]string, 0, len(resp.Announcements))
	for _, a := range resp.Announcements {
		ids = append(ids, a.AnnouncementId)
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}
