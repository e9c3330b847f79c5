package dtos

import (
	"errors"
	"sort"
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
)

type AnnouncementCreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (req AnnouncementCreateRequest) Validate() error {
	if req.Title == "" {
		return errors.New("title is required")
	}
	if req.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

type AnnouncementResponse struct {
	AnnouncementId string    `json:"announcementId"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

func AnnouncementResponseFromEntity(announcement entities.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementId: announcement.AnnouncementId,
		Title:          announcement.Title,
		Body:           announcement.Body,
		CreatedBy:      announcement.CreatedBy,
		CreatedAt:      announcement.CreatedAt,
	}
}

// Newest first.
func AnnouncementListResponseFromEntities(announcements []entities.Announcement) AnnouncementListResponse {
	resp := AnnouncementListResponse{
		Announcements: make([]AnnouncementResponse, 0, len(announcements)),
	}
	for _, announcement := range announcements {
		resp.Announcements = append(resp.Announcements, AnnouncementResponseFromEntity(announcement))
	}
	sort.Slice(resp.Announcements, func(i, j int) bool {
		return resp.Announcements[i].CreatedAt.After(resp.Announcements[j].CreatedAt)
	})
	return resp
}
