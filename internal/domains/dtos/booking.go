package dtos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klubbhq/klubb/internal/domains/entities"
)

const bookingDateLayout = "2006-01-02"

type BookingCreateRequest struct {
	Court     string    `json:"court"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

func (r BookingCreateRequest) Validate() error {
	if r.Court == "" {
		return fmt.Errorf("missing court")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("missing start or end time")
	}
	if !r.StartDate.Before(r.EndDate) {
		return fmt.Errorf("start time must be before end time")
	}
	return nil
}

func BookingCreateRequestToEntity(r BookingCreateRequest, userId string) entities.Booking {
	return entities.Booking{
		BookingId: uuid.NewString(),
		UserId:    userId,
		Court:     r.Court,
		Date:      r.StartDate.UTC().Format(bookingDateLayout),
		StartDate: r.StartDate.UTC(),
		EndDate:   r.EndDate.UTC(),
		CreatedAt: time.Now().UTC(),
	}
}

type BookingResponse struct {
	Id           string    `json:"id"`
	UserId       string    `json:"userId"`
	Court        string    `json:"court"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	PlayerAId    string    `json:"playerAId,omitempty"`
	PlayerBId    string    `json:"playerBId,omitempty"`
	LadderId     string    `json:"ladderId,omitempty"`
	LadderStatus string    `json:"ladderStatus,omitempty"`
	WinnerId     string    `json:"winnerId,omitempty"`
	Comment      string    `json:"comment,omitempty"`
}

func BookingResponseFromEntity(b entities.Booking) BookingResponse {
	return BookingResponse{
		Id:           b.BookingId,
		UserId:       b.UserId,
		Court:        b.Court,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		PlayerAId:    b.PlayerAId,
		PlayerBId:    b.PlayerBId,
		LadderId:     b.LadderId,
		LadderStatus: b.LadderStatus,
		WinnerId:     b.WinnerId,
		Comment:      b.Comment,
	}
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func BookingListResponseFromEntities(bookings []entities.Booking) BookingListResponse {
	resp := BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingResponseFromEntity(b))
	}
	return resp
}
