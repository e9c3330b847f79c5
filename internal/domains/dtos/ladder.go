package dtos

import (
	"fmt"
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/internal/ladder"
)

type LadderCreateRequest struct {
	Name string `json:"name"`
}

func (r LadderCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("missing ladder name")
	}
	return nil
}

type LadderResponse struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Participants []string  `json:"participants"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func LadderResponseFromEntity(l entities.Ladder) LadderResponse {
	return LadderResponse{
		Id:           l.LadderId,
		Name:         l.Name,
		Participants: l.Participants,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
}

type LadderListResponse struct {
	Ladders []LadderResponse `json:"ladders"`
}

func LadderListResponseFromEntities(ladders []entities.Ladder) LadderListResponse {
	resp := LadderListResponse{Ladders: make([]LadderResponse, 0, len(ladders))}
	for _, l := range ladders {
		resp.Ladders = append(resp.Ladders, LadderResponseFromEntity(l))
	}
	return resp
}

type StandingsEntry struct {
	Rank   int    `json:"rank"`
	Id     string `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Record string `json:"record"`
}

type StandingsResponse struct {
	LadderId string           `json:"ladderId"`
	Players  []StandingsEntry `json:"players"`
}

func StandingsResponseFromPlayers(ladderId string, players []ladder.Player) StandingsResponse {
	resp := StandingsResponse{
		LadderId: ladderId,
		Players:  make([]StandingsEntry, 0, len(players)),
	}
	for i, p := range players {
		resp.Players = append(resp.Players, StandingsEntry{
			Rank:   i + 1,
			Id:     p.Id,
			Name:   p.Name,
			Wins:   p.Wins,
			Losses: p.Losses,
			Record: ladder.FormatStats(p),
		})
	}
	return resp
}

type ChallengeCreateRequest struct {
	LadderId   string    `json:"ladderId"`
	OpponentId string    `json:"opponentId"`
	Court      string    `json:"court"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

func (r ChallengeCreateRequest) Validate() error {
	if r.LadderId == "" {
		return fmt.Errorf("missing ladder id")
	}
	if r.OpponentId == "" {
		return fmt.Errorf("missing opponent id")
	}
	return BookingCreateRequest{Court: r.Court, StartDate: r.StartDate, EndDate: r.EndDate}.Validate()
}

type ResultSubmitRequest struct {
	BookingId string `json:"bookingId"`
	WinnerId  string `json:"winnerId"`
	Comment   string `json:"comment,omitempty"`
}

func (r ResultSubmitRequest) Validate() error {
	if r.BookingId == "" {
		return fmt.Errorf("missing booking id")
	}
	if r.WinnerId == "" {
		return fmt.Errorf("missing winner id")
	}
	return nil
}
