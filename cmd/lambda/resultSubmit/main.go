package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/notification"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/dtos"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/internal/ladder"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var (
	storageClient      *storage.Client
	notificationClient *notification.Client
)

// Ranking writes are conditional on the season version read; on conflict the
// whole read-apply-write cycle reruns so a concurrent report is never
// double-counted.
const maxUpdateAttempts = 3

type resultStore interface {
	UpdateBookingResult(ctx context.Context, bookingId, winnerId, comment string) error
	GetLadder(ctx context.Context, ladderId string) (entities.Ladder, error)
	FetchUserProfiles(ctx context.Context) ([]entities.UserProfile, error)
	UpdateLadder(ctx context.Context, ladder entities.Ladder, expectedVersion int64) error
	UpdateUserStats(ctx context.Context, userId string, wins, losses int) error
}

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	notificationClient = notification.NewClient(cfg)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	var req dtos.ResultSubmitRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}
	if err := req.Validate(); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: err.Error()}, nil
	}

	booking, err := storageClient.GetBooking(ctx, req.BookingId)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to submit result", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	match, ok := ladder.MatchFromBooking(booking)
	if !ok || booking.LadderId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "booking is not a ladder match"}, nil
	}
	if match.Status == ladder.MatchCompleted {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: "result already reported"}, nil
	}
	if userId != match.PlayerAId && userId != match.PlayerBId {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusForbidden}, nil
	}
	if req.WinnerId != match.PlayerAId && req.WinnerId != match.PlayerBId {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "winner did not play this match"}, nil
	}
	loserId := match.PlayerAId
	if req.WinnerId == match.PlayerAId {
		loserId = match.PlayerBId
	}

	standings, err := applyResult(ctx, storageClient, booking, req.WinnerId, loserId, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookingAlreadyCompleted):
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: "result already reported"}, nil
		case errors.Is(err, storage.ErrLadderNotFound):
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		case errors.Is(err, storage.ErrLadderVersionConflict):
			logging.Warn("Ladder update contention", zap.String("ladder_id", booking.LadderId))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
		default:
			logging.Error("Failed to submit result", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
	}

	if err := notificationClient.Broadcast(ctx, notification.ClubEvent{
		Type:      notification.EventResultReported,
		BookingId: booking.BookingId,
		LadderId:  booking.LadderId,
	}); err != nil {
		logging.Warn("Failed to broadcast result", zap.Error(err))
	}

	respJson, err := json.Marshal(dtos.StandingsResponseFromPlayers(booking.LadderId, standings))
	if err != nil {
		logging.Error("Failed to submit result", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

// applyResult claims the booking first: the conditional completion write is
// what makes result reporting idempotent per match, so it has to win before
// any ranking write happens. A concurrent report of the same booking fails
// the claim and never touches the ranking.
func applyResult(ctx context.Context, store resultStore, booking entities.Booking, winnerId, loserId, comment string) ([]ladder.Player, error) {
	if err := store.UpdateBookingResult(ctx, booking.BookingId, winnerId, comment); err != nil {
		return nil, err
	}

	var standings []ladder.Player
	for attempt := 0; ; attempt++ {
		season, err := store.GetLadder(ctx, booking.LadderId)
		if err != nil {
			return nil, err
		}
		profiles, err := store.FetchUserProfiles(ctx)
		if err != nil {
			return nil, err
		}
		players := ladder.OrderByRanking(
			ladder.BuildPlayers(ladder.UserRecordsFromProfiles(profiles), nil, season.Participants),
			season.Ranking,
		)
		standings = ladder.ApplyResultWithStats(players, winnerId, loserId)

		season.Ranking = ladder.Ids(standings)
		err = store.UpdateLadder(ctx, season, season.Version)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrLadderVersionConflict) {
			return nil, err
		}
		if attempt+1 >= maxUpdateAttempts {
			return nil, err
		}
	}

	for _, p := range standings {
		if p.Id == winnerId || p.Id == loserId {
			if err := store.UpdateUserStats(ctx, p.Id, p.Wins, p.Losses); err != nil {
				logging.Error("Failed to persist player stats", zap.Error(err), zap.String("user_id", p.Id))
			}
		}
	}
	return standings, nil
}

func main() {
	lambda.Start(handler)
}
