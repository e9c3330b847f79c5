package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
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

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	notificationClient = notification.NewClient(cfg)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	var req dtos.ChallengeCreateRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}
	if err := req.Validate(); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: err.Error()}, nil
	}

	season, err := storageClient.GetLadder(ctx, req.LadderId)
	if err != nil {
		if errors.Is(err, storage.ErrLadderNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to create challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	if season.Status != entities.LadderStatusActive {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: "season is archived"}, nil
	}

	profiles, err := storageClient.FetchUserProfiles(ctx)
	if err != nil {
		logging.Error("Failed to create challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	players := ladder.OrderByRanking(
		ladder.BuildPlayers(ladder.UserRecordsFromProfiles(profiles), nil, season.Participants),
		season.Ranking,
	)
	status := ladder.GetChallengeStatus(players, userId, req.OpponentId)
	if !status.Eligible {
		statusJson, _ := json.Marshal(status)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: string(statusJson)}, nil
	}

	booking := entities.Booking{
		BookingId: uuid.NewString(),
		UserId:    userId,
		Court:     req.Court,
		Date:      req.StartDate.UTC().Format("2006-01-02"),
		StartDate: req.StartDate.UTC(),
		EndDate:   req.EndDate.UTC(),
		PlayerAId: userId,
		PlayerBId: req.OpponentId,
		LadderId:  season.LadderId,
		CreatedAt: time.Now().UTC(),
	}
	sameDay, err := storageClient.FetchBookingsByDate(ctx, booking.Date)
	if err != nil {
		logging.Error("Failed to create challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	for _, existing := range sameDay {
		if existing.Overlaps(booking.Court, booking.StartDate, booking.EndDate) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: "court already booked"}, nil
		}
	}
	if err := storageClient.PutBooking(ctx, booking); err != nil {
		logging.Error("Failed to create challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	if err := notificationClient.Broadcast(ctx, notification.ClubEvent{
		Type:      notification.EventBookingCreated,
		BookingId: booking.BookingId,
		LadderId:  season.LadderId,
	}); err != nil {
		logging.Warn("Failed to broadcast challenge", zap.Error(err))
	}

	match, _ := ladder.MatchFromBooking(booking)
	respJson, err := json.Marshal(dtos.MatchResponseFromMatch(match))
	if err != nil {
		logging.Error("Failed to create challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
