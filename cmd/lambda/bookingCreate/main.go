package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/notification"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/dtos"
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

	var req dtos.BookingCreateRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}
	if err := req.Validate(); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: err.Error()}, nil
	}

	booking := dtos.BookingCreateRequestToEntity(req, userId)
	sameDay, err := storageClient.FetchBookingsByDate(ctx, booking.Date)
	if err != nil {
		logging.Error("Failed to check court availability", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	for _, existing := range sameDay {
		if existing.Overlaps(booking.Court, booking.StartDate, booking.EndDate) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: "court already booked"}, nil
		}
	}

	if err := storageClient.PutBooking(ctx, booking); err != nil {
		logging.Error("Failed to create booking", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	if err := notificationClient.Broadcast(ctx, notification.ClubEvent{
		Type:      notification.EventBookingCreated,
		BookingId: booking.BookingId,
	}); err != nil {
		logging.Warn("Failed to broadcast booking", zap.Error(err))
	}

	respJson, err := json.Marshal(dtos.BookingResponseFromEntity(booking))
	if err != nil {
		logging.Error("Failed to create booking", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
