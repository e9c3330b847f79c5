package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/notification"
	"github.com/klubbhq/klubb/internal/aws/storage"
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
	bookingId := event.PathParameters["id"]
	if bookingId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	booking, err := storageClient.GetBooking(ctx, bookingId)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to cancel booking", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	// Only the booking owner or one of the match players may cancel
	if booking.UserId != userId && booking.PlayerAId != userId && booking.PlayerBId != userId {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusForbidden}, nil
	}

	if err := storageClient.DeleteBooking(ctx, bookingId); err != nil {
		logging.Error("Failed to cancel booking", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	if err := notificationClient.Broadcast(ctx, notification.ClubEvent{
		Type:      notification.EventBookingCancelled,
		BookingId: bookingId,
	}); err != nil {
		logging.Warn("Failed to broadcast cancellation", zap.Error(err))
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
}

func main() {
	lambda.Start(handler)
}
