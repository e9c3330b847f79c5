package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)
	announcementId := event.PathParameters["id"]
	if announcementId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	announcements, err := storageClient.FetchAnnouncements(ctx)
	if err != nil {
		logging.Error("Failed to delete announcement", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	found := false
	for _, announcement := range announcements {
		if announcement.AnnouncementId == announcementId {
			found = true
			if announcement.CreatedBy != userId {
				return events.APIGatewayProxyResponse{StatusCode: http.StatusForbidden}, nil
			}
			break
		}
	}
	if !found {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
	}

	if err := storageClient.DeleteAnnouncement(ctx, announcementId); err != nil {
		logging.Error("Failed to delete announcement", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
}

func main() {
	lambda.Start(handler)
}
