package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/klubbhq/klubb/internal/aws/auth"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/dtos"
	"github.com/klubbhq/klubb/internal/domains/entities"
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

	var req dtos.AnnouncementCreateRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}
	if err := req.Validate(); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: err.Error()}, nil
	}

	announcement := entities.Announcement{
		AnnouncementId: uuid.NewString(),
		Title:          req.Title,
		Body:           req.Body,
		CreatedBy:      userId,
		CreatedAt:      time.Now().UTC(),
	}
	if err := storageClient.PutAnnouncement(ctx, announcement); err != nil {
		logging.Error("Failed to create announcement", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	respJson, err := json.Marshal(dtos.AnnouncementResponseFromEntity(announcement))
	if err != nil {
		logging.Error("Failed to create announcement", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
