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
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/dtos"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	auth.MustAuth(event.RequestContext.Authorizer)

	announcements, err := storageClient.FetchAnnouncements(ctx)
	if err != nil {
		logging.Error("Failed to list announcements", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	respJson, err := json.Marshal(dtos.AnnouncementListResponseFromEntities(announcements))
	if err != nil {
		logging.Error("Failed to list announcements", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
