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
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

const maxUpdateAttempts = 3

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)
	ladderId := event.PathParameters["id"]
	if ladderId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		season, err := storageClient.GetLadder(ctx, ladderId)
		if err != nil {
			if errors.Is(err, storage.ErrLadderNotFound) {
				return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
			}
			logging.Error("Failed to archive ladder", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
		if season.CreatedBy != userId {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusForbidden}, nil
		}
		if season.Status == entities.LadderStatusArchived {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
		}
		season.Status = entities.LadderStatusArchived
		err = storageClient.UpdateLadder(ctx, season, season.Version)
		if err == nil {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
		}
		if !errors.Is(err, storage.ErrLadderVersionConflict) {
			logging.Error("Failed to archive ladder", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
}

func main() {
	lambda.Start(handler)
}
