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
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/ladder"
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
	ladderId := event.PathParameters["id"]
	opponentId := event.QueryStringParameters["opponentId"]
	if ladderId == "" || opponentId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	season, err := storageClient.GetLadder(ctx, ladderId)
	if err != nil {
		if errors.Is(err, storage.ErrLadderNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to check challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	profiles, err := storageClient.FetchUserProfiles(ctx)
	if err != nil {
		logging.Error("Failed to check challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	players := ladder.OrderByRanking(
		ladder.BuildPlayers(ladder.UserRecordsFromProfiles(profiles), nil, season.Participants),
		season.Ranking,
	)

	status := ladder.GetChallengeStatus(players, userId, opponentId)
	statusJson, err := json.Marshal(status)
	if err != nil {
		logging.Error("Failed to check challenge", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(statusJson)}, nil
}

func main() {
	lambda.Start(handler)
}
