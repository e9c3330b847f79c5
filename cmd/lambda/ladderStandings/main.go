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
	"github.com/klubbhq/klubb/internal/domains/dtos"
	"github.com/klubbhq/klubb/internal/domains/entities"
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
	identity := auth.MustIdentity(event.RequestContext.Authorizer)
	ladderId := event.PathParameters["id"]
	if ladderId == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	season, err := storageClient.GetLadder(ctx, ladderId)
	if err != nil {
		if errors.Is(err, storage.ErrLadderNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to get standings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	players, err := loadStandings(ctx, season, &ladder.SessionUser{
		Id:          identity.UserId,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
	})
	if err != nil {
		logging.Error("Failed to get standings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	respJson, err := json.Marshal(dtos.StandingsResponseFromPlayers(ladderId, players))
	if err != nil {
		logging.Error("Failed to get standings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

func loadStandings(ctx context.Context, season entities.Ladder, current *ladder.SessionUser) ([]ladder.Player, error) {
	profiles, err := storageClient.FetchUserProfiles(ctx)
	if err != nil {
		return nil, err
	}
	players := ladder.BuildPlayers(ladder.UserRecordsFromProfiles(profiles), current, season.Participants)
	return ladder.OrderByRanking(players, season.Ranking), nil
}

func main() {
	lambda.Start(handler)
}
