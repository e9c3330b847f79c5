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
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

const maxUpdateAttempts = 3

var errSeasonArchived = errors.New("season is archived")

type ladderStore interface {
	GetLadder(ctx context.Context, ladderId string) (entities.Ladder, error)
	UpdateLadder(ctx context.Context, ladder entities.Ladder, expectedVersion int64) error
}

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

	season, err := joinLadder(ctx, storageClient, ladderId, userId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrLadderNotFound):
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		case errors.Is(err, errSeasonArchived):
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict, Body: err.Error()}, nil
		case errors.Is(err, storage.ErrLadderVersionConflict):
			logging.Warn("Ladder update contention", zap.String("ladder_id", ladderId))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusConflict}, nil
		default:
			logging.Error("Failed to join ladder", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
	}

	respJson, err := json.Marshal(dtos.LadderResponseFromEntity(season))
	if err != nil {
		logging.Error("Failed to join ladder", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

// joinLadder adds the caller to the season's participants. The season
// returned is always one a conditional write persisted (or one the caller
// already belongs to); exhausted retries surface as ErrLadderVersionConflict
// so the handler never reports a join that was not written.
func joinLadder(ctx context.Context, store ladderStore, ladderId, userId string) (entities.Ladder, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		season, err := store.GetLadder(ctx, ladderId)
		if err != nil {
			return entities.Ladder{}, err
		}
		if season.Status != entities.LadderStatusActive {
			return entities.Ladder{}, errSeasonArchived
		}
		if contains(season.Participants, userId) {
			return season, nil
		}
		season.Participants = append(season.Participants, userId)
		err = store.UpdateLadder(ctx, season, season.Version)
		if err == nil {
			return season, nil
		}
		if !errors.Is(err, storage.ErrLadderVersionConflict) {
			return entities.Ladder{}, err
		}
	}
	return entities.Ladder{}, storage.ErrLadderVersionConflict
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func main() {
	lambda.Start(handler)
}
