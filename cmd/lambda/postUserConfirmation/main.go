package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/klubbhq/klubb/internal/aws/storage"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

type profileStore interface {
	PutUserProfile(ctx context.Context, profile entities.UserProfile) error
}

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	return handleConfirmation(ctx, storageClient, event)
}

// Returning the error lets Cognito retry the trigger.
func handleConfirmation(ctx context.Context, store profileStore, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	profile := entities.UserProfile{
		UserId:      event.Request.UserAttributes["sub"],
		Email:       event.Request.UserAttributes["email"],
		DisplayName: event.Request.UserAttributes["name"],
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.PutUserProfile(ctx, profile); err != nil {
		logging.Error("Failed to save user profile", zap.Error(err))
		return event, err
	}
	return event, nil
}

func main() {
	lambda.Start(handler)
}
