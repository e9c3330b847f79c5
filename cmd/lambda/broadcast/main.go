package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
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

// Fans a club event out to every live board connection. Connections that
// have gone away since they registered are pruned as a side effect.
func handler(ctx context.Context, event notification.ClubEvent) error {
	connections, err := storageClient.FetchConnections(ctx)
	if err != nil {
		logging.Error("Failed to fetch connections", zap.Error(err))
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		logging.Error("Failed to marshal club event", zap.Error(err))
		return err
	}

	for _, connection := range connections {
		err := notificationClient.PushToConnection(ctx, connection.ConnectionId, data)
		if err == nil {
			continue
		}
		if errors.Is(err, notification.ErrConnectionGone) {
			if err := storageClient.DeleteConnection(ctx, connection.ConnectionId); err != nil {
				logging.Warn("Failed to prune connection",
					zap.String("connection_id", connection.ConnectionId),
					zap.Error(err),
				)
			}
			continue
		}
		logging.Warn("Failed to push club event",
			zap.String("connection_id", connection.ConnectionId),
			zap.Error(err),
		)
	}
	return nil
}

func main() {
	lambda.Start(handler)
}
