package main

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"time"

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

var (
	storageClient     *storage.Client
	cognitoPublicKeys map[string]*rsa.PublicKey
	cognitoIssuer     string
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))

	region := os.Getenv("AWS_REGION")
	userPoolId := os.Getenv("COGNITO_USER_POOL_ID")
	cognitoIssuer = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, userPoolId)
	keys, err := auth.LoadCognitoPublicKeys(cognitoIssuer + "/.well-known/jwks.json")
	if err != nil {
		logging.Error("Failed to load cognito public keys", zap.Error(err))
		return
	}
	cognitoPublicKeys = keys
}

// The websocket handshake cannot carry an Authorization header from a
// browser, so the token rides in the query string.
func handler(ctx context.Context, event events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	token := event.QueryStringParameters["token"]
	userId, err := auth.ValidateToken(token, cognitoPublicKeys, cognitoIssuer)
	if err != nil {
		logging.Info("Rejected websocket connect", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized}, nil
	}

	connection := entities.Connection{
		ConnectionId: event.RequestContext.ConnectionID,
		UserId:       userId,
		ConnectedAt:  time.Now().UTC(),
	}
	if err := storageClient.PutConnection(ctx, connection); err != nil {
		logging.Error("Failed to register connection", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	lambda.Start(handler)
}
