package notification

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type Client struct {
	apiGateway *apigatewaymanagementapi.Client
	lambda     *lambda.Client
	cfg        config
}

type config struct {
	BroadcastFunctionName string
}

func NewClient(awsCfg aws.Config) *Client {
	apiEndpoint := fmt.Sprintf(
		"https://%s.execute-api.%s.amazonaws.com/Prod",
		os.Getenv("AWS_WEBSOCKET_API_ID"),
		os.Getenv("AWS_REGION"),
	)
	return &Client{
		apiGateway: apigatewaymanagementapi.New(apigatewaymanagementapi.Options{
			BaseEndpoint: aws.String(apiEndpoint),
			Region:       os.Getenv("AWS_REGION"),
			Credentials:  awsCfg.Credentials,
		}),
		lambda: lambda.NewFromConfig(awsCfg),
		cfg:    loadConfig(),
	}
}

func loadConfig() config {
	return config{
		BroadcastFunctionName: os.Getenv("BROADCAST_FUNCTION_NAME"),
	}
}
