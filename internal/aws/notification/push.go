package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// ErrConnectionGone marks a websocket connection that has closed since it was
// registered. Callers drop the connection record.
var ErrConnectionGone = fmt.Errorf("connection gone")

func (client *Client) PushToConnection(ctx context.Context, connectionId string, data []byte) error {
	_, err := client.apiGateway.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionId),
		Data:         data,
	})
	if err != nil {
		var gone *types.GoneException
		if errors.As(err, &gone) {
			return ErrConnectionGone
		}
		return fmt.Errorf("failed to post to connection: %w", err)
	}
	return nil
}
