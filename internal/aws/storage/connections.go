package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/klubbhq/klubb/internal/domains/entities"
)

func (client *Client) PutConnection(ctx context.Context, connection entities.Connection) error {
	av, err := attributevalue.MarshalMap(connection)
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}
	return nil
}

func (client *Client) DeleteConnection(ctx context.Context, connectionId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"ConnectionId": &types.AttributeValueMemberS{Value: connectionId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) FetchConnections(ctx context.Context) ([]entities.Connection, error) {
	output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
		TableName: client.cfg.ConnectionsTableName,
	})
	if err != nil {
		return nil, err
	}
	var connections []entities.Connection
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}
