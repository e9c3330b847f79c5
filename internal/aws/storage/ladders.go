package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/klubbhq/klubb/internal/domains/entities"
)

var (
	ErrLadderNotFound        = fmt.Errorf("ladder not found")
	ErrLadderVersionConflict = fmt.Errorf("ladder version conflict")
)

func (client *Client) GetLadder(ctx context.Context, ladderId string) (entities.Ladder, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.LaddersTableName,
		Key: map[string]types.AttributeValue{
			"LadderId": &types.AttributeValueMemberS{
				Value: ladderId,
			},
		},
	})
	if err != nil {
		return entities.Ladder{}, err
	}
	if output.Item == nil {
		return entities.Ladder{}, ErrLadderNotFound
	}
	var ladder entities.Ladder
	if err := attributevalue.UnmarshalMap(output.Item, &ladder); err != nil {
		return entities.Ladder{}, err
	}
	return ladder, nil
}

func (client *Client) FetchLadders(ctx context.Context) ([]entities.Ladder, error) {
	output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
		TableName: client.cfg.LaddersTableName,
	})
	if err != nil {
		return nil, err
	}
	var ladders []entities.Ladder
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &ladders); err != nil {
		return nil, err
	}
	return ladders, nil
}

func (client *Client) PutLadder(ctx context.Context, ladder entities.Ladder) error {
	av, err := attributevalue.MarshalMap(ladder)
	if err != nil {
		return fmt.Errorf("failed to marshal ladder: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.LaddersTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put ladder: %w", err)
	}
	return nil
}

// UpdateLadder writes the full ladder record, conditional on the version the
// caller read. Result reporting must be a single-writer operation: two
// concurrent reports against the same season would otherwise double-count.
// Returns ErrLadderVersionConflict when someone else wrote first; callers
// reload and retry.
func (client *Client) UpdateLadder(ctx context.Context, ladder entities.Ladder, expectedVersion int64) error {
	ladder.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(ladder)
	if err != nil {
		return fmt.Errorf("failed to marshal ladder: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           client.cfg.LaddersTableName,
		Item:                av,
		ConditionExpression: aws.String("Version = :expected"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrLadderVersionConflict
		}
		return fmt.Errorf("failed to update ladder: %w", err)
	}
	return nil
}
