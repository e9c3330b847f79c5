package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/klubbhq/klubb/internal/domains/entities"
)

var ErrUserProfileNotFound = fmt.Errorf("user profile not found")

func (client *Client) GetUserProfile(ctx context.Context, userId string) (entities.UserProfile, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.UserProfilesTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if output.Item == nil {
		return entities.UserProfile{}, ErrUserProfileNotFound
	}
	var profile entities.UserProfile
	if err := attributevalue.UnmarshalMap(output.Item, &profile); err != nil {
		return entities.UserProfile{}, err
	}
	return profile, nil
}

func (client *Client) FetchUserProfiles(ctx context.Context) ([]entities.UserProfile, error) {
	var profiles []entities.UserProfile
	var lastKey map[string]types.AttributeValue
	for {
		output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         client.cfg.UserProfilesTableName,
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []entities.UserProfile
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		profiles = append(profiles, page...)
		if output.LastEvaluatedKey == nil {
			break
		}
		lastKey = output.LastEvaluatedKey
	}
	return profiles, nil
}

func (client *Client) PutUserProfile(ctx context.Context, profile entities.UserProfile) error {
	av, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal user profile: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.UserProfilesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put user profile: %w", err)
	}
	return nil
}

// UpdateUserStats overwrites a member's season counters with the values the
// ladder engine produced.
func (client *Client) UpdateUserStats(ctx context.Context, userId string, wins, losses int) error {
	_, err := client.dynamodb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: client.cfg.UserProfilesTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
		UpdateExpression: aws.String("SET LadderWins = :wins, LadderLosses = :losses"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wins":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wins)},
			":losses": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", losses)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update user stats: %w", err)
	}
	return nil
}
