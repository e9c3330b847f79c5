package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/klubbhq/klubb/internal/domains/entities"
)

func (client *Client) PutAnnouncement(ctx context.Context, announcement entities.Announcement) error {
	av, err := attributevalue.MarshalMap(announcement)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.AnnouncementsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put announcement: %w", err)
	}
	return nil
}

func (client *Client) FetchAnnouncements(ctx context.Context) ([]entities.Announcement, error) {
	output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
		TableName: client.cfg.AnnouncementsTableName,
	})
	if err != nil {
		return nil, err
	}
	var announcements []entities.Announcement
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (client *Client) DeleteAnnouncement(ctx context.Context, announcementId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.AnnouncementsTableName,
		Key: map[string]types.AttributeValue{
			"AnnouncementId": &types.AttributeValueMemberS{Value: announcementId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
