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
	ErrBookingNotFound         = fmt.Errorf("booking not found")
	ErrBookingAlreadyCompleted = fmt.Errorf("booking already completed")
)

func (client *Client) GetBooking(ctx context.Context, bookingId string) (entities.Booking, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.BookingsTableName,
		Key: map[string]types.AttributeValue{
			"BookingId": &types.AttributeValueMemberS{
				Value: bookingId,
			},
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if output.Item == nil {
		return entities.Booking{}, ErrBookingNotFound
	}
	var booking entities.Booking
	if err := attributevalue.UnmarshalMap(output.Item, &booking); err != nil {
		return entities.Booking{}, err
	}
	return booking, nil
}

// FetchBookingsByDate lists all bookings for one calendar day (YYYY-MM-DD),
// via the DateIndex GSI.
func (client *Client) FetchBookingsByDate(ctx context.Context, date string) ([]entities.Booking, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.BookingsTableName,
		IndexName:              aws.String("DateIndex"),
		KeyConditionExpression: aws.String("#date = :date"),
		ExpressionAttributeNames: map[string]string{
			"#date": "Date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: date},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var bookings []entities.Booking
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FetchBookingsByLadder lists all bookings annotated with the given ladder
// season, via the LadderIndex GSI.
func (client *Client) FetchBookingsByLadder(ctx context.Context, ladderId string) ([]entities.Booking, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.BookingsTableName,
		IndexName:              aws.String("LadderIndex"),
		KeyConditionExpression: aws.String("LadderId = :ladderId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ladderId": &types.AttributeValueMemberS{Value: ladderId},
		},
	})
	if err != nil {
		return nil, err
	}
	var bookings []entities.Booking
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (client *Client) PutBooking(ctx context.Context, booking entities.Booking) error {
	av, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.BookingsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put booking: %w", err)
	}
	return nil
}

// UpdateBookingResult marks a ladder booking completed with its winner. The
// write is conditional on the booking not being completed yet, so of two
// concurrent reports of the same match exactly one claims it; the other gets
// ErrBookingAlreadyCompleted.
func (client *Client) UpdateBookingResult(ctx context.Context, bookingId, winnerId, comment string) error {
	updateExpression := "SET LadderStatus = :status, WinnerId = :winnerId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: "completed"},
		":winnerId": &types.AttributeValueMemberS{Value: winnerId},
	}
	if comment != "" {
		updateExpression += ", #comment = :comment"
		expressionAttributeValues[":comment"] = &types.AttributeValueMemberS{Value: comment}
	}
	input := &dynamodb.UpdateItemInput{
		TableName: client.cfg.BookingsTableName,
		Key: map[string]types.AttributeValue{
			"BookingId": &types.AttributeValueMemberS{
				Value: bookingId,
			},
		},
		UpdateExpression:          aws.String(updateExpression),
		ConditionExpression:       aws.String("attribute_not_exists(LadderStatus) OR LadderStatus <> :status"),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if comment != "" {
		input.ExpressionAttributeNames = map[string]string{"#comment": "Comment"}
	}
	_, err := client.dynamodb.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrBookingAlreadyCompleted
		}
		return fmt.Errorf("failed to update booking result: %w", err)
	}
	return nil
}

func (client *Client) DeleteBooking(ctx context.Context, bookingId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.BookingsTableName,
		Key: map[string]types.AttributeValue{
			"BookingId": &types.AttributeValueMemberS{Value: bookingId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
