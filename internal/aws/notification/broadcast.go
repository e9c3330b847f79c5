package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// ClubEvent is pushed to every live board connection when the schedule or a
// ladder changes.
type ClubEvent struct {
	Type      string    `json:"type"`
	BookingId string    `json:"bookingId,omitempty"`
	LadderId  string    `json:"ladderId,omitempty"`
	At        time.Time `json:"at"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventResultReported   = "result_reported"
)

// Broadcast hands the event to the broadcast Lambda asynchronously so the
// mutating request does not wait on connection fan-out.
func (client *Client) Broadcast(ctx context.Context, event ClubEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal club event: %w", err)
	}
	_, err = client.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(client.cfg.BroadcastFunctionName),
		Payload:        payload,
		InvocationType: types.InvocationTypeEvent,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke broadcast: %w", err)
	}
	return nil
}
