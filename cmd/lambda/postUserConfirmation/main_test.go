package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/klubbhq/klubb/internal/domains/entities"
	"github.com/klubbhq/klubb/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logging.SetLogger(zap.NewNop())
	m.Run()
}

type fakeProfileStore struct {
	saved  []entities.UserProfile
	putErr error
}

func (f *fakeProfileStore) PutUserProfile(ctx context.Context, profile entities.UserProfile) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.saved = append(f.saved, profile)
	return nil
}

func confirmationEvent() events.CognitoEventUserPoolsPostConfirmation {
	var event events.CognitoEventUserPoolsPostConfirmation
	event.Request.UserAttributes = map[string]string{
		"sub":   "user-1",
		"email": "anna@example.com",
		"name":  "Anna Andersson",
	}
	return event
}

func TestHandleConfirmationSavesProfile(t *testing.T) {
	store := &fakeProfileStore{}

	_, err := handleConfirmation(context.Background(), store, confirmationEvent())

	require.NoError(t, err)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "user-1", store.saved[0].UserId)
	assert.Equal(t, "anna@example.com", store.saved[0].Email)
	assert.Equal(t, "Anna Andersson", store.saved[0].DisplayName)
	assert.False(t, store.saved[0].CreatedAt.IsZero())
}

func TestHandleConfirmationReturnsWriteError(t *testing.T) {
	store := &fakeProfileStore{putErr: errors.New("throttled")}
	event := confirmationEvent()

	got, err := handleConfirmation(context.Background(), store, event)

	// The error goes back to Cognito for a retry instead of exiting the runtime
	assert.Error(t, err)
	assert.Equal(t, event.Request.UserAttributes, got.Request.UserAttributes)
}
