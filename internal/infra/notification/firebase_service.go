package notification

import (
	"context"
	"fmt"

	"github.com/ogarmar/Compa/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendDataPush sends a data-only push to a single device token. The device
// app wakes on the push and pulls pending messages over its next connection.
func (s *firebaseService) SendDataPush(ctx context.Context, token string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}

	return nil
}
