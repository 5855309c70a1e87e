// Package notification implements the push gateway on Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"fmt"

	"fleettrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
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

// Send delivers a push message to a single device token.
func (s *firebaseService) Send(ctx context.Context, token string, msg *service.PushMessage) error {
	message := buildMessage(msg)
	message.Token = token

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendMulticast delivers a push message to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	single := buildMessage(msg)
	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: single.Notification,
		Data:         single.Data,
		Android:      single.Android,
		APNS:         single.APNS,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Collect invalid tokens
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			// Check if error is due to invalid or unregistered token
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

// buildMessage translates a PushMessage into the FCM wire shape. Silent
// messages carry no OS-visible notification: the type travels in the data
// map and the platform sections mark the message as high priority so the
// receiving app's background handler runs immediately (the app, not the
// notification tray, sounds the alarm).
func buildMessage(msg *service.PushMessage) *messaging.Message {
	data := map[string]string{
		"type": msg.Type,
	}

	message := &messaging.Message{
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if msg.Silent {
		message.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
				},
			},
		}

		return message
	}

	data["title"] = msg.Title
	data["message"] = msg.Body
	message.Notification = &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}

	return message
}
