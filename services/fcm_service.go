package services

import (
	"context"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/yeremiapane/northwind-api/utils"
)

// Notifier is implemented by anything that can deliver a multicast push
// notification. Controllers depend on this interface so tests can substitute
// a fake dispatcher.
type Notifier interface {
	SendPushNotification(ctx context.Context, tokens []string, title, body, customerID string) error
}

// MulticastSender matches the subset of *messaging.Client used by PushService.
type MulticastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// PushService sends multicast notifications through Firebase Cloud Messaging.
// It is constructed once in main and injected into controllers; the messaging
// client itself is created at most once, on first use.
type PushService struct {
	credentialsPath string

	once    sync.Once
	sender  MulticastSender
	initErr error
}

func NewPushService(credentialsPath string) *PushService {
	return &PushService{credentialsPath: credentialsPath}
}

// NewPushServiceWithSender bypasses Firebase initialization, used in tests.
func NewPushServiceWithSender(sender MulticastSender) *PushService {
	ps := &PushService{sender: sender}
	ps.once.Do(func() {})
	return ps
}

func (ps *PushService) client(ctx context.Context) (MulticastSender, error) {
	ps.once.Do(func() {
		if ps.credentialsPath == "" {
			ps.initErr = fmt.Errorf("SERVICE_ACCOUNT_PATH environment variable is not set")
			return
		}
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(ps.credentialsPath))
		if err != nil {
			ps.initErr = fmt.Errorf("initialize firebase app: %w", err)
			return
		}
		client, err := app.Messaging(ctx)
		if err != nil {
			ps.initErr = fmt.Errorf("initialize messaging client: %w", err)
			return
		}
		ps.sender = client
	})
	return ps.sender, ps.initErr
}

// SendPushNotification delivers one multicast message to the given device
// tokens. An empty token list is a no-op. Partial failures are logged with the
// failed tokens and never retried.
func (ps *PushService) SendPushNotification(ctx context.Context, tokens []string, title, body, customerID string) error {
	if len(tokens) == 0 {
		return nil
	}

	sender, err := ps.client(ctx)
	if err != nil {
		return err
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{"customerId": customerID},
	}

	resp, err := sender.SendEachForMulticast(ctx, message)
	if err != nil {
		return err
	}

	if resp.FailureCount > 0 {
		var failedTokens []string
		for i, r := range resp.Responses {
			// Responses come back in the same order as the tokens.
			if !r.Success {
				failedTokens = append(failedTokens, tokens[i])
			}
		}
		utils.ErrorLogger.Printf("Push notification failed for %d token(s): %v", resp.FailureCount, failedTokens)
	}

	return nil
}
