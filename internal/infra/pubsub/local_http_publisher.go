package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foodbank/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 30 * time.Second
	localSubscription   = "projects/local/subscriptions/record-events-sub"

	// Pub/Sub redelivers on 503 from the view worker; the local publisher
	// emulates that with a short bounded retry.
	localMaxAttempts  = 3
	localRetryBackoff = 200 * time.Millisecond
)

// PubSubPushMessage is the JSON body Google Pub/Sub posts to push endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts record events straight to the view worker's
// /push endpoint in development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	backoff    time.Duration
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		backoff:    localRetryBackoff,
	}
}

func newPushMessage(event *service.RecordEvent, now time.Time) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

// PublishRecordEvent pushes event to the worker, retrying while it answers 503.
func (p *localHTTPPublisher) PublishRecordEvent(ctx context.Context, event *service.RecordEvent) error {
	body, err := newPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		status, err := p.push(ctx, body, event.RequestID)
		if err != nil {
			return err
		}

		switch {
		case status >= 200 && status < 300:
			p.logger.DebugContext(ctx, "Record event pushed to local worker",
				slog.String("event_id", event.EventID),
				slog.String("record_kind", event.RecordKind),
				slog.String("record_id", event.RecordID),
				slog.Int("attempt", attempt),
			)

			return nil
		case status == http.StatusServiceUnavailable && attempt < localMaxAttempts:
			p.logger.WarnContext(ctx, "Local worker asked for redelivery",
				slog.String("event_id", event.EventID),
				slog.Int("attempt", attempt),
			)

			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(p.backoff * time.Duration(attempt)):
			}
		default:
			return errors.Errorf("worker returned non-success status: %d", status)
		}
	}
}

func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
