package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"foodbank/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes record events to a Pub/Sub topic whose
// push subscription targets the view worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

func topicPath(projectID, topicID string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
}

// NewGooglePubSubPublisher connects to projectID and fails fast when the
// topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	path := topicPath(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: path}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", path)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: path,
		logger:    logger,
	}, nil
}

// PublishRecordEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishRecordEvent(ctx context.Context, event *service.RecordEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event for %s", event.RecordKind, event.RecordID)
	}

	p.logger.DebugContext(ctx, "Record event published",
		slog.String("topic", p.topicPath),
		slog.String("event_id", event.EventID),
		slog.String("record_kind", event.RecordKind),
		slog.String("record_id", event.RecordID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
