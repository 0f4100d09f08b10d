package clientlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"cambaeats/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubLogger publishes client logs to a Google Cloud Pub/Sub topic
type googlePubSubLogger struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
	wg        sync.WaitGroup
}

// NewGooglePubSubLogger creates a ClientLogger backed by Pub/Sub
func NewGooglePubSubLogger(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.ClientLogger, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubLogger{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (l *googlePubSubLogger) Log(ctx context.Context, entry service.ClientLogEntry) {
	msg, err := newMessage(entry)
	if err != nil {
		l.logger.Warn("[GoogleClientLog] Failed to encode client log", slog.Any("error", err))

		return
	}

	result := l.publisher.Publish(context.WithoutCancel(ctx), msg)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		if _, err := result.Get(context.Background()); err != nil {
			l.logger.Warn("[GoogleClientLog] Failed to publish client log",
				slog.String("message", entry.Message),
				slog.Any("error", err),
			)
		}
	}()
}

// newMessage encodes entry as JSON with level and session attributes for filtering.
func newMessage(entry service.ClientLogEntry) (*pubsub.Message, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"level": string(entry.Level),
	}
	if entry.SessionID != "" {
		attributes["session_id"] = entry.SessionID
	}
	if entry.RequestID != "" {
		attributes["request_id"] = entry.RequestID
	}

	return &pubsub.Message{Data: data, Attributes: attributes}, nil
}

// Close flushes pending messages and releases Pub/Sub client resources
func (l *googlePubSubLogger) Close() error {
	l.publisher.Stop()
	l.wg.Wait()

	return errors.WithStack(l.client.Close())
}
