package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventBus is the messaging surface the tournament module depends on.
// Handlers publish and subscribe through it instead of holding NATS
// connections themselves, which keeps the module testable with a fake.
type EventBus interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	CreateStream(ctx context.Context, streamName string, subjects ...string) error
	Close() error
}

// eventBus implements EventBus on top of NATS JetStream via Watermill.
type eventBus struct {
	publisher      message.Publisher
	subscriber     message.Subscriber
	js             jetstream.JetStream
	natsConn       *nc.Conn
	logger         *slog.Logger
	createdStreams map[string]bool
	streamMutex    sync.Mutex
}

// NewEventBus creates and returns an EventBus with a connection to NATS JetStream.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		logger.Error("Failed to connect to NATS", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		logger.Error("Failed to initialize JetStream", slog.Any("error", err))
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	// Watermill logs through the service's slog handler.
	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &nats.NATSMarshaler{}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		logger.Error("Failed to create Watermill publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		publisher.Close()
		logger.Error("Failed to create Watermill subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill subscriber: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

func (eb *eventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if msg.UUID == "" {
		msg.UUID = watermill.NewUUID()
	}

	eb.logger.Debug("Publishing message",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)

	if err := eb.publisher.Publish(topic, msg); err != nil {
		eb.logger.Error("Failed to publish message",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.Info("Subscribing to topic", slog.String("topic", topic))

	messages, err := eb.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}
	return messages, nil
}

// CreateStream ensures a JetStream stream exists covering the given
// subjects, creating or extending it as needed. It is idempotent within
// a process.
func (eb *eventBus) CreateStream(ctx context.Context, streamName string, subjects ...string) error {
	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	stream, err := eb.js.Stream(ctx, streamName)
	if err != nil && err != jetstream.ErrStreamNotFound {
		return fmt.Errorf("failed to check if stream exists: %w", err)
	}

	if err == jetstream.ErrStreamNotFound {
		_, err = eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		})
		if err != nil {
			return fmt.Errorf("failed to create stream: %w", err)
		}
		eb.logger.Info("Stream created", slog.String("stream_name", streamName))
	} else {
		streamInfo, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info: %w", err)
		}

		// Add any subjects the existing stream does not cover yet.
		existing := make(map[string]bool, len(streamInfo.Config.Subjects))
		for _, s := range streamInfo.Config.Subjects {
			existing[s] = true
		}
		changed := false
		for _, s := range subjects {
			if !existing[s] {
				streamInfo.Config.Subjects = append(streamInfo.Config.Subjects, s)
				changed = true
			}
		}
		if changed {
			if _, err = eb.js.UpdateStream(ctx, streamInfo.Config); err != nil {
				return fmt.Errorf("failed to update stream with new subjects: %w", err)
			}
			eb.logger.Info("Stream updated with new subjects", slog.String("stream_name", streamName))
		}
	}

	// Confirm the stream is visible before handing it to subscribers.
	retries := 5
	retryInterval := 100 * time.Millisecond
	for i := 0; i < retries; i++ {
		if _, err = eb.js.Stream(ctx, streamName); err == nil {
			break
		}
		if err != jetstream.ErrStreamNotFound {
			return fmt.Errorf("failed to check if stream exists: %w", err)
		}
		eb.logger.Warn("Stream not yet available, retrying...",
			slog.String("stream_name", streamName),
			slog.Int("attempt", i+1),
		)
		time.Sleep(retryInterval)
	}
	if err != nil {
		return fmt.Errorf("failed to confirm stream creation after retries: %w", err)
	}

	eb.createdStreams[streamName] = true
	return nil
}

// Close closes all NATS and Watermill resources.
func (eb *eventBus) Close() error {
	if eb.publisher != nil {
		if err := eb.publisher.Close(); err != nil {
			eb.logger.Error("Error closing NATS publisher", slog.Any("error", err))
		}
	}
	if eb.subscriber != nil {
		if err := eb.subscriber.Close(); err != nil {
			eb.logger.Error("Error closing NATS subscriber", slog.Any("error", err))
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return nil
}
