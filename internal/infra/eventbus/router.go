package eventbus

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// EventHandler consumes one kind of event.
type EventHandler interface {
	// HandlerName must be unique within a router.
	HandlerName() string
	EventName() string
	// Handle returns an error to have the event retried.
	Handle(ctx context.Context, envelope *EventEnvelope) error
}

// RouterConfig controls redelivery of failed events.
type RouterConfig struct {
	MaxRetries     int
	RetryInterval  time.Duration
	HandlerTimeout time.Duration
}

func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		MaxRetries:     3,
		RetryInterval:  time.Second,
		HandlerTimeout: 30 * time.Second,
	}
}

// Router dispatches bus events to handlers. A handler that keeps failing after
// the configured retries has the event logged and dropped; panics count as failures.
type Router struct {
	router *message.Router
	bus    *EventBus
	logger watermill.LoggerAdapter
}

func NewRouter(bus *EventBus, logger watermill.LoggerAdapter, cfg RouterConfig) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	r := &Router{router: router, bus: bus, logger: logger}

	retry := middleware.Retry{
		MaxRetries:      cfg.MaxRetries,
		InitialInterval: cfg.RetryInterval,
		MaxInterval:     cfg.RetryInterval * 10,
		Multiplier:      2,
		Logger:          logger,
	}
	router.AddMiddleware(
		r.dropFailed,
		retry.Middleware,
		attemptTimeout(cfg.HandlerTimeout),
		middleware.Recoverer,
	)

	return r, nil
}

// AddHandler subscribes the handler to its event topic. Call before Run.
func (r *Router) AddHandler(handler EventHandler) {
	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		TopicFor(handler.EventName()),
		r.bus.Subscriber(),
		func(msg *message.Message) error {
			envelope, err := MessageToEnvelope(msg)
			if err != nil {
				// Malformed messages never get better.
				r.logger.Error("failed to parse message", err, watermill.LogFields{"handler": handler.HandlerName()})
				return nil
			}
			return handler.Handle(msg.Context(), envelope)
		},
	)
}

// dropFailed acks messages whose handler gave up, so gochannel does not redeliver forever.
func (r *Router) dropFailed(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		msgs, err := h(msg)
		if err != nil {
			r.logger.Error("dropping event after retries", err, watermill.LogFields{
				"message_uuid": msg.UUID,
				"event_name":   msg.Metadata.Get(metadataEventName),
				"subject_id":   msg.Metadata.Get(metadataSubjectID),
			})
		}
		return msgs, nil
	}
}

// attemptTimeout bounds a single delivery attempt. The message gets its previous
// context back afterwards; otherwise Retry would see the cancelled attempt context
// and give up after the first failure.
func attemptTimeout(timeout time.Duration) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			parent := msg.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			msg.SetContext(ctx)
			defer func() {
				cancel()
				msg.SetContext(parent)
			}()
			return h(msg)
		}
	}
}

// Run blocks until the router is closed or ctx is cancelled.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once all handlers are subscribed.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

func (r *Router) Close() error {
	return r.router.Close()
}
