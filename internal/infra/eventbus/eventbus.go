package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	topicPrefix = "portfolio."

	metadataEventName = "event_name"
	metadataSubjectID = "subject_id"
)

// TopicFor returns the topic an event of the given name is published on.
func TopicFor(eventName string) string {
	return topicPrefix + eventName
}

// EventBus is an in-process pub/sub for domain events. Events published while
// nobody subscribes to their topic are dropped.
type EventBus struct {
	pubsub *gochannel.GoChannel
}

func NewEventBus(logger watermill.LoggerAdapter) *EventBus {
	return &EventBus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 100}, logger),
	}
}

func (b *EventBus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Publish hands the event to subscribers of its topic without waiting for them.
func (b *EventBus) Publish(ctx context.Context, e event.Event) error {
	msg, err := EventToMessage(e)
	if err != nil {
		return err
	}
	if err := b.pubsub.Publish(TopicFor(e.EventName()), msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.EventName(), err)
	}
	return nil
}

func (b *EventBus) Close() error {
	return b.pubsub.Close()
}

// EventEnvelope is the wire form of an event; Payload holds the event itself.
type EventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventName  string          `json:"event_name"`
	SubjectID  string          `json:"subject_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func EventToMessage(e event.Event) (*message.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", e.EventName(), err)
	}

	data, err := json.Marshal(EventEnvelope{
		EventID:    e.EventID(),
		EventName:  e.EventName(),
		SubjectID:  e.SubjectID(),
		OccurredAt: e.OccurredAt(),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	msg := message.NewMessage(e.EventID(), data)
	msg.Metadata.Set(metadataEventName, e.EventName())
	msg.Metadata.Set(metadataSubjectID, e.SubjectID())
	return msg, nil
}

func MessageToEnvelope(msg *message.Message) (*EventEnvelope, error) {
	var envelope EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope %s: %w", msg.UUID, err)
	}
	return &envelope, nil
}
