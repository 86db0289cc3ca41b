package message

import (
	"encoding/json"
	"fmt"

	"github.com/placemarks-app/placemarks/pkg/event"
)

type EventSerializer interface {
	Serialize(evt event.Event) (*Message, error)
}

type eventMessagePayload struct {
	EventType string `json:"event_type"`
	EventData string `json:"event_data"`
}

type jsonEventSerializer struct {
	topic Topic
}

func NewJSONEventSerializer(topic Topic) EventSerializer {
	return &jsonEventSerializer{topic: topic}
}

func (s *jsonEventSerializer) Serialize(evt event.Event) (*Message, error) {
	eventEncoded, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", evt.Type(), err)
	}

	messagePayload, err := json.Marshal(eventMessagePayload{
		EventType: evt.Type(),
		EventData: string(eventEncoded),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode message payload for event %s: %w", evt.Type(), err)
	}

	return &Message{
		ID:      evt.ID(),
		Topic:   string(s.topic),
		Key:     "",
		Payload: messagePayload,
	}, nil
}

type EventDeserializer interface {
	Deserialize(msg *Message) (event.Event, error)
}

type TypedEventDeserializer func(eventType string, eventData []byte) (event.Event, error)

type jsonEventDeserializer struct {
	typed TypedEventDeserializer
}

func NewJSONEventDeserializer(typed TypedEventDeserializer) EventDeserializer {
	return &jsonEventDeserializer{typed: typed}
}

func (d *jsonEventDeserializer) Deserialize(msg *Message) (event.Event, error) {
	var payload eventMessagePayload
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode message payload: %w", err)
	}

	return d.typed(payload.EventType, []byte(payload.EventData))
}
