package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/placemarks-app/placemarks/internal/feed/app/external"
	"github.com/placemarks-app/placemarks/internal/feed/app/service"
	pkgevent "github.com/placemarks-app/placemarks/pkg/event"
	pkgmessage "github.com/placemarks-app/placemarks/pkg/message"
)

var errUnknownEventType = errors.New("unknown event type")

// NewPlacemarkEventHandler feeds saved-place events into the feed
// projection. Event types the projection does not care about are acked
// without processing.
func NewPlacemarkEventHandler(feedService *service.FeedService) pkgmessage.Handler {
	deserializer := pkgmessage.NewJSONEventDeserializer(deserializePlacemarkEvent)

	return func(ctx context.Context, msg *pkgmessage.Message) error {
		evt, err := deserializer.Deserialize(msg)
		if errors.Is(err, errUnknownEventType) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("deserialize message %v: %w", msg.ID, err)
		}

		switch concreteEvent := evt.(type) {
		case external.EventPlaceSaved:
			return feedService.HandlePlaceSaved(ctx, concreteEvent)
		case external.EventPlaceRemoved:
			return feedService.HandlePlaceRemoved(ctx, concreteEvent)
		default:
			return nil
		}
	}
}

func deserializePlacemarkEvent(eventType string, eventData []byte) (pkgevent.Event, error) {
	switch eventType {
	case external.EventTypePlaceSaved:
		var evt external.EventPlaceSaved
		if err := json.Unmarshal(eventData, &evt); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", eventType, err)
		}
		return evt, nil
	case external.EventTypePlaceRemoved:
		var evt external.EventPlaceRemoved
		if err := json.Unmarshal(eventData, &evt); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", eventType, err)
		}
		return evt, nil
	default:
		return nil, errUnknownEventType
	}
}
