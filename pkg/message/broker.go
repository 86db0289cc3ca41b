//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Producer=Producer,Consumer=Consumer"
package message

import "context"

const (
	ConsumptionTypeSingle ConsumptionType = "single"
	ConsumptionTypeShared ConsumptionType = "shared"
)

type (
	ConsumerMessage struct {
		Context context.Context
		Message Message
	}

	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(msg *ConsumerMessage)
		Nack(msg *ConsumerMessage)
		Close()
	}

	ConsumerProvider interface {
		Consumer(topic Topic, subscriberName string, consumptionType ConsumptionType) (Consumer, error)
	}

	Producer interface {
		Send(ctx context.Context, msg *Message) error
	}

	Broker interface {
		ConsumerProvider
		Producer
	}

	ConsumptionType string
)
