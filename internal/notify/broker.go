package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Publisher is the part of the RabbitMQ client the broker notifier needs.
type Publisher interface {
	Publish(body []byte) error
}

// BrokerNotifier publishes events as JSON so another process can display them.
// Publish failures are logged and swallowed.
type BrokerNotifier struct {
	pub Publisher
	log *logrus.Logger
}

// NewBrokerNotifier creates a BrokerNotifier.
func NewBrokerNotifier(pub Publisher, logger *logrus.Logger) *BrokerNotifier {
	return &BrokerNotifier{pub: pub, log: logger}
}

// Notify implements Notifier.
func (n *BrokerNotifier) Notify(_ context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		n.log.Errorf("Notify: failed to marshal event: %v", err)
		return
	}
	if err := n.pub.Publish(body); err != nil {
		n.log.Warnf("Notify: failed to publish %s/%s event: %v", event.Resource, event.Action, err)
	}
}

// Decode parses an event published by BrokerNotifier.
func Decode(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode notification: %w", err)
	}
	return event, nil
}
