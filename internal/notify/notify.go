// Package notify carries success and failure signals from the controllers to
// whatever surface shows transient messages to the user.
package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Level tells a success signal from a failure.
type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

// Event is one user-visible signal.
type Event struct {
	Level    Level     `json:"level"`
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	Scope    string    `json:"scope,omitempty"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// Notifier receives events. Implementations must not block the caller for
// long and must not fail the operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Nop discards every event.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, Event) {}

// LogNotifier writes events to a logrus logger.
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, event Event) {
	entry := n.log.WithFields(logrus.Fields{
		"resource": event.Resource,
		"action":   event.Action,
	})
	if event.Scope != "" {
		entry = entry.WithField("scope", event.Scope)
	}
	if event.Level == LevelFailure {
		entry.Warn(event.Message)
		return
	}
	entry.Info(event.Message)
}
