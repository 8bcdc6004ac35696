// Package controllers keeps local views of the remote store, product and
// employee collections in step with the server.
//
// A controller owns an ordered copy of one collection (server order, never
// re-sorted), at most one draft, and the last error message. Lifecycle
// operations never return gateway failures: they record a message, emit a
// notification and leave the rest of the state as it was. Drafts survive a
// failed commit so the user can retry.
//
// Methods may be called from several goroutines. State is guarded for memory
// safety only; two mutations in flight are not ordered, and whichever response
// is applied last wins.
package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tokoadmin/internal/gateway"
	"tokoadmin/internal/logging"
	"tokoadmin/internal/models"
	"tokoadmin/internal/notify"

	"github.com/sirupsen/logrus"
)

// Messages recorded as the last error.
const (
	MsgStoreNameRequired      = "store name cannot be empty"
	MsgProductFieldsRequired  = "all product fields are required"
	MsgEmployeeFieldsRequired = "all employee fields are required"

	MsgCreateStoreFailed    = "could not create store"
	MsgCreateProductFailed  = "could not create product"
	MsgUpdateProductFailed  = "could not update product"
	MsgDeleteProductFailed  = "could not delete product"
	MsgUpdateStockFailed    = "could not update stock"
	MsgCreateEmployeeFailed = "could not create employee"
)

// Errors for misuse of the draft API. These are returned, not recorded.
var (
	ErrNoDraft      = errors.New("no active draft")
	ErrUnknownField = errors.New("unknown draft field")
)

// Mode is the kind of draft a controller holds.
type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "none"
	}
}

// Direction is a stock adjustment step.
type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Options carries the collaborators shared by all controllers.
type Options struct {
	Logger   *logrus.Logger
	Notifier notify.Notifier
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Notifier == nil {
		o.Notifier = notify.Nop{}
	}
	return o
}

// collection is the mirrored list plus error state common to every controller.
type collection[T any] struct {
	resource string
	scope    models.ID
	idOf     func(T) models.ID
	log      *logrus.Entry
	notifier notify.Notifier

	mu         sync.Mutex
	items      []T
	lastError  string
	loaded     bool
	loadFailed bool
}

func newCollection[T any](resource string, scope models.ID, idOf func(T) models.ID, opts Options) collection[T] {
	opts = opts.withDefaults()
	entry := opts.Logger.WithField("resource", resource)
	if scope != "" {
		entry = entry.WithField("scope", scope.String())
	}
	return collection[T]{
		resource: resource,
		scope:    scope,
		idOf:     idOf,
		log:      entry,
		notifier: opts.Notifier,
		items:    []T{},
	}
}

// Items returns a copy of the local list in server order.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the local copy of the entity with id.
func (c *collection[T]) Find(id models.ID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(id)
}

func (c *collection[T]) findLocked(id models.ID) (T, bool) {
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// LastError returns the most recent error message, or "" when none is set.
func (c *collection[T]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// ClearError dismisses the last error message.
func (c *collection[T]) ClearError() {
	c.mu.Lock()
	c.lastError = ""
	c.mu.Unlock()
}

// load fetches the collection once. Later calls are no-ops.
func (c *collection[T]) load(ctx context.Context, list func(context.Context) ([]T, error)) bool {
	c.mu.Lock()
	if c.loaded {
		failed := c.loadFailed
		c.mu.Unlock()
		return !failed
	}
	c.loaded = true
	c.mu.Unlock()

	items, err := list(ctx)
	if err != nil {
		c.mu.Lock()
		c.loadFailed = true
		c.mu.Unlock()
		c.fail(ctx, "list", gateway.Message(err), err)
		return false
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	c.log.WithField("count", len(items)).Debug("Controller: collection loaded")
	return true
}

func (c *collection[T]) appendItem(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
}

// replaceItem swaps the element with id for item. An element removed in the
// meantime stays removed.
func (c *collection[T]) replaceItem(id models.ID, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *collection[T]) removeItem(id models.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			kept := make([]T, 0, len(c.items)-1)
			kept = append(kept, c.items[:i]...)
			kept = append(kept, c.items[i+1:]...)
			c.items = kept
			return true
		}
	}
	return false
}

// fail records message as the last error and emits a failure notification.
func (c *collection[T]) fail(ctx context.Context, action, message string, err error) {
	c.mu.Lock()
	c.lastError = message
	c.mu.Unlock()

	entry := c.log.WithField("action", action)
	if err != nil {
		entry.WithField("kind", gateway.KindOf(err).String()).Warnf("Controller: %s: %v", message, err)
	} else {
		entry.Warn("Controller: " + message)
	}
	c.notify(ctx, notify.LevelFailure, action, message)
}

func (c *collection[T]) succeed(ctx context.Context, action, message string) {
	c.log.WithField("action", action).Debug("Controller: " + message)
	c.notify(ctx, notify.LevelSuccess, action, message)
}

func (c *collection[T]) notify(ctx context.Context, level notify.Level, action, message string) {
	c.notifier.Notify(ctx, notify.Event{
		Level:    level,
		Resource: c.resource,
		Action:   action,
		Scope:    c.scope.String(),
		Message:  message,
		Time:     time.Now(),
	})
}

func unknownField(resource, field string) error {
	return fmt.Errorf("%s draft field %q: %w", resource, field, ErrUnknownField)
}
