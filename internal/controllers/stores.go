package controllers

import (
	"context"

	"tokoadmin/internal/gateway"
	"tokoadmin/internal/models"
)

// StoreGateway is the slice of the remote API the store controller uses.
type StoreGateway interface {
	ListStores(ctx context.Context) ([]models.Store, error)
	CreateStore(ctx context.Context, store models.Store) (*models.Store, error)
}

// StoreDraft is an unsaved store.
type StoreDraft struct {
	Name string
}

// StoreController mirrors the signed-in user's stores. Stores can only be
// created; there is no edit or delete.
type StoreController struct {
	collection[models.Store]
	gw    StoreGateway
	draft *StoreDraft
}

// NewStoreController creates a StoreController. Call Initialize to fetch.
func NewStoreController(gw StoreGateway, opts Options) *StoreController {
	return &StoreController{
		collection: newCollection("store", "", func(s models.Store) models.ID { return s.ID }, opts),
		gw:         gw,
	}
}

// Initialize fetches the store list once.
func (c *StoreController) Initialize(ctx context.Context) bool {
	return c.load(ctx, c.gw.ListStores)
}

// Mode reports whether a create draft is active.
func (c *StoreController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ModeNone
	}
	return ModeCreate
}

// Draft returns a copy of the active draft.
func (c *StoreController) Draft() (StoreDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return StoreDraft{}, false
	}
	return *c.draft, true
}

// BeginCreate starts an empty draft, discarding any previous one.
func (c *StoreController) BeginCreate() {
	c.mu.Lock()
	c.draft = &StoreDraft{}
	c.mu.Unlock()
}

// UpdateDraftField sets a draft field. The only field is "name".
func (c *StoreController) UpdateDraftField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ErrNoDraft
	}
	switch field {
	case "name":
		c.draft.Name = value
	default:
		return unknownField(c.resource, field)
	}
	return nil
}

// CancelDraft discards the draft. Calling it without a draft is a no-op.
func (c *StoreController) CancelDraft() {
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
}

// CommitCreate validates the draft and creates the store. On success the
// store is appended and the draft cleared; on failure the draft is kept.
func (c *StoreController) CommitCreate(ctx context.Context) bool {
	draft, ok := c.Draft()
	if !ok {
		c.log.Debug("Controller: commit without draft ignored")
		return false
	}
	if !validStoreDraft(draft) {
		c.fail(ctx, "create", MsgStoreNameRequired, gateway.NewValidationError(MsgStoreNameRequired))
		return false
	}

	created, err := c.gw.CreateStore(ctx, models.Store{Name: draft.Name})
	if err != nil {
		c.fail(ctx, "create", MsgCreateStoreFailed, err)
		return false
	}

	c.appendItem(*created)
	c.CancelDraft()
	c.succeed(ctx, "create", "store created")
	return true
}
