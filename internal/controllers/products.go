package controllers

import (
	"context"
	"strconv"

	"tokoadmin/internal/gateway"
	"tokoadmin/internal/models"
)

// ProductGateway is the slice of the remote API the product controller uses.
type ProductGateway interface {
	ListProducts(ctx context.Context, storeID models.ID) ([]models.Product, error)
	CreateProduct(ctx context.Context, storeID models.ID, product models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, storeID, id models.ID, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, storeID, id models.ID) error
}

// ProductDraft holds form input for a product being created or edited. Price
// and Stock are kept as typed so a half-entered value is not lost.
type ProductDraft struct {
	ID    models.ID
	Name  string
	Price string
	Stock string
}

// ProductController mirrors the products of one store.
type ProductController struct {
	collection[models.Product]
	gw    ProductGateway
	draft *ProductDraft
	mode  Mode
}

// NewProductController creates a controller scoped to storeID.
func NewProductController(gw ProductGateway, storeID models.ID, opts Options) *ProductController {
	return &ProductController{
		collection: newCollection("product", storeID, func(p models.Product) models.ID { return p.ID }, opts),
		gw:         gw,
	}
}

// StoreID returns the scope of the controller.
func (c *ProductController) StoreID() models.ID { return c.scope }

// Initialize fetches the store's products once.
func (c *ProductController) Initialize(ctx context.Context) bool {
	return c.load(ctx, func(ctx context.Context) ([]models.Product, error) {
		return c.gw.ListProducts(ctx, c.scope)
	})
}

// Mode reports the active draft kind.
func (c *ProductController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Draft returns a copy of the active draft.
func (c *ProductController) Draft() (ProductDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ProductDraft{}, false
	}
	return *c.draft, true
}

// BeginCreate starts an empty create draft. An edit in progress is discarded.
func (c *ProductController) BeginCreate() {
	c.mu.Lock()
	c.draft = &ProductDraft{}
	c.mode = ModeCreate
	c.mu.Unlock()
}

// BeginEdit starts an edit draft from the local copy of id. Unknown ids are
// ignored. A create in progress is discarded.
func (c *ProductController) BeginEdit(id models.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	product, ok := c.findLocked(id)
	if !ok {
		return false
	}
	c.draft = &ProductDraft{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price.String(),
		Stock: strconv.Itoa(product.Stock),
	}
	c.mode = ModeEdit
	return true
}

// UpdateDraftField sets "name", "price" or "stock" on the draft.
func (c *ProductController) UpdateDraftField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ErrNoDraft
	}
	switch field {
	case "name":
		c.draft.Name = value
	case "price":
		c.draft.Price = value
	case "stock":
		c.draft.Stock = value
	default:
		return unknownField(c.resource, field)
	}
	return nil
}

// CancelDraft discards the draft. Calling it without a draft is a no-op.
func (c *ProductController) CancelDraft() {
	c.mu.Lock()
	c.draft = nil
	c.mode = ModeNone
	c.mu.Unlock()
}

// activeDraft returns the draft if it is in mode.
func (c *ProductController) activeDraft(mode Mode) (ProductDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil || c.mode != mode {
		return ProductDraft{}, false
	}
	return *c.draft, true
}

// CommitCreate validates the create draft and creates the product.
func (c *ProductController) CommitCreate(ctx context.Context) bool {
	draft, ok := c.activeDraft(ModeCreate)
	if !ok {
		c.log.Debug("Controller: create commit without create draft ignored")
		return false
	}
	product, ok := productFromDraft(draft, c.scope)
	if !ok {
		c.fail(ctx, "create", MsgProductFieldsRequired, gateway.NewValidationError(MsgProductFieldsRequired))
		return false
	}

	created, err := c.gw.CreateProduct(ctx, c.scope, product)
	if err != nil {
		c.fail(ctx, "create", MsgCreateProductFailed, err)
		return false
	}

	c.appendItem(*created)
	c.CancelDraft()
	c.succeed(ctx, "create", "product created")
	return true
}

// CommitEdit validates the edit draft and replaces the product. The server's
// response replaces the local element.
func (c *ProductController) CommitEdit(ctx context.Context) bool {
	draft, ok := c.activeDraft(ModeEdit)
	if !ok {
		c.log.Debug("Controller: edit commit without edit draft ignored")
		return false
	}
	product, ok := productFromDraft(draft, c.scope)
	if !ok {
		c.fail(ctx, "update", MsgProductFieldsRequired, gateway.NewValidationError(MsgProductFieldsRequired))
		return false
	}

	updated, err := c.gw.UpdateProduct(ctx, c.scope, draft.ID, product)
	if err != nil {
		c.fail(ctx, "update", MsgUpdateProductFailed, err)
		return false
	}

	c.replaceItem(draft.ID, *updated)
	c.CancelDraft()
	c.succeed(ctx, "update", "product updated")
	return true
}

// Delete deletes product id on the server, then drops it locally.
func (c *ProductController) Delete(ctx context.Context, id models.ID) bool {
	if err := c.gw.DeleteProduct(ctx, c.scope, id); err != nil {
		c.fail(ctx, "delete", MsgDeleteProductFailed, err)
		return false
	}
	c.removeItem(id)
	c.succeed(ctx, "delete", "product deleted")
	return true
}

// AdjustStock moves the stock of id one step from the locally cached value
// and sends the full record. Concurrent adjustments are not serialized: each
// starts from whatever the local copy holds, and the last response applied
// wins.
func (c *ProductController) AdjustStock(ctx context.Context, id models.ID, direction Direction) bool {
	product, ok := c.Find(id)
	if !ok {
		c.log.WithField("id", id.String()).Debug("Controller: stock adjustment for unknown product ignored")
		return false
	}
	if direction == Increase {
		product.Stock++
	} else {
		product.Stock--
	}

	updated, err := c.gw.UpdateProduct(ctx, c.scope, id, product)
	if err != nil {
		c.fail(ctx, "stock", MsgUpdateStockFailed, err)
		return false
	}

	c.replaceItem(id, *updated)
	c.succeed(ctx, "stock", "stock updated")
	return true
}
