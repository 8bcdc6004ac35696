package gateway

import (
	"context"
	"net/http"

	"tokoadmin/internal/models"
)

type createStoreRequest struct {
	Name string `json:"name"`
}

// ListStores returns the stores visible to the signed-in user, in server order.
func (c *Client) ListStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := c.do(ctx, http.MethodGet, c.endpoint("stores"), nil, &stores); err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []models.Store{}
	}
	return stores, nil
}

// CreateStore creates a store; the server assigns its id.
func (c *Client) CreateStore(ctx context.Context, store models.Store) (*models.Store, error) {
	var created models.Store
	req := createStoreRequest{Name: store.Name}
	if err := c.do(ctx, http.MethodPost, c.endpoint("stores"), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
