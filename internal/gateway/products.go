package gateway

import (
	"context"
	"net/http"

	"tokoadmin/internal/models"

	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
	StoreID models.ID       `json:"store_id"`
}

// ListProducts returns the products of storeID in server order.
func (c *Client) ListProducts(ctx context.Context, storeID models.ID) ([]models.Product, error) {
	var products []models.Product
	endpoint := c.endpoint("stores", storeID.String(), "products")
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct creates a product in storeID. The store_id sent is always the
// scope, whatever the draft carried.
func (c *Client) CreateProduct(ctx context.Context, storeID models.ID, product models.Product) (*models.Product, error) {
	req := createProductRequest{
		Name:    product.Name,
		Price:   product.Price,
		Stock:   product.Stock,
		StoreID: storeID,
	}
	var created models.Product
	endpoint := c.endpoint("stores", storeID.String(), "products")
	if err := c.do(ctx, http.MethodPost, endpoint, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces product id with the full record. The returned
// product, not the request, is authoritative.
func (c *Client) UpdateProduct(ctx context.Context, storeID, id models.ID, product models.Product) (*models.Product, error) {
	product.ID = id
	product.StoreID = storeID
	var updated models.Product
	endpoint := c.endpoint("stores", storeID.String(), "products", id.String())
	if err := c.do(ctx, http.MethodPut, endpoint, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes product id. Success carries no body.
func (c *Client) DeleteProduct(ctx context.Context, storeID, id models.ID) error {
	endpoint := c.endpoint("stores", storeID.String(), "products", id.String())
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}
