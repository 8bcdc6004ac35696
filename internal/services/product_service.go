package services

import (
	"errors"
	"fmt"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	stores *StoreService
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, stores *StoreService) *ProductService {
	return &ProductService{
		repo:   repo,
		stores: stores,
	}
}

// GetProducts retrieves the products of a store owned by ownerID.
func (s *ProductService) GetProducts(ownerID, storeID models.ID) ([]models.Product, error) {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return nil, err
	}
	return s.repo.GetAllByStore(storeID)
}

// CreateProduct creates a new product in storeID. The path scope wins over
// any store_id in the body.
func (s *ProductService) CreateProduct(ownerID, storeID models.ID, product *models.Product) error {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return err
	}
	product.ID = ""
	product.StoreID = storeID
	return s.repo.Create(product)
}

// UpdateProduct replaces product id and returns the stored record.
func (s *ProductService) UpdateProduct(ownerID, storeID, id models.ID, product *models.Product) (*models.Product, error) {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return nil, err
	}
	product.ID = id
	product.StoreID = storeID
	if err := s.repo.Update(product); err != nil {
		return nil, notFound(err)
	}
	return s.repo.GetByID(storeID, id)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ownerID, storeID, id models.ID) error {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return err
	}
	return notFound(s.repo.Delete(storeID, id))
}

func notFound(err error) error {
	if err != nil && errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return err
}
