package repositories

import (
	"errors"

	"tokoadmin/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access. Every
// operation is scoped to one store.
type ProductRepository interface {
	GetAllByStore(storeID models.ID) ([]models.Product, error)
	GetByID(storeID, id models.ID) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(storeID, id models.ID) error
}
