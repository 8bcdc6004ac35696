package repositories

import "tokoadmin/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	GetAllByOwner(ownerID models.ID) ([]models.Store, error)
	GetByID(id models.ID) (*models.Store, error)
	Create(store *models.Store) error
}
