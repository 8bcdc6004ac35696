package repositories

import (
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{db: db}
}

// GetAllByOwner retrieves the stores of one user in insertion order.
func (r *GORMStoreRepository) GetAllByOwner(ownerID models.ID) ([]models.Store, error) {
	stores := []models.Store{}
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC, id ASC").Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stores of user %s: %w", ownerID, err)
	}
	return stores, nil
}

// GetByID retrieves a store by its ID.
func (r *GORMStoreRepository) GetByID(id models.ID) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// Create creates a new store.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = models.ID(uuid.New().String())
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}
