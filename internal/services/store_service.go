package services

import (
	"errors"
	"fmt"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

// ListStores returns the stores owned by ownerID.
func (s *StoreService) ListStores(ownerID models.ID) ([]models.Store, error) {
	return s.repo.GetAllByOwner(ownerID)
}

// CreateStore creates a store owned by ownerID.
func (s *StoreService) CreateStore(ownerID models.ID, store *models.Store) error {
	store.ID = ""
	store.OwnerID = ownerID
	return s.repo.Create(store)
}

// OwnedStore returns storeID if ownerID owns it. Stores of other users are
// reported as missing.
func (s *StoreService) OwnedStore(ownerID, storeID models.ID) (*models.Store, error) {
	store, err := s.repo.GetByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("store %s %w", storeID, ErrNotFound)
		}
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, fmt.Errorf("store %s %w", storeID, ErrNotFound)
	}
	return store, nil
}
