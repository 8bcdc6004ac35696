package repositories

import (
	"errors"
	"fmt"
	"time"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAllByStore retrieves the products of a store in insertion order.
func (r *GORMProductRepository) GetAllByStore(storeID models.ID) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Where("store_id = ?", storeID).Order("created_at ASC, id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products of store %s: %w", storeID, err)
	}
	return products, nil
}

// GetByID retrieves a single product of a store.
func (r *GORMProductRepository) GetByID(storeID, id models.ID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = models.ID(uuid.New().String())
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing product. Zero values are
// written too, so a stock of 0 sticks.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND store_id = ?", product.ID, product.StoreID).
		Updates(map[string]interface{}{
			"name":       product.Name,
			"price":      product.Price,
			"stock":      product.Stock,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product of a store.
func (r *GORMProductRepository) Delete(storeID, id models.ID) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND store_id = ?", id, storeID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
