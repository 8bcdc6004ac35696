package repositories

import (
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{db: db}
}

// GetAllByStore retrieves the employees of a store in insertion order.
func (r *GORMEmployeeRepository) GetAllByStore(storeID models.ID) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.db.Where("store_id = ?", storeID).Order("created_at ASC, id ASC").Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get employees of store %s: %w", storeID, err)
	}
	return employees, nil
}

// GetByUsername retrieves an employee by username across all stores.
func (r *GORMEmployeeRepository) GetByUsername(username string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee with username %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by username %s: %w", username, err)
	}
	return &employee, nil
}

// Create creates a new employee. PasswordHash must already be set.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = models.ID(uuid.New().String())
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}
