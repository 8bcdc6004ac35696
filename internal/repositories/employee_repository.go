package repositories

import "tokoadmin/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAllByStore(storeID models.ID) ([]models.Employee, error)
	GetByUsername(username string) (*models.Employee, error)
	Create(employee *models.Employee) error
}
