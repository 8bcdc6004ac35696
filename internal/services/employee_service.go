package services

import (
	"fmt"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// EmployeeService handles business logic related to store employees.
type EmployeeService struct {
	repo   repositories.EmployeeRepository
	stores *StoreService
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository, stores *StoreService) *EmployeeService {
	return &EmployeeService{repo: repo, stores: stores}
}

// GetEmployees retrieves the employees of a store owned by ownerID.
func (s *EmployeeService) GetEmployees(ownerID, storeID models.ID) ([]models.Employee, error) {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return nil, err
	}
	return s.repo.GetAllByStore(storeID)
}

// CreateEmployee hashes the password and stores the employee. The plain
// password is cleared before returning.
func (s *EmployeeService) CreateEmployee(ownerID, storeID models.ID, employee *models.Employee) error {
	if _, err := s.stores.OwnedStore(ownerID, storeID); err != nil {
		return err
	}
	if existing, err := s.repo.GetByUsername(employee.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' %w", employee.Username, ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	employee.ID = ""
	employee.StoreID = storeID
	employee.PasswordHash = string(hashed)
	employee.Password = ""
	if employee.Role == "" {
		employee.Role = models.RoleEmployee
	}
	return s.repo.Create(employee)
}
