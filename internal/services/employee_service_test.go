package services_test

import (
	"errors"
	"testing"

	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newEmployeeService() (*services.EmployeeService, *MockEmployeeRepository) {
	employeeRepo := new(MockEmployeeRepository)
	storeRepo := new(MockStoreRepository)
	storeRepo.On("GetByID", storeID).Return(&models.Store{ID: storeID, OwnerID: ownerID}, nil).Maybe()
	return services.NewEmployeeService(employeeRepo, services.NewStoreService(storeRepo)), employeeRepo
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	service, mockRepo := newEmployeeService()

	employee := &models.Employee{Username: "budi", Password: "s3cret"}
	mockRepo.On("GetByUsername", "budi").Return(nil, errors.New("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil).Once()

	err := service.CreateEmployee(ownerID, storeID, employee)

	assert.NoError(t, err)
	assert.Empty(t, employee.Password)
	assert.Equal(t, models.RoleEmployee, employee.Role)
	assert.Equal(t, storeID, employee.StoreID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("s3cret")))
	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_CreateEmployeeConflict(t *testing.T) {
	service, mockRepo := newEmployeeService()

	mockRepo.On("GetByUsername", "budi").Return(&models.Employee{ID: "1"}, nil).Once()

	err := service.CreateEmployee(ownerID, storeID, &models.Employee{Username: "budi", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestEmployeeService_GetEmployees(t *testing.T) {
	service, mockRepo := newEmployeeService()

	expected := []models.Employee{{ID: "1", Username: "budi", Role: models.RoleManager, StoreID: storeID}}
	mockRepo.On("GetAllByStore", storeID).Return(expected, nil).Once()

	employees, err := service.GetEmployees(ownerID, storeID)
	assert.NoError(t, err)
	assert.Equal(t, expected, employees)

	_, err = service.GetEmployees("someone-else", storeID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
