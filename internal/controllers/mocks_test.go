package controllers_test

import (
	"context"
	"sync"

	"tokoadmin/internal/models"
	"tokoadmin/internal/notify"

	"github.com/stretchr/testify/mock"
)

// MockGateway implements the store, product and employee gateways.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListStores(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockGateway) CreateStore(ctx context.Context, store models.Store) (*models.Store, error) {
	args := m.Called(ctx, store)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockGateway) ListProducts(ctx context.Context, storeID models.ID) ([]models.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockGateway) CreateProduct(ctx context.Context, storeID models.ID, product models.Product) (*models.Product, error) {
	args := m.Called(ctx, storeID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockGateway) UpdateProduct(ctx context.Context, storeID, id models.ID, product models.Product) (*models.Product, error) {
	args := m.Called(ctx, storeID, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockGateway) DeleteProduct(ctx context.Context, storeID, id models.ID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

func (m *MockGateway) ListEmployees(ctx context.Context, storeID models.ID) ([]models.Employee, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockGateway) CreateEmployee(ctx context.Context, storeID models.ID, employee models.Employee) (*models.Employee, error) {
	args := m.Called(ctx, storeID, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

// recorder collects notifications.
type recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recorder) Notify(_ context.Context, e notify.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) last() notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return notify.Event{}
	}
	return r.events[len(r.events)-1]
}
