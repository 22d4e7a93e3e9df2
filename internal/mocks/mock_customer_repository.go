package mocks

import (
	"context"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// MockCustomerRepository implements domain.CustomerRepository interface for testing
type MockCustomerRepository struct {
	CreateFunc      func(ctx context.Context, customer *domain.Customer) error
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.Customer, error)
	FindByPhoneFunc func(ctx context.Context, phone string) (*domain.Customer, error)
	ListFunc        func(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, int64, error)
	UpdateFunc      func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

// NewMockCustomerRepository creates a new MockCustomerRepository with default behaviors
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

// Create creates a new customer
func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a customer by ID
func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCustomerNotFound
}

// FindByPhone finds a customer by phone
func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrCustomerNotFound
}

// List lists customers matching a filter
func (m *MockCustomerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty
	return nil, 0, nil
}

// Update updates a customer
func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	// Default behavior: success
	return nil
}

// Delete deletes a customer by ID
func (m *MockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CustomerRepository = (*MockCustomerRepository)(nil)
