package mocks

import (
	"context"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// MockCustomerService implements domain.CustomerService interface for testing
type MockCustomerService struct {
	CreateFromIntakeFunc func(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error)
	CreateFunc           func(ctx context.Context, req domain.UpdateRequest) (*domain.CustomerDetail, error)
	ListFunc             func(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerPage, error)
	GetFunc              func(ctx context.Context, id uint) (*domain.CustomerDetail, error)
	UpdateFunc           func(ctx context.Context, id uint, req domain.UpdateRequest) (*domain.CustomerDetail, error)
	DeleteFunc           func(ctx context.Context, id uint) error

	// Calls counts every invocation by operation name so tests can assert
	// that a rejected request performed zero mutations.
	Calls map[string]int
}

// NewMockCustomerService creates a new MockCustomerService with default behaviors
func NewMockCustomerService() *MockCustomerService {
	return &MockCustomerService{Calls: map[string]int{}}
}

func (m *MockCustomerService) record(op string) {
	if m.Calls != nil {
		m.Calls[op]++
	}
}

func (m *MockCustomerService) CreateFromIntake(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error) {
	m.record("CreateFromIntake")
	if m.CreateFromIntakeFunc != nil {
		return m.CreateFromIntakeFunc(ctx, req)
	}
	return &domain.IntakeResult{Customer: &domain.Customer{Name: req.Name, Phone: req.Phone}, Created: true}, nil
}

func (m *MockCustomerService) Create(ctx context.Context, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
	m.record("Create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &domain.CustomerDetail{}, nil
}

func (m *MockCustomerService) List(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerPage, error) {
	m.record("List")
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return &domain.CustomerPage{Page: filter.Page, Limit: filter.Limit}, nil
}

func (m *MockCustomerService) Get(ctx context.Context, id uint) (*domain.CustomerDetail, error) {
	m.record("Get")
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerService) Update(ctx context.Context, id uint, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
	m.record("Update")
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerService) Delete(ctx context.Context, id uint) error {
	m.record("Delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CustomerService = (*MockCustomerService)(nil)
