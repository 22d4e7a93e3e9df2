package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// CustomerServiceImpl implements domain.CustomerService. The
// authorization gate decides who may call the mutating operations; this
// service decides what mutations are legal.
type CustomerServiceImpl struct {
	customerRepo domain.CustomerRepository
	userRepo     domain.UserRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo domain.CustomerRepository,
	userRepo domain.UserRepository,
	logger *zap.Logger,
) domain.CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateFromIntake implements domain.CustomerService. It is idempotent on
// phone: a repeat submission returns the original record unchanged, never
// overwriting any of its fields. A concurrent duplicate that loses the
// insert race hits the unique constraint and is resolved the same way.
func (s *CustomerServiceImpl) CreateFromIntake(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error) {
	verr := domain.NewValidationError()
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" {
		verr.Add("name", "name is required")
	}
	if phone == "" {
		verr.Add("phone", "phone is required")
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			verr.Add("email", "email is not a valid address")
		}
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.SourceWebsite
	} else if !domain.ValidSource(source) {
		verr.Add("source", "unknown source")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	existing, err := s.customerRepo.FindByPhone(ctx, phone)
	if err == nil {
		return &domain.IntakeResult{Customer: existing, Created: false}, nil
	}
	if err != domain.ErrCustomerNotFound {
		s.logger.Error("intake dedup lookup failed", zap.String("phone", phone), zap.Error(err))
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}

	customer := &domain.Customer{
		Name:             name,
		Phone:            phone,
		Email:            optString(req.Email),
		Province:         optString(req.Province),
		ProvinceName:     optString(req.ProvinceName),
		Ward:             optString(req.Ward),
		WardName:         optString(req.WardName),
		Source:           source,
		Status:           domain.StatusNew,
		ProcessingStatus: domain.ProcessingPending,
		Notes:            optString(req.Notes),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if err == domain.ErrCustomerExists {
			// Lost the race to a simultaneous submission; return the winner.
			winner, ferr := s.customerRepo.FindByPhone(ctx, phone)
			if ferr != nil {
				return nil, fmt.Errorf("failed to load existing customer: %w", ferr)
			}
			return &domain.IntakeResult{Customer: winner, Created: false}, nil
		}
		s.logger.Error("intake insert failed", zap.String("phone", phone), zap.Error(err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &domain.IntakeResult{Customer: customer, Created: true}, nil
}

// Create implements domain.CustomerService: the staff-entry path with the
// full field set. Unlike intake it does not merge on phone; a duplicate
// surfaces as ErrCustomerExists.
func (s *CustomerServiceImpl) Create(ctx context.Context, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
	if req.Source == "" {
		req.Source = domain.SourceAdmin
	}
	customer, err := s.buildCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if err == domain.ErrCustomerExists {
			return nil, err
		}
		s.logger.Error("customer create failed", zap.String("phone", customer.Phone), zap.Error(err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.withAssignee(ctx, customer), nil
}

// List implements domain.CustomerService
func (s *CustomerServiceImpl) List(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("customer list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &domain.CustomerPage{
		Customers:  customers,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Get implements domain.CustomerService
func (s *CustomerServiceImpl) Get(ctx context.Context, id uint) (*domain.CustomerDetail, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			return nil, err
		}
		s.logger.Error("customer lookup failed", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return s.withAssignee(ctx, customer), nil
}

// Update implements domain.CustomerService with full-replace semantics:
// optional fields not supplied are cleared, while source, status and
// processing status fall back to their defaults instead of being cleared
// so the lead never leaves the workflow.
func (s *CustomerServiceImpl) Update(ctx context.Context, id uint, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
	customer, err := s.buildCustomer(ctx, req)
	if err != nil {
		return nil, err
	}
	customer.ID = id

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if err == domain.ErrCustomerNotFound || err == domain.ErrCustomerExists {
			return nil, err
		}
		s.logger.Error("customer update failed", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	updated, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload customer: %w", err)
	}
	return s.withAssignee(ctx, updated), nil
}

// Delete implements domain.CustomerService. Hard delete; a second call
// for the same id reports ErrCustomerNotFound rather than a store fault.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if err == domain.ErrCustomerNotFound {
			return err
		}
		s.logger.Error("customer delete failed", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

// buildCustomer validates a full-replace write and materializes the row
// to store. Omitted enum fields default; an assignee must reference an
// existing active staff account.
func (s *CustomerServiceImpl) buildCustomer(ctx context.Context, req domain.UpdateRequest) (*domain.Customer, error) {
	verr := domain.NewValidationError()
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" {
		verr.Add("name", "name is required")
	}
	if phone == "" {
		verr.Add("phone", "phone is required")
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*req.Email)); err != nil {
			verr.Add("email", "email is not a valid address")
		}
	}

	source := req.Source
	if source == "" {
		source = domain.SourceWebsite
	} else if !domain.ValidSource(source) {
		verr.Add("source", "unknown source")
	}
	status := req.Status
	if status == "" {
		status = domain.StatusNew
	} else if !domain.ValidStatus(status) {
		verr.Add("status", "unknown status")
	}
	processing := req.ProcessingStatus
	if processing == "" {
		processing = domain.ProcessingPending
	} else if !domain.ValidProcessingStatus(processing) {
		verr.Add("processingStatus", "unknown processing status")
	}

	if req.AssignedTo != nil {
		user, err := s.userRepo.FindByID(ctx, *req.AssignedTo)
		if err != nil {
			if err == domain.ErrUserNotFound {
				verr.Add("assignedTo", "assigned staff user not found")
			} else {
				return nil, fmt.Errorf("failed to resolve assignee: %w", err)
			}
		} else if !user.IsActive {
			verr.Add("assignedTo", "assigned staff user is inactive")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	return &domain.Customer{
		Name:             name,
		Phone:            phone,
		Email:            optStringPtr(req.Email),
		Province:         optStringPtr(req.Province),
		ProvinceName:     optStringPtr(req.ProvinceName),
		Ward:             optStringPtr(req.Ward),
		WardName:         optStringPtr(req.WardName),
		Source:           source,
		Status:           status,
		ProcessingStatus: processing,
		AssignedTo:       req.AssignedTo,
		LastContactDate:  req.LastContactDate,
		NextFollowUpDate: req.NextFollowUpDate,
		Notes:            optStringPtr(req.Notes),
	}, nil
}

// withAssignee resolves the assigned staff identity, if any. A dangling
// reference is logged and rendered as unassigned rather than failing the
// read.
func (s *CustomerServiceImpl) withAssignee(ctx context.Context, customer *domain.Customer) *domain.CustomerDetail {
	detail := &domain.CustomerDetail{Customer: *customer}
	if customer.AssignedTo == nil {
		return detail
	}
	user, err := s.userRepo.FindByID(ctx, *customer.AssignedTo)
	if err != nil {
		s.logger.Warn("could not resolve assignee",
			zap.Uint("customer_id", customer.ID),
			zap.Uint("assigned_to", *customer.AssignedTo),
			zap.Error(err))
		return detail
	}
	detail.AssignedUser = &domain.Assignee{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	return detail
}

// optString normalizes an optional form value: blank means absent, never
// an empty string in storage.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return optString(*s)
}
