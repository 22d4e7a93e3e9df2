package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// CustomerRepositoryImpl implements domain.CustomerRepository using GORM
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// DBCustomer represents the database model for Customer (with GORM tags).
// The unique index on phone backs the intake dedup rule: a concurrent
// duplicate submission loses at the constraint, not in application code.
type DBCustomer struct {
	ID               uint       `gorm:"primaryKey"`
	Name             string     `gorm:"size:255;not null"`
	Phone            string     `gorm:"uniqueIndex;size:32;not null"`
	Email            *string    `gorm:"size:255"`
	Province         *string    `gorm:"size:32"`
	ProvinceName     *string    `gorm:"size:255"`
	Ward             *string    `gorm:"size:32"`
	WardName         *string    `gorm:"size:255"`
	Source           string     `gorm:"index;size:32;not null"`
	Status           string     `gorm:"index;size:32;not null"`
	ProcessingStatus string     `gorm:"index;size:32;not null"`
	AssignedTo       *uint      `gorm:"index"`
	LastContactDate  *time.Time
	NextFollowUpDate *time.Time
	Notes            *string
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBCustomer) TableName() string {
	return "customers"
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *domain.Customer) error {
	dbCustomer := r.domainToDB(customer)
	if err := r.db.WithContext(ctx).Create(dbCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCustomerExists
		}
		return err
	}
	customer.ID = dbCustomer.ID
	customer.CreatedAt = dbCustomer.CreatedAt
	customer.UpdatedAt = dbCustomer.UpdatedAt
	return nil
}

// FindByID implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCustomer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCustomer), nil
}

// FindByPhone implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbCustomer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCustomer), nil
}

// List implements domain.CustomerRepository: case-insensitive substring
// match over name/phone/email, exact status and source, ordered by
// creation time descending.
func (r *CustomerRepositoryImpl) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&DBCustomer{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var dbCustomers []DBCustomer
	err := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&dbCustomers).Error
	if err != nil {
		return nil, 0, err
	}

	customers := make([]domain.Customer, 0, len(dbCustomers))
	for i := range dbCustomers {
		customers = append(customers, *r.dbToDomain(&dbCustomers[i]))
	}
	return customers, total, nil
}

// Update implements domain.CustomerRepository. It writes every column so
// cleared optionals overwrite previous values with NULL.
func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *domain.Customer) error {
	dbCustomer := r.domainToDB(customer)
	result := r.db.WithContext(ctx).Model(&DBCustomer{}).Where("id = ?", customer.ID).
		Select("*").Omit("id", "created_at").Updates(dbCustomer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCustomerExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete implements domain.CustomerRepository. Hard delete; reports
// ErrCustomerNotFound when no row matched.
func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBCustomer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// domainToDB converts domain customer to database customer
func (r *CustomerRepositoryImpl) domainToDB(customer *domain.Customer) *DBCustomer {
	return &DBCustomer{
		ID:               customer.ID,
		Name:             customer.Name,
		Phone:            customer.Phone,
		Email:            customer.Email,
		Province:         customer.Province,
		ProvinceName:     customer.ProvinceName,
		Ward:             customer.Ward,
		WardName:         customer.WardName,
		Source:           customer.Source,
		Status:           customer.Status,
		ProcessingStatus: customer.ProcessingStatus,
		AssignedTo:       customer.AssignedTo,
		LastContactDate:  customer.LastContactDate,
		NextFollowUpDate: customer.NextFollowUpDate,
		Notes:            customer.Notes,
	}
}

// dbToDomain converts database customer to domain customer
func (r *CustomerRepositoryImpl) dbToDomain(dbCustomer *DBCustomer) *domain.Customer {
	return &domain.Customer{
		ID:               dbCustomer.ID,
		Name:             dbCustomer.Name,
		Phone:            dbCustomer.Phone,
		Email:            dbCustomer.Email,
		Province:         dbCustomer.Province,
		ProvinceName:     dbCustomer.ProvinceName,
		Ward:             dbCustomer.Ward,
		WardName:         dbCustomer.WardName,
		Source:           dbCustomer.Source,
		Status:           dbCustomer.Status,
		ProcessingStatus: dbCustomer.ProcessingStatus,
		AssignedTo:       dbCustomer.AssignedTo,
		LastContactDate:  dbCustomer.LastContactDate,
		NextFollowUpDate: dbCustomer.NextFollowUpDate,
		Notes:            dbCustomer.Notes,
		CreatedAt:        dbCustomer.CreatedAt,
		UpdatedAt:        dbCustomer.UpdatedAt,
	}
}
