package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// CustomerHandlers handles the public intake endpoint and the admin
// customer management endpoints
type CustomerHandlers struct {
	customerSvc domain.CustomerService
}

// NewCustomerHandlers creates new customer handlers
func NewCustomerHandlers(customerSvc domain.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerSvc: customerSvc}
}

// IntakeRequest represents a public booking-inquiry submission
type IntakeRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Province     string `json:"province"`
	ProvinceName string `json:"provinceName"`
	Ward         string `json:"ward"`
	WardName     string `json:"wardName"`
	Source       string `json:"source"`
	Notes        string `json:"notes"`
}

// CustomerWriteRequest represents a staff-side full-replace write.
// Omitted optional fields clear their columns; omitted source, status
// and processingStatus fall back to defaults.
type CustomerWriteRequest struct {
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email"`
	Province         *string `json:"province"`
	ProvinceName     *string `json:"provinceName"`
	Ward             *string `json:"ward"`
	WardName         *string `json:"wardName"`
	Source           string  `json:"source"`
	Status           string  `json:"status"`
	ProcessingStatus string  `json:"processingStatus"`
	AssignedTo       *string `json:"assignedTo"`
	LastContactDate  *string `json:"lastContactDate"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	Notes            *string `json:"notes"`
}

type customerResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Email            *string         `json:"email"`
	Province         *string         `json:"province"`
	ProvinceName     *string         `json:"provinceName"`
	Ward             *string         `json:"ward"`
	WardName         *string         `json:"wardName"`
	Source           string          `json:"source"`
	Status           string          `json:"status"`
	ProcessingStatus string          `json:"processingStatus"`
	AssignedTo       *uint           `json:"assignedTo"`
	AssignedUser     *assigneeDetail `json:"assignedUser,omitempty"`
	LastContactDate  *time.Time      `json:"lastContactDate"`
	NextFollowUpDate *time.Time      `json:"nextFollowUpDate"`
	Notes            *string         `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type assigneeDetail struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newCustomerResponse(c *domain.Customer, assignee *domain.Assignee) customerResponse {
	resp := customerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Email:            c.Email,
		Province:         c.Province,
		ProvinceName:     c.ProvinceName,
		Ward:             c.Ward,
		WardName:         c.WardName,
		Source:           c.Source,
		Status:           c.Status,
		ProcessingStatus: c.ProcessingStatus,
		AssignedTo:       c.AssignedTo,
		LastContactDate:  c.LastContactDate,
		NextFollowUpDate: c.NextFollowUpDate,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if assignee != nil {
		resp.AssignedUser = &assigneeDetail{ID: assignee.ID, Name: assignee.Name, Email: assignee.Email}
	}
	return resp
}

// Intake handles POST /customers, the unauthenticated lead-capture path.
// Repeat submissions with the same phone return the original record.
func (h *CustomerHandlers) Intake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	result, err := h.customerSvc.CreateFromIntake(c.Request.Context(), domain.IntakeRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Province:     req.Province,
		ProvinceName: req.ProvinceName,
		Ward:         req.Ward,
		WardName:     req.WardName,
		Source:       req.Source,
		Notes:        req.Notes,
	})
	if err != nil {
		respondCustomerError(c, err)
		return
	}

	status := http.StatusOK
	message := "We already have your inquiry on file. Our staff will contact you soon."
	if result.Created {
		status = http.StatusCreated
		message = "Thank you for your inquiry. Our staff will contact you soon."
	}
	c.JSON(status, gin.H{
		"success":  true,
		"message":  message,
		"customer": newCustomerResponse(result.Customer, nil),
	})
}

// List handles GET /admin/customers
func (h *CustomerHandlers) List(c *gin.Context) {
	page, err := parsePositiveQuery(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}
	limit, err := parsePositiveQuery(c, "limit", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	result, err := h.customerSvc.List(c.Request.Context(), domain.CustomerFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Source: c.Query("source"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondCustomerError(c, err)
		return
	}

	customers := make([]customerResponse, 0, len(result.Customers))
	for i := range result.Customers {
		customers = append(customers, newCustomerResponse(&result.Customers[i], nil))
	}
	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"pagination": gin.H{
			"page":       result.Page,
			"limit":      result.Limit,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}

// Get handles GET /admin/customers/:id
func (h *CustomerHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.customerSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(&detail.Customer, detail.AssignedUser)})
}

// Create handles POST /admin/customers, the staff-entry path
func (h *CustomerHandlers) Create(c *gin.Context) {
	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	detail, err := h.customerSvc.Create(c.Request.Context(), *req)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": newCustomerResponse(&detail.Customer, detail.AssignedUser)})
}

// Update handles PUT /admin/customers/:id with full-replace semantics
func (h *CustomerHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	detail, err := h.customerSvc.Update(c.Request.Context(), id, *req)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(&detail.Customer, detail.AssignedUser)})
}

// Delete handles DELETE /admin/customers/:id
func (h *CustomerHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.customerSvc.Delete(c.Request.Context(), id); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// bindWriteRequest decodes a full-replace write and converts the
// stringly-typed assignee and date fields. Conversion failures are
// client errors reported before the service is called.
func bindWriteRequest(c *gin.Context) (*domain.UpdateRequest, bool) {
	var req CustomerWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return nil, false
	}

	verr := domain.NewValidationError()
	out := &domain.UpdateRequest{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Province:         req.Province,
		ProvinceName:     req.ProvinceName,
		Ward:             req.Ward,
		WardName:         req.WardName,
		Source:           req.Source,
		Status:           req.Status,
		ProcessingStatus: req.ProcessingStatus,
		Notes:            req.Notes,
	}

	if req.AssignedTo != nil && *req.AssignedTo != "" {
		id, err := strconv.ParseUint(*req.AssignedTo, 10, 32)
		if err != nil {
			verr.Add("assignedTo", "assignedTo must be a numeric staff id")
		} else {
			assignee := uint(id)
			out.AssignedTo = &assignee
		}
	}
	if t, ok := parseOptionalDate(req.LastContactDate, "lastContactDate", verr); ok {
		out.LastContactDate = t
	}
	if t, ok := parseOptionalDate(req.NextFollowUpDate, "nextFollowUpDate", verr); ok {
		out.NextFollowUpDate = t
	}

	if verr.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": verr.Fields})
		return nil, false
	}
	return out, true
}

func parseOptionalDate(raw *string, field string, verr *domain.ValidationError) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return &t, true
	}
	verr.Add(field, field+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil, false
}

// parseID rejects non-numeric path ids before any repository call
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return 0, false
	}
	return uint(id), true
}

// parsePositiveQuery reads a 1-based paging parameter. Zero and negative
// values are client errors, same as non-numeric input.
func parsePositiveQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return v, nil
}

// respondCustomerError maps service failures to the wire. Store faults
// never leak their details to the caller.
func respondCustomerError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": verr.Fields})
	case errors.Is(err, domain.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, domain.ErrCustomerExists):
		c.JSON(http.StatusConflict, gin.H{"error": "A customer with this phone number already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
