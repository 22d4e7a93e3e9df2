package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
	"github.com/NguyenZak/ikigai-app-sub001/internal/mocks"
)

func newCustomerRouter(svc domain.CustomerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCustomerHandlers(svc)
	r := gin.New()
	r.POST("/customers", h.Intake)
	r.GET("/admin/customers", h.List)
	r.POST("/admin/customers", h.Create)
	r.GET("/admin/customers/:id", h.Get)
	r.PUT("/admin/customers/:id", h.Update)
	r.DELETE("/admin/customers/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerHandlers_Intake(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMock      func(*mocks.MockCustomerService)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "new lead created",
			body: map[string]interface{}{"name": "An", "phone": "0901234567"},
			setupMock: func(svc *mocks.MockCustomerService) {
				svc.CreateFromIntakeFunc = func(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error) {
					return &domain.IntakeResult{
						Customer: &domain.Customer{
							ID: 1, Name: req.Name, Phone: req.Phone,
							Source: domain.SourceWebsite, Status: domain.StatusNew,
							ProcessingStatus: domain.ProcessingPending,
						},
						Created: true,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				customer := body["customer"].(map[string]interface{})
				assert.Equal(t, "NEW", customer["status"])
				assert.Equal(t, "PENDING", customer["processingStatus"])
				assert.Equal(t, "WEBSITE", customer["source"])
			},
		},
		{
			name: "repeat submission returns the original record",
			body: map[string]interface{}{"name": "Binh", "phone": "0901234567"},
			setupMock: func(svc *mocks.MockCustomerService) {
				svc.CreateFromIntakeFunc = func(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error) {
					return &domain.IntakeResult{
						Customer: &domain.Customer{ID: 1, Name: "An", Phone: "0901234567"},
						Created:  false,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				customer := body["customer"].(map[string]interface{})
				assert.Equal(t, "An", customer["name"])
			},
		},
		{
			name: "validation failure lists the failing fields",
			body: map[string]interface{}{"email": "broken"},
			setupMock: func(svc *mocks.MockCustomerService) {
				svc.CreateFromIntakeFunc = func(ctx context.Context, req domain.IntakeRequest) (*domain.IntakeResult, error) {
					verr := domain.NewValidationError()
					verr.Add("name", "name is required")
					verr.Add("phone", "phone is required")
					verr.Add("email", "email is not a valid address")
					return nil, verr
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				errs := body["errors"].(map[string]interface{})
				assert.Contains(t, errs, "name")
				assert.Contains(t, errs, "phone")
				assert.Contains(t, errs, "email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCustomerService()
			tt.setupMock(svc)
			r := newCustomerRouter(svc)

			w := doJSON(t, r, http.MethodPost, "/customers", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.checkBody(t, body)
		})
	}
}

func TestCustomerHandlers_List_PaginationEnvelope(t *testing.T) {
	svc := mocks.NewMockCustomerService()
	svc.ListFunc = func(ctx context.Context, filter domain.CustomerFilter) (*domain.CustomerPage, error) {
		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 10, filter.Limit)
		assert.Equal(t, "an", filter.Search)
		assert.Equal(t, domain.StatusNew, filter.Status)
		return &domain.CustomerPage{
			Customers:  make([]domain.Customer, 3),
			Total:      23,
			Page:       3,
			Limit:      10,
			TotalPages: 3,
		}, nil
	}
	r := newCustomerRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/admin/customers?page=3&limit=10&search=an&status=NEW", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(23), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Len(t, body["customers"], 3)
}

func TestCustomerHandlers_List_RejectsMalformedPagination(t *testing.T) {
	for _, query := range []string{"page=abc", "page=-5", "page=0", "limit=abc", "limit=0", "limit=-1"} {
		t.Run(query, func(t *testing.T) {
			svc := mocks.NewMockCustomerService()
			r := newCustomerRouter(svc)

			w := doJSON(t, r, http.MethodGet, "/admin/customers?"+query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, svc.Calls["List"])
		})
	}
}

func TestCustomerHandlers_Get(t *testing.T) {
	t.Run("malformed id is a client error before any lookup", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		r := newCustomerRouter(svc)

		w := doJSON(t, r, http.MethodGet, "/admin/customers/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.Calls["Get"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		r := newCustomerRouter(svc)

		w := doJSON(t, r, http.MethodGet, "/admin/customers/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("resolves the assigned user", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.GetFunc = func(ctx context.Context, id uint) (*domain.CustomerDetail, error) {
			return &domain.CustomerDetail{
				Customer:     domain.Customer{ID: id, Name: "An", Phone: "090"},
				AssignedUser: &domain.Assignee{ID: 2, Name: "Chi", Email: "chi@venue.example"},
			}, nil
		}
		r := newCustomerRouter(svc)

		w := doJSON(t, r, http.MethodGet, "/admin/customers/1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		customer := body["customer"].(map[string]interface{})
		assigned := customer["assignedUser"].(map[string]interface{})
		assert.Equal(t, "Chi", assigned["name"])
	})
}

func TestCustomerHandlers_Update_FieldConversion(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		wantField      string
		checkRequest   func(t *testing.T, req domain.UpdateRequest)
	}{
		{
			name: "non-numeric assignedTo",
			body: map[string]interface{}{
				"name": "An", "phone": "090", "assignedTo": "chi",
			},
			expectedStatus: http.StatusBadRequest,
			wantField:      "assignedTo",
		},
		{
			name: "garbage follow-up date",
			body: map[string]interface{}{
				"name": "An", "phone": "090", "nextFollowUpDate": "tomorrow",
			},
			expectedStatus: http.StatusBadRequest,
			wantField:      "nextFollowUpDate",
		},
		{
			name: "empty assignedTo clears the assignment",
			body: map[string]interface{}{
				"name": "An", "phone": "090", "assignedTo": "",
			},
			expectedStatus: http.StatusOK,
			checkRequest: func(t *testing.T, req domain.UpdateRequest) {
				assert.Nil(t, req.AssignedTo)
			},
		},
		{
			name: "date-only follow-up accepted",
			body: map[string]interface{}{
				"name": "An", "phone": "090", "assignedTo": "2", "nextFollowUpDate": "2026-09-01",
			},
			expectedStatus: http.StatusOK,
			checkRequest: func(t *testing.T, req domain.UpdateRequest) {
				require.NotNil(t, req.AssignedTo)
				assert.Equal(t, uint(2), *req.AssignedTo)
				require.NotNil(t, req.NextFollowUpDate)
				assert.Equal(t, 2026, req.NextFollowUpDate.Year())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCustomerService()
			var captured *domain.UpdateRequest
			svc.UpdateFunc = func(ctx context.Context, id uint, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
				captured = &req
				return &domain.CustomerDetail{Customer: domain.Customer{ID: id, Name: req.Name, Phone: req.Phone}}, nil
			}
			r := newCustomerRouter(svc)

			w := doJSON(t, r, http.MethodPut, "/admin/customers/5", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantField != "" {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				errs := body["errors"].(map[string]interface{})
				assert.Contains(t, errs, tt.wantField)
				assert.Equal(t, 0, svc.Calls["Update"], "conversion failures must precede the service call")
				return
			}
			require.NotNil(t, captured)
			if tt.checkRequest != nil {
				tt.checkRequest(t, *captured)
			}
		})
	}
}

func TestCustomerHandlers_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		r := newCustomerRouter(svc)

		w := doJSON(t, r, http.MethodDelete, "/admin/customers/5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("did not exist", func(t *testing.T) {
		svc := mocks.NewMockCustomerService()
		svc.DeleteFunc = func(ctx context.Context, id uint) error {
			return domain.ErrCustomerNotFound
		}
		r := newCustomerRouter(svc)

		w := doJSON(t, r, http.MethodDelete, "/admin/customers/5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandlers_Create_DuplicatePhone(t *testing.T) {
	svc := mocks.NewMockCustomerService()
	svc.CreateFunc = func(ctx context.Context, req domain.UpdateRequest) (*domain.CustomerDetail, error) {
		return nil, domain.ErrCustomerExists
	}
	r := newCustomerRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/admin/customers", map[string]interface{}{"name": "An", "phone": "090"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomerHandlers_StoreFaultIsGeneric(t *testing.T) {
	svc := mocks.NewMockCustomerService()
	svc.GetFunc = func(ctx context.Context, id uint) (*domain.CustomerDetail, error) {
		return nil, context.DeadlineExceeded
	}
	r := newCustomerRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/admin/customers/1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadline", "store details must not leak to the caller")
}
