package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
	"github.com/NguyenZak/ikigai-app-sub001/internal/mocks"
)

const testCookie = "ikigai_session"

func newAuthRouter(svc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(svc, testCookie, false)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", func(c *gin.Context) {
		// Stands in for the session middleware on the gated group.
		if tok := c.GetHeader("X-Test-Token"); tok != "" {
			c.Set("session_token", tok)
		}
		h.Logout(c)
	})
	return r
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockAuthService)
		expectedStatus int
		wantCookie     bool
	}{
		{
			name: "valid credentials set the session cookie",
			body: `{"email":"chi@venue.example","password":"secret123"}`,
			setupMock: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:      &domain.User{ID: 2, Name: "Chi", Email: email, Role: domain.RoleAdmin},
						Token:     "tok-abc",
						ExpiresAt: time.Now().Add(time.Hour),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			wantCookie:     true,
		},
		{
			name:           "wrong password",
			body:           `{"email":"chi@venue.example","password":"nope"}`,
			setupMock:      func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "inactive account",
			body: `{"email":"chi@venue.example","password":"secret123"}`,
			setupMock: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrUserInactive
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing email",
			body:           `{"password":"secret123"}`,
			setupMock:      func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMock(svc)
			r := newAuthRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			cookie := sessionCookie(w)
			if tt.wantCookie {
				require.NotNil(t, cookie)
				assert.Equal(t, "tok-abc", cookie.Value)
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, cookie, "denied logins must not set a cookie")
			}
		})
	}
}

func TestAuthHandlers_Logout(t *testing.T) {
	t.Run("deletes the session and clears the cookie", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		var deleted string
		svc.LogoutFunc = func(ctx context.Context, token string) error {
			deleted = token
			return nil
		}
		r := newAuthRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("X-Test-Token", "tok-abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-abc", deleted)
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("no session in context", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		r := newAuthRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockAuthService()
	svc.ProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
		return &domain.User{ID: userID, Name: "Chi", Email: "chi@venue.example", Role: domain.RoleStaff}, nil
	}
	h := NewAuthHandlers(svc, testCookie, false)
	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", "2")
		h.Me(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(2), user["id"])
	assert.Equal(t, "STAFF", user["role"])
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}
