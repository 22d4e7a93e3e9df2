package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
	"github.com/NguyenZak/ikigai-app-sub001/internal/infrastructure/auth"
	"github.com/NguyenZak/ikigai-app-sub001/internal/mocks"
	"github.com/NguyenZak/ikigai-app-sub001/internal/services"
)

const cookieName = "ikigai_session"

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(rbacModel)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = e.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	require.NoError(t, err)
	return e
}

// newGateRouter builds a minimal admin surface behind the full gate:
// session middleware first, then role enforcement, then a mutating
// handler whose calls the test counts.
func newGateRouter(t *testing.T, sessionRepo domain.SessionRepository, customerSvc *mocks.MockCustomerService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc := services.NewAuthService(
		mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockPasswordService(), time.Hour, zap.NewNop())

	r := gin.New()
	adm := r.Group("/admin").Use(SessionAuth(authSvc, cookieName), NewCasbinMW(newTestEnforcer(t)).Enforce())
	adm.DELETE("/customers/:id", func(c *gin.Context) {
		_ = customerSvc.Delete(c.Request.Context(), 1)
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})
	return r
}

func sessionStoreWith(sessions map[string]*domain.Session) *mocks.MockSessionRepository {
	repo := mocks.NewMockSessionRepository()
	repo.FindByTokenFunc = func(ctx context.Context, token string) (*domain.Session, error) {
		if s, ok := sessions[token]; ok {
			if s.ExpiresAt.Before(time.Now()) {
				return nil, domain.ErrSessionNotFound
			}
			return s, nil
		}
		return nil, domain.ErrSessionNotFound
	}
	return repo
}

func TestGate_AuthorizationPrecedence(t *testing.T) {
	sessions := map[string]*domain.Session{
		"admin-token": {
			Token: "admin-token", UserID: 1, Email: "admin@venue.example",
			Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour),
		},
		"staff-token": {
			Token: "staff-token", UserID: 2, Email: "staff@venue.example",
			Role: domain.RoleStaff, ExpiresAt: time.Now().Add(time.Hour),
		},
		"expired-token": {
			Token: "expired-token", UserID: 1, Email: "admin@venue.example",
			Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(-time.Hour),
		},
	}

	tests := []struct {
		name           string
		cookie         string
		expectedStatus int
	}{
		{
			name:           "no token",
			cookie:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			cookie:         "forged-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			cookie:         "expired-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "authenticated but not admin",
			cookie:         "staff-token",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin token",
			cookie:         "admin-token",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerSvc := mocks.NewMockCustomerService()
			r := newGateRouter(t, sessionStoreWith(sessions), customerSvc)

			req := httptest.NewRequest(http.MethodDelete, "/admin/customers/1", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, 0, customerSvc.Calls["Delete"],
					"a denied request must reach the repository zero times")
			} else {
				assert.Equal(t, 1, customerSvc.Calls["Delete"])
			}
		})
	}
}

func TestGate_DenialsDoNotRevealCause(t *testing.T) {
	sessions := map[string]*domain.Session{
		"expired-token": {
			Token: "expired-token", UserID: 1, Role: domain.RoleAdmin,
			ExpiresAt: time.Now().Add(-time.Hour),
		},
	}

	r := newGateRouter(t, sessionStoreWith(sessions), mocks.NewMockCustomerService())

	bodies := map[string]string{}
	for name, cookie := range map[string]string{"absent": "", "unknown": "forged", "expired": "expired-token"} {
		req := httptest.NewRequest(http.MethodDelete, "/admin/customers/1", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		bodies[name] = strings.TrimSpace(w.Body.String())
	}

	// Every 401 reads the same no matter why the token failed.
	assert.Equal(t, bodies["absent"], bodies["unknown"])
	assert.Equal(t, bodies["unknown"], bodies["expired"])
}

func TestGate_RevokedSessionObservedImmediately(t *testing.T) {
	sessions := map[string]*domain.Session{
		"admin-token": {
			Token: "admin-token", UserID: 1, Role: domain.RoleAdmin,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	customerSvc := mocks.NewMockCustomerService()
	r := newGateRouter(t, sessionStoreWith(sessions), customerSvc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/customers/1", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "admin-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Revoke and replay the identical request: no principal caching may
	// keep the old session alive.
	delete(sessions, "admin-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 1, customerSvc.Calls["Delete"])
}

func TestGate_SeededPoliciesCoverSessionRoutes(t *testing.T) {
	m, err := model.NewModelFromString(rbacModel)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	require.NoError(t, (&auth.CasbinService{E: enforcer}).SeedDefaultPolicies())

	sessions := map[string]*domain.Session{
		"admin-token": {
			Token: "admin-token", UserID: 1, Email: "admin@venue.example",
			Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour),
		},
		"staff-token": {
			Token: "staff-token", UserID: 2, Email: "staff@venue.example",
			Role: domain.RoleStaff, ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	authSvc := services.NewAuthService(
		mocks.NewMockUserRepository(), sessionStoreWith(sessions), mocks.NewMockPasswordService(), time.Hour, zap.NewNop())

	gin.SetMode(gin.TestMode)
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r := gin.New()
	authGrp := r.Group("/auth").Use(SessionAuth(authSvc, cookieName), NewCasbinMW(enforcer).Enforce())
	authGrp.GET("/me", ok)
	authGrp.POST("/logout", ok)
	adm := r.Group("/admin").Use(SessionAuth(authSvc, cookieName), NewCasbinMW(enforcer).Enforce())
	adm.GET("/customers", ok)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{"admin reads own profile", http.MethodGet, "/auth/me", "admin-token", http.StatusOK},
		{"admin revokes own session", http.MethodPost, "/auth/logout", "admin-token", http.StatusOK},
		{"admin reaches admin surface", http.MethodGet, "/admin/customers", "admin-token", http.StatusOK},
		{"staff reads own profile", http.MethodGet, "/auth/me", "staff-token", http.StatusOK},
		{"staff revokes own session", http.MethodPost, "/auth/logout", "staff-token", http.StatusOK},
		{"staff denied admin surface", http.MethodGet, "/admin/customers", "staff-token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.token})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
