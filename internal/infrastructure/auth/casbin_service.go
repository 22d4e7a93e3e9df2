package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	E, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := E.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E}, nil
}

// SeedDefaultPolicies installs the route table for a fresh database.
// Admins own the whole /admin surface; every authenticated role can read
// its own profile and revoke its own session.
func (s *CasbinService) SeedDefaultPolicies() error {
	rules := [][]string{
		{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
		{"role_admin", "/auth/me", "GET"},
		{"role_admin", "/auth/logout", "POST"},
		{"role_staff", "/auth/me", "GET"},
		{"role_staff", "/auth/logout", "POST"},
	}
	for _, r := range rules {
		if _, err := s.E.AddPolicy(r[0], r[1], r[2]); err != nil {
			return err
		}
	}
	return nil
}
