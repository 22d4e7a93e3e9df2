package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenZak/ikigai-app-sub001/internal/mocks"
)

func TestPolicyService_AddPolicyPersists(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	var added []interface{}
	saved := false
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		added = params
		return true, nil
	}
	enforcer.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)
	require.NoError(t, svc.AddPolicy("role_staff", "/admin/customers", "GET"))

	assert.Equal(t, []interface{}{"role_staff", "/admin/customers", "GET"}, added)
	assert.True(t, saved, "policy changes must be written through to storage")
}

func TestPolicyService_RemovePolicyFault(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.RemovePolicyFunc = func(params ...interface{}) (bool, error) {
		return false, errors.New("adapter unavailable")
	}
	saved := false
	enforcer.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)
	assert.Error(t, svc.RemovePolicy("role_staff", "/admin/customers", "GET"))
	assert.False(t, saved, "a failed removal must not be persisted")
}

func TestPolicyService_CheckPermission(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.EnforceFunc = func(rvals ...interface{}) (bool, error) {
		return rvals[0] == "role_admin", nil
	}

	svc := NewPolicyServiceWithEnforcer(enforcer)

	allowed, err := svc.CheckPermission("role_admin", "/admin/customers", "DELETE")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.CheckPermission("role_staff", "/admin/customers", "DELETE")
	require.NoError(t, err)
	assert.False(t, allowed)
}
