package service

import (
	"testing"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *AccessGate {
	t.Helper()
	gate, err := NewAccessGate(map[models.Role]string{
		models.TokenTeamRole:    "54321",
		models.ShippingTeamRole: "12345",
	})
	require.NoError(t, err)
	return gate
}

func TestAccessGate_Login_Success(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Login(models.ShippingTeamRole, "12345")

	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, models.ShippingTeamRole, session.Role)
	assert.NotEmpty(t, session.ID)
}

func TestAccessGate_Login_DistinctSessions(t *testing.T) {
	gate := newTestGate(t)

	first, err := gate.Login(models.TokenTeamRole, "54321")
	require.NoError(t, err)
	second, err := gate.Login(models.TokenTeamRole, "54321")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAccessGate_Login_Rejected(t *testing.T) {
	gate := newTestGate(t)
	testCases := []struct {
		name     string
		role     models.Role
		password string
	}{
		{name: "wrong password", role: models.ShippingTeamRole, password: "wrong"},
		{name: "other role password", role: models.ShippingTeamRole, password: "54321"},
		{name: "unknown role", role: models.Role("Admin"), password: "12345"},
		{name: "empty password", role: models.TokenTeamRole, password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := gate.Login(tc.role, tc.password)

			var credErr *customerror.InvalidCredentialsError
			require.ErrorAs(t, err, &credErr)
			assert.Equal(t, "invalid role or password", err.Error())
			assert.False(t, session.Authenticated)
		})
	}
}

func TestNewAccessGate_InvalidConfig(t *testing.T) {
	_, err := NewAccessGate(map[models.Role]string{models.Role("Ops"): "x"})
	assert.Error(t, err)

	_, err = NewAccessGate(map[models.Role]string{models.TokenTeamRole: ""})
	assert.Error(t, err)
}
