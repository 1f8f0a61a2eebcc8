package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestNormalize(t *testing.T) {
	t.Run("lowercases and trims the email", func(t *testing.T) {
		req := &LoginRequest{Email: "  Admin@Example.COM ", Password: "secret123"}

		email, password, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
		assert.Equal(t, "secret123", password)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, _, err := (&LoginRequest{Password: "secret123"}).Normalize()
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		_, _, err := (&LoginRequest{Email: "a@b.com"}).Normalize()
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestCreateAdminRequestNormalize(t *testing.T) {
	t.Run("defaults the role to admin", func(t *testing.T) {
		req := &CreateAdminRequest{Name: "Jo", Email: "Jo@Example.com", Password: "secret123"}

		account, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, account.Role)
		assert.Equal(t, "jo@example.com", account.Email)
		assert.True(t, account.IsActive)
	})

	t.Run("accepts super-admin role", func(t *testing.T) {
		req := &CreateAdminRequest{Name: "Jo", Email: "jo@example.com", Password: "secret123", Role: RoleSuperAdmin}

		account, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, RoleSuperAdmin, account.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		req := &CreateAdminRequest{Name: "Jo", Email: "jo@example.com", Password: "secret123", Role: "owner"}

		_, err := req.Normalize()
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects short password", func(t *testing.T) {
		req := &CreateAdminRequest{Name: "Jo", Email: "jo@example.com", Password: "12345"}

		_, err := req.Normalize()
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		req := &CreateAdminRequest{Name: "Jo", Email: "not-an-email", Password: "secret123"}

		_, err := req.Normalize()
		assert.ErrorIs(t, err, ErrFieldsRequired)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := (&CreateAdminRequest{Email: "jo@example.com", Password: "secret123"}).Normalize()
		assert.ErrorIs(t, err, ErrFieldsRequired)
	})
}

func TestUpdateAdminRequestChanges(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("collects supplied fields", func(t *testing.T) {
		req := &UpdateAdminRequest{
			Name:     strPtr(" New Name "),
			Email:    strPtr("New@Example.com"),
			IsActive: boolPtr(false),
			Password: strPtr("longenough"),
		}

		set, password, err := req.Changes()
		require.NoError(t, err)
		assert.Equal(t, "New Name", set["name"])
		assert.Equal(t, "new@example.com", set["email"])
		assert.Equal(t, false, set["isActive"])
		assert.Equal(t, "longenough", password)
		assert.NotContains(t, set, "password")
	})

	t.Run("empty request yields empty set", func(t *testing.T) {
		set, password, err := (&UpdateAdminRequest{}).Changes()
		require.NoError(t, err)
		assert.Empty(t, set)
		assert.Empty(t, password)
	})

	t.Run("rejects bad role", func(t *testing.T) {
		_, _, err := (&UpdateAdminRequest{Role: strPtr("root")}).Changes()
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, _, err := (&UpdateAdminRequest{Password: strPtr("123")}).Changes()
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
