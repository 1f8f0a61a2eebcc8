package admin

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const minPasswordLen = 6

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() (email, password string, err error) {
	email = strings.ToLower(strings.TrimSpace(r.Email))
	password = r.Password
	if email == "" || password == "" {
		return "", "", ErrMissingCredentials
	}
	return email, password, nil
}

// VerifyRequest carries a token for re-validation by the panel.
type VerifyRequest struct {
	Token string `json:"token"`
}

// CreateAdminRequest is the super-admin account-creation payload.
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Normalize validates the payload and defaults the role to admin.
func (r *CreateAdminRequest) Normalize() (*Admin, error) {
	name := strings.TrimSpace(r.Name)
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if name == "" || email == "" || r.Password == "" {
		return nil, ErrFieldsRequired
	}
	if err := validation.Validate(email, is.Email); err != nil {
		return nil, ErrFieldsRequired
	}
	if len(r.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	role := strings.TrimSpace(r.Role)
	if role == "" {
		role = RoleAdmin
	}
	if role != RoleAdmin && role != RoleSuperAdmin {
		return nil, ErrInvalidRole
	}

	return &Admin{
		Name:     name,
		Email:    email,
		Password: r.Password, // hashed by the service
		Role:     role,
		IsActive: true,
	}, nil
}

// UpdateAdminRequest is the super-admin partial-update payload.
type UpdateAdminRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

// Changes builds the $set document; a supplied password comes back
// separately so the service can hash it.
func (r *UpdateAdminRequest) Changes() (set map[string]interface{}, password string, err error) {
	set = map[string]interface{}{}

	if r.Name != nil && strings.TrimSpace(*r.Name) != "" {
		set["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		if err := validation.Validate(email, is.Email); err != nil {
			return nil, "", ErrFieldsRequired
		}
		set["email"] = email
	}
	if r.Role != nil && *r.Role != "" {
		if *r.Role != RoleAdmin && *r.Role != RoleSuperAdmin {
			return nil, "", ErrInvalidRole
		}
		set["role"] = *r.Role
	}
	if r.IsActive != nil {
		set["isActive"] = *r.IsActive
	}
	if r.Password != nil && *r.Password != "" {
		if len(*r.Password) < minPasswordLen {
			return nil, "", ErrWeakPassword
		}
		password = *r.Password
	}

	return set, password, nil
}

// AdminQuery are the super-admin list filters.
type AdminQuery struct {
	Role     string
	IsActive *bool
	SortBy   string
	SortDesc bool
}
