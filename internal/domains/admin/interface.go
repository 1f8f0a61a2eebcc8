package admin

import (
	"context"

	"realestate-backend/internal/shared/pagination"
)

// ServiceInterface - business logic surface consumed by the handlers
type ServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (token string, view *View, err error)
	VerifyToken(ctx context.Context, token string) (*View, error)
	Profile(ctx context.Context, adminID string) (*View, error)

	ListAdmins(ctx context.Context, q AdminQuery, params pagination.Params) ([]View, *pagination.Meta, int64, int64, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*View, error)
	CreateInitialAdmin(ctx context.Context, req *CreateAdminRequest) (*View, error)
	UpdateAdmin(ctx context.Context, id string, req *UpdateAdminRequest) (*View, error)
	DeleteAdmin(ctx context.Context, id, actorID string) error
	ToggleStatus(ctx context.Context, id, actorID string) (*View, error)
}

// RepositoryInterface - data access surface over the admins collection
type RepositoryInterface interface {
	Create(ctx context.Context, a *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	List(ctx context.Context, q AdminQuery, skip, limit int64) ([]Admin, error)
	Count(ctx context.Context, q AdminQuery) (int64, error)
	CountActive(ctx context.Context, active bool) (int64, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*Admin, error)
	Delete(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string) error
}
