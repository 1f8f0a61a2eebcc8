package property

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"realestate-backend/internal/shared/pagination"
)

// ServiceInterface - business logic surface consumed by the handlers
type ServiceInterface interface {
	Create(ctx context.Context, req *CreatePropertyRequest) (*Property, error)
	List(ctx context.Context, filters Filters, params pagination.Params) ([]ListItem, *pagination.Meta, error)
	Search(ctx context.Context, req *SearchRequest) ([]ListItem, *pagination.Meta, error)
	AdminList(ctx context.Context) ([]Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	Update(ctx context.Context, id string, req *UpdatePropertyRequest) (*Property, error)
	Delete(ctx context.Context, id string) error
	RemoveImage(ctx context.Context, id, imageURL string) (*Property, error)
	HomeProperties(ctx context.Context) ([]HomeItem, error)
	AddToHomePage(ctx context.Context, id string) error
	RemoveFromHomePage(ctx context.Context, id string) error
}

// RepositoryInterface - data access surface over the properties collection
type RepositoryInterface interface {
	Create(ctx context.Context, p *Property) error
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]Property, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	Update(ctx context.Context, id string, set map[string]interface{}, pushImages []string) (*Property, error)
	Delete(ctx context.Context, id string) (*Property, error)
	PullImage(ctx context.Context, id, imageURL string) (*Property, error)
	HomeProperties(ctx context.Context) ([]Property, error)
	AddToHomePage(ctx context.Context, id string) error
	RemoveFromHomePage(ctx context.Context, id string) error
}
