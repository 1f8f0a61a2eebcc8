package blog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"realestate-backend/internal/shared/pagination"
)

// ServiceInterface - business logic surface consumed by the handlers
type ServiceInterface interface {
	Create(ctx context.Context, req *CreateBlogRequest) (*Blog, error)
	ListAll(ctx context.Context) ([]Blog, error)
	Paginate(ctx context.Context, q ListQuery, params pagination.Params) ([]ListItem, *pagination.Meta, error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	Update(ctx context.Context, id string, req *UpdateBlogRequest) (*Blog, error)
	Delete(ctx context.Context, id string) error
	AddToHomePage(ctx context.Context, id string) (*Blog, int64, error)
	RemoveFromHomePage(ctx context.Context, id string) (*Blog, int64, error)
	HomeBlogs(ctx context.Context) ([]HomeItem, error)
	Categories(ctx context.Context) ([]string, error)
	Related(ctx context.Context, category, excludeID string, limit int) ([]ListItem, error)
	Autocomplete(ctx context.Context, q string, limit int) ([]Suggestion, error)
}

// RepositoryInterface - data access surface over the blogs collection
type RepositoryInterface interface {
	Create(ctx context.Context, b *Blog) error
	Find(ctx context.Context, filter bson.M, sortAsc bool, skip, limit int64) ([]Blog, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*Blog, error)
	Delete(ctx context.Context, id string) (*Blog, error)
	HomeBlogs(ctx context.Context) ([]Blog, error)
	CountOnHomePage(ctx context.Context) (int64, error)
	AddToHomePage(ctx context.Context, id string) error
	RemoveFromHomePage(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}
