package property

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	model "realestate-backend/internal/domains/property"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/pkg/logger"
)

// DefaultListLimit is the public listing page size.
const DefaultListLimit = 12

// cleanupTimeout bounds background object deletes after a record is gone.
const cleanupTimeout = 30 * time.Second

func cleanupContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cleanupTimeout)
}

// ImageStore is the slice of object storage the service needs: best-effort
// cleanup of images whose owning record is gone.
type ImageStore interface {
	DeleteByURL(ctx context.Context, url string) error
	DeleteAllByURLs(ctx context.Context, urls []string)
}

type service struct {
	repo   model.RepositoryInterface
	images ImageStore
}

func NewService(repo model.RepositoryInterface, images ImageStore) model.ServiceInterface {
	return &service{repo: repo, images: images}
}

func (s *service) Create(ctx context.Context, req *model.CreatePropertyRequest) (*model.Property, error) {
	p, err := req.ToProperty()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("property created", map[string]interface{}{
		"property_id": p.ID.Hex(),
		"title":       p.Title,
	})
	return p, nil
}

// List serves the public catalogue with GET-style filters.
func (s *service) List(ctx context.Context, filters model.Filters, params pagination.Params) ([]model.ListItem, *pagination.Meta, error) {
	return s.page(ctx, filters, params)
}

// Search serves the POST search form. Its filters carry exact type match
// and containment amenity semantics; everything downstream is shared.
func (s *service) Search(ctx context.Context, req *model.SearchRequest) ([]model.ListItem, *pagination.Meta, error) {
	filters := model.FromSearchRequest(req)
	params := pagination.FromInts(req.Page, req.Limit, DefaultListLimit)
	return s.page(ctx, filters, params)
}

func (s *service) page(ctx context.Context, filters model.Filters, params pagination.Params) ([]model.ListItem, *pagination.Meta, error) {
	query := filters.Query()

	properties, err := s.repo.Find(ctx, query, int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	items := make([]model.ListItem, 0, len(properties))
	for _, p := range properties {
		items = append(items, model.NewListItem(p))
	}
	return items, pagination.NewMeta(params, total), nil
}

// AdminList returns every full record for the management table, no
// filters and no paging.
func (s *service) AdminList(ctx context.Context) ([]model.Property, error) {
	return s.repo.Find(ctx, bson.M{}, 0, 0)
}

func (s *service) GetByID(ctx context.Context, id string) (*model.Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdatePropertyRequest) (*model.Property, error) {
	set, pushImages, err := req.Changes()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, set, pushImages)
}

// Delete removes the record first, then clears its images from object
// storage in the background. A failed cleanup never undoes the delete.
func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if len(p.Images) > 0 {
		urls := p.Images
		go func() {
			cleanupCtx, cancel := cleanupContext()
			defer cancel()
			s.images.DeleteAllByURLs(cleanupCtx, urls)
		}()
	}

	logger.Info("property deleted", map[string]interface{}{
		"property_id": id,
		"images":      len(p.Images),
	})
	return nil
}

// RemoveImage detaches one image URL from the record and then deletes the
// object, best-effort. The last image cannot be removed.
func (s *service) RemoveImage(ctx context.Context, id, imageURL string) (*model.Property, error) {
	if imageURL == "" {
		return nil, model.ErrImageRequired
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(current.Images) <= 1 && contains(current.Images, imageURL) {
		return nil, model.ErrLastImage
	}

	p, err := s.repo.PullImage(ctx, id, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.images.DeleteByURL(ctx, imageURL); err != nil {
		logger.Error("image cleanup failed", err)
	}
	return p, nil
}

// HomeProperties returns the flagged cards. An empty homepage reads as
// not found.
func (s *service) HomeProperties(ctx context.Context) ([]model.HomeItem, error) {
	properties, err := s.repo.HomeProperties(ctx)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return nil, model.ErrNoHomeProperties
	}

	items := make([]model.HomeItem, 0, len(properties))
	for _, p := range properties {
		items = append(items, model.NewHomeItem(p))
	}
	return items, nil
}

func (s *service) AddToHomePage(ctx context.Context, id string) error {
	return s.repo.AddToHomePage(ctx, id)
}

func (s *service) RemoveFromHomePage(ctx context.Context, id string) error {
	return s.repo.RemoveFromHomePage(ctx, id)
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
