package blog

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	model "realestate-backend/internal/domains/blog"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/pkg/logger"
)

// DefaultListLimit is the blog grid page size; RelatedLimit and
// SuggestLimit cover the details-page sidebar and the search box.
const (
	DefaultListLimit = 9
	RelatedLimit     = 2
	SuggestLimit     = 5
)

// minQueryLen is the autocomplete threshold; shorter input is rejected.
const minQueryLen = 2

// ImageStore is the slice of object storage the service needs: best-effort
// cleanup of a cover image whose article is gone.
type ImageStore interface {
	DeleteByURL(ctx context.Context, url string) error
}

type service struct {
	repo   model.RepositoryInterface
	images ImageStore
}

func NewService(repo model.RepositoryInterface, images ImageStore) model.ServiceInterface {
	return &service{repo: repo, images: images}
}

func (s *service) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	b, err := req.ToBlog()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("blog created", map[string]interface{}{
		"blog_id": b.ID.Hex(),
		"title":   b.Title,
	})
	return b, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.Blog, error) {
	return s.repo.Find(ctx, bson.M{}, false, 0, 0)
}

// Paginate serves the blog grid: category filter, title/description
// search, newest or oldest first.
func (s *service) Paginate(ctx context.Context, q model.ListQuery, params pagination.Params) ([]model.ListItem, *pagination.Meta, error) {
	filter := bson.M{}

	if category := strings.TrimSpace(q.Category); category != "" && category != "All" {
		filter["category"] = category
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": re},
			{"description": re},
		}
	}

	blogs, err := s.repo.Find(ctx, filter, q.Sort == "oldest", int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	items := make([]model.ListItem, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, model.NewListItem(b))
	}
	return items, pagination.NewMeta(params, total), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error) {
	set, err := req.Changes()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, set)
}

// Delete removes the article and then its cover image, best-effort.
func (s *service) Delete(ctx context.Context, id string) error {
	b, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if b.ImageURL != "" {
		url := b.ImageURL
		go func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.images.DeleteByURL(cleanupCtx, url); err != nil {
				logger.Error("image cleanup failed", err)
			}
		}()
	}
	return nil
}

func (s *service) AddToHomePage(ctx context.Context, id string) (*model.Blog, int64, error) {
	if err := s.repo.AddToHomePage(ctx, id); err != nil {
		return nil, 0, err
	}
	return s.afterHomeChange(ctx, id)
}

func (s *service) RemoveFromHomePage(ctx context.Context, id string) (*model.Blog, int64, error) {
	if err := s.repo.RemoveFromHomePage(ctx, id); err != nil {
		return nil, 0, err
	}
	return s.afterHomeChange(ctx, id)
}

func (s *service) afterHomeChange(ctx context.Context, id string) (*model.Blog, int64, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.CountOnHomePage(ctx)
	if err != nil {
		return nil, 0, err
	}
	return b, count, nil
}

func (s *service) HomeBlogs(ctx context.Context) ([]model.HomeItem, error) {
	blogs, err := s.repo.HomeBlogs(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.HomeItem, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, model.NewHomeItem(b))
	}
	return items, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Related returns other articles in the same category, newest first.
func (s *service) Related(ctx context.Context, category, excludeID string, limit int) ([]model.ListItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, model.ErrCategoryNeeded
	}
	if limit <= 0 || limit > pagination.MaxLimit {
		limit = RelatedLimit
	}

	filter := bson.M{"category": category}
	if oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(excludeID)); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}

	blogs, err := s.repo.Find(ctx, filter, false, 0, int64(limit))
	if err != nil {
		return nil, err
	}

	items := make([]model.ListItem, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, model.NewListItem(b))
	}
	return items, nil
}

// Autocomplete matches the query against titles and tags.
func (s *service) Autocomplete(ctx context.Context, q string, limit int) ([]model.Suggestion, error) {
	q = strings.TrimSpace(q)
	if len(q) < minQueryLen {
		return nil, model.ErrQueryTooShort
	}
	if limit <= 0 || limit > pagination.MaxLimit {
		limit = SuggestLimit
	}

	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": re},
		{"tags": bson.M{"$in": bson.A{re}}},
	}}

	blogs, err := s.repo.Find(ctx, filter, false, 0, int64(limit))
	if err != nil {
		return nil, err
	}

	suggestions := make([]model.Suggestion, 0, len(blogs))
	for _, b := range blogs {
		suggestions = append(suggestions, model.NewSuggestion(b))
	}
	return suggestions, nil
}
