package blog

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayouts are the accepted input formats, tried in order. Whatever
// parses is reformatted to DateLayout before storage.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-1-2",
	"02-01-2006",
	"2/1/2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatDate normalizes any accepted date input to DD-MM-YYYY.
func FormatDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", ErrInvalidDate
}

// NormalizeTags coerces the tags payload to a clean string slice. Accepts
// an array, a comma-separated string, or a single scalar.
func NormalizeTags(input interface{}) []string {
	switch t := input.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanTags(t)
	case string:
		return cleanTags(strings.Split(t, ","))
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}
		return cleanTags(out)
	default:
		return cleanTags([]string{fmt.Sprint(t)})
	}
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CreateBlogRequest is the admin create payload. Tags accept an array or
// a comma-separated string.
type CreateBlogRequest struct {
	ImageURL    string      `json:"imageUrl"`
	Date        string      `json:"date"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Tags        interface{} `json:"tags"`
}

// ToBlog normalizes the payload into a stored record. All of image, date,
// title and description are required; category and tags are optional.
func (r *CreateBlogRequest) ToBlog() (*Blog, error) {
	imageURL := strings.TrimSpace(r.ImageURL)
	title := strings.TrimSpace(r.Title)
	description := strings.TrimSpace(r.Description)
	if imageURL == "" || strings.TrimSpace(r.Date) == "" || title == "" || description == "" {
		return nil, ErrFieldsRequired
	}

	date, err := FormatDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &Blog{
		ImageURL:     imageURL,
		Date:         date,
		Title:        title,
		Description:  description,
		Category:     strings.TrimSpace(r.Category),
		Tags:         NormalizeTags(r.Tags),
		IsOnHomePage: false,
	}, nil
}

// UpdateBlogRequest is the partial-update payload.
type UpdateBlogRequest struct {
	ImageURL    *string     `json:"imageUrl"`
	Date        *string     `json:"date"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Category    *string     `json:"category"`
	Tags        interface{} `json:"tags"`
}

// Changes builds the $set document from the supplied fields only.
func (r *UpdateBlogRequest) Changes() (map[string]interface{}, error) {
	set := map[string]interface{}{}

	if r.Title != nil {
		set["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		set["description"] = strings.TrimSpace(*r.Description)
	}
	if r.Category != nil {
		set["category"] = strings.TrimSpace(*r.Category)
	}
	if r.ImageURL != nil {
		set["imageUrl"] = strings.TrimSpace(*r.ImageURL)
	}
	if r.Tags != nil {
		set["tags"] = NormalizeTags(r.Tags)
	}
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		date, err := FormatDate(*r.Date)
		if err != nil {
			return nil, err
		}
		set["date"] = date
	}

	return set, nil
}

// ListQuery are the pagination endpoint's filters.
type ListQuery struct {
	Category string
	Search   string
	Sort     string // "newest" (default) or "oldest"
}

// ListItem is the listing projection: everything but the full body.
type ListItem struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title"`
	ImageURL  string             `json:"imageUrl"`
	Date      string             `json:"date"`
	Category  string             `json:"category,omitempty"`
	Tags      []string           `json:"tags"`
	CreatedAt time.Time          `json:"createdAt"`
}

func NewListItem(b Blog) ListItem {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return ListItem{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		Date:      b.Date,
		Category:  b.Category,
		Tags:      tags,
		CreatedAt: b.CreatedAt,
	}
}

// HomeItem is the homepage card projection.
type HomeItem struct {
	ID       primitive.ObjectID `json:"_id"`
	ImageURL string             `json:"imageUrl"`
	Date     string             `json:"date"`
	Title    string             `json:"title"`
	Category string             `json:"category,omitempty"`
}

func NewHomeItem(b Blog) HomeItem {
	return HomeItem{
		ID:       b.ID,
		ImageURL: b.ImageURL,
		Date:     b.Date,
		Title:    b.Title,
		Category: b.Category,
	}
}

// Suggestion is the autocomplete projection.
type Suggestion struct {
	ID       primitive.ObjectID `json:"_id"`
	Title    string             `json:"title"`
	Category string             `json:"category,omitempty"`
}

func NewSuggestion(b Blog) Suggestion {
	return Suggestion{ID: b.ID, Title: b.Title, Category: b.Category}
}
