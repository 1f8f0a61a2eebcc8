package property

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePropertyRequest is the admin create payload. Array fields accept
// either JSON arrays or JSON-encoded strings, matching what the admin
// panel submits.
type CreatePropertyRequest struct {
	Images             []string    `json:"images"`
	Title              string      `json:"title"`
	PropertyType       string      `json:"propertyType"`
	City               string      `json:"city"`
	Location           string      `json:"location"`
	PropertyStatus     string      `json:"propertyStatus"`
	StartingPrice      float64     `json:"startingPrice"`
	BhkCount           int         `json:"bhkCount"`
	BathCount          int         `json:"bathCount"`
	TotalArea          float64     `json:"totalArea"`
	Description        string      `json:"description"`
	Developer          string      `json:"developer"`
	USP                string      `json:"usp"`
	ConstructionStatus string      `json:"constructionStatus"`
	Handover           string      `json:"handover"`
	Floors             int         `json:"floors"`
	Elevation          string      `json:"elevation"`
	PaymentPlan        string      `json:"paymentPlan"`
	TotalUnits         int         `json:"totalUnits"`
	Views              string      `json:"views"`
	UnitTypes          interface{} `json:"unitTypes"`
	Highlights         interface{} `json:"highlights"`
	Amenities          interface{} `json:"amenities"`
}

// ToProperty normalizes the request into a Property. The homepage flag is
// always created off; it is only mutated through the curator endpoints.
func (r *CreatePropertyRequest) ToProperty() (*Property, error) {
	unitTypes, err := decodeUnitTypes(r.UnitTypes)
	if err != nil {
		return nil, &ValidationError{Field: "unitTypes"}
	}
	highlights, err := decodeStringList(r.Highlights)
	if err != nil {
		return nil, &ValidationError{Field: "highlights"}
	}
	amenities, err := decodeStringList(r.Amenities)
	if err != nil {
		return nil, &ValidationError{Field: "amenities"}
	}

	p := &Property{
		Images:             dedupe(r.Images),
		Title:              strings.TrimSpace(r.Title),
		PropertyType:       strings.TrimSpace(r.PropertyType),
		City:               strings.TrimSpace(r.City),
		Location:           strings.TrimSpace(r.Location),
		PropertyStatus:     strings.TrimSpace(r.PropertyStatus),
		StartingPrice:      r.StartingPrice,
		IsOnHomePage:       false,
		BhkCount:           r.BhkCount,
		BathCount:          r.BathCount,
		TotalArea:          r.TotalArea,
		Description:        strings.TrimSpace(r.Description),
		Developer:          strings.TrimSpace(r.Developer),
		USP:                strings.TrimSpace(r.USP),
		ConstructionStatus: strings.TrimSpace(r.ConstructionStatus),
		Handover:           strings.TrimSpace(r.Handover),
		Floors:             r.Floors,
		Elevation:          strings.TrimSpace(r.Elevation),
		PaymentPlan:        strings.TrimSpace(r.PaymentPlan),
		TotalUnits:         r.TotalUnits,
		Views:              strings.TrimSpace(r.Views),
		UnitTypes:          unitTypes,
		Highlights:         highlights,
		Amenities:          amenities,
	}

	if err := p.ValidateCreate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateCreate enforces the stored-record schema on a new property.
func (p *Property) ValidateCreate() error {
	if len(p.Images) == 0 {
		return ErrImageRequired
	}

	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.PropertyType, validation.Required),
		validation.Field(&p.City, validation.Required),
		validation.Field(&p.Location, validation.Required),
		validation.Field(&p.PropertyStatus, validation.Required, validation.In(toInterfaces(PropertyStatuses)...)),
		validation.Field(&p.StartingPrice, validation.Min(0.0)),
		validation.Field(&p.BhkCount, validation.Min(0)),
		validation.Field(&p.BathCount, validation.Min(0)),
		validation.Field(&p.TotalArea, validation.Min(0.0)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Developer, validation.Required),
		validation.Field(&p.USP, validation.Required),
		validation.Field(&p.ConstructionStatus, validation.Required, validation.In(toInterfaces(ConstructionStatuses)...)),
		validation.Field(&p.Handover, validation.Required),
		validation.Field(&p.Floors, validation.Min(0)),
		validation.Field(&p.Elevation, validation.Required),
		validation.Field(&p.PaymentPlan, validation.Required),
		validation.Field(&p.TotalUnits, validation.Min(0)),
		validation.Field(&p.Views, validation.Required),
		validation.Field(&p.UnitTypes, validation.Required),
		validation.Field(&p.Amenities, validation.Required),
	)
}

// UpdatePropertyRequest is the partial-update payload. Only supplied
// fields are written; new image URLs are appended, never replacing.
type UpdatePropertyRequest struct {
	Title              *string     `json:"title"`
	PropertyType       *string     `json:"propertyType"`
	City               *string     `json:"city"`
	Location           *string     `json:"location"`
	PropertyStatus     *string     `json:"propertyStatus"`
	StartingPrice      *float64    `json:"startingPrice"`
	BhkCount           *int        `json:"bhkCount"`
	BathCount          *int        `json:"bathCount"`
	TotalArea          *float64    `json:"totalArea"`
	Description        *string     `json:"description"`
	Developer          *string     `json:"developer"`
	USP                *string     `json:"usp"`
	ConstructionStatus *string     `json:"constructionStatus"`
	Handover           *string     `json:"handover"`
	Floors             *int        `json:"floors"`
	Elevation          *string     `json:"elevation"`
	PaymentPlan        *string     `json:"paymentPlan"`
	TotalUnits         *int        `json:"totalUnits"`
	Views              *string     `json:"views"`
	UnitTypes          interface{} `json:"unitTypes"`
	Highlights         interface{} `json:"highlights"`
	Amenities          interface{} `json:"amenities"`
	Images             []string    `json:"images"`
}

// Changes builds the $set document and the list of image URLs to append.
func (r *UpdatePropertyRequest) Changes() (map[string]interface{}, []string, error) {
	set := map[string]interface{}{}

	setTrimmed := func(key string, v *string) {
		if v != nil {
			set[key] = strings.TrimSpace(*v)
		}
	}

	setTrimmed("title", r.Title)
	setTrimmed("propertyType", r.PropertyType)
	setTrimmed("city", r.City)
	setTrimmed("location", r.Location)
	setTrimmed("propertyStatus", r.PropertyStatus)
	setTrimmed("description", r.Description)
	setTrimmed("developer", r.Developer)
	setTrimmed("usp", r.USP)
	setTrimmed("constructionStatus", r.ConstructionStatus)
	setTrimmed("handover", r.Handover)
	setTrimmed("elevation", r.Elevation)
	setTrimmed("paymentPlan", r.PaymentPlan)
	setTrimmed("views", r.Views)

	if r.StartingPrice != nil {
		set["startingPrice"] = *r.StartingPrice
	}
	if r.BhkCount != nil {
		set["bhkCount"] = *r.BhkCount
	}
	if r.BathCount != nil {
		set["bathCount"] = *r.BathCount
	}
	if r.TotalArea != nil {
		set["totalArea"] = *r.TotalArea
	}
	if r.Floors != nil {
		set["floors"] = *r.Floors
	}
	if r.TotalUnits != nil {
		set["totalUnits"] = *r.TotalUnits
	}

	if r.UnitTypes != nil {
		unitTypes, err := decodeUnitTypes(r.UnitTypes)
		if err != nil {
			return nil, nil, &ValidationError{Field: "unitTypes"}
		}
		set["unitTypes"] = unitTypes
	}
	if r.Highlights != nil {
		highlights, err := decodeStringList(r.Highlights)
		if err != nil {
			return nil, nil, &ValidationError{Field: "highlights"}
		}
		set["highlights"] = highlights
	}
	if r.Amenities != nil {
		amenities, err := decodeStringList(r.Amenities)
		if err != nil {
			return nil, nil, &ValidationError{Field: "amenities"}
		}
		set["amenities"] = amenities
	}

	return set, dedupe(r.Images), nil
}

// SearchRequest is the POST /search body used by the public search form.
type SearchRequest struct {
	Page         int      `json:"page"`
	Limit        int      `json:"limit"`
	Tab          string   `json:"tab"`
	City         string   `json:"city"`
	Location     string   `json:"location"`
	PropertyType string   `json:"propertyType"`
	Price        string   `json:"price"`
	Developer    string   `json:"developer"`
	Bedrooms     string   `json:"bedrooms"`
	Bathrooms    string   `json:"bathrooms"`
	AreaSize     string   `json:"areaSize"`
	Amenities    []string `json:"amenities"`
}

// ListItem is the trimmed listing projection: a single cover image and at
// most five amenities.
type ListItem struct {
	ID             primitive.ObjectID `json:"_id"`
	Image          *string            `json:"image"`
	PropertyStatus string             `json:"propertyStatus"`
	PropertyType   string             `json:"propertyType"`
	Title          string             `json:"title"`
	City           string             `json:"city"`
	Location       string             `json:"location"`
	BhkCount       int                `json:"bhkCount"`
	BathCount      int                `json:"bathCount"`
	TotalArea      float64            `json:"totalArea"`
	Handover       string             `json:"handover"`
	Amenities      []string           `json:"amenities"`
	StartingPrice  float64            `json:"startingPrice"`
}

// NewListItem projects a stored record into the listing view without
// mutating the source.
func NewListItem(p Property) ListItem {
	amenities := p.Amenities
	if len(amenities) > 5 {
		amenities = amenities[:5]
	}
	if amenities == nil {
		amenities = []string{}
	}

	return ListItem{
		ID:             p.ID,
		Image:          firstImage(p.Images),
		PropertyStatus: p.PropertyStatus,
		PropertyType:   p.PropertyType,
		Title:          p.Title,
		City:           p.City,
		Location:       p.Location,
		BhkCount:       p.BhkCount,
		BathCount:      p.BathCount,
		TotalArea:      p.TotalArea,
		Handover:       p.Handover,
		Amenities:      amenities,
		StartingPrice:  p.StartingPrice,
	}
}

// HomeItem is the homepage card projection.
type HomeItem struct {
	ID            primitive.ObjectID `json:"_id"`
	Image         *string            `json:"image"`
	Title         string             `json:"title"`
	Location      string             `json:"location"`
	BhkCount      int                `json:"bhkCount"`
	TotalArea     float64            `json:"totalArea"`
	Handover      string             `json:"handover"`
	StartingPrice float64            `json:"startingPrice"`
}

func NewHomeItem(p Property) HomeItem {
	return HomeItem{
		ID:            p.ID,
		Image:         firstImage(p.Images),
		Title:         p.Title,
		Location:      p.Location,
		BhkCount:      p.BhkCount,
		TotalArea:     p.TotalArea,
		Handover:      p.Handover,
		StartingPrice: p.StartingPrice,
	}
}

func firstImage(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0]
}

// decodeStringList accepts a JSON array, a JSON-encoded array string, or a
// bare string.
func decodeStringList(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return trimNonEmpty(t), nil
	case string:
		var decoded []string
		if err := json.Unmarshal([]byte(t), &decoded); err != nil {
			return trimNonEmpty([]string{t}), nil
		}
		return trimNonEmpty(decoded), nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, &ValidationError{Field: "list"}
			}
			out = append(out, s)
		}
		return trimNonEmpty(out), nil
	default:
		return nil, &ValidationError{Field: "list"}
	}
}

// decodeUnitTypes accepts a JSON array of unit configurations or the same
// array JSON-encoded as a string.
func decodeUnitTypes(v interface{}) ([]UnitType, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		var decoded []UnitType
		if err := json.Unmarshal([]byte(t), &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var decoded []UnitType
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	}
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func toInterfaces(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
