package property

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AmenityMode selects how requested amenities are matched against the
// stored amenity set.
type AmenityMode int

const (
	// AmenityAny: every requested amenity must partially match at least
	// one stored amenity (case-insensitive substring). Listing endpoint.
	AmenityAny AmenityMode = iota
	// AmenityAll: the stored set must contain every requested amenity
	// exactly. Search-form endpoint.
	AmenityAll
)

// tabStatus maps search-form tabs to the stored propertyStatus enum.
var tabStatus = map[string]string{
	"rent":    "Rent",
	"buy":     "Buy",
	"offplan": "Off-Plan",
}

// Filters holds normalized listing filters. Zero values mean "no
// constraint"; numeric filters use pointers so zero is a valid bound.
type Filters struct {
	City               string // substring match
	Location           string // substring match
	PropertyType       string // substring on GET, anchored on search
	PropertyTypeExact  bool
	Developer          string // substring match
	PropertyStatus     string // anchored match
	ConstructionStatus string // anchored match

	MinPrice  *float64
	MaxPrice  *float64
	BhkCount  *int
	BathCount *int
	MinArea   *float64

	Amenities   []string
	AmenityMode AmenityMode
}

// FromQuery normalizes the public listing query parameters. Malformed
// numeric input fails with a ValidationError naming the field.
func FromQuery(q url.Values) (Filters, error) {
	f := Filters{AmenityMode: AmenityAny}

	f.City = strings.TrimSpace(q.Get("city"))
	f.Location = strings.TrimSpace(q.Get("location"))
	f.PropertyType = strings.TrimSpace(q.Get("propertyType"))
	f.PropertyStatus = strings.TrimSpace(q.Get("propertyStatus"))
	f.ConstructionStatus = strings.TrimSpace(q.Get("constructionStatus"))

	var err error
	if f.MinPrice, err = parseFloatParam(q.Get("minPrice"), "minPrice"); err != nil {
		return Filters{}, err
	}
	if f.MaxPrice, err = parseFloatParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		return Filters{}, err
	}
	if f.BhkCount, err = parseIntParam(q.Get("bhkCount"), "bhkCount"); err != nil {
		return Filters{}, err
	}

	f.Amenities = ParseAmenities(q["amenities"])

	return f, nil
}

// FromSearchRequest normalizes the search-form body into filters.
func FromSearchRequest(r *SearchRequest) Filters {
	f := Filters{AmenityMode: AmenityAll, PropertyTypeExact: true}

	if tab := strings.TrimSpace(r.Tab); tab != "" && tab != "all" {
		f.PropertyStatus = tabStatus[tab]
	}

	f.City = strings.TrimSpace(r.City)
	f.Location = strings.TrimSpace(r.Location)
	f.PropertyType = strings.TrimSpace(r.PropertyType)
	f.Developer = strings.TrimSpace(r.Developer)

	f.MinPrice, f.MaxPrice = PriceBucket(r.Price)
	f.BhkCount = firstInt(r.Bedrooms)
	f.BathCount = firstInt(r.Bathrooms)

	// Lenient on purpose: a non-numeric areaSize is dropped, not rejected.
	if area := strings.TrimSpace(r.AreaSize); area != "" {
		if n, err := strconv.ParseFloat(area, 64); err == nil && n > 0 {
			f.MinArea = &n
		}
	}

	if len(r.Amenities) > 0 {
		f.Amenities = trimNonEmpty(r.Amenities)
	}

	return f
}

// Query composes the normalized filters into a single Mongo predicate.
// Present filters are ANDed; absent filters contribute no constraint.
func (f Filters) Query() bson.M {
	query := bson.M{}

	if f.City != "" {
		query["city"] = substringRegex(f.City)
	}
	if f.Location != "" {
		query["location"] = substringRegex(f.Location)
	}
	if f.PropertyType != "" {
		if f.PropertyTypeExact {
			query["propertyType"] = anchoredRegex(f.PropertyType)
		} else {
			query["propertyType"] = substringRegex(f.PropertyType)
		}
	}
	if f.Developer != "" {
		query["developer"] = substringRegex(f.Developer)
	}
	if f.PropertyStatus != "" {
		query["propertyStatus"] = anchoredRegex(f.PropertyStatus)
	}
	if f.ConstructionStatus != "" {
		query["constructionStatus"] = anchoredRegex(f.ConstructionStatus)
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["startingPrice"] = price
	}

	if f.BhkCount != nil {
		query["bhkCount"] = *f.BhkCount
	}
	if f.BathCount != nil {
		query["bathCount"] = *f.BathCount
	}
	if f.MinArea != nil {
		query["totalArea"] = bson.M{"$gte": *f.MinArea}
	}

	if len(f.Amenities) > 0 {
		switch f.AmenityMode {
		case AmenityAll:
			query["amenities"] = bson.M{"$all": f.Amenities}
		default:
			// AND of per-amenity substring checks: each requested amenity
			// must match at least one stored amenity.
			and := make([]bson.M, 0, len(f.Amenities))
			for _, a := range f.Amenities {
				and = append(and, bson.M{
					"amenities": bson.M{"$elemMatch": bson.M{"$regex": substringRegex(a)}},
				})
			}
			query["$and"] = and
		}
	}

	return query
}

// PriceBucket maps a search-form price token to an inclusive range.
// "above" opens at 5M with no upper bound; the fixed million-step tokens
// map to their bucket; anything else yields no constraint.
func PriceBucket(token string) (min, max *float64) {
	token = strings.TrimSpace(token)
	if token == "" || token == "Any" {
		return nil, nil
	}

	if token == "above" {
		lo := 5_000_000.0
		return &lo, nil
	}

	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, nil
	}

	switch n {
	case 1_000_000:
		return rangePtr(100_000, 1_000_000)
	case 2_000_000:
		return rangePtr(1_000_000, 2_000_000)
	case 3_000_000:
		return rangePtr(2_000_000, 3_000_000)
	case 4_000_000:
		return rangePtr(3_000_000, 4_000_000)
	case 5_000_000:
		return rangePtr(4_000_000, 5_000_000)
	}

	return nil, nil
}

// ParseAmenities accepts repeated query params, a JSON-encoded array, or a
// bare string (treated as a single-element list).
func ParseAmenities(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	if len(raw) > 1 {
		return trimNonEmpty(raw)
	}

	value := strings.TrimSpace(raw[0])
	if value == "" {
		return nil
	}

	var decoded []string
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return trimNonEmpty([]string{value})
	}
	return trimNonEmpty(decoded)
}

var digitsRe = regexp.MustCompile(`\d+`)

// firstInt extracts the first embedded integer from free text such as
// "3 BHK" or "2 Bath". Non-matching text yields no constraint.
func firstInt(s string) *int {
	match := digitsRe.FindString(s)
	if match == "" {
		return nil
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &n
}

func substringRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func anchoredRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

func parseFloatParam(raw, field string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Field: field}
	}
	return &n, nil
}

func parseIntParam(raw, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{Field: field}
	}
	return &n, nil
}

func rangePtr(lo, hi float64) (*float64, *float64) {
	return &lo, &hi
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
