package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *CreatePropertyRequest {
	return &CreatePropertyRequest{
		Images:             []string{"https://cdn.example.com/image/upload/v1/props/a.jpg"},
		Title:              "Marina Heights",
		PropertyType:       "Apartment",
		City:               "Dubai",
		Location:           "Dubai Marina",
		PropertyStatus:     "Rent",
		StartingPrice:      1_200_000,
		BhkCount:           2,
		BathCount:          2,
		TotalArea:          1250,
		Description:        "Waterfront tower",
		Developer:          "Emaar",
		USP:                "Full marina view",
		ConstructionStatus: "Ready to Move",
		Handover:           "Q4 2026",
		Floors:             40,
		Elevation:          "G+40",
		PaymentPlan:        "60/40",
		TotalUnits:         320,
		Views:              "Marina",
		UnitTypes:          []interface{}{map[string]interface{}{"id": 1, "type": "2BHK", "price": 1_200_000.0}},
		Amenities:          []string{"Pool", "Gym"},
	}
}

func TestCreatePropertyRequestToProperty(t *testing.T) {
	t.Run("valid request builds an off-homepage record", func(t *testing.T) {
		p, err := validCreateRequest().ToProperty()
		require.NoError(t, err)

		assert.False(t, p.IsOnHomePage)
		assert.Equal(t, "Marina Heights", p.Title)
		assert.Equal(t, []string{"Pool", "Gym"}, p.Amenities)
		require.Len(t, p.UnitTypes, 1)
		assert.Equal(t, "2BHK", p.UnitTypes[0].Type)
	})

	t.Run("missing images fail fast", func(t *testing.T) {
		req := validCreateRequest()
		req.Images = nil
		_, err := req.ToProperty()
		assert.ErrorIs(t, err, ErrImageRequired)
	})

	t.Run("duplicate image urls collapse", func(t *testing.T) {
		req := validCreateRequest()
		req.Images = []string{"a.jpg", "a.jpg", "b.jpg"}
		p, err := req.ToProperty()
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.PropertyStatus = "Lease"
		_, err := req.ToProperty()
		assert.Error(t, err)
	})

	t.Run("array fields accept json strings", func(t *testing.T) {
		req := validCreateRequest()
		req.Amenities = `["Pool","Sauna"]`
		req.UnitTypes = `[{"id":1,"type":"Studio","price":650000}]`

		p, err := req.ToProperty()
		require.NoError(t, err)
		assert.Equal(t, []string{"Pool", "Sauna"}, p.Amenities)
		require.Len(t, p.UnitTypes, 1)
		assert.Equal(t, "Studio", p.UnitTypes[0].Type)
	})

	t.Run("malformed unit types json is a field error", func(t *testing.T) {
		req := validCreateRequest()
		req.UnitTypes = `not json`

		_, err := req.ToProperty()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "unitTypes", vErr.Field)
	})
}

func TestUpdatePropertyRequestChanges(t *testing.T) {
	t.Run("only supplied fields are set", func(t *testing.T) {
		title := "  New Title "
		price := 900_000.0
		req := &UpdatePropertyRequest{Title: &title, StartingPrice: &price}

		set, push, err := req.Changes()
		require.NoError(t, err)

		assert.Equal(t, "New Title", set["title"])
		assert.Equal(t, 900_000.0, set["startingPrice"])
		assert.NotContains(t, set, "city")
		assert.Empty(t, push)
	})

	t.Run("new images are returned for appending", func(t *testing.T) {
		req := &UpdatePropertyRequest{Images: []string{"c.jpg", "c.jpg"}}
		set, push, err := req.Changes()
		require.NoError(t, err)
		assert.Empty(t, set)
		assert.Equal(t, []string{"c.jpg"}, push)
	})
}

func TestNewListItem(t *testing.T) {
	t.Run("projects first image and caps amenities at five", func(t *testing.T) {
		p := Property{
			Images:    []string{"first.jpg", "second.jpg"},
			Amenities: []string{"a", "b", "c", "d", "e", "f"},
		}

		item := NewListItem(p)
		require.NotNil(t, item.Image)
		assert.Equal(t, "first.jpg", *item.Image)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, item.Amenities)
	})

	t.Run("no images yields an explicit null cover", func(t *testing.T) {
		item := NewListItem(Property{})
		assert.Nil(t, item.Image)
		assert.NotNil(t, item.Amenities)
		assert.Empty(t, item.Amenities)
	})
}
