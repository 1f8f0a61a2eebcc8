package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-03-05", "05-03-2024"},
		{"iso without zero padding", "2024-3-5", "05-03-2024"},
		{"rfc3339 timestamp", "2024-03-05T10:30:00Z", "05-03-2024"},
		{"already formatted", "05-03-2024", "05-03-2024"},
		{"long month name", "March 5, 2024", "05-03-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unparseable input", func(t *testing.T) {
		for _, input := range []string{"", "  ", "yesterday", "31-31-2024"} {
			_, err := FormatDate(input)
			assert.ErrorIs(t, err, ErrInvalidDate, input)
		}
	})
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"nil yields empty slice", nil, []string{}},
		{"array passes through trimmed", []string{" a ", "b"}, []string{"a", "b"}},
		{"comma separated string splits", "real estate, dubai ,  ", []string{"real estate", "dubai"}},
		{"mixed json array", []interface{}{"a", 7}, []string{"a", "7"}},
		{"scalar wraps", 42, []string{"42"}},
		{"blank entries dropped", []string{"", " "}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.input))
		})
	}
}

func TestCreateBlogRequestToBlog(t *testing.T) {
	valid := func() *CreateBlogRequest {
		return &CreateBlogRequest{
			ImageURL:    "https://cdn.example.com/image/upload/v1/blogs/cover.jpg",
			Date:        "2024-06-01",
			Title:       "Market Outlook",
			Description: "What to expect this year.",
			Category:    "Insights",
			Tags:        "dubai, market",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		b, err := valid().ToBlog()
		require.NoError(t, err)
		assert.Equal(t, "01-06-2024", b.Date)
		assert.Equal(t, []string{"dubai", "market"}, b.Tags)
		assert.False(t, b.IsOnHomePage)
	})

	t.Run("missing required fields", func(t *testing.T) {
		for _, mutate := range []func(*CreateBlogRequest){
			func(r *CreateBlogRequest) { r.ImageURL = "" },
			func(r *CreateBlogRequest) { r.Date = "" },
			func(r *CreateBlogRequest) { r.Title = " " },
			func(r *CreateBlogRequest) { r.Description = "" },
		} {
			req := valid()
			mutate(req)
			_, err := req.ToBlog()
			assert.ErrorIs(t, err, ErrFieldsRequired)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		req := valid()
		req.Date = "soon"
		_, err := req.ToBlog()
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestUpdateBlogRequestChanges(t *testing.T) {
	t.Run("only supplied fields are set", func(t *testing.T) {
		title := "New"
		req := &UpdateBlogRequest{Title: &title, Tags: "a,b"}

		set, err := req.Changes()
		require.NoError(t, err)
		assert.Equal(t, "New", set["title"])
		assert.Equal(t, []string{"a", "b"}, set["tags"])
		assert.NotContains(t, set, "date")
		assert.NotContains(t, set, "description")
	})

	t.Run("date is reformatted", func(t *testing.T) {
		date := "2024-12-31"
		set, err := (&UpdateBlogRequest{Date: &date}).Changes()
		require.NoError(t, err)
		assert.Equal(t, "31-12-2024", set["date"])
	})

	t.Run("bad date fails", func(t *testing.T) {
		date := "nope"
		_, err := (&UpdateBlogRequest{Date: &date}).Changes()
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
