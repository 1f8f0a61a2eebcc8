package lead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateContactRequestToContact(t *testing.T) {
	valid := func() *CreateContactRequest {
		return &CreateContactRequest{
			FullName: " Jordan Lee ",
			Email:    "Jordan@Example.COM",
			Phone:    "+971500000000",
			Message:  "Interested in a viewing.",
		}
	}

	t.Run("normalizes name and email", func(t *testing.T) {
		c, err := valid().ToContact()
		require.NoError(t, err)
		assert.Equal(t, "Jordan Lee", c.FullName)
		assert.Equal(t, "jordan@example.com", c.Email)
		assert.False(t, c.IsRead)
	})

	t.Run("any missing field is rejected", func(t *testing.T) {
		for _, mutate := range []func(*CreateContactRequest){
			func(r *CreateContactRequest) { r.FullName = "" },
			func(r *CreateContactRequest) { r.Email = " " },
			func(r *CreateContactRequest) { r.Phone = "" },
			func(r *CreateContactRequest) { r.Message = "" },
		} {
			req := valid()
			mutate(req)
			_, err := req.ToContact()
			assert.ErrorIs(t, err, ErrContactFieldsRequired)
		}
	})

	t.Run("bad email is rejected", func(t *testing.T) {
		req := valid()
		req.Email = "not-an-email"
		_, err := req.ToContact()
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestCreateCallbackRequestToCallback(t *testing.T) {
	propertyID := primitive.NewObjectID()
	valid := func() *CreateCallbackRequest {
		return &CreateCallbackRequest{
			PropertyID:    propertyID.Hex(),
			PropertyTitle: "Marina Heights",
			Name:          "Jordan",
			Email:         "jordan@example.com",
			Phone:         "+971500000000",
		}
	}

	t.Run("defaults status and preferred time", func(t *testing.T) {
		cb, err := valid().ToCallback()
		require.NoError(t, err)
		assert.Equal(t, "Pending", cb.Status)
		assert.Equal(t, "Anytime", cb.PreferredTime)
		assert.Equal(t, propertyID, cb.PropertyID)
	})

	t.Run("rejects unknown preferred time", func(t *testing.T) {
		req := valid()
		req.PreferredTime = "Midnight"
		_, err := req.ToCallback()
		assert.ErrorIs(t, err, ErrInvalidPreferredTime)
	})

	t.Run("rejects oversized message", func(t *testing.T) {
		req := valid()
		req.Message = strings.Repeat("x", maxCallbackMessageLen+1)
		_, err := req.ToCallback()
		assert.ErrorIs(t, err, ErrMessageTooLong)
	})

	t.Run("rejects malformed property id", func(t *testing.T) {
		req := valid()
		req.PropertyID = "nope"
		_, err := req.ToCallback()
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("missing required field", func(t *testing.T) {
		req := valid()
		req.Phone = ""
		_, err := req.ToCallback()
		assert.ErrorIs(t, err, ErrCallbackFieldsRequired)
	})
}

func TestUpdateCallbackRequestChanges(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		status := "Contacted"
		set, err := (&UpdateCallbackRequest{Status: &status}).Changes()
		require.NoError(t, err)
		assert.Equal(t, "Contacted", set["status"])
		assert.NotContains(t, set, "adminNotes")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		status := "Ghosted"
		_, err := (&UpdateCallbackRequest{Status: &status}).Changes()
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty notes still clear the field", func(t *testing.T) {
		notes := ""
		set, err := (&UpdateCallbackRequest{AdminNotes: &notes}).Changes()
		require.NoError(t, err)
		assert.Equal(t, "", set["adminNotes"])
	})
}

func TestSubscribeRequestNormalize(t *testing.T) {
	t.Run("lowercases and defaults source", func(t *testing.T) {
		email, source, err := (&SubscribeRequest{Email: " User@Example.com "}).Normalize()
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", email)
		assert.Equal(t, "footer", source)
	})

	t.Run("known source is kept", func(t *testing.T) {
		_, source, err := (&SubscribeRequest{Email: "a@b.co", Source: "popup"}).Normalize()
		require.NoError(t, err)
		assert.Equal(t, "popup", source)
	})

	t.Run("unknown source falls back", func(t *testing.T) {
		_, source, err := (&SubscribeRequest{Email: "a@b.co", Source: "billboard"}).Normalize()
		require.NoError(t, err)
		assert.Equal(t, "footer", source)
	})

	t.Run("missing email", func(t *testing.T) {
		_, _, err := (&SubscribeRequest{}).Normalize()
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestSubmitCampaignLeadRequestToLead(t *testing.T) {
	t.Run("name is optional", func(t *testing.T) {
		l, err := (&SubmitCampaignLeadRequest{Email: "A@b.co"}).ToLead()
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", l.Email)
		assert.Empty(t, l.Name)
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := (&SubmitCampaignLeadRequest{Name: "Jordan"}).ToLead()
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}
