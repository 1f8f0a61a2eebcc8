package lead

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxCallbackMessageLen = 500

// CreateContactRequest is the public contact-form payload.
type CreateContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func (r *CreateContactRequest) ToContact() (*Contact, error) {
	c := &Contact{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:    strings.TrimSpace(r.Phone),
		Message:  strings.TrimSpace(r.Message),
	}

	if c.FullName == "" || c.Email == "" || c.Phone == "" || c.Message == "" {
		return nil, ErrContactFieldsRequired
	}
	if err := validation.Validate(c.Email, is.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	return c, nil
}

// CreateCallbackRequest is the public call-me-back payload.
type CreateCallbackRequest struct {
	PropertyID    string `json:"propertyId"`
	PropertyTitle string `json:"propertyTitle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	PreferredTime string `json:"preferredTime"`
}

// ToCallback normalizes the payload. The property reference is validated
// separately against the listings collection.
func (r *CreateCallbackRequest) ToCallback() (*CallbackRequest, error) {
	if strings.TrimSpace(r.PropertyID) == "" || strings.TrimSpace(r.PropertyTitle) == "" ||
		strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" {
		return nil, ErrCallbackFieldsRequired
	}

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(r.PropertyID))
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	cb := &CallbackRequest{
		PropertyID:    oid,
		PropertyTitle: strings.TrimSpace(r.PropertyTitle),
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:         strings.TrimSpace(r.Phone),
		Message:       strings.TrimSpace(r.Message),
		PreferredTime: strings.TrimSpace(r.PreferredTime),
		Status:        "Pending",
	}
	if cb.PreferredTime == "" {
		cb.PreferredTime = "Anytime"
	}

	if err := validation.Validate(cb.Email, is.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(cb.Message) > maxCallbackMessageLen {
		return nil, ErrMessageTooLong
	}
	if !oneOf(cb.PreferredTime, PreferredTimes) {
		return nil, ErrInvalidPreferredTime
	}
	return cb, nil
}

// CallbackReceipt is the trimmed acknowledgement returned on submission.
type CallbackReceipt struct {
	ID            primitive.ObjectID `json:"_id"`
	PropertyTitle string             `json:"propertyTitle"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func NewCallbackReceipt(cb *CallbackRequest) CallbackReceipt {
	return CallbackReceipt{
		ID:            cb.ID,
		PropertyTitle: cb.PropertyTitle,
		Name:          cb.Name,
		Email:         cb.Email,
		Phone:         cb.Phone,
		Status:        cb.Status,
		CreatedAt:     cb.CreatedAt,
	}
}

// UpdateCallbackRequest is the admin status/notes payload.
type UpdateCallbackRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

func (r *UpdateCallbackRequest) Changes() (map[string]interface{}, error) {
	set := map[string]interface{}{}

	if r.Status != nil {
		status := strings.TrimSpace(*r.Status)
		if !oneOf(status, CallbackStatuses) {
			return nil, ErrInvalidStatus
		}
		set["status"] = status
	}
	if r.AdminNotes != nil {
		set["adminNotes"] = strings.TrimSpace(*r.AdminNotes)
	}
	return set, nil
}

// CallbackQuery are the admin list filters.
type CallbackQuery struct {
	Status     string
	PropertyID string
}

// SubscribeRequest is the newsletter signup payload.
type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// Normalize validates the email and defaults the capture source.
func (r *SubscribeRequest) Normalize() (email, source string, err error) {
	email = strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return "", "", ErrEmailRequired
	}
	if err := validation.Validate(email, is.Email); err != nil {
		return "", "", ErrInvalidEmail
	}

	source = strings.TrimSpace(r.Source)
	if !oneOf(source, SubscriptionSources) {
		source = "footer"
	}
	return email, source, nil
}

// UnsubscribeRequest carries the email to deactivate.
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriberQuery are the admin subscriber-list filters.
type SubscriberQuery struct {
	IsActive *bool
	SortBy   string
	SortDesc bool
}

// SubmitCampaignLeadRequest is a landing-page capture payload.
type SubmitCampaignLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *SubmitCampaignLeadRequest) ToLead() (*CampaignLead, error) {
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if err := validation.Validate(email, is.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	return &CampaignLead{
		Name:  strings.TrimSpace(r.Name),
		Email: email,
	}, nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
