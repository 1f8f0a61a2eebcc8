package lead

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PreferredTimes is the callback time-slot enumeration.
var PreferredTimes = []string{"Morning", "Afternoon", "Evening", "Anytime"}

// CallbackStatuses is the callback workflow enumeration.
var CallbackStatuses = []string{"Pending", "Contacted", "Completed", "Cancelled"}

// SubscriptionSources tracks which surface captured a newsletter signup.
var SubscriptionSources = []string{"footer", "popup", "landing_page", "other"}

// Contact is a contact-form submission.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Message   string             `bson:"message" json:"message"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CallbackRequest is a request to be called back about a property. The
// property title is denormalized so the lead survives a deleted listing.
type CallbackRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID    primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	PropertyTitle string             `bson:"propertyTitle" json:"propertyTitle"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	PreferredTime string             `bson:"preferredTime" json:"preferredTime"`
	Status        string             `bson:"status" json:"status"`
	AdminNotes    string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Subscription is a newsletter signup. Email is unique; unsubscribing
// flips isActive instead of deleting the record.
type Subscription struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	Source       string             `bson:"source" json:"source"`
	IPAddress    string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CampaignLead is a name/email capture from a marketing landing page.
// Two campaigns share the shape and live in separate collections.
type CampaignLead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StatusCount is one bucket of a grouped count aggregation.
type StatusCount struct {
	Status string `bson:"_id" json:"_id"`
	Count  int64  `bson:"count" json:"count"`
}

// TopProperty is one entry of the most-requested-properties aggregation.
type TopProperty struct {
	PropertyID    primitive.ObjectID `bson:"_id" json:"_id"`
	Count         int64              `bson:"count" json:"count"`
	PropertyTitle string             `bson:"propertyTitle" json:"propertyTitle"`
}

// CallbackStats summarizes the callback pipeline for the admin dashboard.
type CallbackStats struct {
	Total          int64         `json:"total"`
	Pending        int64         `json:"pending"`
	Contacted      int64         `json:"contacted"`
	Completed      int64         `json:"completed"`
	RecentRequests int64         `json:"recentRequests"`
	TopProperties  []TopProperty `json:"topProperties"`
}

// NewsletterStats summarizes subscriptions for the admin dashboard.
type NewsletterStats struct {
	Total               int64         `json:"total"`
	Active              int64         `json:"active"`
	Inactive            int64         `json:"inactive"`
	BySource            []StatusCount `json:"bySource"`
	RecentSubscriptions int64         `json:"recentSubscriptions"`
}
