package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomePageCapacity is the fixed number of featured slots for blogs.
const HomePageCapacity = 3

// DateLayout is the display format stored in the date field. Records keep
// the formatted string, not a timestamp; createdAt orders the listings.
const DateLayout = "02-01-2006"

// Blog is the stored article record.
type Blog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Date         string             `bson:"date" json:"date"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags         []string           `bson:"tags" json:"tags"`
	Description  string             `bson:"description" json:"description"`
	IsOnHomePage bool               `bson:"isOnHomePage" json:"isOnHomePage"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
