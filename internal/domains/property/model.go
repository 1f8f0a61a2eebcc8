package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomePageCapacity is the fixed number of featured slots for properties.
const HomePageCapacity = 8

// PropertyStatuses is the fixed listing-status enumeration.
var PropertyStatuses = []string{"Rent", "Buy", "Off-Plan"}

// ConstructionStatuses is the fixed construction-stage enumeration.
var ConstructionStatuses = []string{
	"Off-Plan",
	"Under Construction",
	"Site Preparation Completed",
	"Nearing Completion",
	"Completed",
	"Ready to Move",
}

// UnitType is one unit configuration offered within a development.
type UnitType struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Type           string             `bson:"type" json:"type"`
	TotalAreaStart float64            `bson:"totalAreaStart" json:"totalAreaStart"`
	TotalAreaEnd   float64            `bson:"totalAreaEnd" json:"totalAreaEnd"`
	Price          float64            `bson:"price" json:"price"`
}

// Property is the stored listing record.
type Property struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Images             []string           `bson:"images" json:"images"`
	Title              string             `bson:"title" json:"title"`
	PropertyType       string             `bson:"propertyType" json:"propertyType"`
	City               string             `bson:"city" json:"city"`
	Location           string             `bson:"location" json:"location"`
	PropertyStatus     string             `bson:"propertyStatus" json:"propertyStatus"`
	StartingPrice      float64            `bson:"startingPrice" json:"startingPrice"`
	IsOnHomePage       bool               `bson:"isOnHomePage" json:"isOnHomePage"`
	BhkCount           int                `bson:"bhkCount" json:"bhkCount"`
	BathCount          int                `bson:"bathCount" json:"bathCount"`
	TotalArea          float64            `bson:"totalArea" json:"totalArea"`
	Description        string             `bson:"description" json:"description"`
	Developer          string             `bson:"developer" json:"developer"`
	USP                string             `bson:"usp" json:"usp"`
	ConstructionStatus string             `bson:"constructionStatus" json:"constructionStatus"`
	Handover           string             `bson:"handover" json:"handover"`
	Floors             int                `bson:"floors" json:"floors"`
	Elevation          string             `bson:"elevation" json:"elevation"`
	PaymentPlan        string             `bson:"paymentPlan" json:"paymentPlan"`
	TotalUnits         int                `bson:"totalUnits" json:"totalUnits"`
	Views              string             `bson:"views" json:"views"`
	UnitTypes          []UnitType         `bson:"unitTypes" json:"unitTypes"`
	Highlights         []string           `bson:"highlights" json:"highlights"`
	Amenities          []string           `bson:"amenities" json:"amenities"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
