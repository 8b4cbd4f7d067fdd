package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed category set for menu items.
const (
	CategoryAppetizer  = "Appetizer"
	CategoryMainCourse = "Main Course"
	CategoryDessert    = "Dessert"
	CategoryBeverage   = "Beverage"
)

var validCategories = map[string]bool{
	CategoryAppetizer:  true,
	CategoryMainCourse: true,
	CategoryDessert:    true,
	CategoryBeverage:   true,
}

// IsValidCategory reports whether category belongs to the fixed set.
func IsValidCategory(category string) bool {
	return validCategories[category]
}

type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Category        string             `bson:"category" json:"category" validate:"required"`
	Price           *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Ingredients     []string           `bson:"ingredients" json:"ingredients"`
	IsAvailable     *bool              `bson:"isAvailable" json:"isAvailable"`
	PreparationTime *int               `bson:"preparationTime,omitempty" json:"preparationTime,omitempty" validate:"omitempty,gte=0"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Created_at      time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
