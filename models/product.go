package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImage is a single hosted asset. PublicID is the media host's
// stable identifier and is what deletion is keyed on.
type ProductImage struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Slug            string             `bson:"slug" json:"slug"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	DiscountedPrice float64            `bson:"discountedPrice" json:"discountedPrice"`
	Discount        float64            `bson:"discount" json:"discount"`
	Rating          float64            `bson:"rating" json:"rating"`
	Category        primitive.ObjectID `bson:"category" json:"category"`
	Stock           int                `bson:"stock" json:"stock"`
	Images          []ProductImage     `bson:"images" json:"images"`
	Shipping        bool               `bson:"shipping" json:"shipping"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
