package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CarouselImage is a standalone promotional image, unrelated to product
// images.
type CarouselImage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PublicID string             `bson:"public_id" json:"public_id"`
	URL      string             `bson:"url" json:"url"`
}
