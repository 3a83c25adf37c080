package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is referenced by products through a soft document reference;
// deleting a category leaves dependent products untouched.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Slug  string             `bson:"slug" json:"slug"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
