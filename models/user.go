package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is created on the first successful token verification and is never
// hard-deleted. UID is the id issued by the identity provider and is the
// key every ownership check compares against.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID         string             `bson:"uid" json:"uid"`
	Name        string             `bson:"name,omitempty" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email"`
	Picture     string             `bson:"picture,omitempty" json:"picture"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	IsAdmin     bool               `bson:"isAdmin" json:"isAdmin"`
}

// UserUpdate carries a partial profile update. Nil means "leave the field
// alone" so an explicit empty value stays distinguishable from an absent one.
type UserUpdate struct {
	Name        *string
	Picture     *string
	PhoneNumber *string
}
