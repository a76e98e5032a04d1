package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User documents are owned by the auth service; this service only reads the
// profile fields that other entities reference.
type User struct {
	ID        bson.ObjectID `json:"id"                 bson:"_id,omitempty"`
	UserName  string        `json:"userName"           bson:"userName"`
	FullName  string        `json:"fullName"           bson:"fullName"`
	Email     string        `json:"email"              bson:"email"`
	Avatar    string        `json:"avatar,omitempty"   bson:"avatar,omitempty"`
	CreatedAt time.Time     `json:"createdAt"          bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"          bson:"updatedAt"`
}

// PublicUser is the profile projection embedded in enriched listings.
type PublicUser struct {
	ID       bson.ObjectID `json:"id"               bson:"_id"`
	UserName string        `json:"userName"         bson:"userName"`
	FullName string        `json:"fullName"         bson:"fullName"`
	Avatar   string        `json:"avatar,omitempty" bson:"avatar,omitempty"`
}
