package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	VideoFile   string        `json:"videoFile"   bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       bson.ObjectID `json:"owner"       bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}

// VideoDetail is a video with its owner profile resolved via $lookup.
type VideoDetail struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	VideoFile   string        `json:"videoFile"   bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail"   bson:"thumbnail"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       PublicUser    `json:"owner"       bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}

// VideoUpdate carries the optional fields of a partial video update.
// Nil fields are left untouched.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

// VideoSummary is the compact projection used by liked-video listings.
type VideoSummary struct {
	ID    bson.ObjectID `json:"id"    bson:"_id"`
	Title string        `json:"title" bson:"title"`
	URL   string        `json:"url"   bson:"url"`
}
