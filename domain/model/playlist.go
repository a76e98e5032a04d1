package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist holds an ordered-but-deduplicated set of video references.
// Additions use $addToSet, so re-adding an existing video is a no-op.
type Playlist struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Name        string          `json:"name"        bson:"name"`
	Description string          `json:"description" bson:"description"`
	Owner       bson.ObjectID   `json:"owner"       bson:"owner"`
	Videos      []bson.ObjectID `json:"videos"      bson:"videos"`
	CreatedAt   time.Time       `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updatedAt"`
}

// PlaylistDetail is a playlist with every video entry resolved to its full
// document.
type PlaylistDetail struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	Name        string        `json:"name"        bson:"name"`
	Description string        `json:"description" bson:"description"`
	Owner       bson.ObjectID `json:"owner"       bson:"owner"`
	Videos      []Video       `json:"videos"      bson:"videos"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}
