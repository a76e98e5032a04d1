package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Video     bson.ObjectID `json:"video"     bson:"video"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// CommentDetail is a comment with its owner profile and parent-video summary
// resolved via $lookup.
type CommentDetail struct {
	ID        bson.ObjectID `json:"id"        bson:"_id"`
	Content   string        `json:"content"   bson:"content"`
	Owner     PublicUser    `json:"owner"     bson:"owner"`
	Video     VideoSummary  `json:"video"     bson:"video"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
