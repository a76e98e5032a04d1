package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeKind names the target field a like edge points at. It doubles as the
// bson field name in the likes collection.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

func (k LikeKind) Valid() bool {
	switch k {
	case LikeVideo, LikeComment, LikeTweet:
		return true
	}
	return false
}

// Like is a reaction edge. Exactly one of Video, Comment, Tweet is set.
type Like struct {
	ID        bson.ObjectID  `json:"id"                bson:"_id,omitempty"`
	Video     *bson.ObjectID `json:"video,omitempty"   bson:"video,omitempty"`
	Comment   *bson.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `json:"tweet,omitempty"   bson:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `json:"likedBy"           bson:"likedBy"`
	CreatedAt time.Time      `json:"createdAt"         bson:"createdAt"`
}

// LikedVideo is a like edge of kind video resolved to a compact video summary.
type LikedVideo struct {
	ID      bson.ObjectID `json:"id"      bson:"_id"`
	Video   VideoSummary  `json:"video"   bson:"video"`
	LikedBy bson.ObjectID `json:"likedBy" bson:"likedBy"`
}
