package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type ILike interface {
	// Remove deletes the like edge for (kind:target, likedBy) and reports
	// whether a document was actually removed.
	Remove(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error)
	// Add upserts the like edge keyed on the (kind:target, likedBy) pair and
	// reports whether a new document was inserted. The upsert filter makes the
	// toggle safe against concurrent duplicates.
	Add(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error)
	ListVideoLikes(ctx context.Context, likedBy bson.ObjectID) ([]model.LikedVideo, error)
	CountByTargets(ctx context.Context, kind model.LikeKind, targetIDs []bson.ObjectID) (int64, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
	DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error
}
