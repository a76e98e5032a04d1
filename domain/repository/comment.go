package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type IComment interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) ([]model.CommentDetail, error)
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	// UpdateOwned updates content only when both id and owner match, so an
	// ownership failure is indistinguishable from an absent comment.
	UpdateOwned(ctx context.Context, id, owner bson.ObjectID, content string) (model.Comment, error)
	DeleteOwned(ctx context.Context, id, owner bson.ObjectID) error
	IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error)
	IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
}
