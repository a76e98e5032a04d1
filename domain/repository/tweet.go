package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type ITweet interface {
	Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error)
}
