package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type ISubscription interface {
	// Remove and Add mirror ILike: conditional single-operation toggle halves.
	Remove(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error)
	Add(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error)
	ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.PublicUser, error)
	ListChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.PublicUser, error)
	CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error)
}
