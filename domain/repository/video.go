package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

// VideoFilter drives the paginated catalog listing. Page is 1-indexed.
type VideoFilter struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortDesc bool
	Owner    *bson.ObjectID
}

type IVideo interface {
	List(ctx context.Context, filter VideoFilter) ([]model.VideoDetail, error)
	Create(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	TogglePublish(ctx context.Context, id bson.ObjectID) (model.Video, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error)
	CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
	SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
}
