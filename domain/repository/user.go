package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type IUser interface {
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
}
