package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.PlaylistDetail, error)
	// AddVideo inserts with $addToSet: re-adding an existing video is a no-op.
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	// RemoveVideo pulls the reference; removing an absent video from an
	// existing playlist succeeds without change.
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	Rename(ctx context.Context, id bson.ObjectID, name, description string) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// PullVideo removes the video reference from every playlist (cascade).
	PullVideo(ctx context.Context, videoID bson.ObjectID) error
}
