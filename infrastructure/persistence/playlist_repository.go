package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type PlaylistRepository struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{col: db.Collection(colPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	now := time.Now().UTC()
	playlist.ID = bson.NewObjectID()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	if _, err := r.col.InsertOne(ctx, playlist); err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	cursor, err := r.col.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	playlists := []model.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.PlaylistDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colVideos},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videos"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return model.PlaylistDetail{}, err
	}
	defer cursor.Close(ctx)

	var playlists []model.PlaylistDetail
	if err := cursor.All(ctx, &playlists); err != nil {
		return model.PlaylistDetail{}, err
	}
	if len(playlists) == 0 {
		return model.PlaylistDetail{}, repository.ErrNotFound
	}
	return playlists[0], nil
}

// updateByID applies an update to one playlist and returns the new document,
// mapping "no match" to ErrNotFound.
func (r *PlaylistRepository) updateByID(ctx context.Context, id bson.ObjectID, update bson.D) (model.Playlist, error) {
	var playlist model.Playlist
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Playlist{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.updateByID(ctx, id, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.updateByID(ctx, id, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) Rename(ctx context.Context, id bson.ObjectID, name, description string) (model.Playlist, error) {
	return r.updateByID(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: name},
			{Key: "description", Value: description},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) PullVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.D{{Key: "videos", Value: videoID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}}},
	)
	return err
}
