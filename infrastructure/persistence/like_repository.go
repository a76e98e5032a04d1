package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{col: db.Collection(colLikes)}
}

func pairFilter(kind model.LikeKind, targetID, likedBy bson.ObjectID) bson.D {
	return bson.D{
		{Key: string(kind), Value: targetID},
		{Key: "likedBy", Value: likedBy},
	}
}

func (r *LikeRepository) Remove(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, pairFilter(kind, targetID, likedBy))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) Add(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error) {
	// Upsert keyed on the pair filter: two racing adds resolve to one document.
	res, err := r.col.UpdateOne(ctx,
		pairFilter(kind, targetID, likedBy),
		bson.D{{Key: "$setOnInsert", Value: bson.D{
			{Key: string(kind), Value: targetID},
			{Key: "likedBy", Value: likedBy},
			{Key: "createdAt", Value: time.Now().UTC()},
		}}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *LikeRepository) ListVideoLikes(ctx context.Context, likedBy bson.ObjectID) ([]model.LikedVideo, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: likedBy},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "videoDoc", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$videoDocs", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "likedBy", Value: 1},
			{Key: "video", Value: bson.D{
				{Key: "_id", Value: "$videoDoc._id"},
				{Key: "title", Value: "$videoDoc.title"},
				{Key: "url", Value: "$videoDoc.videoFile"},
			}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	likes := []model.LikedVideo{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *LikeRepository) CountByTargets(ctx context.Context, kind model.LikeKind, targetIDs []bson.ObjectID) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	return r.col.CountDocuments(ctx, bson.D{
		{Key: string(kind), Value: bson.D{{Key: "$in", Value: targetIDs}}},
	})
}

func (r *LikeRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}

func (r *LikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	if len(commentIDs) == 0 {
		return nil
	}
	_, err := r.col.DeleteMany(ctx, bson.D{
		{Key: "comment", Value: bson.D{{Key: "$in", Value: commentIDs}}},
	})
	return err
}
