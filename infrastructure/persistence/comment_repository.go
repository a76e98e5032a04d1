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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{col: db.Collection(colComments)}
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) ([]model.CommentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDocs"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$ownerDocs", 0}}}},
			{Key: "videoDoc", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$videoDocs", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "video", Value: bson.D{
				{Key: "_id", Value: "$videoDoc._id"},
				{Key: "title", Value: "$videoDoc.title"},
				{Key: "url", Value: "$videoDoc.videoFile"},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []model.CommentDetail{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) UpdateOwned(ctx context.Context, id, owner bson.ObjectID, content string) (model.Comment, error) {
	var comment model.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id, owner bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	return idsByFilter(ctx, r.col, bson.D{{Key: "owner", Value: owner}})
}

func (r *CommentRepository) IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	return idsByFilter(ctx, r.col, bson.D{{Key: "video", Value: videoID}})
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}
