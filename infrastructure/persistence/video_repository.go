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

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{col: db.Collection(colVideos)}
}

// ownerLookup joins the owning user and collapses the joined array into a
// single embedded document.
func ownerLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDocs"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$ownerDocs", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "ownerDocs", Value: 0}}}},
	}
}

func (r *VideoRepository) List(ctx context.Context, filter repository.VideoFilter) ([]model.VideoDetail, error) {
	match := bson.D{}
	if filter.Query != "" {
		match = append(match, bson.E{Key: "title", Value: bson.D{
			{Key: "$regex", Value: filter.Query},
			{Key: "$options", Value: "i"},
		}})
	}
	if filter.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *filter.Owner})
	}

	order := 1
	if filter.SortDesc {
		order = -1
	}
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: match}}}
	pipeline = append(pipeline, ownerLookup()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: order}}}},
		bson.D{{Key: "$skip", Value: (filter.Page - 1) * filter.Limit}},
		bson.D{{Key: "$limit", Value: filter.Limit}},
	)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []model.VideoDetail{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	now := time.Now().UTC()
	video.ID = bson.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, video); err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error) {
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}}
	pipeline = append(pipeline, ownerLookup()...)

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return model.VideoDetail{}, err
	}
	defer cursor.Close(ctx)

	var videos []model.VideoDetail
	if err := cursor.All(ctx, &videos); err != nil {
		return model.VideoDetail{}, err
	}
	if len(videos) == 0 {
		return model.VideoDetail{}, repository.ErrNotFound
	}
	return videos[0], nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	return err
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *update.Thumbnail})
	}

	var video model.Video
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) TogglePublish(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	// Pipeline update so the flip is a single atomic operation.
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: "$isPublished"}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}

	var video model.Video
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Video{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	cursor, err := r.col.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	return idsByFilter(ctx, r.col, bson.D{{Key: "owner", Value: owner}})
}

func (r *VideoRepository) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{{Key: "owner", Value: owner}})
}

func (r *VideoRepository) SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}

// idsByFilter fetches only _id values for a filter. Shared by repositories
// that feed id sets into dashboard counts and cascades.
func idsByFilter(ctx context.Context, col *mongo.Collection, filter bson.D) ([]bson.ObjectID, error) {
	cursor, err := col.Find(ctx, filter,
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
