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

type SubscriptionRepository struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{col: db.Collection(colSubscriptions)}
}

func edgeFilter(channel, subscriber bson.ObjectID) bson.D {
	return bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}
}

func (r *SubscriptionRepository) Remove(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, edgeFilter(channel, subscriber))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *SubscriptionRepository) Add(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		edgeFilter(channel, subscriber),
		bson.D{{Key: "$setOnInsert", Value: model.Subscription{
			Subscriber: subscriber,
			Channel:    channel,
			CreatedAt:  time.Now().UTC(),
		}}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// usersByEdge resolves one side of the follows edge to user profiles.
func (r *SubscriptionRepository) usersByEdge(ctx context.Context, filter bson.D, localField string) ([]model.PublicUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDocs"},
		}}},
		{{Key: "$unwind", Value: "$userDocs"}},
		{{Key: "$replaceWith", Value: "$userDocs"}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.PublicUser{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.PublicUser, error) {
	return r.usersByEdge(ctx, bson.D{{Key: "channel", Value: channel}}, "subscriber")
}

func (r *SubscriptionRepository) ListChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.PublicUser, error) {
	return r.usersByEdge(ctx, bson.D{{Key: "subscriber", Value: subscriber}}, "channel")
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
}
