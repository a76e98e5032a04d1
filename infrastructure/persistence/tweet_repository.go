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

type TweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{col: db.Collection(colTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	now := time.Now().UTC()
	tweet.ID = bson.NewObjectID()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, tweet); err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	cursor, err := r.col.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	var tweet model.Tweet
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	var tweet model.Tweet
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Tweet{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	return idsByFilter(ctx, r.col, bson.D{{Key: "owner", Value: owner}})
}
