package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type ITweetUsecase interface {
	Create(ctx context.Context, ownerID, content string) (model.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]model.Tweet, error)
	Update(ctx context.Context, tweetID, userID, content string) (model.Tweet, error)
	Delete(ctx context.Context, tweetID, userID string) error
}

type tweetUsecase struct {
	tweetRepo repository.ITweet
}

func NewTweetUsecase(tweetRepo repository.ITweet) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo}
}

func (u *tweetUsecase) Create(ctx context.Context, ownerID, content string) (model.Tweet, error) {
	owner, err := callerObjectID(ownerID)
	if err != nil {
		return model.Tweet{}, err
	}
	if content == "" {
		return model.Tweet{}, model.NewBadRequest("Tweet content should not be empty")
	}
	return u.tweetRepo.Create(ctx, model.Tweet{
		Content: content,
		Owner:   owner,
	})
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID string) ([]model.Tweet, error) {
	owner, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, model.NewBadRequest("Invalid user id")
	}
	return u.tweetRepo.ListByOwner(ctx, owner)
}

func (u *tweetUsecase) Update(ctx context.Context, tweetID, userID, content string) (model.Tweet, error) {
	id, err := u.ownedTweet(ctx, tweetID, userID, "You can only update your own tweets")
	if err != nil {
		return model.Tweet{}, err
	}
	if content == "" {
		return model.Tweet{}, model.NewBadRequest("Tweet content should not be empty")
	}
	tweet, err := u.tweetRepo.UpdateContent(ctx, id, content)
	if err == repository.ErrNotFound {
		return model.Tweet{}, model.NewNotFound("Tweet not found")
	}
	return tweet, err
}

func (u *tweetUsecase) Delete(ctx context.Context, tweetID, userID string) error {
	id, err := u.ownedTweet(ctx, tweetID, userID, "You can only delete your own tweets")
	if err != nil {
		return err
	}
	if err := u.tweetRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return model.NewNotFound("Tweet not found")
		}
		return err
	}
	return nil
}

// ownedTweet loads the tweet and checks the caller owns it. Unlike comments,
// ownership here is a load-then-compare so a mismatch surfaces as forbidden
// rather than not found.
func (u *tweetUsecase) ownedTweet(ctx context.Context, tweetID, userID, forbiddenMsg string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(tweetID)
	if err != nil {
		return bson.ObjectID{}, model.NewNotFound("Invalid tweet id")
	}
	owner, err := callerObjectID(userID)
	if err != nil {
		return bson.ObjectID{}, err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return bson.ObjectID{}, model.NewNotFound("Tweet not found")
	}
	if err != nil {
		return bson.ObjectID{}, err
	}
	if tweet.Owner != owner {
		return bson.ObjectID{}, model.NewForbidden(forbiddenMsg)
	}
	return id, nil
}
