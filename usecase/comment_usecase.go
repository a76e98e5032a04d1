package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type ICommentUsecase interface {
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]model.CommentDetail, error)
	Add(ctx context.Context, videoID, userID, content string) (model.Comment, error)
	Update(ctx context.Context, commentID, userID, content string) (model.Comment, error)
	Delete(ctx context.Context, commentID, userID string) error
}

type commentUsecase struct {
	commentRepo repository.IComment
}

func NewCommentUsecase(commentRepo repository.IComment) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo}
}

func (u *commentUsecase) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]model.CommentDetail, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return nil, model.NewNotFound("Invalid video id")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return u.commentRepo.ListByVideo(ctx, id, int64(page), int64(limit))
}

func (u *commentUsecase) Add(ctx context.Context, videoID, userID, content string) (model.Comment, error) {
	video, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Comment{}, model.NewNotFound("Invalid video id")
	}
	owner, err := callerObjectID(userID)
	if err != nil {
		return model.Comment{}, err
	}
	if content == "" {
		return model.Comment{}, model.NewBadRequest("Comment content should not be empty")
	}
	return u.commentRepo.Create(ctx, model.Comment{
		Content: content,
		Video:   video,
		Owner:   owner,
	})
}

func (u *commentUsecase) Update(ctx context.Context, commentID, userID, content string) (model.Comment, error) {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return model.Comment{}, model.NewNotFound("Invalid comment id")
	}
	owner, err := callerObjectID(userID)
	if err != nil {
		return model.Comment{}, err
	}
	if content == "" {
		return model.Comment{}, model.NewBadRequest("Comment content should not be empty")
	}
	// The update is filtered by both id and owner, so a comment owned by
	// someone else reads as not found.
	comment, err := u.commentRepo.UpdateOwned(ctx, id, owner, content)
	if err == repository.ErrNotFound {
		return model.Comment{}, model.NewNotFound("Comment not found")
	}
	return comment, err
}

func (u *commentUsecase) Delete(ctx context.Context, commentID, userID string) error {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return model.NewNotFound("Invalid comment id")
	}
	owner, err := callerObjectID(userID)
	if err != nil {
		return err
	}
	if err := u.commentRepo.DeleteOwned(ctx, id, owner); err != nil {
		if err == repository.ErrNotFound {
			return model.NewNotFound("Comment not found")
		}
		return err
	}
	return nil
}

// callerObjectID parses the authenticated caller id injected by the auth
// middleware. An empty or malformed id means the request is not authenticated.
func callerObjectID(userID string) (bson.ObjectID, error) {
	if userID == "" {
		return bson.ObjectID{}, model.NewUnauthorized("User must be logged in")
	}
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return bson.ObjectID{}, model.NewUnauthorized("User must be logged in")
	}
	return id, nil
}
