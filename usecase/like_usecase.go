package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/dto"
	"video-tube/domain/model"
	"video-tube/domain/repository"
)

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

type ILikeUsecase interface {
	Toggle(ctx context.Context, kind model.LikeKind, targetID, userID string) (dto.ToggleResult, error)
	ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error)
}

type likeUsecase struct {
	likeRepo repository.ILike
}

func NewLikeUsecase(likeRepo repository.ILike) ILikeUsecase {
	return &likeUsecase{likeRepo: likeRepo}
}

func (u *likeUsecase) Toggle(ctx context.Context, kind model.LikeKind, targetID, userID string) (dto.ToggleResult, error) {
	if !kind.Valid() {
		return dto.ToggleResult{}, model.NewBadRequest("Invalid like target kind")
	}
	target, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		return dto.ToggleResult{}, model.NewBadRequest(fmt.Sprintf("Invalid %s id", kind))
	}
	likedBy, err := callerObjectID(userID)
	if err != nil {
		return dto.ToggleResult{}, err
	}

	// Delete-if-present, otherwise upsert-if-absent. Both halves are single
	// conditional store operations keyed on the (target, user) pair.
	removed, err := u.likeRepo.Remove(ctx, kind, target, likedBy)
	if err != nil {
		return dto.ToggleResult{}, err
	}
	if removed {
		return dto.ToggleResult{Toggled: ToggleRemoved}, nil
	}
	if _, err := u.likeRepo.Add(ctx, kind, target, likedBy); err != nil {
		return dto.ToggleResult{}, err
	}
	return dto.ToggleResult{Toggled: ToggleAdded}, nil
}

func (u *likeUsecase) ListLikedVideos(ctx context.Context, userID string) ([]model.LikedVideo, error) {
	likedBy, err := callerObjectID(userID)
	if err != nil {
		return nil, err
	}
	return u.likeRepo.ListVideoLikes(ctx, likedBy)
}
