package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, ownerID, name, description string) (model.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]model.Playlist, error)
	GetByID(ctx context.Context, playlistID string) (model.PlaylistDetail, error)
	AddVideo(ctx context.Context, playlistID, videoID string) (model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (model.Playlist, error)
	Update(ctx context.Context, playlistID, name, description string) (model.Playlist, error)
	Delete(ctx context.Context, playlistID string) error
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo}
}

func (u *playlistUsecase) Create(ctx context.Context, ownerID, name, description string) (model.Playlist, error) {
	owner, err := callerObjectID(ownerID)
	if err != nil {
		return model.Playlist{}, err
	}
	if name == "" || description == "" {
		return model.Playlist{}, model.NewBadRequest("Playlist name and description are required")
	}
	return u.playlistRepo.Create(ctx, model.Playlist{
		Name:        name,
		Description: description,
		Owner:       owner,
	})
}

func (u *playlistUsecase) ListByUser(ctx context.Context, userID string) ([]model.Playlist, error) {
	owner, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, model.NewBadRequest("Invalid user id")
	}
	return u.playlistRepo.ListByOwner(ctx, owner)
}

func (u *playlistUsecase) GetByID(ctx context.Context, playlistID string) (model.PlaylistDetail, error) {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return model.PlaylistDetail{}, model.NewNotFound("Invalid playlist id")
	}
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return model.PlaylistDetail{}, model.NewNotFound("Playlist not found")
	}
	return playlist, err
}

func (u *playlistUsecase) AddVideo(ctx context.Context, playlistID, videoID string) (model.Playlist, error) {
	id, video, err := playlistPair(playlistID, videoID)
	if err != nil {
		return model.Playlist{}, err
	}
	playlist, err := u.playlistRepo.AddVideo(ctx, id, video)
	if err == repository.ErrNotFound {
		return model.Playlist{}, model.NewNotFound("Playlist not found")
	}
	return playlist, err
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID string) (model.Playlist, error) {
	id, video, err := playlistPair(playlistID, videoID)
	if err != nil {
		return model.Playlist{}, err
	}
	playlist, err := u.playlistRepo.RemoveVideo(ctx, id, video)
	if err == repository.ErrNotFound {
		return model.Playlist{}, model.NewNotFound("Playlist not found")
	}
	return playlist, err
}

func (u *playlistUsecase) Update(ctx context.Context, playlistID, name, description string) (model.Playlist, error) {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return model.Playlist{}, model.NewNotFound("Invalid playlist id")
	}
	if name == "" || description == "" {
		return model.Playlist{}, model.NewBadRequest("Playlist name and description are required")
	}
	playlist, err := u.playlistRepo.Rename(ctx, id, name, description)
	if err == repository.ErrNotFound {
		return model.Playlist{}, model.NewNotFound("Playlist not found")
	}
	return playlist, err
}

func (u *playlistUsecase) Delete(ctx context.Context, playlistID string) error {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return model.NewNotFound("Invalid playlist id")
	}
	if err := u.playlistRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return model.NewNotFound("Playlist not found")
		}
		return err
	}
	return nil
}

func playlistPair(playlistID, videoID string) (bson.ObjectID, bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(playlistID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, model.NewNotFound("Invalid playlist id")
	}
	video, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, model.NewNotFound("Invalid video id")
	}
	return id, video, nil
}
