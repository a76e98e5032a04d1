package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/dto"
	"video-tube/domain/model"
	"video-tube/domain/repository"
	"video-tube/infrastructure/logger"
)

type IVideoUsecase interface {
	List(ctx context.Context, req dto.VideoListRequest) ([]model.VideoDetail, error)
	Publish(ctx context.Context, ownerID, title, description, videoPath, thumbnailPath string) (model.Video, error)
	GetByID(ctx context.Context, videoID string) (model.VideoDetail, error)
	Update(ctx context.Context, videoID string, req dto.VideoUpdateRequest, thumbnailPath string) (model.Video, error)
	Delete(ctx context.Context, videoID string) error
	TogglePublish(ctx context.Context, videoID string) (model.Video, error)
}

type videoUsecase struct {
	videoRepo    repository.IVideo
	commentRepo  repository.IComment
	likeRepo     repository.ILike
	playlistRepo repository.IPlaylist
	mediaStore   repository.IMediaStore
	probe        repository.IDurationProbe
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	likeRepo repository.ILike,
	playlistRepo repository.IPlaylist,
	mediaStore repository.IMediaStore,
	probe repository.IDurationProbe,
) IVideoUsecase {
	return &videoUsecase{
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		playlistRepo: playlistRepo,
		mediaStore:   mediaStore,
		probe:        probe,
	}
}

func (u *videoUsecase) List(ctx context.Context, req dto.VideoListRequest) ([]model.VideoDetail, error) {
	filter := repository.VideoFilter{
		Page:     int64(req.Page),
		Limit:    int64(req.Limit),
		Query:    req.Query,
		SortBy:   req.SortBy,
		SortDesc: req.SortType != "asc",
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if req.UserID != "" {
		owner, err := bson.ObjectIDFromHex(req.UserID)
		if err != nil {
			return nil, model.NewBadRequest("Invalid userId filter")
		}
		filter.Owner = &owner
	}
	return u.videoRepo.List(ctx, filter)
}

func (u *videoUsecase) Publish(ctx context.Context, ownerID, title, description, videoPath, thumbnailPath string) (model.Video, error) {
	if ownerID == "" {
		return model.Video{}, model.NewUnauthorized("User must be logged in")
	}
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return model.Video{}, model.NewUnauthorized("User must be logged in")
	}
	if title == "" {
		return model.Video{}, model.NewBadRequest("Title should not be empty")
	}
	if description == "" {
		return model.Video{}, model.NewBadRequest("Description should not be empty")
	}
	if videoPath == "" {
		return model.Video{}, model.NewBadRequest("Video file is required")
	}
	if thumbnailPath == "" {
		return model.Video{}, model.NewBadRequest("Thumbnail is required")
	}

	duration, err := u.probe.Duration(videoPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to probe video duration")
		return model.Video{}, model.NewBadRequest("Unable to read video duration")
	}

	videoURL, err := u.mediaStore.Upload(ctx, videoPath, "video/mp4")
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Video upload failed")
		return model.Video{}, model.NewBadRequest("Video upload failed")
	}
	thumbnailURL, err := u.mediaStore.Upload(ctx, thumbnailPath, "")
	if err != nil {
		// No rollback for the first upload; surface the orphan in the logs.
		logger.GetLogger().
			WithField("error", err).
			WithField("orphanedObject", videoURL).
			Warn("Thumbnail upload failed after video upload succeeded")
		return model.Video{}, model.NewBadRequest("Thumbnail upload failed")
	}

	return u.videoRepo.Create(ctx, model.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       title,
		Description: description,
		Duration:    duration,
		Owner:       owner,
		IsPublished: true,
	})
}

func (u *videoUsecase) GetByID(ctx context.Context, videoID string) (model.VideoDetail, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.VideoDetail{}, model.NewNotFound("Invalid video id")
	}
	if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to increment views")
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return model.VideoDetail{}, model.NewNotFound("Video not found")
	}
	return video, err
}

func (u *videoUsecase) Update(ctx context.Context, videoID string, req dto.VideoUpdateRequest, thumbnailPath string) (model.Video, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Video{}, model.NewNotFound("Invalid video id")
	}

	var update model.VideoUpdate
	if req.Title != "" {
		update.Title = &req.Title
	}
	if req.Description != "" {
		update.Description = &req.Description
	}
	if thumbnailPath != "" {
		thumbnailURL, err := u.mediaStore.Upload(ctx, thumbnailPath, "")
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Thumbnail upload failed")
			return model.Video{}, model.NewBadRequest("Error while uploading thumbnail")
		}
		update.Thumbnail = &thumbnailURL
	}

	video, err := u.videoRepo.Update(ctx, id, update)
	if err == repository.ErrNotFound {
		return model.Video{}, model.NewNotFound("Video not found")
	}
	return video, err
}

func (u *videoUsecase) Delete(ctx context.Context, videoID string) error {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.NewNotFound("Invalid video id")
	}

	if err := u.videoRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return model.NewNotFound("Video not found")
		}
		return err
	}

	// Best-effort cascade: the video itself is already gone, so failures here
	// leave orphans, which we log rather than surface.
	commentIDs, err := u.commentRepo.IDsByVideo(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cascade: failed to list comments")
	}
	if err := u.likeRepo.DeleteByVideo(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cascade: failed to delete video likes")
	}
	if err := u.likeRepo.DeleteByComments(ctx, commentIDs); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cascade: failed to delete comment likes")
	}
	if err := u.commentRepo.DeleteByVideo(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cascade: failed to delete comments")
	}
	if err := u.playlistRepo.PullVideo(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cascade: failed to pull video from playlists")
	}
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, videoID string) (model.Video, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Video{}, model.NewNotFound("Invalid video id")
	}
	video, err := u.videoRepo.TogglePublish(ctx, id)
	if err == repository.ErrNotFound {
		return model.Video{}, model.NewNotFound("Video not found")
	}
	return video, err
}
