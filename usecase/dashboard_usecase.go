package usecase

import (
	"context"

	"video-tube/domain/model"
	"video-tube/domain/repository"
	"video-tube/infrastructure/cache"
	"video-tube/infrastructure/logger"
)

type IDashboardUsecase interface {
	Stats(ctx context.Context, ownerID string) (model.ChannelStats, error)
	Videos(ctx context.Context, ownerID string) ([]model.Video, error)
}

type dashboardUsecase struct {
	videoRepo        repository.IVideo
	commentRepo      repository.IComment
	likeRepo         repository.ILike
	subscriptionRepo repository.ISubscription
	tweetRepo        repository.ITweet
	statsCache       cache.IStatsCache
}

func NewDashboardUsecase(
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	likeRepo repository.ILike,
	subscriptionRepo repository.ISubscription,
	tweetRepo repository.ITweet,
	statsCache cache.IStatsCache,
) IDashboardUsecase {
	return &dashboardUsecase{
		videoRepo:        videoRepo,
		commentRepo:      commentRepo,
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
		tweetRepo:        tweetRepo,
		statsCache:       statsCache,
	}
}

// Stats aggregates the channel counters. Each counter is computed on its own;
// a channel with no content yields all zeroes rather than an error.
func (u *dashboardUsecase) Stats(ctx context.Context, ownerID string) (model.ChannelStats, error) {
	owner, err := callerObjectID(ownerID)
	if err != nil {
		return model.ChannelStats{}, err
	}

	if cached, err := u.statsCache.GetStats(ctx, ownerID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Stats cache read failed")
	} else if cached != nil {
		return *cached, nil
	}

	var stats model.ChannelStats
	if stats.TotalVideos, err = u.videoRepo.CountByOwner(ctx, owner); err != nil {
		return model.ChannelStats{}, err
	}
	if stats.TotalSubscribers, err = u.subscriptionRepo.CountByChannel(ctx, owner); err != nil {
		return model.ChannelStats{}, err
	}
	if stats.TotalViews, err = u.videoRepo.SumViewsByOwner(ctx, owner); err != nil {
		return model.ChannelStats{}, err
	}

	videoIDs, err := u.videoRepo.IDsByOwner(ctx, owner)
	if err != nil {
		return model.ChannelStats{}, err
	}
	if stats.TotalVideoLikes, err = u.likeRepo.CountByTargets(ctx, model.LikeVideo, videoIDs); err != nil {
		return model.ChannelStats{}, err
	}

	tweetIDs, err := u.tweetRepo.IDsByOwner(ctx, owner)
	if err != nil {
		return model.ChannelStats{}, err
	}
	if stats.TotalTweetLikes, err = u.likeRepo.CountByTargets(ctx, model.LikeTweet, tweetIDs); err != nil {
		return model.ChannelStats{}, err
	}

	commentIDs, err := u.commentRepo.IDsByOwner(ctx, owner)
	if err != nil {
		return model.ChannelStats{}, err
	}
	if stats.TotalCommentLikes, err = u.likeRepo.CountByTargets(ctx, model.LikeComment, commentIDs); err != nil {
		return model.ChannelStats{}, err
	}

	u.statsCache.SetStats(ctx, ownerID, stats)
	return stats, nil
}

func (u *dashboardUsecase) Videos(ctx context.Context, ownerID string) ([]model.Video, error) {
	owner, err := callerObjectID(ownerID)
	if err != nil {
		return nil, err
	}
	return u.videoRepo.ListByOwner(ctx, owner)
}
