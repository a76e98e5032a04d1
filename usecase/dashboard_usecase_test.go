package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/usecase"
)

func TestDashboardUsecase_Stats_EmptyChannelIsAllZeroes(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockCommentRepo := new(MockCommentRepository)
	mockLikeRepo := new(MockLikeRepository)
	mockSubRepo := new(MockSubscriptionRepository)
	mockTweetRepo := new(MockTweetRepository)
	mockStatsCache := new(MockStatsCache)
	owner := bson.NewObjectID()

	mockStatsCache.On("GetStats", mock.Anything, owner.Hex()).Return(nil, nil).Once()
	mockVideoRepo.On("CountByOwner", mock.Anything, owner).Return(int64(0), nil).Once()
	mockSubRepo.On("CountByChannel", mock.Anything, owner).Return(int64(0), nil).Once()
	mockVideoRepo.On("SumViewsByOwner", mock.Anything, owner).Return(int64(0), nil).Once()
	mockVideoRepo.On("IDsByOwner", mock.Anything, owner).Return([]bson.ObjectID{}, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeVideo, []bson.ObjectID{}).Return(int64(0), nil).Once()
	mockTweetRepo.On("IDsByOwner", mock.Anything, owner).Return([]bson.ObjectID{}, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeTweet, []bson.ObjectID{}).Return(int64(0), nil).Once()
	mockCommentRepo.On("IDsByOwner", mock.Anything, owner).Return([]bson.ObjectID{}, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeComment, []bson.ObjectID{}).Return(int64(0), nil).Once()
	mockStatsCache.On("SetStats", mock.Anything, owner.Hex(), model.ChannelStats{}).Once()

	dashboardUsecase := usecase.NewDashboardUsecase(
		mockVideoRepo, mockCommentRepo, mockLikeRepo, mockSubRepo, mockTweetRepo, mockStatsCache)

	stats, err := dashboardUsecase.Stats(context.Background(), owner.Hex())

	require.NoError(t, err)
	assert.Equal(t, model.ChannelStats{}, stats)
	mockVideoRepo.AssertExpectations(t)
	mockLikeRepo.AssertExpectations(t)
	mockStatsCache.AssertExpectations(t)
}

func TestDashboardUsecase_Stats_CacheHitSkipsCounting(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockStatsCache := new(MockStatsCache)
	owner := bson.NewObjectID()
	cached := model.ChannelStats{TotalVideos: 7, TotalSubscribers: 3, TotalViews: 1200}

	mockStatsCache.On("GetStats", mock.Anything, owner.Hex()).Return(&cached, nil).Once()

	dashboardUsecase := usecase.NewDashboardUsecase(
		mockVideoRepo, new(MockCommentRepository), new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockTweetRepository), mockStatsCache)

	stats, err := dashboardUsecase.Stats(context.Background(), owner.Hex())

	require.NoError(t, err)
	assert.Equal(t, cached, stats)
	mockVideoRepo.AssertNotCalled(t, "CountByOwner")
	mockStatsCache.AssertExpectations(t)
}

func TestDashboardUsecase_Stats_AggregatesCounts(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	mockCommentRepo := new(MockCommentRepository)
	mockLikeRepo := new(MockLikeRepository)
	mockSubRepo := new(MockSubscriptionRepository)
	mockTweetRepo := new(MockTweetRepository)
	mockStatsCache := new(MockStatsCache)
	owner := bson.NewObjectID()
	videoIDs := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()}
	tweetIDs := []bson.ObjectID{bson.NewObjectID()}
	commentIDs := []bson.ObjectID{bson.NewObjectID()}

	expected := model.ChannelStats{
		TotalVideos:       2,
		TotalSubscribers:  5,
		TotalVideoLikes:   9,
		TotalTweetLikes:   4,
		TotalCommentLikes: 1,
		TotalViews:        321,
	}

	mockStatsCache.On("GetStats", mock.Anything, owner.Hex()).Return(nil, nil).Once()
	mockVideoRepo.On("CountByOwner", mock.Anything, owner).Return(int64(2), nil).Once()
	mockSubRepo.On("CountByChannel", mock.Anything, owner).Return(int64(5), nil).Once()
	mockVideoRepo.On("SumViewsByOwner", mock.Anything, owner).Return(int64(321), nil).Once()
	mockVideoRepo.On("IDsByOwner", mock.Anything, owner).Return(videoIDs, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeVideo, videoIDs).Return(int64(9), nil).Once()
	mockTweetRepo.On("IDsByOwner", mock.Anything, owner).Return(tweetIDs, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeTweet, tweetIDs).Return(int64(4), nil).Once()
	mockCommentRepo.On("IDsByOwner", mock.Anything, owner).Return(commentIDs, nil).Once()
	mockLikeRepo.On("CountByTargets", mock.Anything, model.LikeComment, commentIDs).Return(int64(1), nil).Once()
	mockStatsCache.On("SetStats", mock.Anything, owner.Hex(), expected).Once()

	dashboardUsecase := usecase.NewDashboardUsecase(
		mockVideoRepo, mockCommentRepo, mockLikeRepo, mockSubRepo, mockTweetRepo, mockStatsCache)

	stats, err := dashboardUsecase.Stats(context.Background(), owner.Hex())

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	mockStatsCache.AssertExpectations(t)
}

func TestDashboardUsecase_Videos(t *testing.T) {
	mockVideoRepo := new(MockVideoRepository)
	owner := bson.NewObjectID()

	mockVideoRepo.On("ListByOwner", mock.Anything, owner).
		Return([]model.Video{{ID: bson.NewObjectID(), Title: "mine", Owner: owner}}, nil).
		Once()

	dashboardUsecase := usecase.NewDashboardUsecase(
		mockVideoRepo, new(MockCommentRepository), new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockTweetRepository), new(MockStatsCache))

	videos, err := dashboardUsecase.Videos(context.Background(), owner.Hex())

	require.NoError(t, err)
	assert.Len(t, videos, 1)
	mockVideoRepo.AssertExpectations(t)
}
