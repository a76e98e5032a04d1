package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/domain/repository"
)

// Mock implementations

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List(ctx context.Context, filter repository.VideoFilter) ([]model.VideoDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) TogglePublish(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

func (m *MockVideoRepository) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) ([]model.CommentDetail, error) {
	args := m.Called(ctx, videoID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentDetail), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateOwned(ctx context.Context, id, owner bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, owner, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteOwned(ctx context.Context, id, owner bson.ObjectID) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *MockCommentRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

func (m *MockCommentRepository) IDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Remove(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error) {
	args := m.Called(ctx, kind, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Add(ctx context.Context, kind model.LikeKind, targetID, likedBy bson.ObjectID) (bool, error) {
	args := m.Called(ctx, kind, targetID, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ListVideoLikes(ctx context.Context, likedBy bson.ObjectID) ([]model.LikedVideo, error) {
	args := m.Called(ctx, likedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LikedVideo), args.Error(1)
}

func (m *MockLikeRepository) CountByTargets(ctx context.Context, kind model.LikeKind, targetIDs []bson.ObjectID) (int64, error) {
	args := m.Called(ctx, kind, targetIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	args := m.Called(ctx, commentIDs)
	return args.Error(0)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Remove(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	args := m.Called(ctx, channel, subscriber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Add(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	args := m.Called(ctx, channel, subscriber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.PublicUser, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PublicUser), args.Error(1)
}

func (m *MockSubscriptionRepository) ListChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.PublicUser, error) {
	args := m.Called(ctx, subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PublicUser), args.Error(1)
}

func (m *MockSubscriptionRepository) CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Rename(ctx context.Context, id bson.ObjectID, name, description string) (model.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) PullVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	args := m.Called(ctx, tweet)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTweetRepository) IDsByOwner(ctx context.Context, owner bson.ObjectID) ([]bson.ObjectID, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, localPath, contentType string) (string, error) {
	args := m.Called(ctx, localPath, contentType)
	return args.String(0), args.Error(1)
}

type MockDurationProbe struct {
	mock.Mock
}

func (m *MockDurationProbe) Duration(path string) (float64, error) {
	args := m.Called(path)
	return args.Get(0).(float64), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetStats(ctx context.Context, owner string) (*model.ChannelStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelStats), args.Error(1)
}

func (m *MockStatsCache) SetStats(ctx context.Context, owner string, stats model.ChannelStats) {
	m.Called(ctx, owner, stats)
}
