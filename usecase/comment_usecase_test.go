package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	"video-tube/domain/repository"
	"video-tube/usecase"
)

func TestCommentUsecase_Add(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	video := bson.NewObjectID()
	owner := bson.NewObjectID()

	mockCommentRepo.On("Create", mock.Anything, model.Comment{
		Content: "nice video",
		Video:   video,
		Owner:   owner,
	}).Return(model.Comment{ID: bson.NewObjectID(), Content: "nice video", Video: video, Owner: owner}, nil).Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo)
	comment, err := commentUsecase.Add(context.Background(), video.Hex(), owner.Hex(), "nice video")

	require.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_Add_EmptyContent(t *testing.T) {
	commentUsecase := usecase.NewCommentUsecase(new(MockCommentRepository))

	_, err := commentUsecase.Add(
		context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), "")

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestCommentUsecase_Update_NotOwnedReadsAsNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	comment := bson.NewObjectID()
	caller := bson.NewObjectID()

	mockCommentRepo.On("UpdateOwned", mock.Anything, comment, caller, "edited").
		Return(model.Comment{}, repository.ErrNotFound).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo)
	_, err := commentUsecase.Update(context.Background(), comment.Hex(), caller.Hex(), "edited")

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_Delete_ScopedToOwner(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	comment := bson.NewObjectID()
	caller := bson.NewObjectID()

	mockCommentRepo.On("DeleteOwned", mock.Anything, comment, caller).
		Return(nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo)
	err := commentUsecase.Delete(context.Background(), comment.Hex(), caller.Hex())

	require.NoError(t, err)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_ListByVideo_SanitizesPagination(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	video := bson.NewObjectID()

	mockCommentRepo.On("ListByVideo", mock.Anything, video, int64(1), int64(10)).
		Return([]model.CommentDetail{}, nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepo)
	comments, err := commentUsecase.ListByVideo(context.Background(), video.Hex(), -3, 0)

	require.NoError(t, err)
	assert.Empty(t, comments)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentUsecase_ListByVideo_InvalidVideoID(t *testing.T) {
	commentUsecase := usecase.NewCommentUsecase(new(MockCommentRepository))

	_, err := commentUsecase.ListByVideo(context.Background(), "zzz", 1, 10)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
