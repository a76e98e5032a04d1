package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/model"
	httpHandler "video-tube/interfaces/http"
)

type MockCommentUsecase struct {
	mock.Mock
}

func (m *MockCommentUsecase) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]model.CommentDetail, error) {
	args := m.Called(ctx, videoID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentDetail), args.Error(1)
}

func (m *MockCommentUsecase) Add(ctx context.Context, videoID, userID, content string) (model.Comment, error) {
	args := m.Called(ctx, videoID, userID, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentUsecase) Update(ctx context.Context, commentID, userID, content string) (model.Comment, error) {
	args := m.Called(ctx, commentID, userID, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentUsecase) Delete(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func setupCommentRouter(handler httpHandler.ICommentHandler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	router.GET("/videos/:videoId/comments", handler.ListByVideo)
	router.POST("/videos/:videoId/comments", handler.Add)
	router.PATCH("/comments/:commentId", handler.Update)
	router.DELETE("/comments/:commentId", handler.Delete)
	return router
}

func TestCommentHandler_Add(t *testing.T) {
	mockCommentUsecase := new(MockCommentUsecase)
	video := bson.NewObjectID()
	user := bson.NewObjectID()

	mockCommentUsecase.On("Add", mock.Anything, video.Hex(), user.Hex(), "first!").
		Return(model.Comment{ID: bson.NewObjectID(), Content: "first!", Video: video, Owner: user}, nil).
		Once()

	router := setupCommentRouter(httpHandler.NewCommentHandler(mockCommentUsecase), user.Hex())

	body, _ := json.Marshal(map[string]string{"content": "first!"})
	req := httptest.NewRequest(http.MethodPost, "/videos/"+video.Hex()+"/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "Comment added successfully", res.Message)
	mockCommentUsecase.AssertExpectations(t)
}

func TestCommentHandler_Update_NotFoundEnvelope(t *testing.T) {
	mockCommentUsecase := new(MockCommentUsecase)
	comment := bson.NewObjectID()
	user := bson.NewObjectID()

	mockCommentUsecase.On("Update", mock.Anything, comment.Hex(), user.Hex(), "edited").
		Return(model.Comment{}, model.NewNotFound("Comment not found")).
		Once()

	router := setupCommentRouter(httpHandler.NewCommentHandler(mockCommentUsecase), user.Hex())

	body, _ := json.Marshal(map[string]string{"content": "edited"})
	req := httptest.NewRequest(http.MethodPatch, "/comments/"+comment.Hex(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var res model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Comment not found", res.Message)
	assert.Nil(t, res.Data)
}

func TestCommentHandler_ListByVideo_DefaultsPagination(t *testing.T) {
	mockCommentUsecase := new(MockCommentUsecase)
	video := bson.NewObjectID()

	mockCommentUsecase.On("ListByVideo", mock.Anything, video.Hex(), 1, 10).
		Return([]model.CommentDetail{}, nil).
		Once()

	router := setupCommentRouter(httpHandler.NewCommentHandler(mockCommentUsecase), bson.NewObjectID().Hex())

	req := httptest.NewRequest(http.MethodGet, "/videos/"+video.Hex()+"/comments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockCommentUsecase.AssertExpectations(t)
}

func TestCommentHandler_Delete(t *testing.T) {
	mockCommentUsecase := new(MockCommentUsecase)
	comment := bson.NewObjectID()
	user := bson.NewObjectID()

	mockCommentUsecase.On("Delete", mock.Anything, comment.Hex(), user.Hex()).
		Return(nil).
		Once()

	router := setupCommentRouter(httpHandler.NewCommentHandler(mockCommentUsecase), user.Hex())

	req := httptest.NewRequest(http.MethodDelete, "/comments/"+comment.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockCommentUsecase.AssertExpectations(t)
}
