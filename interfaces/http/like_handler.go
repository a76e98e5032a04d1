package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-tube/domain/model"
	"video-tube/usecase"
)

type ILikeHandler interface {
	ToggleVideo(c *gin.Context)
	ToggleComment(c *gin.Context)
	ToggleTweet(c *gin.Context)
	ListLikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	h.toggle(c, model.LikeVideo, c.Param("videoId"))
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	h.toggle(c, model.LikeComment, c.Param("commentId"))
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	h.toggle(c, model.LikeTweet, c.Param("tweetId"))
}

func (h *LikeHandler) toggle(c *gin.Context, kind model.LikeKind, targetID string) {
	result, err := h.likeUsecase.Toggle(c.Request.Context(), kind, targetID, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Like toggled successfully")
}

func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	videos, err := h.likeUsecase.ListLikedVideos(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
