package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-tube/domain/dto"
	"video-tube/infrastructure/logger"
	"video-tube/usecase"
)

type ICommentHandler interface {
	ListByVideo(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding query")
		respond(c, http.StatusBadRequest, nil, "Invalid query parameters")
		return
	}

	comments, err := h.commentUsecase.ListByVideo(
		c.Request.Context(), c.Param("videoId"), page.Page, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := h.commentUsecase.Add(
		c.Request.Context(), c.Param("videoId"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := h.commentUsecase.Update(
		c.Request.Context(), c.Param("commentId"), callerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.commentUsecase.Delete(c.Request.Context(), c.Param("commentId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Comment deleted successfully")
}
