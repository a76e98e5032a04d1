package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-tube/domain/dto"
	"video-tube/infrastructure/logger"
	"video-tube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	GetByID(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	playlist, err := h.playlistUsecase.Create(
		c.Request.Context(), callerID(c), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlist, err := h.playlistUsecase.GetByID(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUsecase.AddVideo(
		c.Request.Context(), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := h.playlistUsecase.RemoveVideo(
		c.Request.Context(), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Video removed from playlist")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	playlist, err := h.playlistUsecase.Update(
		c.Request.Context(), c.Param("playlistId"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUsecase.Delete(c.Request.Context(), c.Param("playlistId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Playlist deleted successfully")
}
