package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"video-tube/domain/dto"
	"video-tube/infrastructure/logger"
	"video-tube/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Publish(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) List(c *gin.Context) {
	var req dto.VideoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding query")
		respond(c, http.StatusBadRequest, nil, "Invalid query parameters")
		return
	}

	videos, err := h.videoUsecase.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.VideoPublishRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding form")
		respond(c, http.StatusBadRequest, nil, "Invalid form data")
		return
	}

	dir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.RemoveAll(dir)

	videoPath, err := saveUpload(c, "videoFile", dir)
	if err != nil {
		respondError(c, err)
		return
	}
	thumbnailPath, err := saveUpload(c, "thumbnail", dir)
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoUsecase.Publish(
		c.Request.Context(), callerID(c), req.Title, req.Description, videoPath, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) GetByID(c *gin.Context) {
	video, err := h.videoUsecase.GetByID(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while binding form")
		respond(c, http.StatusBadRequest, nil, "Invalid form data")
		return
	}

	dir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.RemoveAll(dir)

	thumbnailPath, err := saveUpload(c, "thumbnail", dir)
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoUsecase.Update(c.Request.Context(), c.Param("videoId"), req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUsecase.Delete(c.Request.Context(), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Publish state toggled successfully")
}

// saveUpload stores the named multipart file under dir and returns its local
// path. A missing file is not an error here; presence is validated downstream.
func saveUpload(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path := filepath.Join(dir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
