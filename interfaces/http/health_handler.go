package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type IHealthHandler interface {
	Health(c *gin.Context)
}

type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) IHealthHandler {
	return &HealthHandler{client: client}
}

func (h *HealthHandler) Health(c *gin.Context) {
	mongoStatus := "ok"
	if h.client == nil {
		mongoStatus = "unavailable"
	} else if err := h.client.Ping(c.Request.Context(), nil); err != nil {
		mongoStatus = "unreachable"
	}
	respond(c, http.StatusOK, gin.H{"mongo": mongoStatus}, "OK")
}
