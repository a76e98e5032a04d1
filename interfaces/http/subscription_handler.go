package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-tube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	ListSubscribers(c *gin.Context)
	ListSubscriptions(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	result, err := h.subscriptionUsecase.Toggle(
		c.Request.Context(), c.Param("channelId"), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Subscription toggled successfully")
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	users, err := h.subscriptionUsecase.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, users, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	users, err := h.subscriptionUsecase.ListSubscriptions(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, users, "Subscribed channels fetched successfully")
}
