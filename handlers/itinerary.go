package handlers

import (
	"errors"
	"net/http"

	"wayfare/models"
	"wayfare/services/itinerary"
	"wayfare/services/tasks"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ItineraryHandler exposes the enrichment pipeline to the web layer.
type ItineraryHandler struct {
	Service     itinerary.ItineraryService
	MediaQueue  *asynq.Client // optional; nil disables media fulfilment
	QueueEnable bool
}

func NewItineraryHandler(service itinerary.ItineraryService, mediaQueue *asynq.Client) *ItineraryHandler {
	return &ItineraryHandler{
		Service:     service,
		MediaQueue:  mediaQueue,
		QueueEnable: mediaQueue != nil,
	}
}

// GenerateResponse wraps the itinerary with media lookup keys. The keys live
// outside the itinerary on purpose: cached itineraries stay byte-identical
// across calls.
type GenerateResponse struct {
	Itinerary *models.Itinerary `json:"itinerary"`
	MediaKeys map[string]string `json:"media_keys,omitempty"`
}

// GenerateItineraryHandler runs the pipeline for one request.
func (h *ItineraryHandler) GenerateItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid generation request", err.Error())
		return
	}

	result, err := h.Service.Generate(c.Request.Context(), req)
	if err != nil {
		var valErr *itinerary.ValidationError
		if errors.As(err, &valErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid generation request", valErr.Error())
			return
		}
		logger.Error("itinerary generation failed",
			zap.String("destination", req.Destination), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Itinerary generation failed", "The planning service could not produce an itinerary. Please try again.")
		return
	}

	resp := GenerateResponse{Itinerary: result}
	if h.QueueEnable {
		resp.MediaKeys = tasks.EnqueueMediaTasks(h.MediaQueue, result.Destination, result)
	}
	c.JSON(http.StatusOK, resp)
}

// GetMediaResultHandler returns resolved imagery for one media key, or 404
// while the worker has not finished (or found nothing).
func (h *ItineraryHandler) GetMediaResultHandler(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing media key", "")
		return
	}

	result, err := tasks.GetMediaResult(c.Request.Context(), key)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Media lookup failed", "Please try again later")
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "pending"})
		return
	}
	c.JSON(http.StatusOK, result)
}
