// internal/api/handlers.go
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	stderrors "askindia/internal/common/errors"
	"askindia/internal/common/logger"
	"askindia/internal/common/metrics"
	"askindia/internal/common/validation"
	"askindia/internal/models"
	"askindia/internal/survey"
)

// Defaults applied to omitted optional ask fields, after schema validation.
const (
	defaultAgeMin     = 18
	defaultAgeMax     = 80
	defaultSampleSize = 30
)

type Handler struct {
	service *survey.Service
	logger  logger.Logger
}

func NewHandler(service *survey.Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// HandleAsk runs one question through the survey pipeline.
func (h *Handler) HandleAsk(c *gin.Context) {
	start := time.Now()
	id := requestID(c)
	log := h.logger.WithFields(map[string]interface{}{"requestId": id})

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.respondError(c, log, stderrors.NewMalformedRequestError(err.Error()))
		return
	}

	var req models.AskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(c, log, stderrors.NewMalformedRequestError(err.Error()))
		return
	}

	if err := validation.ValidateAskRequest(body); err != nil {
		h.respondError(c, log, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	applyDefaults(&req)

	log.Info("ask received", map[string]interface{}{
		"sampleSize": req.SampleSize,
		"ageMin":     req.AgeMin,
		"ageMax":     req.AgeMax,
		"states":     len(req.States),
	})

	resp, err := h.service.Ask(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	resp.RequestID = id

	metrics.AskRequestsTotal.WithLabelValues("success").Inc()
	metrics.AskRequestDuration.Observe(time.Since(start).Seconds())

	log.Info("ask completed", map[string]interface{}{
		"replies":  resp.Summary.Total,
		"regions":  len(resp.RegionSentiments),
		"duration": time.Since(start).String(),
	})

	c.JSON(http.StatusOK, resp)
}

// HandleOptions reports filterable values and the engine catalog.
func (h *Handler) HandleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Options())
}

// HandleHealth is the liveness probe.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func applyDefaults(req *models.AskRequest) {
	if req.AgeMin == 0 {
		req.AgeMin = defaultAgeMin
	}
	if req.AgeMax == 0 {
		req.AgeMax = defaultAgeMax
	}
	if req.SampleSize == 0 {
		req.SampleSize = defaultSampleSize
	}
}

func (h *Handler) respondError(c *gin.Context, log logger.Logger, err error) {
	stdErr := stderrors.Normalize(err)

	// Internal details are logged, never surfaced.
	log.WithError(err).Error("ask failed", map[string]interface{}{
		"code": string(stdErr.Code),
	})
	metrics.AskRequestsTotal.WithLabelValues(string(stdErr.Code)).Inc()

	resp := models.ErrorResponse{
		RequestID: requestID(c),
		Code:      string(stdErr.Code),
		Error:     stdErr.Message,
	}
	if available, ok := stdErr.Metadata["available_models"].([]string); ok {
		resp.AvailableModels = available
	}

	c.JSON(stderrors.HTTPStatus(stdErr.Code), resp)
}
