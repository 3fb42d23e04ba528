package predict

import (
	"errors"
	"net/http"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	predict := v1.Group("/predict")
	{
		predict.POST("", h.Predict)
		predict.GET("/health", h.Health)
	}
}

// Predict estimates the resale price for a device.
// @Summary		Predict device price
// @Description	Forwards device attributes to the prediction model service and returns its estimate.
// @Tags		Predict
// @Accept		json
// @Produce		json
// @Param		request	body	map[string]interface{}	true	"Device attributes"
// @Success		200	{object}	map[string]interface{} "Price estimate"
// @Failure		502	{object}	map[string]interface{} "Prediction service unavailable"
// @Failure		504	{object}	map[string]interface{} "Prediction service timed out"
// @Router		/predict [POST]
func (h *Handler) Predict(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.client.Predict(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, ErrUpstreamTimeout) {
			response.Error(c, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT",
				"Prediction service timed out, please try again")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR",
			"Prediction service is unavailable")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Health reports whether the prediction service is reachable.
// @Summary		Prediction service health
// @Tags		Predict
// @Produce		json
// @Success		200	{object}	map[string]interface{} "online or offline"
// @Router		/predict/health [GET]
func (h *Handler) Health(c *gin.Context) {
	status := "offline"
	if h.client.Healthy(c.Request.Context()) {
		status = "online"
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}
