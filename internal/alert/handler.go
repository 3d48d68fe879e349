package alert

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"farescout/pkg/logger"
)

var ErrNotFound = errors.New("alert not found")

type AlertHandler struct {
	store  *Store
	logger logger.Client
}

func NewAlertHandler(store *Store, logger logger.Client) *AlertHandler {
	return &AlertHandler{store: store, logger: logger}
}

func (h *AlertHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/alerts", h.CreateAlertHandler)
	router.GET("/v1/alerts", h.ListAlertsHandler)
	router.DELETE("/v1/alerts/:id", h.DeleteAlertHandler)
}

// CreateAlertHandler godoc
// @Summary      Record a price alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        request body CreateRequest true "Alert parameters"
// @Success      201 {object} Alert
// @Failure      400 {object} map[string]string
// @Router       /v1/alerts [post]
func (h *AlertHandler) CreateAlertHandler(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
		})
		return
	}

	created, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create alert", logger.Field{Key: "err", Value: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store alert"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListAlertsHandler godoc
// @Summary      List price alerts for an email
// @Tags         alerts
// @Produce      json
// @Param        email query string true "Alert owner email"
// @Success      200 {array} Alert
// @Router       /v1/alerts [get]
func (h *AlertHandler) ListAlertsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	alerts, err := h.store.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("failed to list alerts", logger.Field{Key: "err", Value: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) DeleteAlertHandler(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case err != nil:
		h.logger.Error("failed to delete alert", logger.Field{Key: "err", Value: err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete alert"})
	default:
		c.Status(http.StatusNoContent)
	}
}
