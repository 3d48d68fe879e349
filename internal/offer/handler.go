package offer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	service *Service
}

func NewOfferHandler(s *Service) *OfferHandler {
	return &OfferHandler{
		service: s,
	}
}

func (h *OfferHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/offers/search", h.SearchOffersHandler)
	router.POST("/v1/offers/filter", h.FilterOffersHandler)
}

// SearchOffersHandler godoc
// @Summary      Search flight offers
// @Description  Fetch a batch of priced offers and the derived facet ranges
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        request body SearchQuery true "Search parameters"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/offers/search [post]
func (h *OfferHandler) SearchOffersHandler(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.SearchOffers(c.Request.Context(), q)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterOffersHandler godoc
// @Summary      Filter and sort a result batch
// @Description  Re-project the batch under the caller's constraint set; no upstream call while the batch is cached
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Constraints and sort key"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/offers/filter [post]
func (h *OfferHandler) FilterOffersHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.FilterOffers(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = toAppError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
