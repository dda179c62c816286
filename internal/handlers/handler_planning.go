package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
	"github.com/fedemoisello/ADN-2025/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planningHandler handles HTTP requests related to combination analysis.
type planningHandler struct {
	planningService portssvc.PlanningSvcFacade
}

// newPlanningHandler creates a new planningHandler.
func newPlanningHandler(ps portssvc.PlanningSvcFacade) *planningHandler {
	return &planningHandler{
		planningService: ps,
	}
}

// RegisterPlanningRoutes registers routes related to profitability analysis.
func RegisterPlanningRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvcFacade) {
	h := newPlanningHandler(planningService)

	planning := rg.Group("/planning")
	{
		planning.GET("/combinations", h.listCombinations)
	}
}

// listCombinations godoc
// @Summary List evaluated consultant combinations
// @Description Enumerates every feasible consultant assignment for a country and workshop type, with revenue, cost, margin and tier for each. An empty result means no consultant delivers in that country.
// @Tags planning
// @Produce json
// @Param country query string true "Target country" example(Brasil)
// @Param workshopType query string true "Workshop type" Enums(1d-1c, 2d-1c, 2d-2c)
// @Success 200 {array} dto.CombinationMarginResponse
// @Failure 400 {object} map[string]string "Unknown country or workshop type"
// @Failure 500 {object} map[string]string "Failed to analyze combinations"
// @Router /planning/combinations [get]
func (h *planningHandler) listCombinations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	country := c.Query("country")
	workshopType := domain.WorkshopType(c.Query("workshopType"))

	results, err := h.planningService.AnalyzeCountry(c.Request.Context(), country, workshopType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error analyzing combinations", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to analyze combinations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze combinations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCombinationMarginResponse(results, country))
}
