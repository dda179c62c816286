package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
	"github.com/fedemoisello/ADN-2025/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rosterHandler handles HTTP requests related to the consultant roster.
type rosterHandler struct {
	rosterService portssvc.RosterSvcFacade
}

// newRosterHandler creates a new rosterHandler.
func newRosterHandler(rs portssvc.RosterSvcFacade) *rosterHandler {
	return &rosterHandler{
		rosterService: rs,
	}
}

// RegisterRosterRoutes registers routes related to the roster.
func RegisterRosterRoutes(rg *gin.RouterGroup, rosterService portssvc.RosterSvcFacade) {
	h := newRosterHandler(rosterService)

	roster := rg.Group("/roster")
	{
		roster.GET("", h.listRoster)
		roster.PUT("", h.replaceRoster)
		roster.POST("/reload", h.reloadRoster)
	}
}

// listRoster godoc
// @Summary List the consultant roster
// @Description Returns every consultant with derived USD day rates. Pass unit=hour to scale displayed rates to hourly values.
// @Tags roster
// @Produce json
// @Param unit query string false "Rate display unit" Enums(day, hour) default(day)
// @Success 200 {array} dto.ConsultantResponse
// @Failure 400 {object} map[string]string "Invalid unit"
// @Failure 500 {object} map[string]string "Failed to list roster"
// @Router /roster [get]
func (h *rosterHandler) listRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	unit := c.DefaultQuery("unit", dto.UnitDay)
	if unit != dto.UnitDay && unit != dto.UnitHour {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit must be 'day' or 'hour'"})
		return
	}

	consultants, err := h.rosterService.ListConsultants(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list consultants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roster"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListConsultantResponse(consultants, unit))
}

// replaceRoster godoc
// @Summary Commit roster edits
// @Description Replaces the editable roster fields wholesale and recomputes every USD rate. Hour-mode edits are scaled back to day rates before recomputation. Edits live for the process lifetime only.
// @Tags roster
// @Accept json
// @Produce json
// @Param roster body dto.ReplaceRosterRequest true "Full replacement roster"
// @Success 200 {array} dto.ConsultantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to replace roster"
// @Router /roster [put]
func (h *rosterHandler) replaceRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReplaceRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for replaceRoster", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	consultants, err := h.rosterService.ReplaceRoster(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error replacing roster", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to replace roster in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace roster"})
		return
	}

	logger.Info("Roster replaced", slog.Int("consultants", len(consultants)))
	c.JSON(http.StatusOK, dto.ToListConsultantResponse(consultants, dto.UnitDay))
}

// reloadRoster godoc
// @Summary Reload the roster from its source
// @Description Re-reads the CSV roster source, discarding in-memory edits. Equivalent to a process restart.
// @Tags roster
// @Produce json
// @Success 200 {array} dto.ConsultantResponse
// @Failure 502 {object} map[string]string "Roster source unreadable; empty roster installed"
// @Failure 500 {object} map[string]string "Failed to reload roster"
// @Router /roster/reload [post]
func (h *rosterHandler) reloadRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.rosterService.LoadFromSource(c.Request.Context()); err != nil {
		if errors.Is(err, apperrors.ErrRosterLoad) {
			logger.Warn("Roster source unreadable, continuing with empty roster", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to reload roster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload roster"})
		return
	}

	consultants, err := h.rosterService.ListConsultants(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list consultants after reload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload roster"})
		return
	}

	logger.Info("Roster reloaded from source", slog.Int("consultants", len(consultants)))
	c.JSON(http.StatusOK, dto.ToListConsultantResponse(consultants, dto.UnitDay))
}
