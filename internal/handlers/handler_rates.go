package handlers

import (
	"net/http"

	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
	"github.com/gin-gonic/gin"
)

// ratesHandler handles HTTP requests related to the exchange-rate table.
type ratesHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.ExchangeRateSvcFacade) *ratesHandler {
	return &ratesHandler{
		rateService: rs,
	}
}

// RegisterRatesRoutes registers routes related to exchange rates.
func RegisterRatesRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newRatesHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
	}
}

// listRates godoc
// @Summary List exchange rates
// @Description Returns the static table of USD-per-unit rates for every supported currency
// @Tags rates
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Router /rates [get]
func (h *ratesHandler) listRates(c *gin.Context) {
	rates := h.rateService.ListExchangeRates()
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
