package handlers

import (
	"net/http"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests related to the fixed price list and
// the selector reference data.
type catalogHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(ps portssvc.PricingSvcFacade) *catalogHandler {
	return &catalogHandler{
		pricingService: ps,
	}
}

// RegisterCatalogRoutes registers routes related to pricing and reference data.
func RegisterCatalogRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newCatalogHandler(pricingService)

	rg.GET("/catalog", h.getCatalog)
	rg.GET("/reference", h.getReferenceData)
}

// getCatalog godoc
// @Summary Get the pricing catalog
// @Description Returns the fixed ADN workshop price list and PM fee/cost constants
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /catalog [get]
func (h *catalogHandler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogResponse(h.pricingService.Catalog()))
}

// getReferenceData godoc
// @Summary Get selector reference data
// @Description Returns the enumerated countries, currencies and workshop types the editors offer
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ReferenceDataResponse
// @Router /reference [get]
func (h *catalogHandler) getReferenceData(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ReferenceDataResponse{
		Countries:     domain.SupportedCountries,
		Currencies:    domain.SupportedCurrencies,
		WorkshopTypes: domain.WorkshopTypes,
	})
}
