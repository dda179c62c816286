package dto

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogResponse defines the data returned for the fixed price list.
type CatalogResponse struct {
	Price1Day1Consultant   decimal.Decimal `json:"price1Day1Consultant"`
	Price2Days1Consultant  decimal.Decimal `json:"price2Days1Consultant"`
	Price2Days2Consultants decimal.Decimal `json:"price2Days2Consultants"`
	PMFee                  decimal.Decimal `json:"pmFee"`
	PMDailyCost            decimal.Decimal `json:"pmDailyCost"`
}

// ToCatalogResponse converts a domain.PricingCatalog to CatalogResponse DTO
func ToCatalogResponse(catalog domain.PricingCatalog) CatalogResponse {
	return CatalogResponse{
		Price1Day1Consultant:   catalog.Price1Day1Consultant,
		Price2Days1Consultant:  catalog.Price2Days1Consultant,
		Price2Days2Consultants: catalog.Price2Days2Consultants,
		PMFee:                  catalog.PMFee,
		PMDailyCost:            catalog.PMDailyCost,
	}
}

// ReferenceDataResponse lists the selector options the editing surface offers.
type ReferenceDataResponse struct {
	Countries     []string              `json:"countries"`
	Currencies    []string              `json:"currencies"`
	WorkshopTypes []domain.WorkshopType `json:"workshopTypes"`
}
