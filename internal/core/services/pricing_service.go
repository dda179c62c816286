package services

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/shopspring/decimal"
)

// defaultPricingCatalog is the fixed ADN price list, in USD.
var defaultPricingCatalog = domain.PricingCatalog{
	Price1Day1Consultant:   decimal.NewFromInt(4500),
	Price2Days1Consultant:  decimal.NewFromInt(7620),
	Price2Days2Consultants: decimal.NewFromInt(11900),
	PMFee:                  decimal.NewFromInt(600),
	PMDailyCost:            decimal.NewFromInt(280),
}

// PricingService exposes read access to the fixed price list.
type PricingService struct {
	catalog domain.PricingCatalog
}

// NewPricingService creates a PricingService over the default catalog.
func NewPricingService() *PricingService {
	return &PricingService{catalog: defaultPricingCatalog}
}

// Catalog returns the workshop price list and PM economics.
func (s *PricingService) Catalog() domain.PricingCatalog {
	return s.catalog
}
