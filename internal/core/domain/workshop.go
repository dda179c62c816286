package domain

import "github.com/shopspring/decimal"

// WorkshopType identifies one of the three ADN billing variants.
type WorkshopType string

const (
	// Workshop1Day1Consultant is the 1-day, single-consultant variant. No PM involvement.
	Workshop1Day1Consultant WorkshopType = "1d-1c"
	// Workshop2Days1Consultant is the 2-day, single-consultant variant.
	Workshop2Days1Consultant WorkshopType = "2d-1c"
	// Workshop2Days2Consultants is the 2-day, two-consultant variant.
	Workshop2Days2Consultants WorkshopType = "2d-2c"
)

// WorkshopTypes lists every billing variant, in selector order.
var WorkshopTypes = []WorkshopType{
	Workshop1Day1Consultant,
	Workshop2Days1Consultant,
	Workshop2Days2Consultants,
}

// IsValid reports whether wt is one of the known billing variants.
func (wt WorkshopType) IsValid() bool {
	switch wt {
	case Workshop1Day1Consultant, Workshop2Days1Consultant, Workshop2Days2Consultants:
		return true
	}
	return false
}

// ConsultantsRequired returns how many consultants staff this variant.
func (wt WorkshopType) ConsultantsRequired() int {
	if wt == Workshop2Days2Consultants {
		return 2
	}
	return 1
}

// PricingCatalog holds the fixed workshop price list and PM economics, in USD.
// Immutable for the process lifetime.
type PricingCatalog struct {
	Price1Day1Consultant   decimal.Decimal `json:"price1Day1Consultant"`
	Price2Days1Consultant  decimal.Decimal `json:"price2Days1Consultant"`
	Price2Days2Consultants decimal.Decimal `json:"price2Days2Consultants"`
	PMFee                  decimal.Decimal `json:"pmFee"`      // charged to the client
	PMDailyCost            decimal.Decimal `json:"pmDailyCost"` // incurred per engagement
}

// Combination is one feasible staffing of a workshop: a single consultant or
// an unordered pair of two distinct consultants. Ephemeral, recomputed per query.
type Combination struct {
	Consultants []Consultant `json:"consultants"` // one or two entries
}

// MarginTier is the qualitative rating of a combination's margin percentage.
type MarginTier string

const (
	TierOptimal    MarginTier = "optimal"
	TierAcceptable MarginTier = "acceptable"
	TierLow        MarginTier = "low"
)

// ConsultantCost is the per-consultant share of a combination's total cost.
type ConsultantCost struct {
	ConsultantID int             `json:"consultantID"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
}

// MarginResult is the evaluated economics of one combination. Purely derived;
// no identity or lifecycle of its own.
type MarginResult struct {
	WorkshopRevenue decimal.Decimal  `json:"workshopRevenue"`
	PMFee           decimal.Decimal  `json:"pmFee"`
	RevenueTotal    decimal.Decimal  `json:"revenueTotal"`
	ConsultantCosts []ConsultantCost `json:"consultantCosts"`
	PMCost          decimal.Decimal  `json:"pmCost"`
	CostTotal       decimal.Decimal  `json:"costTotal"`
	MarginAmount    decimal.Decimal  `json:"marginAmount"`
	MarginPercent   decimal.Decimal  `json:"marginPercent"`
	Tier            MarginTier       `json:"tier"`
}

// CombinationMargin pairs a combination with its evaluated margin.
type CombinationMargin struct {
	Combination  Combination  `json:"combination"`
	MarginResult MarginResult `json:"marginResult"`
}
