package dto

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/fedemoisello/ADN-2025/internal/utils"
	"github.com/shopspring/decimal"
)

// ConsultantCostResponse is the per-consultant cost share in one combination.
type ConsultantCostResponse struct {
	ConsultantID int             `json:"consultantID"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
}

// CombinationMarginResponse defines the data returned for one evaluated combination.
// Display names carry the travel indicator when a consultant works away from home.
type CombinationMarginResponse struct {
	ConsultantIDs   []int                    `json:"consultantIDs"`
	DisplayNames    []string                 `json:"displayNames"`
	WorkshopRevenue decimal.Decimal          `json:"workshopRevenue"`
	PMFee           decimal.Decimal          `json:"pmFee"`
	RevenueTotal    decimal.Decimal          `json:"revenueTotal"`
	ConsultantCosts []ConsultantCostResponse `json:"consultantCosts"`
	PMCost          decimal.Decimal          `json:"pmCost"`
	CostTotal       decimal.Decimal          `json:"costTotal"`
	MarginAmount    decimal.Decimal          `json:"marginAmount"`
	MarginPercent   string                   `json:"marginPercent"` // one decimal place, e.g. "90.6"
	Tier            domain.MarginTier        `json:"tier"`
}

// ToCombinationMarginResponse converts a domain.CombinationMargin to its DTO,
// resolving display names against the engagement country.
func ToCombinationMarginResponse(cm domain.CombinationMargin, country string) CombinationMarginResponse {
	ids := make([]int, len(cm.Combination.Consultants))
	names := make([]string, len(cm.Combination.Consultants))
	for i, c := range cm.Combination.Consultants {
		ids[i] = c.ConsultantID
		names[i] = c.DisplayName(country)
	}
	costs := make([]ConsultantCostResponse, len(cm.MarginResult.ConsultantCosts))
	for i, cc := range cm.MarginResult.ConsultantCosts {
		costs[i] = ConsultantCostResponse{
			ConsultantID: cc.ConsultantID,
			Name:         cc.Name,
			Cost:         cc.Cost,
		}
	}
	return CombinationMarginResponse{
		ConsultantIDs:   ids,
		DisplayNames:    names,
		WorkshopRevenue: cm.MarginResult.WorkshopRevenue,
		PMFee:           cm.MarginResult.PMFee,
		RevenueTotal:    cm.MarginResult.RevenueTotal,
		ConsultantCosts: costs,
		PMCost:          cm.MarginResult.PMCost,
		CostTotal:       cm.MarginResult.CostTotal,
		MarginAmount:    cm.MarginResult.MarginAmount,
		MarginPercent:   utils.FormatPercent(cm.MarginResult.MarginPercent),
		Tier:            cm.MarginResult.Tier,
	}
}

// ToListCombinationMarginResponse converts a slice of domain.CombinationMargin to DTOs.
func ToListCombinationMarginResponse(cms []domain.CombinationMargin, country string) []CombinationMarginResponse {
	responses := make([]CombinationMarginResponse, len(cms))
	for i, cm := range cms {
		responses[i] = ToCombinationMarginResponse(cm, country)
	}
	return responses
}
