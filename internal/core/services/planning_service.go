package services

import (
	"context"
	"fmt"

	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)

	// Margin tier thresholds, inclusive on the lower bound.
	// 1-day workshops carry no PM overhead and are held to higher margins.
	tierOptimal1Day     = decimal.NewFromInt(60)
	tierAcceptable1Day  = decimal.NewFromInt(40)
	tierOptimal2Days    = decimal.NewFromInt(30)
	tierAcceptable2Days = decimal.NewFromInt(20)
)

// PlanningService enumerates feasible consultant assignments for a country
// and evaluates the economics of each one against the pricing catalog.
type PlanningService struct {
	roster  portssvc.RosterReaderSvc
	pricing portssvc.PricingSvcFacade
}

// NewPlanningService creates a new PlanningService.
func NewPlanningService(roster portssvc.RosterReaderSvc, pricing portssvc.PricingSvcFacade) *PlanningService {
	return &PlanningService{
		roster:  roster,
		pricing: pricing,
	}
}

// EnumerateCombinations yields every valid assignment for the given country
// and workshop type. Single-consultant variants produce one combination per
// eligible consultant in roster order; the two-consultant variant produces
// every unordered pair of distinct eligible consultants exactly once (i < j
// over the filtered ordered set). An empty eligible set yields an empty
// slice, not an error.
func (s *PlanningService) EnumerateCombinations(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.Combination, error) {
	consultants, err := s.roster.ListConsultants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster for enumeration: %w", err)
	}
	return s.enumerateFrom(consultants, country, workshopType)
}

// enumerateFrom runs the enumeration over an already-read roster snapshot so
// that one analysis pass never mixes two roster versions.
func (s *PlanningService) enumerateFrom(consultants []domain.Consultant, country string, workshopType domain.WorkshopType) ([]domain.Combination, error) {
	if !domain.IsSupportedCountry(country) {
		return nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, country)
	}
	if !workshopType.IsValid() {
		return nil, fmt.Errorf("%w: unknown workshop type %q", apperrors.ErrValidation, workshopType)
	}

	eligible := make([]domain.Consultant, 0, len(consultants))
	for _, c := range consultants {
		if c.DeliversTo(country) {
			eligible = append(eligible, c)
		}
	}

	combinations := []domain.Combination{}
	if workshopType.ConsultantsRequired() == 1 {
		for _, c := range eligible {
			combinations = append(combinations, domain.Combination{Consultants: []domain.Consultant{c}})
		}
		return combinations, nil
	}

	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			combinations = append(combinations, domain.Combination{
				Consultants: []domain.Consultant{eligible[i], eligible[j]},
			})
		}
	}
	return combinations, nil
}

// EvaluateMargin applies the fixed pricing formulas for workshopType to the
// combination: revenue from the catalog (plus PM fee on 2-day variants), cost
// from consultant USD day rates (plus PM daily cost on 2-day variants), and a
// tier classification with inclusive lower bounds. All math is decimal; the
// raw margin percentage is kept unrounded for tiering.
func (s *PlanningService) EvaluateMargin(combination domain.Combination, workshopType domain.WorkshopType) (domain.MarginResult, error) {
	if !workshopType.IsValid() {
		return domain.MarginResult{}, fmt.Errorf("%w: unknown workshop type %q", apperrors.ErrValidation, workshopType)
	}
	if len(combination.Consultants) != workshopType.ConsultantsRequired() {
		return domain.MarginResult{}, fmt.Errorf("%w: workshop type %q requires %d consultant(s), got %d",
			apperrors.ErrValidation, workshopType, workshopType.ConsultantsRequired(), len(combination.Consultants))
	}

	catalog := s.pricing.Catalog()
	var result domain.MarginResult

	switch workshopType {
	case domain.Workshop1Day1Consultant:
		c := combination.Consultants[0]
		result.WorkshopRevenue = catalog.Price1Day1Consultant
		result.PMFee = decimal.Zero
		result.PMCost = decimal.Zero
		result.ConsultantCosts = []domain.ConsultantCost{
			{ConsultantID: c.ConsultantID, Name: c.Name, Cost: c.SoloDayRateUSD},
		}

	case domain.Workshop2Days1Consultant:
		c := combination.Consultants[0]
		result.WorkshopRevenue = catalog.Price2Days1Consultant
		result.PMFee = catalog.PMFee
		result.PMCost = catalog.PMDailyCost
		result.ConsultantCosts = []domain.ConsultantCost{
			{ConsultantID: c.ConsultantID, Name: c.Name, Cost: c.SoloDayRateUSD.Mul(two)},
		}

	case domain.Workshop2Days2Consultants:
		result.WorkshopRevenue = catalog.Price2Days2Consultants
		result.PMFee = catalog.PMFee
		result.PMCost = catalog.PMDailyCost
		result.ConsultantCosts = make([]domain.ConsultantCost, len(combination.Consultants))
		for i, c := range combination.Consultants {
			result.ConsultantCosts[i] = domain.ConsultantCost{
				ConsultantID: c.ConsultantID,
				Name:         c.Name,
				Cost:         c.PairDayRateUSD.Mul(two),
			}
		}
	}

	result.RevenueTotal = result.WorkshopRevenue.Add(result.PMFee)
	result.CostTotal = result.PMCost
	for _, cc := range result.ConsultantCosts {
		result.CostTotal = result.CostTotal.Add(cc.Cost)
	}
	result.MarginAmount = result.RevenueTotal.Sub(result.CostTotal)
	// Catalog prices are fixed positive values, so RevenueTotal is never zero.
	result.MarginPercent = result.MarginAmount.Div(result.RevenueTotal).Mul(hundred)
	result.Tier = classifyMargin(result.MarginPercent, workshopType)

	return result, nil
}

// AnalyzeCountry enumerates and evaluates in one pass over a single roster
// snapshot, in enumeration order.
func (s *PlanningService) AnalyzeCountry(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.CombinationMargin, error) {
	consultants, err := s.roster.ListConsultants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster for analysis: %w", err)
	}

	combinations, err := s.enumerateFrom(consultants, country, workshopType)
	if err != nil {
		return nil, err
	}

	results := make([]domain.CombinationMargin, len(combinations))
	for i, comb := range combinations {
		margin, err := s.EvaluateMargin(comb, workshopType)
		if err != nil {
			return nil, err
		}
		results[i] = domain.CombinationMargin{Combination: comb, MarginResult: margin}
	}
	return results, nil
}

// classifyMargin buckets a margin percentage into its qualitative tier.
// Boundaries are inclusive on the lower bound of each named tier.
func classifyMargin(marginPercent decimal.Decimal, workshopType domain.WorkshopType) domain.MarginTier {
	optimal, acceptable := tierOptimal2Days, tierAcceptable2Days
	if workshopType == domain.Workshop1Day1Consultant {
		optimal, acceptable = tierOptimal1Day, tierAcceptable1Day
	}
	switch {
	case marginPercent.GreaterThanOrEqual(optimal):
		return domain.TierOptimal
	case marginPercent.GreaterThanOrEqual(acceptable):
		return domain.TierAcceptable
	default:
		return domain.TierLow
	}
}
