package services

import (
	"context"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
)

// PricingSvcFacade exposes read access to the fixed price list.
type PricingSvcFacade interface {
	// Catalog returns the workshop price list and PM economics.
	Catalog() domain.PricingCatalog
}

// CombinationEnumeratorSvc enumerates feasible consultant assignments.
type CombinationEnumeratorSvc interface {
	// EnumerateCombinations yields every valid assignment for the given
	// country and workshop type: one combination per eligible consultant for
	// single-consultant variants, every unordered pair of distinct eligible
	// consultants for the two-consultant variant. An empty eligible set
	// yields an empty slice, not an error.
	EnumerateCombinations(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.Combination, error)
}

// MarginEvaluatorSvc computes the economics of one combination.
type MarginEvaluatorSvc interface {
	// EvaluateMargin applies the fixed pricing formulas for workshopType to
	// the combination and classifies the margin into a tier.
	EvaluateMargin(combination domain.Combination, workshopType domain.WorkshopType) (domain.MarginResult, error)
}

// PlanningSvcFacade combines enumeration and evaluation.
type PlanningSvcFacade interface {
	CombinationEnumeratorSvc
	MarginEvaluatorSvc

	// AnalyzeCountry enumerates and evaluates in one pass over a single
	// roster snapshot, in enumeration order.
	AnalyzeCountry(ctx context.Context, country string, workshopType domain.WorkshopType) ([]domain.CombinationMargin, error)
}
