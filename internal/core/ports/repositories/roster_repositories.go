package repositories

import (
	"context"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
)

// RosterReader defines read operations for roster data
type RosterReader interface {
	// ListConsultants retrieves every consultant in roster order.
	// Implementations must return a consistent snapshot: a concurrent
	// ReplaceRoster never leaks a half-updated roster to the caller.
	ListConsultants(ctx context.Context) ([]domain.Consultant, error)
}

// RosterWriter defines write operations for roster data
type RosterWriter interface {
	// ReplaceRoster swaps the entire roster contents atomically.
	ReplaceRoster(ctx context.Context, consultants []domain.Consultant) error
}

// RosterRepositoryFacade combines all roster-related repository interfaces
type RosterRepositoryFacade interface {
	RosterReader
	RosterWriter
}

// RosterSource is the external tabular resource the roster is bootstrapped
// from. It yields rows with local rates only; USD derivation is the roster
// service's concern.
type RosterSource interface {
	ReadRoster(ctx context.Context) ([]domain.Consultant, error)
}
