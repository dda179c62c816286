package services

import (
	"context"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/fedemoisello/ADN-2025/internal/dto"
)

// RosterReaderSvc defines read operations for roster data
type RosterReaderSvc interface {
	// ListConsultants retrieves every consultant with derived USD rates, in roster order.
	ListConsultants(ctx context.Context) ([]domain.Consultant, error)
}

// RosterWriterSvc defines write operations for roster data
type RosterWriterSvc interface {
	// LoadFromSource reads the external roster source, derives USD rates and
	// replaces the store contents. On failure it installs an empty roster and
	// returns an error wrapping apperrors.ErrRosterLoad.
	LoadFromSource(ctx context.Context) error

	// ReplaceRoster commits a full-replacement edit of the roster. Every
	// row's USD fields are recomputed from scratch; the swap is atomic and
	// all-or-nothing (a validation error on any row rejects the commit).
	ReplaceRoster(ctx context.Context, req dto.ReplaceRosterRequest) ([]domain.Consultant, error)
}

// RosterSvcFacade combines all roster-related service interfaces
type RosterSvcFacade interface {
	RosterReaderSvc
	RosterWriterSvc
}
