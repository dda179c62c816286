package services

import (
	"context"
	"fmt"

	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portsrepo "github.com/fedemoisello/ADN-2025/internal/core/ports/repositories"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
	"github.com/fedemoisello/ADN-2025/internal/dto"
)

// RosterService provides business logic for the consultant roster: bootstrap
// from the external source, reads, and full-replacement edit commits. It is
// the sole writer of the roster repository.
type RosterService struct {
	rosterRepo portsrepo.RosterRepositoryFacade
	source     portsrepo.RosterSource
	rates      portssvc.CurrencyConverterSvc
}

// NewRosterService creates a new RosterService.
func NewRosterService(rosterRepo portsrepo.RosterRepositoryFacade, source portsrepo.RosterSource, rates portssvc.CurrencyConverterSvc) *RosterService {
	return &RosterService{
		rosterRepo: rosterRepo,
		source:     source,
		rates:      rates,
	}
}

// LoadFromSource reads the external roster source, derives every USD rate and
// replaces the repository contents. On a source failure it installs an empty
// roster so the rest of the system stays serviceable, and returns an error
// wrapping apperrors.ErrRosterLoad for the caller to report.
func (s *RosterService) LoadFromSource(ctx context.Context) error {
	consultants, err := s.source.ReadRoster(ctx)
	if err != nil {
		if repErr := s.rosterRepo.ReplaceRoster(ctx, []domain.Consultant{}); repErr != nil {
			return fmt.Errorf("failed to reset roster after load failure: %w", repErr)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrRosterLoad, err)
	}

	for i := range consultants {
		s.deriveUSDRates(&consultants[i])
	}

	if err := s.rosterRepo.ReplaceRoster(ctx, consultants); err != nil {
		return fmt.Errorf("failed to store loaded roster: %w", err)
	}
	return nil
}

// ListConsultants retrieves every consultant with derived USD rates, in roster order.
func (s *RosterService) ListConsultants(ctx context.Context) ([]domain.Consultant, error) {
	consultants, err := s.rosterRepo.ListConsultants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultants in service: %w", err)
	}
	// Return empty slice if no consultants found, not nil
	if consultants == nil {
		return []domain.Consultant{}, nil
	}
	return consultants, nil
}

// ReplaceRoster commits a full-replacement edit of the roster. Rows arriving
// in hour mode are scaled back to day rates before recomputation. Validation
// is all-or-nothing: any bad row rejects the whole commit and the previous
// roster stays in place.
func (s *RosterService) ReplaceRoster(ctx context.Context, req dto.ReplaceRosterRequest) ([]domain.Consultant, error) {
	seen := make(map[int]struct{}, len(req.Rows))
	consultants := make([]domain.Consultant, 0, len(req.Rows))

	for i, row := range req.Rows {
		if _, dup := seen[row.ConsultantID]; dup {
			return nil, fmt.Errorf("%w: row %d: duplicate consultant ID %d", apperrors.ErrValidation, i, row.ConsultantID)
		}
		seen[row.ConsultantID] = struct{}{}

		if !domain.IsSupportedCountry(row.HomeCountry) {
			return nil, fmt.Errorf("%w: row %d: unknown country %q", apperrors.ErrValidation, i, row.HomeCountry)
		}
		for _, dc := range row.DeliveryCountries {
			if !domain.IsSupportedCountry(dc) {
				return nil, fmt.Errorf("%w: row %d: unknown delivery country %q", apperrors.ErrValidation, i, dc)
			}
		}
		if !domain.IsSupportedCurrency(row.AgreementCurrency) {
			return nil, fmt.Errorf("%w: row %d: unknown currency %q", apperrors.ErrValidation, i, row.AgreementCurrency)
		}
		if row.SoloRateLocal.IsNegative() || row.PairRateLocal.IsNegative() {
			return nil, fmt.Errorf("%w: row %d: day rates must be non-negative", apperrors.ErrValidation, i)
		}

		soloLocal := row.SoloRateLocal
		pairLocal := row.PairRateLocal
		if req.Unit == dto.UnitHour {
			soloLocal = soloLocal.Mul(dto.HoursPerDay)
			pairLocal = pairLocal.Mul(dto.HoursPerDay)
		}

		c := domain.Consultant{
			ConsultantID:      row.ConsultantID,
			Name:              row.Name,
			HomeCountry:       row.HomeCountry,
			DeliveryCountries: row.DeliveryCountries,
			AgreementCurrency: row.AgreementCurrency,
			SoloDayRateLocal:  soloLocal,
			PairDayRateLocal:  pairLocal,
		}
		s.deriveUSDRates(&c)
		consultants = append(consultants, c)
	}

	if err := s.rosterRepo.ReplaceRoster(ctx, consultants); err != nil {
		return nil, fmt.Errorf("failed to replace roster in service: %w", err)
	}
	return consultants, nil
}

// deriveUSDRates recomputes both USD fields from the local rates. USD fields
// are never source of truth; this is the only place they are written.
func (s *RosterService) deriveUSDRates(c *domain.Consultant) {
	c.SoloDayRateUSD = s.rates.ToUSD(c.SoloDayRateLocal, c.AgreementCurrency)
	c.PairDayRateUSD = s.rates.ToUSD(c.PairDayRateLocal, c.AgreementCurrency)
}
