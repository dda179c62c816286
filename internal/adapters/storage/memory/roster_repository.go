package memory

import (
	"context"
	"sync"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	portsrepo "github.com/fedemoisello/ADN-2025/internal/core/ports/repositories"
)

// RosterRepository is the in-memory roster store. The roster has process
// lifetime only; restarting the process reloads the original source data.
//
// Writes replace the slice reference wholesale under the mutex, so readers
// always observe either the previous or the next roster, never a mix. Reads
// hand out copies, keeping the stored slice immutable after the swap.
type RosterRepository struct {
	mu          sync.RWMutex
	consultants []domain.Consultant
}

// NewRosterRepository creates an empty in-memory roster repository.
func NewRosterRepository() *RosterRepository {
	return &RosterRepository{consultants: []domain.Consultant{}}
}

// ListConsultants returns a snapshot of the roster in insertion order.
func (r *RosterRepository) ListConsultants(ctx context.Context) ([]domain.Consultant, error) {
	r.mu.RLock()
	current := r.consultants
	r.mu.RUnlock()

	snapshot := make([]domain.Consultant, len(current))
	copy(snapshot, current)
	return snapshot, nil
}

// ReplaceRoster swaps the entire roster contents atomically.
func (r *RosterRepository) ReplaceRoster(ctx context.Context, consultants []domain.Consultant) error {
	next := make([]domain.Consultant, len(consultants))
	copy(next, consultants)

	r.mu.Lock()
	r.consultants = next
	r.mu.Unlock()
	return nil
}

var _ portsrepo.RosterRepositoryFacade = (*RosterRepository)(nil)
