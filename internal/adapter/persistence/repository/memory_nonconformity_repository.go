package repository

import (
	"context"
	"sync"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"
)

// MemoryNonConformityRepository stores NC records in process memory.
// Listings are newest-first, matching declaration order in the UI.
type MemoryNonConformityRepository struct {
	mu    sync.RWMutex
	ncs   map[string]entities.NonConformity
	order []string
}

var _ interfaces.INonConformityRepository = (*MemoryNonConformityRepository)(nil)

func NewMemoryNonConformityRepository() *MemoryNonConformityRepository {
	return &MemoryNonConformityRepository{ncs: map[string]entities.NonConformity{}}
}

func (r *MemoryNonConformityRepository) Create(_ context.Context, nc entities.NonConformity) (entities.NonConformity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ncs[nc.ID] = nc
	r.order = append([]string{nc.ID}, r.order...)
	return nc, nil
}

func (r *MemoryNonConformityRepository) GetByID(_ context.Context, id string) (entities.NonConformity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ncs[id], nil
}

func (r *MemoryNonConformityRepository) List(_ context.Context) ([]entities.NonConformity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.NonConformity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.ncs[id])
	}
	return out, nil
}

func (r *MemoryNonConformityRepository) ListByLotID(_ context.Context, lotID string) ([]entities.NonConformity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.NonConformity
	for _, id := range r.order {
		if nc := r.ncs[id]; nc.LotID == lotID {
			out = append(out, nc)
		}
	}
	return out, nil
}

func (r *MemoryNonConformityRepository) Save(_ context.Context, nc entities.NonConformity) (entities.NonConformity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ncs[nc.ID]; !ok {
		return entities.NonConformity{}, nil
	}
	r.ncs[nc.ID] = nc
	return nc, nil
}
