package repository

import (
	"context"
	"sync"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"
)

// MemoryLotRepository stores Lot aggregates in process memory.
//
// Persistence is out of scope for the engine; this store keeps the same
// contract a database-backed repository would (not-found as zero value,
// newest-first listing) so one could be swapped in behind the interface.
//
// Aggregates are copied on the way in and out: callers never share slices
// with the store, so an appended event cannot leak into a previously
// returned lot.
type MemoryLotRepository struct {
	mu    sync.RWMutex
	lots  map[string]entities.Lot
	order []string
}

var _ interfaces.ILotRepository = (*MemoryLotRepository)(nil)

func NewMemoryLotRepository() *MemoryLotRepository {
	return &MemoryLotRepository{lots: map[string]entities.Lot{}}
}

func (r *MemoryLotRepository) Create(_ context.Context, lot entities.Lot) (entities.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lots[lot.ID] = cloneLot(lot)
	r.order = append([]string{lot.ID}, r.order...)
	return cloneLot(lot), nil
}

func (r *MemoryLotRepository) GetByID(_ context.Context, id string) (entities.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[id]
	if !ok {
		return entities.Lot{}, nil
	}
	return cloneLot(lot), nil
}

func (r *MemoryLotRepository) List(_ context.Context) ([]entities.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Lot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneLot(r.lots[id]))
	}
	return out, nil
}

func (r *MemoryLotRepository) Save(_ context.Context, lot entities.Lot) (entities.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.ID]; !ok {
		return entities.Lot{}, nil
	}
	r.lots[lot.ID] = cloneLot(lot)
	return cloneLot(lot), nil
}

func cloneLot(lot entities.Lot) entities.Lot {
	out := lot
	out.Events = append([]entities.LotEvent(nil), lot.Events...)
	out.QCResults = append([]entities.QCResult(nil), lot.QCResults...)
	return out
}
