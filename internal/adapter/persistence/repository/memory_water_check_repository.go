package repository

import (
	"context"
	"sync"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"
)

// MemoryWaterCheckRepository stores immutable water readings, newest-first.
type MemoryWaterCheckRepository struct {
	mu     sync.RWMutex
	checks []entities.WaterQualityCheck
}

var _ interfaces.IWaterCheckRepository = (*MemoryWaterCheckRepository)(nil)

func NewMemoryWaterCheckRepository() *MemoryWaterCheckRepository {
	return &MemoryWaterCheckRepository{}
}

func (r *MemoryWaterCheckRepository) Create(_ context.Context, check entities.WaterQualityCheck) (entities.WaterQualityCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks = append([]entities.WaterQualityCheck{check}, r.checks...)
	return check, nil
}

func (r *MemoryWaterCheckRepository) List(_ context.Context) ([]entities.WaterQualityCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entities.WaterQualityCheck(nil), r.checks...), nil
}
