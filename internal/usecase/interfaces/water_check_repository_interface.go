package interfaces

import (
	"context"

	"pure_essence_qms/internal/domain/entities"
)

// IWaterCheckRepository abstracts storage for water readings.
// Checks are immutable once recorded, so there is no update operation.
type IWaterCheckRepository interface {
	Create(ctx context.Context, check entities.WaterQualityCheck) (entities.WaterQualityCheck, error)
	List(ctx context.Context) ([]entities.WaterQualityCheck, error)
}
