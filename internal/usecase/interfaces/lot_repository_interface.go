package interfaces

import (
	"context"

	"pure_essence_qms/internal/domain/entities"
)

// ILotRepository abstracts storage for Lot aggregates.
//
// The engine must be able to:
//   - create a lot when production declares a new batch
//   - load a lot by id for status changes, QC results and risk reconciliation
//   - save the whole aggregate back after a mutation (events and QC results
//     are part of the aggregate, so there is no partial update)
//
// Not-found is reported as a zero-value Lot with a nil error; the usecase
// layer maps that to its typed not-found error.
type ILotRepository interface {
	Create(ctx context.Context, lot entities.Lot) (entities.Lot, error)
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	List(ctx context.Context) ([]entities.Lot, error)
	Save(ctx context.Context, lot entities.Lot) (entities.Lot, error)
}
