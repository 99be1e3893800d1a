package interfaces

import (
	"context"

	"pure_essence_qms/internal/domain/entities"
)

// INonConformityRepository abstracts storage for NonConformity records.
//
// ListByLotID must return the complete current set linked to a lot; risk
// recomputation always re-reads it instead of trusting an in-flight snapshot.
type INonConformityRepository interface {
	Create(ctx context.Context, nc entities.NonConformity) (entities.NonConformity, error)
	GetByID(ctx context.Context, id string) (entities.NonConformity, error)
	List(ctx context.Context) ([]entities.NonConformity, error)
	ListByLotID(ctx context.Context, lotID string) ([]entities.NonConformity, error)
	Save(ctx context.Context, nc entities.NonConformity) (entities.NonConformity, error)
}
