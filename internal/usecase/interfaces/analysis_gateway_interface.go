package interfaces

import (
	"context"

	"pure_essence_qms/internal/domain/entities"
)

// IAnalysisGateway produces a short expert summary of a lot's risk profile.
//
// The production implementation is a stub; the engine treats the analysis as
// an ordinary external collaborator and never depends on its output for any
// state transition.
type IAnalysisGateway interface {
	AnalyzeLot(ctx context.Context, lot entities.Lot) (string, error)
}
