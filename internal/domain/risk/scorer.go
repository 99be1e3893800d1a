// Package risk holds the pure lot risk formula.
//
// The score is always derived from the full current set of non-conformities
// linked to a lot; it is never updated incrementally. Callers recompute it
// synchronously after every NC mutation and cache the result on the lot.
package risk

import "pure_essence_qms/internal/domain/entities"

// Severity base points. A closed NC keeps contributing half of its points
// (residual risk factor).
const (
	pointsCritique = 50.0
	pointsMajeure  = 30.0
	pointsMineure  = 10.0

	residualFactor = 0.5
)

// Score computes the [0,1] risk score of a lot from the complete NC set.
//
// Only NCs whose LotID matches contribute. Points by severity are
// Critique=50, Majeure=30, Mineure=10, anything else 0; closed NCs count
// half. The sum is divided by 100 and clamped to [0,1]. The function is
// deterministic and order-independent.
func Score(lotID string, allNCs []entities.NonConformity) float64 {
	total := 0.0
	for _, nc := range allNCs {
		if nc.LotID != lotID {
			continue
		}

		var points float64
		switch nc.Severity {
		case entities.NCSeverityCritique:
			points = pointsCritique
		case entities.NCSeverityMajeure:
			points = pointsMajeure
		case entities.NCSeverityMineure:
			points = pointsMineure
		default:
			points = 0
		}

		if nc.Status == entities.NCStatusCloture {
			points *= residualFactor
		}

		total += points
	}

	score := total / 100.0
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}
