package analysis

import (
	"context"
	"fmt"
	"strings"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"
)

// Advisor is the stand-in for the external AI quality advisor.
//
// No inference happens here: the summary is assembled deterministically from
// the lot's own data. It exists so the rest of the system exercises the
// gateway boundary the way it would with a real model behind it.
type Advisor struct {
	apiKey string
}

var _ interfaces.IAnalysisGateway = (*Advisor)(nil)

func NewAdvisor(apiKey string) *Advisor {
	return &Advisor{apiKey: strings.TrimSpace(apiKey)}
}

func (a *Advisor) AnalyzeLot(_ context.Context, lot entities.Lot) (string, error) {
	if a.apiKey == "" {
		return "Configuration de l'API Key manquante. Impossible d'analyser le lot.", nil
	}

	level := "faible"
	recommendation := "Aucune action immédiate requise. Poursuivre le suivi standard."
	switch {
	case lot.RiskScore >= 0.7:
		level = "élevé"
		recommendation = "Blocage recommandé. Vérifier les non-conformités ouvertes avant toute libération."
	case lot.RiskScore >= 0.3:
		level = "modéré"
		recommendation = "Surveillance renforcée recommandée avant libération."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Lot %s (%s): risque %s (score %.2f, statut %s).", lot.LotNumber, lot.ProductName, level, lot.RiskScore, lot.Status)
	if len(lot.Events) > 0 {
		fmt.Fprintf(&b, " Dernier événement: %s.", lot.Events[0].EventType)
	}
	fmt.Fprintf(&b, " %s", recommendation)
	return b.String(), nil
}
