package risk

import (
	"testing"

	"pure_essence_qms/internal/domain/entities"
)

func nc(lotID string, sev entities.NCSeverity, status entities.NCStatus) entities.NonConformity {
	return entities.NonConformity{ID: "nc", LotID: lotID, Severity: sev, Status: status}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name string
		ncs  []entities.NonConformity
		want float64
	}{
		{name: "no ncs", ncs: nil, want: 0},
		{name: "unrelated lot ignored", ncs: []entities.NonConformity{nc("other", entities.NCSeverityCritique, entities.NCStatusNouveau)}, want: 0},
		{name: "single minor", ncs: []entities.NonConformity{nc("lot-1", entities.NCSeverityMineure, entities.NCStatusNouveau)}, want: 0.10},
		{name: "single major", ncs: []entities.NonConformity{nc("lot-1", entities.NCSeverityMajeure, entities.NCStatusNouveau)}, want: 0.30},
		{name: "single critical", ncs: []entities.NonConformity{nc("lot-1", entities.NCSeverityCritique, entities.NCStatusNouveau)}, want: 0.50},
		{name: "closed critical halves", ncs: []entities.NonConformity{nc("lot-1", entities.NCSeverityCritique, entities.NCStatusCloture)}, want: 0.25},
		{name: "unknown severity worth zero", ncs: []entities.NonConformity{nc("lot-1", "Inconnue", entities.NCStatusNouveau)}, want: 0},
		{
			name: "accumulates additively",
			ncs: []entities.NonConformity{
				nc("lot-1", entities.NCSeverityMineure, entities.NCStatusNouveau),
				nc("lot-1", entities.NCSeverityMajeure, entities.NCStatusEnCours),
			},
			want: 0.40,
		},
		{
			name: "clamps at one",
			ncs: []entities.NonConformity{
				nc("lot-1", entities.NCSeverityCritique, entities.NCStatusNouveau),
				nc("lot-1", entities.NCSeverityCritique, entities.NCStatusNouveau),
				nc("lot-1", entities.NCSeverityMajeure, entities.NCStatusNouveau),
			},
			want: 1.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score("lot-1", tc.ncs)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got < 0 || got > 1 {
				t.Fatalf("score out of range: %v", got)
			}
		})
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	a := nc("lot-1", entities.NCSeverityCritique, entities.NCStatusCloture)
	b := nc("lot-1", entities.NCSeverityMineure, entities.NCStatusNouveau)

	if Score("lot-1", []entities.NonConformity{a, b}) != Score("lot-1", []entities.NonConformity{b, a}) {
		t.Fatalf("expected order-independent score")
	}
}

func TestScoreIdempotent(t *testing.T) {
	ncs := []entities.NonConformity{
		nc("lot-1", entities.NCSeverityMajeure, entities.NCStatusNouveau),
		nc("lot-1", entities.NCSeverityMineure, entities.NCStatusCloture),
	}

	first := Score("lot-1", ncs)
	second := Score("lot-1", ncs)
	if first != second {
		t.Fatalf("expected identical scores, got %v and %v", first, second)
	}
}
