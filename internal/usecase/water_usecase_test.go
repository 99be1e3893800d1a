package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pure_essence_qms/internal/adapter/persistence/repository"
	"pure_essence_qms/internal/domain/entities"
)

func newTestWaterUseCase(t *testing.T) (*WaterUseCase, *NonConformityUseCase) {
	t.Helper()
	_, ncs := newQualityStack(t)
	uc := NewWaterUseCase(repository.NewMemoryWaterCheckRepository(), ncs)
	uc.now = func() time.Time { return testNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("water-id-%d", seq)
	}
	return uc, ncs
}

func TestWaterUseCase_Record(t *testing.T) {
	t.Run("conforming reading stores no nc", func(t *testing.T) {
		uc, ncs := newTestWaterUseCase(t)
		ctx := context.Background()

		out, err := uc.Record(ctx, WaterCheckInput{
			Source:       "Forage Nord",
			PH:           7.0,
			Conductivity: 480,
			Temperature:  18.5,
			Inspector:    "Bob",
		}, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Check.Status != entities.WaterStatusConforme {
			t.Fatalf("expected Conforme, got %s", out.Check.Status)
		}
		if out.NonConformity != nil {
			t.Fatalf("expected no nc, got %+v", out.NonConformity)
		}

		all, err := ncs.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected no nc in registry, got %+v", all)
		}
	})

	t.Run("non-conforming reading escalates to critical nc", func(t *testing.T) {
		uc, _ := newTestWaterUseCase(t)

		out, err := uc.Record(context.Background(), WaterCheckInput{
			Source:       "Forage Nord",
			PH:           8.2,
			Conductivity: 550,
		}, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Check.Status != entities.WaterStatusNonConforme {
			t.Fatalf("expected Non-Conforme, got %s", out.Check.Status)
		}
		if out.NonConformity == nil {
			t.Fatalf("expected auto-created nc")
		}
		nc := *out.NonConformity
		if nc.Source != entities.NCSourceInterne || nc.Severity != entities.NCSeverityCritique {
			t.Fatalf("unexpected nc: %+v", nc)
		}
		if nc.Product != "EAU" || nc.LotID != "" {
			t.Fatalf("water nc must not reference a lot: %+v", nc)
		}
		if nc.Description != "Qualité Eau Non-Conforme (pH: 8.2, Cond: 550). Impact potentiel sur production." {
			t.Fatalf("unexpected description: %q", nc.Description)
		}
	})

	t.Run("thresholds", func(t *testing.T) {
		cases := []struct {
			name string
			ph   float64
			cond float64
			want entities.WaterStatus
		}{
			{name: "ph lower bound", ph: 6.5, cond: 100, want: entities.WaterStatusConforme},
			{name: "ph upper bound", ph: 8.0, cond: 100, want: entities.WaterStatusConforme},
			{name: "ph below range", ph: 6.4, cond: 100, want: entities.WaterStatusNonConforme},
			{name: "ph above range", ph: 8.1, cond: 100, want: entities.WaterStatusNonConforme},
			{name: "conductivity at ceiling", ph: 7.0, cond: 500, want: entities.WaterStatusNonConforme},
			{name: "conductivity below ceiling", ph: 7.0, cond: 499.9, want: entities.WaterStatusConforme},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, _ := newTestWaterUseCase(t)
				out, err := uc.Record(context.Background(), WaterCheckInput{PH: tc.ph, Conductivity: tc.cond}, "op")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Check.Status != tc.want {
					t.Fatalf("expected %s, got %s", tc.want, out.Check.Status)
				}
			})
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		uc, _ := newTestWaterUseCase(t)

		out, err := uc.Record(context.Background(), WaterCheckInput{PH: 7.2, Conductivity: 300}, "Claire")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Check.Date != "2026-03-14" || out.Check.Source != "Unknown" {
			t.Fatalf("unexpected defaults: %+v", out.Check)
		}
		if out.Check.Inspector != "Claire" {
			t.Fatalf("expected actor as inspector fallback, got %q", out.Check.Inspector)
		}
	})
}

func TestWaterUseCase_List(t *testing.T) {
	uc, _ := newTestWaterUseCase(t)
	ctx := context.Background()

	if _, err := uc.Record(ctx, WaterCheckInput{Source: "A", PH: 7, Conductivity: 100}, "op"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Record(ctx, WaterCheckInput{Source: "B", PH: 7, Conductivity: 100}, "op"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	if checks[0].Source != "B" || checks[1].Source != "A" {
		t.Fatalf("expected newest first, got %+v", checks)
	}
}
