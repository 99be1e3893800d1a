package usecase

import (
	"context"
	"errors"
	"testing"

	"pure_essence_qms/internal/domain/entities"
)

func TestInspectionUseCase_Submit(t *testing.T) {
	t.Run("unknown lot", func(t *testing.T) {
		lots, ncs := newQualityStack(t)
		uc := NewInspectionUseCase(lots, ncs)

		_, err := uc.Submit(context.Background(), "ghost", true, "", "", "op")
		if !errors.Is(err, ErrLotNotFound) {
			t.Fatalf("expected ErrLotNotFound, got %v", err)
		}
	})

	t.Run("pass leaves no nc", func(t *testing.T) {
		lots, ncs := newQualityStack(t)
		uc := NewInspectionUseCase(lots, ncs)
		ctx := context.Background()

		lot, err := lots.CreateLot(ctx, CreateLotInput{ProductName: "Crème Mains"}, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Submit(ctx, lot.ID, true, "img-1.jpg", "", "Alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NonConformity != nil {
			t.Fatalf("expected no nc, got %+v", out.NonConformity)
		}
		if out.Lot.Status != entities.LotStatusQCPassed {
			t.Fatalf("unexpected status: %s", out.Lot.Status)
		}
		if out.Lot.RiskScore != 0 {
			t.Fatalf("expected risk clamped at 0, got %v", out.Lot.RiskScore)
		}
		if out.Lot.Events[0].EventType != entities.EventTypeInspectionPassed {
			t.Fatalf("unexpected event: %+v", out.Lot.Events[0])
		}
	})

	t.Run("fail declares major nc and quarantines", func(t *testing.T) {
		lots, ncs := newQualityStack(t)
		uc := NewInspectionUseCase(lots, ncs)
		ctx := context.Background()

		lot, err := lots.CreateLot(ctx, CreateLotInput{ProductName: "Crème Mains"}, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Submit(ctx, lot.ID, false, "img-2.jpg", "rayure visible", "Alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NonConformity == nil {
			t.Fatalf("expected auto-created nc")
		}
		nc := *out.NonConformity
		if nc.Source != entities.NCSourceInspectionIA || nc.Severity != entities.NCSeverityMajeure {
			t.Fatalf("unexpected nc: %+v", nc)
		}
		if nc.Product != "Crème Mains" || nc.LotID != lot.ID {
			t.Fatalf("unexpected nc linkage: %+v", nc)
		}
		if nc.Description != "Défaut visuel détecté par IA. rayure visible" {
			t.Fatalf("unexpected description: %q", nc.Description)
		}

		// The +0.2 inspection adjustment is overwritten by the recompute the
		// new nc triggers: one open Major scores 0.3.
		if out.Lot.RiskScore != 0.3 {
			t.Fatalf("expected risk 0.3, got %v", out.Lot.RiskScore)
		}
		if out.Lot.Status != entities.LotStatusQuarantined {
			t.Fatalf("expected quarantine, got %s", out.Lot.Status)
		}
		if out.Lot.Events[0].EventType != entities.EventTypeAutoQuarantine {
			t.Fatalf("expected auto_quarantine first, got %+v", out.Lot.Events[0])
		}
		if out.Lot.Events[1].EventType != entities.EventTypeInspectionFailed {
			t.Fatalf("expected inspection_failed second, got %+v", out.Lot.Events[1])
		}
	})

	t.Run("fail with empty comments", func(t *testing.T) {
		lots, ncs := newQualityStack(t)
		uc := NewInspectionUseCase(lots, ncs)
		ctx := context.Background()

		lot, err := lots.CreateLot(ctx, CreateLotInput{}, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Submit(ctx, lot.ID, false, "", "", "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NonConformity.Description != "Défaut visuel détecté par IA." {
			t.Fatalf("unexpected description: %q", out.NonConformity.Description)
		}
	})
}
