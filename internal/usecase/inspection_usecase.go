package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pure_essence_qms/internal/domain/entities"
)

// InspectionOutcome is the full result of a submitted inspection: the lot
// after all side effects, and the auto-created NC when the inspection failed.
type InspectionOutcome struct {
	Lot           entities.Lot
	NonConformity *entities.NonConformity
}

// IInspectionUseCase translates a pass/fail visual-inspection verdict into
// lot and NC mutations.
type IInspectionUseCase interface {
	Submit(ctx context.Context, lotID string, passed bool, imageRef, comments, actor string) (InspectionOutcome, error)
}

type InspectionUseCase struct {
	lots ILotUseCase
	ncs  INonConformityUseCase
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(lots ILotUseCase, ncs INonConformityUseCase) *InspectionUseCase {
	return &InspectionUseCase{lots: lots, ncs: ncs}
}

// Submit applies the inspection outcome, then on failure declares the Major
// NC. The order is part of the contract: the status and score adjustment
// land first, and the NC's own risk recompute then overwrites the raw +0.2
// adjustment with the formula output.
func (u *InspectionUseCase) Submit(ctx context.Context, lotID string, passed bool, imageRef, comments, actor string) (InspectionOutcome, error) {
	log.Printf("[inspection][usecase] submit lot_id=%s passed=%t image_ref=%s", lotID, passed, imageRef)

	lot, err := u.lots.ApplyInspectionOutcome(ctx, lotID, passed)
	if err != nil {
		return InspectionOutcome{}, err
	}

	if passed {
		return InspectionOutcome{Lot: lot}, nil
	}

	nc, err := u.ncs.Create(ctx, CreateNCInput{
		Source:      entities.NCSourceInspectionIA,
		Product:     lot.ProductName,
		LotID:       lot.ID,
		Severity:    entities.NCSeverityMajeure,
		Description: strings.TrimSpace(fmt.Sprintf("Défaut visuel détecté par IA. %s", comments)),
	}, actor)
	if err != nil {
		return InspectionOutcome{}, err
	}

	// The NC cascade may have quarantined the lot and replaced the score;
	// return the post-cascade state, not the intermediate one.
	lot, err = u.lots.GetByID(ctx, lot.ID)
	if err != nil {
		return InspectionOutcome{}, err
	}

	return InspectionOutcome{Lot: lot, NonConformity: &nc}, nil
}
