package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Potability thresholds. A reading is Conforme iff the pH sits inside the
// window and the conductivity stays below the ceiling.
const (
	waterPHMin           = 6.5
	waterPHMax           = 8.0
	waterMaxConductivity = 500.0
)

// WaterCheckInput carries one water reading.
type WaterCheckInput struct {
	Date         string
	Source       string
	PH           float64
	Conductivity float64
	Temperature  float64
	Inspector    string
}

// WaterCheckOutcome is the stored reading plus the Critical NC auto-created
// for a non-conforming one.
type WaterCheckOutcome struct {
	Check         entities.WaterQualityCheck
	NonConformity *entities.NonConformity
}

// IWaterUseCase records water readings and escalates non-conforming ones.
type IWaterUseCase interface {
	Record(ctx context.Context, in WaterCheckInput, actor string) (WaterCheckOutcome, error)
	List(ctx context.Context) ([]entities.WaterQualityCheck, error)
}

type WaterUseCase struct {
	repo interfaces.IWaterCheckRepository
	ncs  INonConformityUseCase

	now   func() time.Time
	newID func() string
}

var _ IWaterUseCase = (*WaterUseCase)(nil)

func NewWaterUseCase(repo interfaces.IWaterCheckRepository, ncs INonConformityUseCase) *WaterUseCase {
	return &WaterUseCase{
		repo:  repo,
		ncs:   ncs,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Record stores the immutable reading with its derived conformity status.
// A Non-Conforme reading always declares a Critical "EAU" NC, however far
// out of range the values are. That NC carries no lot reference, so it has
// no lot side effects.
func (u *WaterUseCase) Record(ctx context.Context, in WaterCheckInput, actor string) (WaterCheckOutcome, error) {
	status := entities.WaterStatusNonConforme
	if in.PH >= waterPHMin && in.PH <= waterPHMax && in.Conductivity < waterMaxConductivity {
		status = entities.WaterStatusConforme
	}

	check := entities.WaterQualityCheck{
		ID:           u.newID(),
		Date:         defaultString(in.Date, u.now().Format("2006-01-02")),
		Source:       defaultString(in.Source, "Unknown"),
		PH:           in.PH,
		Conductivity: in.Conductivity,
		Temperature:  in.Temperature,
		Status:       status,
		Inspector:    defaultString(in.Inspector, defaultString(actor, "System")),
	}

	created, err := u.repo.Create(ctx, check)
	if err != nil {
		return WaterCheckOutcome{}, err
	}
	log.Printf("[water][usecase] recorded check_id=%s source=%s status=%s ph=%.2f cond=%.0f", created.ID, created.Source, created.Status, created.PH, created.Conductivity)

	if created.Status == entities.WaterStatusConforme {
		return WaterCheckOutcome{Check: created}, nil
	}

	nc, err := u.ncs.Create(ctx, CreateNCInput{
		Source:      entities.NCSourceInterne,
		Product:     "EAU",
		Severity:    entities.NCSeverityCritique,
		Description: fmt.Sprintf("Qualité Eau Non-Conforme (pH: %v, Cond: %v). Impact potentiel sur production.", created.PH, created.Conductivity),
	}, actor)
	if err != nil {
		return WaterCheckOutcome{}, err
	}

	return WaterCheckOutcome{Check: created, NonConformity: &nc}, nil
}

func (u *WaterUseCase) List(ctx context.Context) ([]entities.WaterQualityCheck, error) {
	return u.repo.List(ctx)
}
