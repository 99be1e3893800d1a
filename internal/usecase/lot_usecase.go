package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/domain/risk"
	"pure_essence_qms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLotNotFound      = errors.New("lot not found")
	ErrInvalidLotID     = errors.New("invalid lot id")
	ErrInvalidLotStatus = errors.New("invalid lot status")
	ErrInvalidBatchSize = errors.New("invalid batch size")
)

// Actors recorded on machine-generated lot events.
const (
	actorAICamera = "IA Camera"
	actorRiskAI   = "System (Risk AI)"
)

const anomalyScoreFailed = 0.9

// CreateLotInput carries the caller-supplied fields of a new lot.
// Missing fields get the same defaults the declaring UI applies.
type CreateLotInput struct {
	LotNumber      string
	ProductID      string
	ProductName    string
	BatchSize      float64
	Unit           string
	ProductionDate string
	ExpiryDate     string
	Notes          string
}

// QCResultInput carries one quality-control measurement to append to a lot.
type QCResultInput struct {
	TestName  string
	Result    string
	Value     *float64
	Unit      string
	Inspector string
}

// ILotUseCase exposes the lot lifecycle state machine.
//
// ReconcileRisk and ApplyCreatedNC are the transactional entry points the
// NC registry uses so "an NC mutation always leaves the lot's risk score
// consistent" is enforced in exactly one place.
type ILotUseCase interface {
	CreateLot(ctx context.Context, in CreateLotInput, actor string) (entities.Lot, error)
	SetStatus(ctx context.Context, lotID string, status entities.LotStatus, actor string) (entities.Lot, error)
	RecordQCResult(ctx context.Context, lotID string, in QCResultInput) (entities.Lot, error)
	ApplyInspectionOutcome(ctx context.Context, lotID string, passed bool) (entities.Lot, error)
	ReconcileRisk(ctx context.Context, lotID string, ncs []entities.NonConformity) (entities.Lot, error)
	ApplyCreatedNC(ctx context.Context, lotID string, ncs []entities.NonConformity, severity entities.NCSeverity) (entities.Lot, error)
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	List(ctx context.Context) ([]entities.Lot, error)
}

type LotUseCase struct {
	repo interfaces.ILotRepository

	// Serializes read-modify-save sequences so a cascade against a lot can
	// never interleave with another mutation of the same store.
	mu sync.Mutex

	// Injected so tests are deterministic.
	now       func() time.Time
	newID     func() string
	refSuffix func() int
}

var _ ILotUseCase = (*LotUseCase)(nil)

func NewLotUseCase(repo interfaces.ILotRepository) *LotUseCase {
	return &LotUseCase{
		repo:      repo,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		refSuffix: func() int { return rand.Intn(1000) },
	}
}

func (u *LotUseCase) CreateLot(ctx context.Context, in CreateLotInput, actor string) (entities.Lot, error) {
	if in.BatchSize < 0 {
		return entities.Lot{}, ErrInvalidBatchSize
	}

	now := u.now()
	lotID := u.newID()

	lotNumber := strings.TrimSpace(in.LotNumber)
	if lotNumber == "" {
		lotNumber = fmt.Sprintf("PE-%d-%d", now.Year(), u.refSuffix())
	}

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = "Aucune"
	}

	lot := entities.Lot{
		ID:             lotID,
		LotNumber:      lotNumber,
		ProductID:      defaultString(in.ProductID, "prod-new"),
		ProductName:    defaultString(in.ProductName, "Nouveau Produit"),
		BatchSize:      in.BatchSize,
		Unit:           defaultString(in.Unit, "Unités"),
		ProductionDate: defaultString(in.ProductionDate, now.Format("2006-01-02")),
		ExpiryDate:     in.ExpiryDate,
		Status:         entities.LotStatusCreated,
		RiskScore:      0,
		Events: []entities.LotEvent{{
			ID:        u.newID(),
			LotID:     lotID,
			EventType: entities.EventTypeCreated,
			Timestamp: now,
			Actor:     defaultString(actor, "Unknown"),
			Details:   fmt.Sprintf("Lot créé manuellement. Note: %s", notes),
		}},
		QCResults: []entities.QCResult{},
	}

	created, err := u.repo.Create(ctx, lot)
	if err != nil {
		return entities.Lot{}, err
	}
	log.Printf("[lot][usecase] created lot_id=%s lot_number=%s", created.ID, created.LotNumber)
	return created, nil
}

// SetStatus sets the lot status unconditionally and records a status_change
// event. Transitions are not validated against the nominal path: operators
// may move a lot to any status, the only automatic guard in the engine is
// the terminal-state check inside ApplyCreatedNC.
func (u *LotUseCase) SetStatus(ctx context.Context, lotID string, status entities.LotStatus, actor string) (entities.Lot, error) {
	if !isKnownLotStatus(status) {
		return entities.Lot{}, ErrInvalidLotStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	lot, err := u.loadLot(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}

	old := lot.Status
	lot.Status = status
	lot.Events = prependEvent(lot.Events, entities.LotEvent{
		ID:        u.newID(),
		LotID:     lot.ID,
		EventType: entities.EventTypeStatusChange,
		Timestamp: u.now(),
		Actor:     defaultString(actor, "System"),
		Details:   fmt.Sprintf("Statut changé vers %s", status),
	})

	saved, err := u.repo.Save(ctx, lot)
	if err != nil {
		return entities.Lot{}, err
	}
	log.Printf("[lot][usecase] status change lot_id=%s old=%s new=%s", lot.ID, old, status)
	return saved, nil
}

// RecordQCResult appends a result to the lot's QC list (newest-first). It
// never changes the lot status by itself.
func (u *LotUseCase) RecordQCResult(ctx context.Context, lotID string, in QCResultInput) (entities.Lot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lot, err := u.loadLot(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}

	result := entities.QCResult{
		ID:        u.newID(),
		TestName:  defaultString(in.TestName, "Test"),
		Result:    defaultString(in.Result, "pass"),
		Value:     in.Value,
		Unit:      in.Unit,
		Inspector: defaultString(in.Inspector, "Unknown"),
		Date:      u.now().Format("2006-01-02"),
	}
	lot.QCResults = append([]entities.QCResult{result}, lot.QCResults...)

	return u.repo.Save(ctx, lot)
}

// ApplyInspectionOutcome records a visual inspection verdict.
//
// The risk score is adjusted additively (-0.1 on pass, +0.2 on fail, clamped
// to [0,1]). When the inspection fails, the inspection adapter creates a
// Major NC right after this call; that NC's recompute then overwrites the
// +0.2 adjustment with the formula output. The adjust-then-recompute order
// is load-bearing and must not change.
func (u *LotUseCase) ApplyInspectionOutcome(ctx context.Context, lotID string, passed bool) (entities.Lot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lot, err := u.loadLot(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}

	eventType := entities.EventTypeInspectionFailed
	details := "Inspection visuelle: Échec"
	anomaly := anomalyScoreFailed
	if passed {
		eventType = entities.EventTypeInspectionPassed
		details = "Inspection visuelle: Succès"
		anomaly = 0
		lot.Status = entities.LotStatusQCPassed
		lot.RiskScore = clamp01(lot.RiskScore - 0.1)
	} else {
		lot.Status = entities.LotStatusQCFailed
		lot.RiskScore = clamp01(lot.RiskScore + 0.2)
	}

	lot.Events = prependEvent(lot.Events, entities.LotEvent{
		ID:           u.newID(),
		LotID:        lot.ID,
		EventType:    eventType,
		Timestamp:    u.now(),
		Actor:        actorAICamera,
		Details:      details,
		AnomalyScore: &anomaly,
	})

	saved, err := u.repo.Save(ctx, lot)
	if err != nil {
		return entities.Lot{}, err
	}
	log.Printf("[lot][usecase] inspection lot_id=%s passed=%t risk=%.2f", lot.ID, passed, saved.RiskScore)
	return saved, nil
}

// ReconcileRisk recomputes and stores the lot's risk score from the full
// current NC set. The NC registry calls it after every NC update.
func (u *LotUseCase) ReconcileRisk(ctx context.Context, lotID string, ncs []entities.NonConformity) (entities.Lot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lot, err := u.loadLot(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}

	lot.RiskScore = risk.Score(lot.ID, ncs)
	return u.repo.Save(ctx, lot)
}

// ApplyCreatedNC is the single transactional reaction to a freshly created
// lot-linked NC: recompute the risk score from the post-insert set, then run
// the auto-quarantine guard with the new NC's severity. Only creation runs
// the guard; updates go through ReconcileRisk.
func (u *LotUseCase) ApplyCreatedNC(ctx context.Context, lotID string, ncs []entities.NonConformity, severity entities.NCSeverity) (entities.Lot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lot, err := u.loadLot(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}

	lot.RiskScore = risk.Score(lot.ID, ncs)

	if severity.IsSevere() && lot.Status != entities.LotStatusQuarantined && lot.Status != entities.LotStatusShipped {
		lot.Status = entities.LotStatusQuarantined
		lot.Events = prependEvent(lot.Events, entities.LotEvent{
			ID:        u.newID(),
			LotID:     lot.ID,
			EventType: entities.EventTypeAutoQuarantine,
			Timestamp: u.now(),
			Actor:     actorRiskAI,
			Details:   fmt.Sprintf("Mise en quarantaine auto: NC %s détectée.", severity),
		})
		log.Printf("[lot][usecase] auto-quarantine lot_id=%s severity=%s risk=%.2f", lot.ID, severity, lot.RiskScore)
	}

	return u.repo.Save(ctx, lot)
}

func (u *LotUseCase) GetByID(ctx context.Context, id string) (entities.Lot, error) {
	return u.loadLot(ctx, id)
}

func (u *LotUseCase) List(ctx context.Context) ([]entities.Lot, error) {
	return u.repo.List(ctx)
}

func (u *LotUseCase) loadLot(ctx context.Context, lotID string) (entities.Lot, error) {
	lotID = strings.TrimSpace(lotID)
	if lotID == "" {
		return entities.Lot{}, ErrInvalidLotID
	}

	lot, err := u.repo.GetByID(ctx, lotID)
	if err != nil {
		return entities.Lot{}, err
	}
	if lot.ID == "" {
		return entities.Lot{}, ErrLotNotFound
	}
	return lot, nil
}

func isKnownLotStatus(s entities.LotStatus) bool {
	switch s {
	case entities.LotStatusCreated, entities.LotStatusInProduction,
		entities.LotStatusQCPending, entities.LotStatusQCPassed,
		entities.LotStatusQCFailed, entities.LotStatusQuarantined,
		entities.LotStatusReleased, entities.LotStatusShipped:
		return true
	}
	return false
}

func prependEvent(events []entities.LotEvent, e entities.LotEvent) []entities.LotEvent {
	return append([]entities.LotEvent{e}, events...)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func defaultString(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
