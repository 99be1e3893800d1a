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
	"pure_essence_qms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNCNotFound        = errors.New("non-conformity not found")
	ErrInvalidNCID       = errors.New("invalid non-conformity id")
	ErrInvalidNCSource   = errors.New("invalid non-conformity source")
	ErrInvalidNCSeverity = errors.New("invalid non-conformity severity")
	ErrInvalidNCStatus   = errors.New("invalid non-conformity status")
	ErrEmptyNCUpdate     = errors.New("empty non-conformity update")
)

// CreateNCInput carries the caller-supplied fields of a new non-conformity.
// Source and severity default to Interne/Mineure when left empty.
type CreateNCInput struct {
	Source      entities.NCSource
	Product     string
	LotID       string
	Description string
	Severity    entities.NCSeverity
}

// UpdateNCInput lists the only fields the workflow allows to change on an
// existing NC. Severity and lot linkage are immutable after creation, so
// they are deliberately absent.
type UpdateNCInput struct {
	Status          *entities.NCStatus
	ResolutionNotes *string
}

// INonConformityUseCase is the NC registry.
//
// Lot-linked mutations cascade into the lot lifecycle: creation recomputes
// the risk score and runs the auto-quarantine guard, updates only recompute
// the risk score. The cascade is part of the command; callers never trigger
// it themselves.
type INonConformityUseCase interface {
	Create(ctx context.Context, in CreateNCInput, actor string) (entities.NonConformity, error)
	Update(ctx context.Context, id string, in UpdateNCInput) (entities.NonConformity, error)
	GetByID(ctx context.Context, id string) (entities.NonConformity, error)
	List(ctx context.Context) ([]entities.NonConformity, error)
	ListByLotID(ctx context.Context, lotID string) ([]entities.NonConformity, error)
}

type NonConformityUseCase struct {
	repo      interfaces.INonConformityRepository
	lotRepo   interfaces.ILotRepository
	lifecycle ILotUseCase

	// Serializes NC mutations so a create/update and its risk cascade run as
	// one unit; the recompute always sees the full post-mutation set.
	mu sync.Mutex

	now       func() time.Time
	newID     func() string
	refSuffix func() int
}

var _ INonConformityUseCase = (*NonConformityUseCase)(nil)

func NewNonConformityUseCase(repo interfaces.INonConformityRepository, lotRepo interfaces.ILotRepository, lifecycle ILotUseCase) *NonConformityUseCase {
	return &NonConformityUseCase{
		repo:      repo,
		lotRepo:   lotRepo,
		lifecycle: lifecycle,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		refSuffix: func() int { return rand.Intn(1000) },
	}
}

func (u *NonConformityUseCase) Create(ctx context.Context, in CreateNCInput, actor string) (entities.NonConformity, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	source := in.Source
	if source == "" {
		source = entities.NCSourceInterne
	}
	if !source.IsValid() {
		return entities.NonConformity{}, ErrInvalidNCSource
	}

	severity := in.Severity
	if severity == "" {
		severity = entities.NCSeverityMineure
	}
	if !severity.IsValid() {
		return entities.NonConformity{}, ErrInvalidNCSeverity
	}

	lotID := strings.TrimSpace(in.LotID)
	if lotID != "" {
		// Boundary validation: a dangling lot reference is rejected here so
		// the cascade below can assume the lot exists.
		lot, err := u.lotRepo.GetByID(ctx, lotID)
		if err != nil {
			return entities.NonConformity{}, err
		}
		if lot.ID == "" {
			return entities.NonConformity{}, ErrLotNotFound
		}
	}

	now := u.now()
	nc := entities.NonConformity{
		ID:          u.newID(),
		Reference:   fmt.Sprintf("NC-%d-%d", now.Year(), u.refSuffix()),
		Source:      source,
		Product:     defaultString(in.Product, "N/A"),
		LotID:       lotID,
		Description: strings.TrimSpace(in.Description),
		Severity:    severity,
		Status:      entities.NCStatusNouveau,
		Date:        now.Format("2006-01-02"),
	}

	created, err := u.repo.Create(ctx, nc)
	if err != nil {
		return entities.NonConformity{}, err
	}
	log.Printf("[nc][usecase] created nc_id=%s reference=%s severity=%s lot_id=%s actor=%s", created.ID, created.Reference, created.Severity, created.LotID, actor)

	if lotID != "" {
		// Re-read the full current set (including the new record) before the
		// recompute; the store, not the in-flight value, is authoritative.
		linked, err := u.repo.ListByLotID(ctx, lotID)
		if err != nil {
			return entities.NonConformity{}, err
		}
		if _, err := u.lifecycle.ApplyCreatedNC(ctx, lotID, linked, created.Severity); err != nil {
			return entities.NonConformity{}, err
		}
	}

	return created, nil
}

func (u *NonConformityUseCase) Update(ctx context.Context, id string, in UpdateNCInput) (entities.NonConformity, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.NonConformity{}, ErrInvalidNCID
	}
	if in.Status == nil && in.ResolutionNotes == nil {
		return entities.NonConformity{}, ErrEmptyNCUpdate
	}
	if in.Status != nil && !in.Status.IsValid() {
		return entities.NonConformity{}, ErrInvalidNCStatus
	}

	nc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.NonConformity{}, err
	}
	if nc.ID == "" {
		return entities.NonConformity{}, ErrNCNotFound
	}

	if in.Status != nil {
		nc.Status = *in.Status
	}
	if in.ResolutionNotes != nil {
		nc.ResolutionNotes = strings.TrimSpace(*in.ResolutionNotes)
	}

	saved, err := u.repo.Save(ctx, nc)
	if err != nil {
		return entities.NonConformity{}, err
	}
	log.Printf("[nc][usecase] updated nc_id=%s status=%s", saved.ID, saved.Status)

	if saved.LotID != "" {
		// Closing an NC lowers the linked lot's risk on the next read; the
		// guard is not re-run here, only creation can quarantine.
		linked, err := u.repo.ListByLotID(ctx, saved.LotID)
		if err != nil {
			return entities.NonConformity{}, err
		}
		if _, err := u.lifecycle.ReconcileRisk(ctx, saved.LotID, linked); err != nil {
			return entities.NonConformity{}, err
		}
	}

	return saved, nil
}

func (u *NonConformityUseCase) GetByID(ctx context.Context, id string) (entities.NonConformity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.NonConformity{}, ErrInvalidNCID
	}

	nc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.NonConformity{}, err
	}
	if nc.ID == "" {
		return entities.NonConformity{}, ErrNCNotFound
	}
	return nc, nil
}

func (u *NonConformityUseCase) List(ctx context.Context) ([]entities.NonConformity, error) {
	return u.repo.List(ctx)
}

func (u *NonConformityUseCase) ListByLotID(ctx context.Context, lotID string) ([]entities.NonConformity, error) {
	lotID = strings.TrimSpace(lotID)
	if lotID == "" {
		return nil, ErrInvalidLotID
	}
	return u.repo.ListByLotID(ctx, lotID)
}
