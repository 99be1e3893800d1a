package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "pure_essence_qms/internal/adapter/http/dto/request"
	response "pure_essence_qms/internal/adapter/http/dto/response"
	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase"
	"pure_essence_qms/internal/usecase/interfaces"
	"pure_essence_qms/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNCPayload = pkg.NewDomainErrorSimple("INVALID_NC_INPUT", "Invalid non-conformity payload", http.StatusBadRequest)

const moduleNonConformity = "Non-Conformity"

// NonConformityHandler handles HTTP requests for the NC registry.
type NonConformityHandler struct {
	usecase usecase.INonConformityUseCase
	trail   interfaces.IAuditTrail
}

func NewNonConformityHandler(uc usecase.INonConformityUseCase, trail interfaces.IAuditTrail) *NonConformityHandler {
	return &NonConformityHandler{usecase: uc, trail: trail}
}

// CreateNC declares a non-conformity. When the payload links a lot, the risk
// recompute and auto-quarantine cascade runs inside the command.
func (h *NonConformityHandler) CreateNC(c *gin.Context) {
	var payload request.CreateNCRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNCPayload.HTTPStatus, errInvalidNCPayload.ToHTTPError())
		return
	}

	actor := request.ResolveActor(payload.Actor)
	nc, err := h.usecase.Create(c.Request.Context(), usecase.CreateNCInput{
		Source:      entities.NCSource(payload.Source),
		Product:     payload.Product,
		LotID:       payload.LotID,
		Description: payload.Description,
		Severity:    entities.NCSeverity(payload.Severity),
	}, actor)
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction(actor, fmt.Sprintf("Created NC %s (%s)", nc.Reference, nc.Severity), moduleNonConformity)
	h.trail.Notify("Non-Conformité déclarée", entities.NotificationSuccess)

	c.JSON(http.StatusCreated, response.FromNonConformity(nc))
}

// UpdateNC patches an existing NC's status or resolution notes.
func (h *NonConformityHandler) UpdateNC(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateNCRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNCPayload.HTTPStatus, errInvalidNCPayload.ToHTTPError())
		return
	}

	in := usecase.UpdateNCInput{ResolutionNotes: payload.ResolutionNotes}
	if payload.Status != nil {
		status := entities.NCStatus(*payload.Status)
		in.Status = &status
	}

	nc, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction("", fmt.Sprintf("Updated NC %s", nc.ID), moduleNonConformity)
	h.trail.Notify("Non-Conformité mise à jour", entities.NotificationSuccess)

	c.JSON(http.StatusOK, response.FromNonConformity(nc))
}

// GetNC returns a single NC record.
func (h *NonConformityHandler) GetNC(c *gin.Context) {
	nc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNonConformity(nc))
}

// ListNCs returns all NC records, newest-first.
func (h *NonConformityHandler) ListNCs(c *gin.Context) {
	ncs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNonConformities(ncs))
}

// ListNCsForLot returns the NCs linked to one lot, newest-first.
func (h *NonConformityHandler) ListNCsForLot(c *gin.Context) {
	ncs, err := h.usecase.ListByLotID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNonConformities(ncs))
}

func mapNCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNCID), errors.Is(err, usecase.ErrInvalidNCSource),
		errors.Is(err, usecase.ErrInvalidNCSeverity), errors.Is(err, usecase.ErrInvalidNCStatus),
		errors.Is(err, usecase.ErrEmptyNCUpdate), errors.Is(err, usecase.ErrInvalidLotID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNCNotFound):
		return pkg.NewDomainErrorSimple("NC_NOT_FOUND", "Non-conformity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Lot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
