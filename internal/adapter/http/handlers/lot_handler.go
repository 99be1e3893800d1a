package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "pure_essence_qms/internal/adapter/http/dto/request"
	response "pure_essence_qms/internal/adapter/http/dto/response"
	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase"
	"pure_essence_qms/internal/usecase/interfaces"
	"pure_essence_qms/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLotPayload = pkg.NewDomainErrorSimple("INVALID_LOT_INPUT", "Invalid lot payload", http.StatusBadRequest)

const moduleTraceability = "Traceability"

// LotHandler handles HTTP requests for lot traceability.
//
// After every successful command it mirrors the action to the audit
// collaborator; the engine itself never logs user actions.
type LotHandler struct {
	usecase usecase.ILotUseCase
	advisor interfaces.IAnalysisGateway
	trail   interfaces.IAuditTrail
}

func NewLotHandler(uc usecase.ILotUseCase, advisor interfaces.IAnalysisGateway, trail interfaces.IAuditTrail) *LotHandler {
	return &LotHandler{usecase: uc, advisor: advisor, trail: trail}
}

// CreateLot declares a new production lot.
func (h *LotHandler) CreateLot(c *gin.Context) {
	var payload request.CreateLotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLotPayload.HTTPStatus, errInvalidLotPayload.ToHTTPError())
		return
	}

	actor := request.ResolveActor(payload.Actor)
	lot, err := h.usecase.CreateLot(c.Request.Context(), usecase.CreateLotInput{
		LotNumber:      payload.LotNumber,
		ProductID:      payload.ProductID,
		ProductName:    payload.ProductName,
		BatchSize:      payload.BatchSize,
		Unit:           payload.Unit,
		ProductionDate: payload.ProductionDate,
		ExpiryDate:     payload.ExpiryDate,
		Notes:          payload.Notes,
	}, actor)
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction(actor, fmt.Sprintf("Created Lot %s", lot.LotNumber), moduleTraceability)
	h.trail.Notify(fmt.Sprintf("Lot %s créé et ajouté à la production", lot.LotNumber), entities.NotificationSuccess)

	c.JSON(http.StatusCreated, response.FromLot(lot))
}

// UpdateLotStatus sets a lot's status explicitly.
func (h *LotHandler) UpdateLotStatus(c *gin.Context) {
	lotID := c.Param("id")

	var payload request.UpdateLotStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLotPayload.HTTPStatus, errInvalidLotPayload.ToHTTPError())
		return
	}

	actor := request.ResolveActor(payload.Actor)
	lot, err := h.usecase.SetStatus(c.Request.Context(), lotID, entities.LotStatus(payload.Status), actor)
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction(actor, fmt.Sprintf("Updated Lot %s status to %s", lot.ID, lot.Status), moduleTraceability)
	h.trail.Notify(fmt.Sprintf("Statut du lot mis à jour : %s", lot.Status), entities.NotificationSuccess)

	c.JSON(http.StatusOK, response.FromLot(lot))
}

// RecordQCResult appends a quality-control measurement to a lot.
func (h *LotHandler) RecordQCResult(c *gin.Context) {
	lotID := c.Param("id")

	var payload request.QCResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLotPayload.HTTPStatus, errInvalidLotPayload.ToHTTPError())
		return
	}

	lot, err := h.usecase.RecordQCResult(c.Request.Context(), lotID, usecase.QCResultInput{
		TestName:  payload.TestName,
		Result:    payload.Result,
		Value:     payload.Value,
		Unit:      payload.Unit,
		Inspector: payload.Inspector,
	})
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction(payload.Inspector, fmt.Sprintf("Added QC Result to Lot %s", lot.ID), moduleTraceability)
	h.trail.Notify("Résultat QC ajouté au lot", entities.NotificationSuccess)

	c.JSON(http.StatusOK, response.FromLot(lot))
}

// GetLot returns a single lot with its events and QC results.
func (h *LotHandler) GetLot(c *gin.Context) {
	lot, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLot(lot))
}

// ListLots returns all lots, newest-first.
func (h *LotHandler) ListLots(c *gin.Context) {
	lots, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLots(lots))
}

// AnalyzeLot returns the AI advisor's risk summary for a lot.
func (h *LotHandler) AnalyzeLot(c *gin.Context) {
	lot, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.advisor.AnalyzeLot(c.Request.Context(), lot)
	if err != nil {
		log.Printf("[lot][handler] analysis failed lot_id=%s err=%v", lot.ID, err)
		appErr := pkg.NewDomainError("ANALYSIS_FAILED", "Lot analysis failed", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AnalysisResponse{LotID: lot.ID, Summary: summary})
}

func mapLotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLotID), errors.Is(err, usecase.ErrInvalidLotStatus), errors.Is(err, usecase.ErrInvalidBatchSize):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Lot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
