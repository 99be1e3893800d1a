package handlers

import (
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

var errInvalidInspectionPayload = pkg.NewDomainErrorSimple("INVALID_INSPECTION_INPUT", "Invalid inspection payload", http.StatusBadRequest)

const moduleInspection = "Inspection"

// InspectionHandler handles visual-inspection verdicts from the AI camera.
type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
	trail   interfaces.IAuditTrail
}

func NewInspectionHandler(uc usecase.IInspectionUseCase, trail interfaces.IAuditTrail) *InspectionHandler {
	return &InspectionHandler{usecase: uc, trail: trail}
}

// SubmitInspection applies a pass/fail verdict to a lot. A failed verdict
// also declares a Major NC, which may quarantine the lot.
func (h *InspectionHandler) SubmitInspection(c *gin.Context) {
	lotID := c.Param("id")

	var payload request.InspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	actor := request.ResolveActor(payload.Actor)
	passed := *payload.Passed
	outcome, err := h.usecase.Submit(c.Request.Context(), lotID, passed, payload.ImageRef, payload.Comments, actor)
	if err != nil {
		// Inspection failures cascade through the NC registry, so both error
		// families can surface here.
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	verdict := "FAIL"
	if passed {
		verdict = "PASS"
	}
	h.trail.LogAction(actor, fmt.Sprintf("Inspection Result for Lot %s: %s", outcome.Lot.ID, verdict), moduleInspection)
	if passed {
		h.trail.Notify(fmt.Sprintf("Inspection Validée pour le lot %s", outcome.Lot.ID), entities.NotificationSuccess)
	} else {
		h.trail.Notify(fmt.Sprintf("Inspection Échouée: NC créée et Lot %s bloqué", outcome.Lot.ID), entities.NotificationError)
	}

	resp := response.InspectionOutcomeResponse{Lot: response.FromLot(outcome.Lot)}
	if outcome.NonConformity != nil {
		nc := response.FromNonConformity(*outcome.NonConformity)
		resp.NonConformity = &nc
	}
	c.JSON(http.StatusOK, resp)
}
