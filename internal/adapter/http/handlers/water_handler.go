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

var errInvalidWaterPayload = pkg.NewDomainErrorSimple("INVALID_WATER_INPUT", "Invalid water check payload", http.StatusBadRequest)

const moduleWater = "Traceability (Water)"

// WaterHandler handles water-quality readings.
type WaterHandler struct {
	usecase usecase.IWaterUseCase
	trail   interfaces.IAuditTrail
}

func NewWaterHandler(uc usecase.IWaterUseCase, trail interfaces.IAuditTrail) *WaterHandler {
	return &WaterHandler{usecase: uc, trail: trail}
}

// RecordWaterCheck stores a reading; a non-conforming one auto-creates a
// Critical NC for the water supply.
func (h *WaterHandler) RecordWaterCheck(c *gin.Context) {
	var payload request.WaterCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWaterPayload.HTTPStatus, errInvalidWaterPayload.ToHTTPError())
		return
	}

	actor := request.ResolveActor(payload.Actor)
	outcome, err := h.usecase.Record(c.Request.Context(), usecase.WaterCheckInput{
		Date:         payload.Date,
		Source:       payload.Source,
		PH:           *payload.PH,
		Conductivity: *payload.Conductivity,
		Temperature:  payload.Temperature,
		Inspector:    payload.Inspector,
	}, actor)
	if err != nil {
		appErr := mapNCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.trail.LogAction(actor, fmt.Sprintf("Added Water Check for %s", outcome.Check.Source), moduleWater)
	if outcome.NonConformity != nil {
		h.trail.Notify("Alerte Qualité Eau: NC Critique créée automatiquement", entities.NotificationError)
	} else {
		h.trail.Notify("Relevé eau enregistré", entities.NotificationSuccess)
	}

	resp := response.WaterCheckOutcomeResponse{Check: response.FromWaterCheck(outcome.Check)}
	if outcome.NonConformity != nil {
		nc := response.FromNonConformity(*outcome.NonConformity)
		resp.NonConformity = &nc
	}
	c.JSON(http.StatusCreated, resp)
}

// ListWaterChecks returns all readings, newest-first.
func (h *WaterHandler) ListWaterChecks(c *gin.Context) {
	checks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWaterChecks(checks))
}
