package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pure_essence_qms/internal/adapter/http/handlers/mocks"
	"pure_essence_qms/internal/domain/entities"
	"pure_essence_qms/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLotHandlerForTest(t *testing.T) (*LotHandler, *mocks.MockILotUseCase, *mocks.MockIAnalysisGateway, *mocks.MockIAuditTrail) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockILotUseCase(ctrl)
	advisor := mocks.NewMockIAnalysisGateway(ctrl)
	trail := mocks.NewMockIAuditTrail(ctrl)
	return NewLotHandler(uc, advisor, trail), uc, advisor, trail
}

func TestLotHandler_CreateLot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/lots", h.CreateLot)

		req := httptest.NewRequest(http.MethodPost, "/v1/lots", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid batch size", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/lots", h.CreateLot)

		uc.EXPECT().CreateLot(gomock.Any(), gomock.Any(), "op").Return(entities.Lot{}, usecase.ErrInvalidBatchSize)

		req := httptest.NewRequest(http.MethodPost, "/v1/lots", bytes.NewBufferString(`{"batch_size":-5,"actor":"op"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		h, uc, _, trail := newLotHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/lots", h.CreateLot)

		lot := entities.Lot{ID: "lot-1", LotNumber: "PE-2026-42", Status: entities.LotStatusCreated}
		uc.EXPECT().CreateLot(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateLotInput{}), "Alice").Return(lot, nil)
		trail.EXPECT().LogAction("Alice", "Created Lot PE-2026-42", "Traceability")
		trail.EXPECT().Notify("Lot PE-2026-42 créé et ajouté à la production", entities.NotificationSuccess)

		req := httptest.NewRequest(http.MethodPost, "/v1/lots", bytes.NewBufferString(`{"product_name":"Savon","actor":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "lot-1" || body["lot_number"] != "PE-2026-42" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLotHandler_UpdateLotStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		h, _, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.PATCH("/v1/lots/:id/status", h.UpdateLotStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/lots/lot-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lot not found", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.PATCH("/v1/lots/:id/status", h.UpdateLotStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "ghost", entities.LotStatusShipped, "").Return(entities.Lot{}, usecase.ErrLotNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/lots/ghost/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		h, uc, _, trail := newLotHandlerForTest(t)

		r := gin.New()
		r.PATCH("/v1/lots/:id/status", h.UpdateLotStatus)

		lot := entities.Lot{ID: "lot-1", Status: entities.LotStatusReleased}
		uc.EXPECT().SetStatus(gomock.Any(), "lot-1", entities.LotStatusReleased, "Alice").Return(lot, nil)
		trail.EXPECT().LogAction("Alice", gomock.Any(), "Traceability")
		trail.EXPECT().Notify("Statut du lot mis à jour : released", entities.NotificationSuccess)

		req := httptest.NewRequest(http.MethodPatch, "/v1/lots/lot-1/status", bytes.NewBufferString(`{"status":"released","actor":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLotHandler_RecordQCResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recorded", func(t *testing.T) {
		h, uc, _, trail := newLotHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/lots/:id/qc-results", h.RecordQCResult)

		lot := entities.Lot{ID: "lot-1"}
		uc.EXPECT().RecordQCResult(gomock.Any(), "lot-1", gomock.AssignableToTypeOf(usecase.QCResultInput{})).Return(lot, nil)
		trail.EXPECT().LogAction("Bob", "Added QC Result to Lot lot-1", "Traceability")
		trail.EXPECT().Notify("Résultat QC ajouté au lot", entities.NotificationSuccess)

		req := httptest.NewRequest(http.MethodPost, "/v1/lots/lot-1/qc-results", bytes.NewBufferString(`{"test_name":"pH","result":"pass","inspector":"Bob"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("lot not found", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/lots/:id/qc-results", h.RecordQCResult)

		uc.EXPECT().RecordQCResult(gomock.Any(), "ghost", gomock.Any()).Return(entities.Lot{}, usecase.ErrLotNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/lots/ghost/qc-results", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLotHandler_GetLot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.GET("/v1/lots/:id", h.GetLot)

		uc.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Lot{ID: "lot-1", RiskScore: 0.3}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/lots/lot-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.GET("/v1/lots/:id", h.GetLot)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lot{}, usecase.ErrLotNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/lots/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		h, uc, _, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.GET("/v1/lots/:id", h.GetLot)

		uc.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Lot{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/lots/lot-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLotHandler_ListLots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc, _, _ := newLotHandlerForTest(t)

	r := gin.New()
	r.GET("/v1/lots", h.ListLots)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Lot{{ID: "lot-2"}, {ID: "lot-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/lots", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 || body[0]["id"] != "lot-2" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLotHandler_AnalyzeLot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("summary returned", func(t *testing.T) {
		h, uc, advisor, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.GET("/v1/lots/:id/analysis", h.AnalyzeLot)

		lot := entities.Lot{ID: "lot-1", RiskScore: 0.8}
		uc.EXPECT().GetByID(gomock.Any(), "lot-1").Return(lot, nil)
		advisor.EXPECT().AnalyzeLot(gomock.Any(), lot).Return("Risque élevé.", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/lots/lot-1/analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["lot_id"] != "lot-1" || body["summary"] != "Risque élevé." {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("advisor failure maps to bad gateway", func(t *testing.T) {
		h, uc, advisor, _ := newLotHandlerForTest(t)

		r := gin.New()
		r.GET("/v1/lots/:id/analysis", h.AnalyzeLot)

		uc.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Lot{ID: "lot-1"}, nil)
		advisor.EXPECT().AnalyzeLot(gomock.Any(), gomock.Any()).Return("", errors.New("upstream"))

		req := httptest.NewRequest(http.MethodGet, "/v1/lots/lot-1/analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
