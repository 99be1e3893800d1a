package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pure_essence_qms/internal/infrastructure/audit"

	"github.com/gin-gonic/gin"
)

func TestAuditHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	trail := audit.NewTrail()
	trail.LogAction("Alice", "Created Lot PE-2026-1", "Traceability")
	trail.LogAction("Bob", "Created NC NC-2026-7 (Critique)", "Non-Conformity")
	trail.Notify("Non-Conformité déclarée", "success")

	h := NewAuditHandler(trail)
	r := gin.New()
	r.GET("/v1/audit/logs", h.ListLogs)
	r.GET("/v1/audit/notifications", h.ListNotifications)

	t.Run("logs newest first", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/audit/logs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[0]["actor"] != "Bob" || body[1]["actor"] != "Alice" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("notifications", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/audit/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["message"] != "Non-Conformité déclarée" || body[0]["type"] != "success" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
