package entities

import "time"

// LotStatus represents the lifecycle of a production lot.
//
// Domain notes:
//   - The nominal path is created -> in_production -> qc_pending ->
//     qc_passed/qc_failed -> released/quarantined -> shipped.
//   - quarantined is reachable from any non-terminal status; released and
//     shipped are terminal for automatic transitions (the auto-quarantine
//     guard never overrides them).
//   - Operator-driven status changes are deliberately permissive: any status
//     may be set explicitly. The only hard guard in the engine is the
//     terminal-state check on auto-quarantine.
type LotStatus string

const (
	LotStatusCreated      LotStatus = "created"
	LotStatusInProduction LotStatus = "in_production"
	LotStatusQCPending    LotStatus = "qc_pending"
	LotStatusQCPassed     LotStatus = "qc_passed"
	LotStatusQCFailed     LotStatus = "qc_failed"
	LotStatusQuarantined  LotStatus = "quarantined"
	LotStatusReleased     LotStatus = "released"
	LotStatusShipped      LotStatus = "shipped"
)

// LotEvent is an immutable audit-trail entry on a lot.
// Events are stored newest-first and are never mutated after append.
type LotEvent struct {
	ID           string    `json:"id"`
	LotID        string    `json:"lot_id"`
	EventType    string    `json:"event_type"`
	Timestamp    time.Time `json:"timestamp"`
	Actor        string    `json:"actor"`
	Details      string    `json:"details"`
	AnomalyScore *float64  `json:"anomaly_score,omitempty"`
}

// Event type tags appended by the lifecycle.
const (
	EventTypeCreated          = "created"
	EventTypeStatusChange     = "status_change"
	EventTypeInspectionPassed = "inspection_passed"
	EventTypeInspectionFailed = "inspection_failed"
	EventTypeAutoQuarantine   = "auto_quarantine"
)

// QCResult is a single quality-control measurement recorded on a lot.
type QCResult struct {
	ID        string   `json:"id"`
	TestName  string   `json:"test_name"`
	Result    string   `json:"result"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Inspector string   `json:"inspector"`
	Date      string   `json:"date"`
}

// Lot is a traceable production batch under quality control.
//
// Domain notes:
//   - RiskScore is a cached value in [0,1]; it always equals the last output
//     of the risk scorer over the lot's linked non-conformities. It is
//     recomputed synchronously on every NC mutation and additionally adjusted
//     by visual inspection outcomes.
//   - LotNumber is externally assigned; the engine does not enforce its
//     uniqueness.
//   - Events and QCResults are append-only, newest-first.
type Lot struct {
	ID             string     `json:"id"`
	LotNumber      string     `json:"lot_number"`
	ProductID      string     `json:"product_id"`
	ProductName    string     `json:"product_name"`
	BatchSize      float64    `json:"batch_size"`
	Unit           string     `json:"unit"`
	ProductionDate string     `json:"production_date"`
	ExpiryDate     string     `json:"expiry_date"`
	Status         LotStatus  `json:"status"`
	RiskScore      float64    `json:"risk_score"`
	Events         []LotEvent `json:"events"`
	QCResults      []QCResult `json:"qc_results"`
}
