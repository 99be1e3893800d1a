package response

import (
	"time"

	"pure_essence_qms/internal/domain/entities"
)

type LotEventResponse struct {
	ID           string    `json:"id"`
	LotID        string    `json:"lot_id"`
	EventType    string    `json:"event_type"`
	Timestamp    time.Time `json:"timestamp"`
	Actor        string    `json:"actor"`
	Details      string    `json:"details"`
	AnomalyScore *float64  `json:"anomaly_score,omitempty"`
}

type QCResultResponse struct {
	ID        string   `json:"id"`
	TestName  string   `json:"test_name"`
	Result    string   `json:"result"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Inspector string   `json:"inspector"`
	Date      string   `json:"date"`
}

type LotResponse struct {
	ID             string             `json:"id"`
	LotNumber      string             `json:"lot_number"`
	ProductID      string             `json:"product_id"`
	ProductName    string             `json:"product_name"`
	BatchSize      float64            `json:"batch_size"`
	Unit           string             `json:"unit"`
	ProductionDate string             `json:"production_date"`
	ExpiryDate     string             `json:"expiry_date"`
	Status         string             `json:"status"`
	RiskScore      float64            `json:"risk_score"`
	Events         []LotEventResponse `json:"events"`
	QCResults      []QCResultResponse `json:"qc_results"`
}

func FromLot(lot entities.Lot) LotResponse {
	events := make([]LotEventResponse, 0, len(lot.Events))
	for _, e := range lot.Events {
		events = append(events, LotEventResponse{
			ID:           e.ID,
			LotID:        e.LotID,
			EventType:    e.EventType,
			Timestamp:    e.Timestamp,
			Actor:        e.Actor,
			Details:      e.Details,
			AnomalyScore: e.AnomalyScore,
		})
	}

	results := make([]QCResultResponse, 0, len(lot.QCResults))
	for _, q := range lot.QCResults {
		results = append(results, QCResultResponse{
			ID:        q.ID,
			TestName:  q.TestName,
			Result:    q.Result,
			Value:     q.Value,
			Unit:      q.Unit,
			Inspector: q.Inspector,
			Date:      q.Date,
		})
	}

	return LotResponse{
		ID:             lot.ID,
		LotNumber:      lot.LotNumber,
		ProductID:      lot.ProductID,
		ProductName:    lot.ProductName,
		BatchSize:      lot.BatchSize,
		Unit:           lot.Unit,
		ProductionDate: lot.ProductionDate,
		ExpiryDate:     lot.ExpiryDate,
		Status:         string(lot.Status),
		RiskScore:      lot.RiskScore,
		Events:         events,
		QCResults:      results,
	}
}

func FromLots(lots []entities.Lot) []LotResponse {
	out := make([]LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, FromLot(lot))
	}
	return out
}

// AnalysisResponse wraps the AI advisor's summary for a lot.
type AnalysisResponse struct {
	LotID   string `json:"lot_id"`
	Summary string `json:"summary"`
}
