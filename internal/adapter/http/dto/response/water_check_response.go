package response

import "pure_essence_qms/internal/domain/entities"

type WaterCheckResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Source       string  `json:"source"`
	PH           float64 `json:"ph"`
	Conductivity float64 `json:"conductivity"`
	Temperature  float64 `json:"temperature"`
	Status       string  `json:"status"`
	Inspector    string  `json:"inspector"`
}

func FromWaterCheck(check entities.WaterQualityCheck) WaterCheckResponse {
	return WaterCheckResponse{
		ID:           check.ID,
		Date:         check.Date,
		Source:       check.Source,
		PH:           check.PH,
		Conductivity: check.Conductivity,
		Temperature:  check.Temperature,
		Status:       string(check.Status),
		Inspector:    check.Inspector,
	}
}

func FromWaterChecks(checks []entities.WaterQualityCheck) []WaterCheckResponse {
	out := make([]WaterCheckResponse, 0, len(checks))
	for _, c := range checks {
		out = append(out, FromWaterCheck(c))
	}
	return out
}

// WaterCheckOutcomeResponse is the stored reading plus the NC auto-created
// for a non-conforming one.
type WaterCheckOutcomeResponse struct {
	Check         WaterCheckResponse     `json:"check"`
	NonConformity *NonConformityResponse `json:"non_conformity,omitempty"`
}
