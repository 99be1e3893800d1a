package entities

// WaterStatus is the conformity outcome of a water reading.
type WaterStatus string

const (
	WaterStatusConforme    WaterStatus = "Conforme"
	WaterStatusNonConforme WaterStatus = "Non-Conforme"
)

// WaterQualityCheck is a point-in-time water reading.
//
// Status is derived from the pH/conductivity thresholds at creation time and
// the whole record is immutable once stored.
type WaterQualityCheck struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Source       string      `json:"source"`
	PH           float64     `json:"ph"`
	Conductivity float64     `json:"conductivity"`
	Temperature  float64     `json:"temperature"`
	Status       WaterStatus `json:"status"`
	Inspector    string      `json:"inspector"`
}
