package request

// WaterCheckRequest records a point-in-time water reading. pH and
// conductivity are pointers so zero readings still bind explicitly.
type WaterCheckRequest struct {
	Date         string   `json:"date"`
	Source       string   `json:"source"`
	PH           *float64 `json:"ph" binding:"required"`
	Conductivity *float64 `json:"conductivity" binding:"required"`
	Temperature  float64  `json:"temperature"`
	Inspector    string   `json:"inspector"`
	Actor        string   `json:"actor"`
}
