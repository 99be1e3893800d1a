package request

import "strings"

// CreateLotRequest is the payload for declaring a new production lot.
// Most fields are optional; the engine applies the product's defaults.
type CreateLotRequest struct {
	LotNumber      string  `json:"lot_number"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	BatchSize      float64 `json:"batch_size"`
	Unit           string  `json:"unit"`
	ProductionDate string  `json:"production_date"`
	ExpiryDate     string  `json:"expiry_date"`
	Notes          string  `json:"notes"`
	Actor          string  `json:"actor"`
}

// UpdateLotStatusRequest sets a lot's status explicitly.
type UpdateLotStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

// QCResultRequest appends one quality-control measurement to a lot.
type QCResultRequest struct {
	TestName  string   `json:"test_name"`
	Result    string   `json:"result"`
	Value     *float64 `json:"value"`
	Unit      string   `json:"unit"`
	Inspector string   `json:"inspector"`
}

// InspectionRequest reports a visual-inspection verdict for a lot.
// Passed is a pointer so an explicit false still binds.
type InspectionRequest struct {
	Passed   *bool  `json:"passed" binding:"required"`
	ImageRef string `json:"image_ref"`
	Comments string `json:"comments"`
	Actor    string `json:"actor"`
}

// ResolveActor returns the trimmed actor name, empty when absent.
func ResolveActor(actor string) string {
	return strings.TrimSpace(actor)
}
