package request

// CreateNCRequest declares a non-conformity. Source and severity default to
// Interne/Mineure; lot_id is optional and, when set, must reference an
// existing lot.
type CreateNCRequest struct {
	Source      string `json:"source"`
	Product     string `json:"product"`
	LotID       string `json:"lot_id"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Actor       string `json:"actor"`
}

// UpdateNCRequest patches an existing NC. Only the fields listed here are
// mutable in the workflow; severity and lot linkage are fixed at creation.
type UpdateNCRequest struct {
	Status          *string `json:"status"`
	ResolutionNotes *string `json:"resolution_notes"`
}
