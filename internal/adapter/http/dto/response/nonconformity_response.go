package response

import "pure_essence_qms/internal/domain/entities"

type NonConformityResponse struct {
	ID              string `json:"id"`
	Reference       string `json:"reference"`
	Source          string `json:"source"`
	Product         string `json:"product"`
	LotID           string `json:"lot_id,omitempty"`
	Description     string `json:"description"`
	Severity        string `json:"severity"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}

func FromNonConformity(nc entities.NonConformity) NonConformityResponse {
	return NonConformityResponse{
		ID:              nc.ID,
		Reference:       nc.Reference,
		Source:          string(nc.Source),
		Product:         nc.Product,
		LotID:           nc.LotID,
		Description:     nc.Description,
		Severity:        string(nc.Severity),
		Status:          string(nc.Status),
		Date:            nc.Date,
		ResolutionNotes: nc.ResolutionNotes,
	}
}

func FromNonConformities(ncs []entities.NonConformity) []NonConformityResponse {
	out := make([]NonConformityResponse, 0, len(ncs))
	for _, nc := range ncs {
		out = append(out, FromNonConformity(nc))
	}
	return out
}

// InspectionOutcomeResponse is the full result of a submitted inspection.
type InspectionOutcomeResponse struct {
	Lot           LotResponse            `json:"lot"`
	NonConformity *NonConformityResponse `json:"non_conformity,omitempty"`
}
