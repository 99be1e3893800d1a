package entities

// NCSource identifies where a non-conformity was declared from.
// Values are the French labels used across the product.
type NCSource string

const (
	NCSourceInterne      NCSource = "Interne"
	NCSourceReclamation  NCSource = "Réclamation Client"
	NCSourceInspectionIA NCSource = "Inspection IA"
)

// IsValid reports whether the source is one of the known values.
func (s NCSource) IsValid() bool {
	switch s {
	case NCSourceInterne, NCSourceReclamation, NCSourceInspectionIA:
		return true
	}
	return false
}

// NCSeverity drives the risk formula and the auto-quarantine guard.
//
// Severity is immutable after creation in the current workflow; only status
// and resolution notes may change on an existing record.
type NCSeverity string

const (
	NCSeverityMineure  NCSeverity = "Mineure"
	NCSeverityMajeure  NCSeverity = "Majeure"
	NCSeverityCritique NCSeverity = "Critique"
)

// IsSevere reports whether the severity triggers the auto-quarantine guard.
func (s NCSeverity) IsSevere() bool {
	return s == NCSeverityMajeure || s == NCSeverityCritique
}

// IsValid reports whether the severity is one of the known values.
func (s NCSeverity) IsValid() bool {
	switch s {
	case NCSeverityMineure, NCSeverityMajeure, NCSeverityCritique:
		return true
	}
	return false
}

// NCStatus is the processing state of a non-conformity.
type NCStatus string

const (
	NCStatusNouveau NCStatus = "Nouveau"
	NCStatusEnCours NCStatus = "En Cours"
	NCStatusCloture NCStatus = "Clôturé"
)

// IsValid reports whether the status is one of the known values.
func (s NCStatus) IsValid() bool {
	switch s {
	case NCStatusNouveau, NCStatusEnCours, NCStatusCloture:
		return true
	}
	return false
}

// NonConformity is a declared quality incident, optionally linked to a lot.
//
// Domain notes:
//   - Reference is display-only (NC-{year}-{suffix}); the engine does not
//     guarantee its uniqueness, only the ID is unique.
//   - LotID is a weak reference: the NC does not own the lot, it only points
//     at it so risk recomputation can find the linked set.
//   - ID, Reference, Severity and LotID never change after creation.
type NonConformity struct {
	ID              string     `json:"id"`
	Reference       string     `json:"reference"`
	Source          NCSource   `json:"source"`
	Product         string     `json:"product"`
	LotID           string     `json:"lot_id,omitempty"`
	Description     string     `json:"description"`
	Severity        NCSeverity `json:"severity"`
	Status          NCStatus   `json:"status"`
	Date            string     `json:"date"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
}
