package domain

import "time"

// DueDiligenceStatus is the state of a listing review.
type DueDiligenceStatus string

const (
	DueDiligencePendente   DueDiligenceStatus = "PENDENTE"
	DueDiligenceEmAnalise  DueDiligenceStatus = "EM_ANALISE"
	DueDiligenceAprovado   DueDiligenceStatus = "APROVADO"
	DueDiligenceRepactuado DueDiligenceStatus = "REPACTUADO"
	DueDiligenceRejeitado  DueDiligenceStatus = "REJEITADO"
)

var dueDiligenceTransitions = map[DueDiligenceStatus][]DueDiligenceStatus{
	DueDiligencePendente:  {DueDiligenceEmAnalise},
	DueDiligenceEmAnalise: {DueDiligenceAprovado, DueDiligenceRejeitado},
	DueDiligenceAprovado:  {DueDiligenceRepactuado},
}

// ParseDueDiligenceStatus returns the status matching s, or false when s is unknown.
func ParseDueDiligenceStatus(s string) (DueDiligenceStatus, bool) {
	switch st := DueDiligenceStatus(s); st {
	case DueDiligencePendente, DueDiligenceEmAnalise, DueDiligenceAprovado, DueDiligenceRepactuado, DueDiligenceRejeitado:
		return st, true
	}
	return "", false
}

// CanTransitionTo reports whether next is a permitted successor of s.
func (s DueDiligenceStatus) CanTransitionTo(next DueDiligenceStatus) bool {
	for _, allowed := range dueDiligenceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Clears reports whether the status lets the listing go on sale.
func (s DueDiligenceStatus) Clears() bool {
	return s == DueDiligenceAprovado || s == DueDiligenceRepactuado
}

// DueDiligence is an analyst's review of a listing.
type DueDiligence struct {
	DueDiligenceID     string             `json:"dueDiligenceID"`
	ListingID          string             `json:"listingID"`
	AnalystID          string             `json:"analystID"`
	Status             DueDiligenceStatus `json:"status"`
	Notes              string             `json:"notes"`
	DocumentApproved   bool               `json:"documentApproved"`
	RepactuationReason *string            `json:"repactuationReason,omitempty"`
	StartedAt          *time.Time         `json:"startedAt,omitempty"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
	AuditFields
}

// Apply moves the review to next, stamping start and completion times from now.
// The caller has already checked that the transition is permitted.
func (d *DueDiligence) Apply(next DueDiligenceStatus, now time.Time) {
	d.Status = next
	d.UpdatedAt = now
	switch next {
	case DueDiligenceEmAnalise:
		d.StartedAt = &now
	case DueDiligenceAprovado, DueDiligenceRejeitado:
		d.CompletedAt = &now
	}
}
