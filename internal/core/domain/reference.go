package domain

// Sphere is the government level of a debtor entity.
type Sphere string

const (
	SphereFederal   Sphere = "Federal"
	SphereEstadual  Sphere = "Estadual"
	SphereMunicipal Sphere = "Municipal"
)

// Court is the tribunal that issued a payment order.
type Court struct {
	CourtID string  `json:"courtID"`
	Name    string  `json:"name"`
	Acronym string  `json:"acronym"`
	State   *string `json:"state,omitempty"`
}

// DebtorEntity is the public body that owes a payment order.
type DebtorEntity struct {
	DebtorID string  `json:"debtorID"`
	Name     string  `json:"name"`
	CNPJ     *string `json:"cnpj,omitempty"`
	Sphere   Sphere  `json:"sphere"`
}
