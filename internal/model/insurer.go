package model

// Insurer is one selectable insurer contract entity (EPS). Static reference
// data, read-only from this system.
type Insurer struct {
	Code  string `json:"code" db:"code"`
	Label string `json:"label" db:"label"`
}
