package model

import "strings"

// Visibility values as stored. Legacy rows carry them in any case; reads
// normalize, writes always store the canonical uppercase form.
const (
	VisibilityActive   = "SI"
	VisibilityInactive = "NO"
)

// VisibilityIsActive reports whether a stored visibility value means active,
// tolerating legacy lowercase and mixed-case spellings.
func VisibilityIsActive(flag string) bool {
	return strings.EqualFold(flag, VisibilityActive)
}

// SpecialtyAssignment is one per-(employee, specialty) credential row. Rows are
// never created or deleted here; only visibility, specialty+billing and
// contract are mutated, always across every row of an employee.
type SpecialtyAssignment struct {
	EmployeeCode  string  `json:"employee_code" db:"employee_code"`
	SpecialtyCode string  `json:"specialty_code" db:"specialty_code"`
	BillingCode   string  `json:"billing_code" db:"billing_code"`
	BotVisible    string  `json:"bot_visible" db:"bot_visible"`
	ContractCode  *string `json:"contract_code" db:"contract_code"`
	IsPrimary     bool    `json:"is_primary" db:"is_primary"`

	// DisplayName is joined in from staff_users; nil when the employee code
	// has no staff record.
	DisplayName *string `json:"-" db:"display_name"`
}

// PhysicianView is the per-employee aggregate over a physician's assignment
// rows. Derived, never persisted.
type PhysicianView struct {
	EmployeeCode string   `json:"employee_code"`
	DisplayName  string   `json:"display_name"`
	Specialties  []string `json:"specialties"`
	BotVisible   bool     `json:"bot_visible"`
	ContractCode string   `json:"contract_code,omitempty"`
}

// RosterFilter narrows the roster listing
type RosterFilter struct {
	SpecialtyCodes []string `form:"specialty"`
	VisibleOnly    bool     `form:"visible"`
}

// ToggleVisibilityRequest targets one physician
type ToggleVisibilityRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
}

// ChangeSpecialtyRequest carries the new specialty for a physician
type ChangeSpecialtyRequest struct {
	EmployeeCode     string `json:"employee_code" binding:"required"`
	NewSpecialtyCode string `json:"new_specialty_code" binding:"required"`
}

// ChangeContractRequest carries the raw contract code; empty clears it
type ChangeContractRequest struct {
	EmployeeCode    string `json:"employee_code" binding:"required"`
	NewContractCode string `json:"new_contract_code"`
}
