package model

// StaffUser represents a staff record used only for authentication lookup
type StaffUser struct {
	EmployeeCode string `json:"employee_code" db:"employee_code"`
	DisplayName  string `json:"display_name" db:"display_name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// LoginRequest carries submitted credentials
type LoginRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// Identity is the authenticated caller extracted from a verified session token
type Identity struct {
	EmployeeCode string `json:"employee_code"`
	DisplayName  string `json:"display_name"`
}
