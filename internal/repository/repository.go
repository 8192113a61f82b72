package repository

import (
	"context"
	"errors"

	"github.com/saludbot/admin-api/internal/model"
)

// ErrNotFound is returned when a unique-key lookup misses or a bulk update
// touches zero rows.
var ErrNotFound = errors.New("not found")

// StaffRepository reads staff records for authentication
type StaffRepository interface {
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*model.StaffUser, error)
}

// AssignmentRepository reads and mutates specialty assignment rows
type AssignmentRepository interface {
	// List returns assignment rows joined with staff display names, primary
	// rows first, in stable order.
	List(ctx context.Context, filter *model.RosterFilter) ([]model.SpecialtyAssignment, error)
	// ListByEmployee returns every row of one employee.
	ListByEmployee(ctx context.Context, employeeCode string) ([]model.SpecialtyAssignment, error)
	// UpdateVisibility writes one visibility value to every row of an
	// employee and returns the affected row count.
	UpdateVisibility(ctx context.Context, employeeCode, visibility string) (int64, error)
	// UpdateSpecialty writes specialty and billing code together to every row
	// of an employee and returns the affected row count.
	UpdateSpecialty(ctx context.Context, employeeCode, specialtyCode, billingCode string) (int64, error)
	// UpdateContract writes the contract code (nil clears it) to every row of
	// an employee and returns the affected row count.
	UpdateContract(ctx context.Context, employeeCode string, contractCode *string) (int64, error)
}

// InsurerRepository reads the insurer catalogue
type InsurerRepository interface {
	List(ctx context.Context) ([]model.Insurer, error)
}
