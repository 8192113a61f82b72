package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
)

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// List orders rows by employee code with primary rows first inside each group,
// so the aggregation fold sees a deterministic sequence and primary rows win
// the contract tie-break.
func (r *assignmentRepository) List(ctx context.Context, filter *model.RosterFilter) ([]model.SpecialtyAssignment, error) {
	query := `
		SELECT a.employee_code, a.specialty_code, a.billing_code,
		       a.bot_visible, a.contract_code, a.is_primary,
		       s.display_name
		FROM specialty_assignments a
		LEFT JOIN staff_users s ON s.employee_code = a.employee_code
	`
	var args []interface{}

	if filter != nil {
		where := ""
		if len(filter.SpecialtyCodes) > 0 {
			where = " WHERE a.specialty_code IN (?)"
			args = append(args, filter.SpecialtyCodes)
		}
		if filter.VisibleOnly {
			if where == "" {
				where = " WHERE UPPER(a.bot_visible) = 'SI'"
			} else {
				where += " AND UPPER(a.bot_visible) = 'SI'"
			}
		}
		query += where
	}

	query += " ORDER BY a.employee_code, a.is_primary DESC, a.specialty_code"

	if len(args) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to expand roster query: %w", err)
		}
		query = r.db.Rebind(query)
	}

	var rows []model.SpecialtyAssignment
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return rows, nil
}

func (r *assignmentRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]model.SpecialtyAssignment, error) {
	query := `
		SELECT employee_code, specialty_code, billing_code,
		       bot_visible, contract_code, is_primary
		FROM specialty_assignments
		WHERE employee_code = $1
		ORDER BY is_primary DESC, specialty_code
	`

	var rows []model.SpecialtyAssignment
	if err := r.db.SelectContext(ctx, &rows, query, employeeCode); err != nil {
		return nil, fmt.Errorf("failed to list assignments for employee: %w", err)
	}

	return rows, nil
}

func (r *assignmentRepository) UpdateVisibility(ctx context.Context, employeeCode, visibility string) (int64, error) {
	query := `
		UPDATE specialty_assignments
		SET bot_visible = $1
		WHERE employee_code = $2
	`

	result, err := r.db.ExecContext(ctx, query, visibility, employeeCode)
	if err != nil {
		return 0, fmt.Errorf("failed to update visibility: %w", err)
	}

	return result.RowsAffected()
}

func (r *assignmentRepository) UpdateSpecialty(ctx context.Context, employeeCode, specialtyCode, billingCode string) (int64, error) {
	query := `
		UPDATE specialty_assignments
		SET specialty_code = $1, billing_code = $2
		WHERE employee_code = $3
	`

	result, err := r.db.ExecContext(ctx, query, specialtyCode, billingCode, employeeCode)
	if err != nil {
		return 0, fmt.Errorf("failed to update specialty: %w", err)
	}

	return result.RowsAffected()
}

func (r *assignmentRepository) UpdateContract(ctx context.Context, employeeCode string, contractCode *string) (int64, error) {
	query := `
		UPDATE specialty_assignments
		SET contract_code = $1
		WHERE employee_code = $2
	`

	result, err := r.db.ExecContext(ctx, query, contractCode, employeeCode)
	if err != nil {
		return 0, fmt.Errorf("failed to update contract: %w", err)
	}

	return result.RowsAffected()
}
