package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
)

type staffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (*model.StaffUser, error) {
	query := `
		SELECT employee_code, display_name, password_hash
		FROM staff_users
		WHERE employee_code = $1
	`

	var user model.StaffUser
	if err := r.db.GetContext(ctx, &user, query, employeeCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}

	return &user, nil
}
