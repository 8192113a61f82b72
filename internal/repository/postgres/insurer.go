package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
)

type insurerRepository struct {
	db *sqlx.DB
}

func NewInsurerRepository(db *sqlx.DB) repository.InsurerRepository {
	return &insurerRepository{db: db}
}

func (r *insurerRepository) List(ctx context.Context) ([]model.Insurer, error) {
	query := `
		SELECT code, label
		FROM insurers
		ORDER BY label
	`

	var insurers []model.Insurer
	if err := r.db.SelectContext(ctx, &insurers, query); err != nil {
		return nil, fmt.Errorf("failed to list insurers: %w", err)
	}

	return insurers, nil
}
