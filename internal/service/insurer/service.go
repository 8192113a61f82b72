package insurer

import (
	"context"
	"fmt"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
)

type Service struct {
	insurerRepo repository.InsurerRepository
}

func NewService(insurerRepo repository.InsurerRepository) *Service {
	return &Service{insurerRepo: insurerRepo}
}

func (s *Service) ListInsurers(ctx context.Context) ([]model.Insurer, error) {
	insurers, err := s.insurerRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("list insurers: %w", err))
	}

	return insurers, nil
}
