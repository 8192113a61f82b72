package physician

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
)

var contractCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)

type Service struct {
	assignmentRepo repository.AssignmentRepository
}

func NewService(assignmentRepo repository.AssignmentRepository) *Service {
	return &Service{assignmentRepo: assignmentRepo}
}

// ListRoster returns the per-employee aggregate view of the assignment rows
// matching the filter. An empty roster is a valid result, not an error.
func (s *Service) ListRoster(ctx context.Context, filter *model.RosterFilter) ([]model.PhysicianView, error) {
	rows, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("list assignments: %w", err))
	}

	return AggregateRoster(rows), nil
}

// AggregateRoster folds per-(employee, specialty) rows into one view per
// employee. Rows must arrive grouped deterministically with primary rows
// first within a group. The fold is pure: same rows in, same views out.
//
// Per group: specialties concatenate in row order (duplicates kept),
// visibility is active if any row is active, and the contract is the first
// non-empty value encountered, which the primary-first ordering biases toward
// primary rows. Rows whose employee code has no staff record are dropped as a
// soft inconsistency.
func AggregateRoster(rows []model.SpecialtyAssignment) []model.PhysicianView {
	views := make([]model.PhysicianView, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		if row.DisplayName == nil {
			log.Warn().
				Str("employee_code", row.EmployeeCode).
				Str("specialty_code", row.SpecialtyCode).
				Msg("assignment row without staff record, dropping from roster")
			continue
		}

		i, ok := index[row.EmployeeCode]
		if !ok {
			views = append(views, model.PhysicianView{
				EmployeeCode: row.EmployeeCode,
				DisplayName:  *row.DisplayName,
			})
			i = len(views) - 1
			index[row.EmployeeCode] = i
		}

		view := &views[i]
		view.Specialties = append(view.Specialties, row.SpecialtyCode)
		if model.VisibilityIsActive(row.BotVisible) {
			view.BotVisible = true
		}
		if view.ContractCode == "" && row.ContractCode != nil && *row.ContractCode != "" {
			view.ContractCode = *row.ContractCode
		}
	}

	return views
}

// ToggleVisibility flips the aggregate visibility of one physician and writes
// the new value to every one of their rows. Divergent per-row flags collapse
// to the single new value; that normalization is intentional.
func (s *Service) ToggleVisibility(ctx context.Context, employeeCode string) (bool, error) {
	if employeeCode == "" {
		return false, apperrors.Validation("missing employee code", nil)
	}

	rows, err := s.assignmentRepo.ListByEmployee(ctx, employeeCode)
	if err != nil {
		return false, apperrors.Internal(fmt.Errorf("list assignments: %w", err))
	}
	if len(rows) == 0 {
		return false, apperrors.NotFound("physician", nil)
	}

	anyActive := false
	for _, row := range rows {
		if model.VisibilityIsActive(row.BotVisible) {
			anyActive = true
			break
		}
	}

	newValue := model.VisibilityActive
	if anyActive {
		newValue = model.VisibilityInactive
	}

	affected, err := s.assignmentRepo.UpdateVisibility(ctx, employeeCode, newValue)
	if err != nil {
		return false, apperrors.Internal(fmt.Errorf("update visibility: %w", err))
	}
	if affected == 0 {
		return false, apperrors.NotFound("physician", nil)
	}

	return newValue == model.VisibilityActive, nil
}

// ChangeSpecialty writes a new specialty and its derived billing code to every
// row of one physician. Unknown specialties are rejected before any write.
func (s *Service) ChangeSpecialty(ctx context.Context, employeeCode, newSpecialtyCode string) error {
	if employeeCode == "" || newSpecialtyCode == "" {
		return apperrors.Validation("missing parameters", nil)
	}

	billingCode, ok := model.BillingCodeFor(newSpecialtyCode)
	if !ok {
		return apperrors.Validation("invalid specialty code", nil)
	}

	affected, err := s.assignmentRepo.UpdateSpecialty(ctx, employeeCode, newSpecialtyCode, billingCode)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("update specialty: %w", err))
	}
	if affected == 0 {
		return apperrors.NotFound("physician", nil)
	}

	return nil
}

// ChangeContract normalizes and writes a contract code to every row of one
// physician. An empty value clears the contract.
func (s *Service) ChangeContract(ctx context.Context, employeeCode, rawContractCode string) (string, error) {
	if employeeCode == "" {
		return "", apperrors.Validation("missing employee code", nil)
	}

	normalized := strings.ToUpper(strings.TrimSpace(rawContractCode))
	if normalized != "" && !contractCodePattern.MatchString(normalized) {
		return "", apperrors.Validation("invalid contract code", nil)
	}

	var value *string
	if normalized != "" {
		value = &normalized
	}

	affected, err := s.assignmentRepo.UpdateContract(ctx, employeeCode, value)
	if err != nil {
		return "", apperrors.Internal(fmt.Errorf("update contract: %w", err))
	}
	if affected == 0 {
		return "", apperrors.NotFound("physician", nil)
	}

	return normalized, nil
}
