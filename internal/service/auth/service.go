package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/repository"
	"github.com/saludbot/admin-api/pkg/auth"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
	"github.com/saludbot/admin-api/pkg/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	staffRepo repository.StaffRepository
	tokens    auth.TokenService
	hasher    security.PasswordHasher
}

func NewService(staffRepo repository.StaffRepository, tokens auth.TokenService, hasher security.PasswordHasher) *Service {
	return &Service{
		staffRepo: staffRepo,
		tokens:    tokens,
		hasher:    hasher,
	}
}

// Login validates credentials and issues a session token. Unknown employee
// codes and wrong passwords produce the identical error; a dummy hash compare
// keeps the cost of both paths alike.
func (s *Service) Login(ctx context.Context, employeeCode, password string) (string, error) {
	if employeeCode == "" || password == "" {
		return "", apperrors.Validation("missing credentials", nil)
	}

	user, err := s.staffRepo.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return "", apperrors.Unauthorized(ErrInvalidCredentials)
		}
		return "", apperrors.Internal(fmt.Errorf("staff lookup: %w", err))
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", apperrors.Unauthorized(ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.EmployeeCode, user.DisplayName)
	if err != nil {
		return "", apperrors.Internal(fmt.Errorf("token issue: %w", err))
	}

	return token, nil
}

// ValidateToken verifies a session token and returns the embedded identity.
// All failure causes collapse into one unauthorized error; the credential
// store is never re-hit.
func (s *Service) ValidateToken(tokenString string) (*model.Identity, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	return &model.Identity{
		EmployeeCode: claims.Subject,
		DisplayName:  claims.DisplayName,
	}, nil
}
