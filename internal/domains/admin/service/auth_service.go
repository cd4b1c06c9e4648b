package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/domains/admin/repository"
	"gallery-backend/pkg/jwt"
)

// authService implements admin.AuthServiceInterface
type authService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

// NewAuthService creates a new auth service instance
func NewAuthService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) AuthServiceInterface {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login verifies credentials and issues a signed session token.
// Unknown email and wrong password stay distinguishable so handlers can
// return 404 and 401 respectively.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidInput, err)
	}

	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidPassword
	}

	token, err := s.jwtManager.GenerateToken(admin.ID.String(), admin.Email, admin.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &model.LoginResult{
		Token: token,
		Admin: admin.ToInfo(),
	}, nil
}
