package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/develop-free/server-site/internal/auth/domain"
	"github.com/develop-free/server-site/internal/auth/dto"
	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	logger       *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	login := strings.TrimSpace(input.Login)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.repo.GetByLoginOrEmail(ctx, login, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateIdentity
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Login:        login,
		Email:        email,
		PasswordHash: string(hashedPassword),
		// Role is never client-supplied; escalation goes through the admin path.
		Role:      constant.RoleUser,
		CreatedAt: time.Now(),
	}

	// The unique constraints back up the pre-check, so a racing duplicate
	// still surfaces as ErrDuplicateIdentity here.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if input.Login == "" || input.Password == "" {
		return nil, apperr.ErrMissingFields
	}

	identifier := strings.TrimSpace(input.Login)
	user, err := s.repo.GetByLoginOrEmail(ctx, identifier, strings.ToLower(identifier))
	if err != nil {
		return nil, err
	}

	// Unknown user and wrong password produce the identical error so a caller
	// cannot probe which accounts exist.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, err := s.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	rt := &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Login:        user.Login,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

// Refresh rotates the presented refresh token: the old token is consumed and
// a replacement stored in a single conditional write, so a stolen token
// replays at most once.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if _, err := s.tokenService.VerifyRefreshToken(refreshToken); err != nil {
		return nil, apperr.ErrInvalidToken
	}

	user, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrInvalidToken
	}

	// Role comes from the store, not the old token, so a role change takes
	// effect on the next rotation.
	accessToken, newRefreshToken, err := s.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	rotated, err := s.repo.RotateRefreshToken(ctx, refreshToken, newRefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// A concurrent refresh consumed the token first.
		return nil, apperr.ErrInvalidToken
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout removes only the presented token, leaving the user's other sessions
// intact. Idempotent: an unknown token is not an error.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.repo.RemoveRefreshToken(ctx, userID, refreshToken); err != nil {
		s.logger.Warn("failed to remove refresh token", slog.String("user_id", userID), slog.Any("error", err))
		return err
	}
	return nil
}

// LogoutAll empties the user's refresh-token collection ("sign out everywhere").
func (s *UserService) LogoutAll(ctx context.Context, userID string) error {
	return s.repo.ClearRefreshTokens(ctx, userID)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return &dto.UserOutput{
		ID:        user.ID,
		Login:     user.Login,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOutput{
			ID:        u.ID,
			Login:     u.Login,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

func (s *UserService) UpdateRole(ctx context.Context, userID, role string) error {
	if !constant.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, role)
	}
	return s.repo.UpdateRole(ctx, userID, role)
}
