package services

import (
	"context"

	"ajussi_backend/internal/auth"
	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

// AuthService is the thin identity edge: it registers users, verifies
// credentials and issues tokens. Everything downstream consumes only the
// resolved (userID, role) pair from the middleware.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	tokenManager *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokenManager *auth.TokenManager,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleClient,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.ErrConflict(err, "auth", "Email is already registered")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "auth")
	}

	profile := &models.Profile{
		UserID:      user.ID,
		DisplayName: req.DisplayName,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "auth")
	}

	token, err := s.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)
	return &dto.AuthResponse{
		AccessToken: token,
		UserID:      user.ID,
		Role:        user.Role,
		DisplayName: profile.DisplayName,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "auth")
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, err := s.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	displayName := ""
	if profile, err := s.profileRepo.FindByUserID(ctx, user.ID); err == nil {
		displayName = profile.DisplayName
	}

	return &dto.AuthResponse{
		AccessToken: token,
		UserID:      user.ID,
		Role:        user.Role,
		DisplayName: displayName,
	}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
}
