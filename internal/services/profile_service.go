package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

// ProfileService serves the public provider catalog and lets a provider
// manage their own listing. Inactive profiles are visible only to their
// owner and admins.
type ProfileService interface {
	Browse(ctx context.Context, query *dto.BrowseAjussiQuery, page, pageSize int) (*dto.AjussiProfileListResponse, error)
	GetBySlug(ctx context.Context, slug, viewerID string, viewerRole models.UserRole) (*dto.AjussiProfileResponse, error)
	GetMine(ctx context.Context, userID string) (*dto.AjussiProfileResponse, error)
	UpdateMine(ctx context.Context, userID string, req *dto.UpdateAjussiProfileRequest) (*dto.AjussiProfileResponse, error)
}

type profileService struct {
	ajussiRepo repositories.AjussiProfileRepository
}

func NewProfileService(ajussiRepo repositories.AjussiProfileRepository) ProfileService {
	return &profileService{ajussiRepo: ajussiRepo}
}

func (s *profileService) Browse(ctx context.Context, query *dto.BrowseAjussiQuery, page, pageSize int) (*dto.AjussiProfileListResponse, error) {
	filters := repositories.AjussiProfileFilters{
		City:     query.City,
		Category: query.Category,
		Keyword:  query.Keyword,
	}
	profiles, total, err := s.ajussiRepo.ListActive(ctx, filters, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "profile")
	}

	responses := make([]*dto.AjussiProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, toAjussiProfileResponse(&profiles[i]))
	}
	return &dto.AjussiProfileListResponse{
		Profiles:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

func (s *profileService) GetBySlug(ctx context.Context, slug, viewerID string, viewerRole models.UserRole) (*dto.AjussiProfileResponse, error) {
	profile, err := s.ajussiRepo.FindBySlug(ctx, slug)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "profile", "Provider profile not found")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "profile")
	}

	if !profile.IsActive && viewerID != profile.UserID && viewerRole != models.UserRoleAdmin {
		// Hidden listings look like missing ones to everyone else.
		return nil, apperrors.ErrNotFound(nil, "profile", "Provider profile not found")
	}
	return toAjussiProfileResponse(profile), nil
}

func (s *profileService) GetMine(ctx context.Context, userID string) (*dto.AjussiProfileResponse, error) {
	profile, err := s.ajussiRepo.FindByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "profile", "You do not have a provider profile")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "profile")
	}
	return toAjussiProfileResponse(profile), nil
}

func (s *profileService) UpdateMine(ctx context.Context, userID string, req *dto.UpdateAjussiProfileRequest) (*dto.AjussiProfileResponse, error) {
	profile, err := s.ajussiRepo.FindByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "profile", "You do not have a provider profile")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "profile")
	}

	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Categories != nil {
		raw, err := json.Marshal(req.Categories)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid categories")
		}
		profile.Categories = datatypes.JSON(raw)
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return nil, apperrors.NewBadRequestError("Hourly rate must be positive")
		}
		profile.HourlyRate = *req.HourlyRate
	}
	if req.ChatLink != nil {
		profile.ChatLink = *req.ChatLink
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := s.ajussiRepo.Update(ctx, profile); err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "profile")
	}

	logger.CtxInfo(ctx, "ajussi profile updated", "profile_id", profile.ID, "user_id", userID)
	return toAjussiProfileResponse(profile), nil
}

func toAjussiProfileResponse(profile *models.AjussiProfile) *dto.AjussiProfileResponse {
	return &dto.AjussiProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Slug:        profile.Slug,
		Title:       profile.Title,
		Bio:         profile.Bio,
		City:        profile.City,
		Categories:  decodeStringList(profile.Categories),
		HourlyRate:  profile.HourlyRate,
		ChatLink:    profile.ChatLink,
		IsActive:    profile.IsActive,
		RatingAvg:   profile.RatingAvg,
		RatingCount: profile.RatingCount,
		CreatedAt:   profile.CreatedAt,
	}
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}
