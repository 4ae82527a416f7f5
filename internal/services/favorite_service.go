package services

import (
	"context"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

type FavoriteService interface {
	Toggle(ctx context.Context, userID, profileID string) (*dto.ToggleFavoriteResponse, error)
	ListMine(ctx context.Context, userID string, page, pageSize int) (*dto.FavoriteListResponse, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	ajussiRepo   repositories.AjussiProfileRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	ajussiRepo repositories.AjussiProfileRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		ajussiRepo:   ajussiRepo,
	}
}

// Toggle flips the favorite state for (user, profile): removes the favorite
// if it exists, creates it otherwise. A concurrent create that loses to the
// unique pair constraint just means the profile is already favorited.
func (s *favoriteService) Toggle(ctx context.Context, userID, profileID string) (*dto.ToggleFavoriteResponse, error) {
	if _, err := s.ajussiRepo.FindByID(ctx, profileID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "favorite", "Provider profile not found")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "favorite")
	}

	_, err := s.favoriteRepo.Find(ctx, userID, profileID)
	switch {
	case err == nil:
		if err := s.favoriteRepo.Delete(ctx, userID, profileID); err != nil {
			return nil, apperrors.ErrDependencyUnavailable(err, "favorite")
		}
		return &dto.ToggleFavoriteResponse{AjussiProfileID: profileID, Favorited: false}, nil

	case repositories.IsNotFound(err):
		favorite := &models.Favorite{UserID: userID, AjussiProfileID: profileID}
		if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
			if repositories.IsUniqueViolation(err) {
				return &dto.ToggleFavoriteResponse{AjussiProfileID: profileID, Favorited: true}, nil
			}
			return nil, apperrors.ErrDependencyUnavailable(err, "favorite")
		}
		logger.CtxDebug(ctx, "favorite added", "user_id", userID, "profile_id", profileID)
		return &dto.ToggleFavoriteResponse{AjussiProfileID: profileID, Favorited: true}, nil

	default:
		return nil, apperrors.ErrDependencyUnavailable(err, "favorite")
	}
}

func (s *favoriteService) ListMine(ctx context.Context, userID string, page, pageSize int) (*dto.FavoriteListResponse, error) {
	favorites, total, err := s.favoriteRepo.ListByUser(ctx, userID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "favorite")
	}

	responses := make([]*dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, &dto.FavoriteResponse{
			ID:        favorites[i].ID,
			Profile:   toAjussiProfileResponse(&favorites[i].AjussiProfile),
			CreatedAt: favorites[i].CreatedAt,
		})
	}

	return &dto.FavoriteListResponse{
		Favorites:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}
