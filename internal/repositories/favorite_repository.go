package repositories

import (
	"context"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

type FavoriteRepository interface {
	Find(ctx context.Context, userID, profileID string) (*models.Favorite, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, profileID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Favorite, int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Find(ctx context.Context, userID, profileID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		First(&favorite, "user_id = ? AND ajussi_profile_id = ?", userID, profileID).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, profileID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND ajussi_profile_id = ?", userID, profileID).
		Delete(&models.Favorite{}).Error
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Favorite, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []models.Favorite
	err := query.
		Preload("AjussiProfile").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}
