package repositories

import (
	"context"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	ExistsForRequest(ctx context.Context, requestID string) (bool, error)
	ListByAjussiProfile(ctx context.Context, profileID string, limit, offset int) ([]models.Review, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) ListByAjussiProfile(ctx context.Context, profileID string, limit, offset int) ([]models.Review, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("ajussi_profile_id = ?", profileID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
