package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

// AjussiProfileFilters narrows the public browse listing. Zero values mean
// "no filter".
type AjussiProfileFilters struct {
	City     string
	Category string
	Keyword  string
}

type AjussiProfileRepository interface {
	Create(ctx context.Context, profile *models.AjussiProfile) error
	FindByID(ctx context.Context, id string) (*models.AjussiProfile, error)
	FindBySlug(ctx context.Context, slug string) (*models.AjussiProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.AjussiProfile, error)
	Update(ctx context.Context, profile *models.AjussiProfile) error
	ListActive(ctx context.Context, filters AjussiProfileFilters, limit, offset int) ([]models.AjussiProfile, int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	RefreshRatingAggregates(ctx context.Context) (int64, error)
}

type ajussiProfileRepository struct {
	db *gorm.DB
}

func NewAjussiProfileRepository(db *gorm.DB) AjussiProfileRepository {
	return &ajussiProfileRepository{db: db}
}

func (r *ajussiProfileRepository) Create(ctx context.Context, profile *models.AjussiProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ajussiProfileRepository) FindByID(ctx context.Context, id string) (*models.AjussiProfile, error) {
	var profile models.AjussiProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ajussiProfileRepository) FindBySlug(ctx context.Context, slug string) (*models.AjussiProfile, error) {
	var profile models.AjussiProfile
	if err := r.db.WithContext(ctx).First(&profile, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ajussiProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.AjussiProfile, error) {
	var profile models.AjussiProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ajussiProfileRepository) Update(ctx context.Context, profile *models.AjussiProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ajussiProfileRepository) ListActive(ctx context.Context, filters AjussiProfileFilters, limit, offset int) ([]models.AjussiProfile, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.AjussiProfile{}).
		Where("is_active = ?", true)

	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.Category != "" {
		query = query.Where("categories @> ?", `["`+filters.Category+`"]`)
	}
	if filters.Keyword != "" {
		keyword := "%" + strings.ToLower(filters.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(bio) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.AjussiProfile
	err := query.
		Order("rating_avg DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *ajussiProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AjussiProfile{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// RefreshRatingAggregates recomputes rating_avg and rating_count for every
// profile that has reviews. Run periodically by the rating worker; reads in
// the hot path never aggregate over reviews.
func (r *ajussiProfileRepository) RefreshRatingAggregates(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE ajussi_profiles AS p
		SET rating_avg   = agg.avg_rating,
		    rating_count = agg.review_count,
		    updated_at   = NOW()
		FROM (
			SELECT ajussi_profile_id,
			       ROUND(AVG(rating)::numeric, 2) AS avg_rating,
			       COUNT(*)                       AS review_count
			FROM reviews
			GROUP BY ajussi_profile_id
		) AS agg
		WHERE p.id = agg.ajussi_profile_id
		  AND (p.rating_avg <> agg.avg_rating OR p.rating_count <> agg.review_count)
	`)
	return result.RowsAffected, result.Error
}
