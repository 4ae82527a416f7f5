package repositories

import (
	"context"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserIDs loads display data for a set of users in one query, keyed by
// user id. Missing users are simply absent from the map.
func (r *profileRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}

	result := make(map[string]*models.Profile, len(profiles))
	for i := range profiles {
		result[profiles[i].UserID] = &profiles[i]
	}
	return result, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
