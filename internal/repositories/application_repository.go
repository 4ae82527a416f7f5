package repositories

import (
	"context"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.AjussiApplication) error
	FindByID(ctx context.Context, id string) (*models.AjussiApplication, error)
	FindPendingByUser(ctx context.Context, userID string) (*models.AjussiApplication, error)
	Update(ctx context.Context, application *models.AjussiApplication) error
	List(ctx context.Context, status models.ApplicationStatus, limit, offset int) ([]models.AjussiApplication, int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.AjussiApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id string) (*models.AjussiApplication, error) {
	var application models.AjussiApplication
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindPendingByUser(ctx context.Context, userID string) (*models.AjussiApplication, error) {
	var application models.AjussiApplication
	err := r.db.WithContext(ctx).
		First(&application, "user_id = ? AND status = ?", userID, models.ApplicationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) Update(ctx context.Context, application *models.AjussiApplication) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) List(ctx context.Context, status models.ApplicationStatus, limit, offset int) ([]models.AjussiApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AjussiApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.AjussiApplication
	err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}
