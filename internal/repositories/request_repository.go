package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	FindByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	// UpdateStatusCAS performs the compare-and-swap status update: the write
	// applies only if the stored status still equals from. Returns false when
	// zero rows were affected, i.e. a concurrent writer moved the status first.
	UpdateStatusCAS(ctx context.Context, id string, from, to models.RequestStatus) (bool, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]models.ServiceRequest, int64, error)
	ListByProvider(ctx context.Context, providerID string, limit, offset int) ([]models.ServiceRequest, int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatusCAS(ctx context.Context, id string, from, to models.RequestStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *requestRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	return r.list(ctx, "client_id = ?", clientID, limit, offset)
}

func (r *requestRepository) ListByProvider(ctx context.Context, providerID string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	return r.list(ctx, "provider_id = ?", providerID, limit, offset)
}

func (r *requestRepository) list(ctx context.Context, cond, arg string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.ServiceRequest
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
