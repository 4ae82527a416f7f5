package services

import (
	"context"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

// ReviewService is the review-eligibility gate built on top of the request
// lifecycle: reviews exist only for completed requests, written once, by the
// booking client.
type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID string) (*dto.ReviewResponse, error)
	ListAjussiReviews(ctx context.Context, profileID string, page, pageSize int) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	requestRepo repositories.RequestRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	requestRepo repositories.RequestRepository,
	profileRepo repositories.ProfileRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
	}
}

// CreateReview checks its preconditions in a fixed order; the first failure
// wins. The final duplicate check is advisory only: the reviews.request_id
// unique constraint is what actually decides a concurrent duplicate race,
// and the losing insert is mapped back to the same error.
func (s *reviewService) CreateReview(ctx context.Context, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, req.RequestID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrRequestNotFound(req.RequestID)
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "review")
	}

	if request.Status != models.RequestStatusCompleted {
		return nil, apperrors.ErrRequestNotCompleted
	}
	if reviewerID != request.ClientID {
		return nil, apperrors.ErrNotBookingClient
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	exists, err := s.reviewRepo.ExistsForRequest(ctx, req.RequestID)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "review")
	}
	if exists {
		return nil, apperrors.ErrDuplicateReview
	}

	review := &models.Review{
		RequestID:       req.RequestID,
		ReviewerID:      reviewerID,
		AjussiProfileID: request.AjussiProfileID,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateReview
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "review")
	}

	logger.CtxInfo(ctx, "review created",
		"review_id", review.ID,
		"request_id", req.RequestID,
		"rating", req.Rating,
	)
	return s.buildResponse(ctx, review), nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "review")
	}
	return s.buildResponse(ctx, review), nil
}

func (s *reviewService) ListAjussiReviews(ctx context.Context, profileID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	reviews, total, err := s.reviewRepo.ListByAjussiProfile(ctx, profileID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "review")
	}

	userIDs := make([]string, 0, len(reviews))
	for i := range reviews {
		userIDs = append(userIDs, reviews[i].ReviewerID)
	}
	var profiles map[string]*models.Profile
	if len(userIDs) > 0 {
		profiles, err = s.profileRepo.FindByUserIDs(ctx, userIDs)
		if err != nil {
			logger.CtxWithError(ctx, "failed to load reviewer profiles", err)
			profiles = nil
		}
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i], profiles))
	}

	return &dto.ReviewListResponse{
		Reviews:    responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

func (s *reviewService) buildResponse(ctx context.Context, review *models.Review) *dto.ReviewResponse {
	profiles, err := s.profileRepo.FindByUserIDs(ctx, []string{review.ReviewerID})
	if err != nil {
		logger.CtxWithError(ctx, "failed to load reviewer profile", err, "review_id", review.ID)
		profiles = nil
	}
	return toReviewResponse(review, profiles)
}

func toReviewResponse(review *models.Review, profiles map[string]*models.Profile) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:              review.ID,
		RequestID:       review.RequestID,
		AjussiProfileID: review.AjussiProfileID,
		Rating:          review.Rating,
		Comment:         review.Comment,
		CreatedAt:       review.CreatedAt,
		Reviewer:        toParticipantInfo(review.ReviewerID, profiles),
	}
}
