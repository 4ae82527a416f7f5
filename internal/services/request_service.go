package services

import (
	"context"
	"time"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

// RequestService owns the service-request lifecycle: creation, status
// transitions with their authorization matrix and time guard, and the read
// paths the UI consumes.
type RequestService interface {
	CreateRequest(ctx context.Context, clientID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
	ChangeStatus(ctx context.Context, requestID, actorID, rawStatus string) (*dto.RequestResponse, error)
	GetRequest(ctx context.Context, requestID, actorID string) (*dto.RequestResponse, error)
	ListSent(ctx context.Context, clientID string, page, pageSize int) (*dto.RequestListResponse, error)
	ListReceived(ctx context.Context, providerID string, page, pageSize int) (*dto.RequestListResponse, error)
}

type requestService struct {
	requestRepo repositories.RequestRepository
	ajussiRepo  repositories.AjussiProfileRepository
	profileRepo repositories.ProfileRepository

	// now is swapped out in tests to pin the completion time guard.
	now func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	ajussiRepo repositories.AjussiProfileRepository,
	profileRepo repositories.ProfileRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		ajussiRepo:  ajussiRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, clientID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	profile, err := s.ajussiRepo.FindByID(ctx, req.AjussiProfileID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "request", "Provider not found")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}
	if !profile.IsActive {
		return nil, apperrors.ErrProviderUnavailable
	}
	if clientID == profile.UserID {
		return nil, apperrors.ErrSelfRequest
	}
	if !req.ScheduledStart.After(s.now()) {
		return nil, apperrors.ErrInvalidSchedule("Scheduled start must be in the future")
	}
	if req.DurationMinutes <= 0 {
		return nil, apperrors.ErrInvalidSchedule("Duration must be a positive number of minutes")
	}

	request := &models.ServiceRequest{
		ClientID:        clientID,
		ProviderID:      profile.UserID,
		AjussiProfileID: profile.ID,
		ScheduledStart:  req.ScheduledStart,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		Description:     req.Description,
		Status:          models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}

	// TODO: notify the provider once a notification channel exists.

	logger.CtxInfo(ctx, "service request created",
		"request_id", request.ID,
		"client_id", clientID,
		"provider_id", request.ProviderID,
	)
	return s.buildResponse(ctx, request), nil
}

// ChangeStatus applies a lifecycle transition. Checks run in a fixed order:
// status parse, existence, actor permission, transition validity, completion
// time guard, then the compare-and-swap write. A swap that affects zero rows
// means a concurrent writer moved the status first; the request is re-read
// and the attempt reported as an invalid transition from the new status.
func (s *requestService) ChangeStatus(ctx context.Context, requestID, actorID, rawStatus string) (*dto.RequestResponse, error) {
	to, err := models.ParseRequestStatus(rawStatus)
	if err != nil {
		return nil, apperrors.ErrInvalidRequestStatus(rawStatus)
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrRequestNotFound(requestID)
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}

	if err := checkTransitionPermission(request, actorID, to); err != nil {
		return nil, err
	}

	from := request.Status
	if !models.CanTransitionRequest(from, to) {
		return nil, apperrors.ErrInvalidTransition(string(from), string(to))
	}

	if to == models.RequestStatusCompleted {
		if s.now().Before(request.ServiceWindowEnd()) {
			return nil, apperrors.ErrTooEarly("The scheduled service window has not elapsed yet")
		}
	}

	swapped, err := s.requestRepo.UpdateStatusCAS(ctx, requestID, from, to)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}
	if !swapped {
		// Lost the race: report against the status that won.
		current, err := s.requestRepo.FindByID(ctx, requestID)
		if err != nil {
			return nil, apperrors.ErrDependencyUnavailable(err, "request")
		}
		logger.CtxWarn(ctx, "status transition lost to concurrent writer",
			"request_id", requestID,
			"actor_id", actorID,
			"attempted_from", from,
			"attempted_to", to,
			"current", current.Status,
		)
		return nil, apperrors.ErrInvalidTransition(string(current.Status), string(to))
	}

	request.Status = to
	request.UpdatedAt = s.now()

	logger.CtxInfo(ctx, "service request status changed",
		"request_id", requestID,
		"actor_id", actorID,
		"from", from,
		"to", to,
	)
	return s.buildResponse(ctx, request), nil
}

// checkTransitionPermission is the actor/status authorization matrix. It runs
// before transition validity so "you're not allowed" and "already handled by
// the other party" stay distinguishable.
func checkTransitionPermission(request *models.ServiceRequest, actorID string, to models.RequestStatus) error {
	switch to {
	case models.RequestStatusConfirmed, models.RequestStatusRejected:
		if actorID != request.ProviderID {
			return apperrors.ErrForbiddenTransition("Only the provider may accept or reject an incoming request")
		}
	case models.RequestStatusCancelled:
		if actorID != request.ClientID {
			return apperrors.ErrForbiddenTransition("Only the requesting client may withdraw")
		}
	case models.RequestStatusCompleted:
		if !request.IsParticipant(actorID) {
			return apperrors.ErrForbiddenTransition("Only a participant may mark the request completed")
		}
	default:
		return apperrors.ErrForbiddenTransition("This status cannot be set by any actor")
	}
	return nil
}

func (s *requestService) GetRequest(ctx context.Context, requestID, actorID string) (*dto.RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrRequestNotFound(requestID)
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}
	if !request.IsParticipant(actorID) {
		return nil, apperrors.NewForbiddenError("Only a participant may view this request")
	}
	return s.buildResponse(ctx, request), nil
}

func (s *requestService) ListSent(ctx context.Context, clientID string, page, pageSize int) (*dto.RequestListResponse, error) {
	requests, total, err := s.requestRepo.ListByClient(ctx, clientID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}
	return s.buildListResponse(ctx, requests, total, page, pageSize), nil
}

func (s *requestService) ListReceived(ctx context.Context, providerID string, page, pageSize int) (*dto.RequestListResponse, error) {
	requests, total, err := s.requestRepo.ListByProvider(ctx, providerID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "request")
	}
	return s.buildListResponse(ctx, requests, total, page, pageSize), nil
}

// buildResponse enriches a request with both participants' display data.
// Enrichment is best-effort: a missing profile leaves the field nil rather
// than failing the lifecycle operation.
func (s *requestService) buildResponse(ctx context.Context, request *models.ServiceRequest) *dto.RequestResponse {
	profiles, err := s.profileRepo.FindByUserIDs(ctx, []string{request.ClientID, request.ProviderID})
	if err != nil {
		logger.CtxWithError(ctx, "failed to load participant profiles", err, "request_id", request.ID)
		profiles = nil
	}
	return toRequestResponse(request, profiles)
}

func (s *requestService) buildListResponse(ctx context.Context, requests []models.ServiceRequest, total int64, page, pageSize int) *dto.RequestListResponse {
	userIDs := make([]string, 0, len(requests)*2)
	for i := range requests {
		userIDs = append(userIDs, requests[i].ClientID, requests[i].ProviderID)
	}

	var profiles map[string]*models.Profile
	if len(userIDs) > 0 {
		var err error
		profiles, err = s.profileRepo.FindByUserIDs(ctx, userIDs)
		if err != nil {
			logger.CtxWithError(ctx, "failed to load participant profiles", err)
			profiles = nil
		}
	}

	responses := make([]*dto.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toRequestResponse(&requests[i], profiles))
	}

	return &dto.RequestListResponse{
		Requests:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
}

func toRequestResponse(request *models.ServiceRequest, profiles map[string]*models.Profile) *dto.RequestResponse {
	resp := &dto.RequestResponse{
		ID:              request.ID,
		ClientID:        request.ClientID,
		ProviderID:      request.ProviderID,
		AjussiProfileID: request.AjussiProfileID,
		ScheduledStart:  request.ScheduledStart,
		DurationMinutes: request.DurationMinutes,
		Location:        request.Location,
		Description:     request.Description,
		Status:          request.Status,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
	resp.Client = toParticipantInfo(request.ClientID, profiles)
	resp.Provider = toParticipantInfo(request.ProviderID, profiles)
	return resp
}

func toParticipantInfo(userID string, profiles map[string]*models.Profile) *dto.ParticipantInfo {
	profile, ok := profiles[userID]
	if !ok {
		return nil
	}
	return &dto.ParticipantInfo{
		UserID:      userID,
		DisplayName: profile.DisplayName,
		AvatarURL:   profile.AvatarURL,
	}
}
