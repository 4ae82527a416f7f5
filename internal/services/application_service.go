package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/internal/utils"
	"ajussi_backend/pkg/apperrors"
)

// ApplicationService handles the provider onboarding workflow: a user applies,
// an admin approves or rejects. Its state machine is strictly smaller than the
// request lifecycle: one decider, no time guard, both decisions terminal.
type ApplicationService interface {
	Apply(ctx context.Context, userID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Decide(ctx context.Context, adminID, applicationID, rawStatus string) (*dto.ApplicationResponse, error)
	List(ctx context.Context, rawStatus string, page, pageSize int) (*dto.ApplicationListResponse, error)
	GetMine(ctx context.Context, userID string) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	uow             repositories.UnitOfWork

	now func() time.Time
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	uow repositories.UnitOfWork,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		uow:             uow,
		now:             time.Now,
	}
}

func (s *applicationService) Apply(ctx context.Context, userID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if _, err := s.applicationRepo.FindPendingByUser(ctx, userID); err == nil {
		return nil, apperrors.ErrOpenApplicationExists
	} else if !repositories.IsNotFound(err) {
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}

	categories, err := json.Marshal(req.Categories)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid categories")
	}

	application := &models.AjussiApplication{
		UserID:     userID,
		Title:      req.Title,
		Intro:      req.Intro,
		City:       req.City,
		Categories: datatypes.JSON(categories),
		HourlyRate: req.HourlyRate,
		ChatLink:   req.ChatLink,
		Status:     models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}

	logger.CtxInfo(ctx, "ajussi application submitted", "application_id", application.ID, "user_id", userID)
	return toApplicationResponse(application), nil
}

func (s *applicationService) Decide(ctx context.Context, adminID, applicationID, rawStatus string) (*dto.ApplicationResponse, error) {
	decision := models.ApplicationStatus(rawStatus)
	if decision != models.ApplicationStatusApproved && decision != models.ApplicationStatusRejected {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "application",
			fmt.Sprintf("Unknown application decision %q", rawStatus), 400)
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}

	if models.IsTerminalApplicationStatus(application.Status) {
		return nil, apperrors.ErrApplicationAlreadyDecided
	}

	decidedAt := s.now()
	application.Status = decision
	application.DecidedBy = &adminID
	application.DecidedAt = &decidedAt

	// Listing activation, role flip and the decision row commit or roll
	// back together; a failure never leaves an active listing against a
	// still-pending application.
	err = s.uow.Do(ctx, func(r repositories.Repositories) error {
		if decision == models.ApplicationStatusApproved {
			if err := s.activateProvider(ctx, r, application); err != nil {
				return err
			}
		}
		if err := r.Applications.Update(ctx, application); err != nil {
			return apperrors.ErrDependencyUnavailable(err, "application")
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}

	logger.CtxInfo(ctx, "ajussi application decided",
		"application_id", applicationID,
		"decision", decision,
		"admin_id", adminID,
	)
	return toApplicationResponse(application), nil
}

// activateProvider creates (or reactivates) the applicant's listing and
// flips their role to ajussi, inside the caller's transaction.
func (s *applicationService) activateProvider(ctx context.Context, r repositories.Repositories, application *models.AjussiApplication) error {
	existing, err := r.AjussiProfiles.FindByUserID(ctx, application.UserID)
	switch {
	case err == nil:
		existing.IsActive = true
		if err := r.AjussiProfiles.Update(ctx, existing); err != nil {
			return apperrors.ErrDependencyUnavailable(err, "application")
		}

	case repositories.IsNotFound(err):
		slug, err := s.uniqueSlug(ctx, r.AjussiProfiles, application.Title)
		if err != nil {
			return err
		}
		profile := &models.AjussiProfile{
			UserID:     application.UserID,
			Slug:       slug,
			Title:      application.Title,
			Bio:        application.Intro,
			City:       application.City,
			Categories: application.Categories,
			HourlyRate: application.HourlyRate,
			ChatLink:   application.ChatLink,
			IsActive:   true,
		}
		if err := r.AjussiProfiles.Create(ctx, profile); err != nil {
			return apperrors.ErrDependencyUnavailable(err, "application")
		}

	default:
		return apperrors.ErrDependencyUnavailable(err, "application")
	}

	if err := r.Users.UpdateRole(ctx, application.UserID, models.UserRoleAjussi); err != nil {
		return apperrors.ErrDependencyUnavailable(err, "application")
	}
	return nil
}

func (s *applicationService) uniqueSlug(ctx context.Context, ajussiRepo repositories.AjussiProfileRepository, title string) (string, error) {
	base := utils.Slugify(title)
	for n := 1; ; n++ {
		candidate := utils.SlugCandidate(base, n)
		exists, err := ajussiRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", apperrors.ErrDependencyUnavailable(err, "application")
		}
		if !exists {
			return candidate, nil
		}
	}
}

func (s *applicationService) List(ctx context.Context, rawStatus string, page, pageSize int) (*dto.ApplicationListResponse, error) {
	var status models.ApplicationStatus
	switch rawStatus {
	case "":
		// no filter
	case string(models.ApplicationStatusPending), string(models.ApplicationStatusApproved), string(models.ApplicationStatusRejected):
		status = models.ApplicationStatus(rawStatus)
	default:
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "application",
			fmt.Sprintf("Unknown application status %q", rawStatus), 400)
	}

	applications, total, err := s.applicationRepo.List(ctx, status, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, toApplicationResponse(&applications[i]))
	}
	return &dto.ApplicationListResponse{
		Applications: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   calculateTotalPages(total, pageSize),
	}, nil
}

func (s *applicationService) GetMine(ctx context.Context, userID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindPendingByUser(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "application", "No open application")
		}
		return nil, apperrors.ErrDependencyUnavailable(err, "application")
	}
	return toApplicationResponse(application), nil
}

func toApplicationResponse(application *models.AjussiApplication) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:         application.ID,
		UserID:     application.UserID,
		Title:      application.Title,
		Intro:      application.Intro,
		City:       application.City,
		Categories: decodeStringList(application.Categories),
		HourlyRate: application.HourlyRate,
		ChatLink:   application.ChatLink,
		Status:     application.Status,
		DecidedBy:  application.DecidedBy,
		DecidedAt:  application.DecidedAt,
		CreatedAt:  application.CreatedAt,
	}
}
