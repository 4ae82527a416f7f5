package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ajussi_backend/internal/models"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/pkg/apperrors"
)

type applicationFixture struct {
	svc             ApplicationService
	applicationRepo *fakeApplicationRepo
	ajussiRepo      *fakeAjussiRepo
	userRepo        *fakeUserRepo

	applicantID string
	adminID     string
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	applicationRepo := newFakeApplicationRepo()
	ajussiRepo := newFakeAjussiRepo()
	userRepo := newFakeUserRepo()

	applicant := &models.User{Email: "applicant@example.com", Role: models.UserRoleClient}
	require.NoError(t, userRepo.Create(context.Background(), applicant))

	uow := &fakeUnitOfWork{applications: applicationRepo, ajussi: ajussiRepo, users: userRepo}
	return &applicationFixture{
		svc:             NewApplicationService(applicationRepo, uow),
		applicationRepo: applicationRepo,
		ajussiRepo:      ajussiRepo,
		userRepo:        userRepo,
		applicantID:     applicant.ID,
		adminID:         "admin-1",
	}
}

func (f *applicationFixture) apply(t *testing.T) *dto.ApplicationResponse {
	t.Helper()
	resp, err := f.svc.Apply(context.Background(), f.applicantID, &dto.CreateApplicationRequest{
		Title:      "Moving Help",
		Intro:      "Ten years of experience",
		City:       "Seoul",
		Categories: []string{"moving"},
		HourlyRate: 25000,
	})
	require.NoError(t, err)
	return resp
}

func TestApply(t *testing.T) {
	f := newApplicationFixture(t)

	resp := f.apply(t)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, f.applicantID, resp.UserID)
	assert.Equal(t, []string{"moving"}, resp.Categories)
	assert.Nil(t, resp.DecidedBy)
}

func TestApplyRejectsSecondOpenApplication(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	_, err := f.svc.Apply(context.Background(), f.applicantID, &dto.CreateApplicationRequest{
		Title:      "Another Title",
		City:       "Seoul",
		Categories: []string{"moving"},
		HourlyRate: 30000,
	})
	assertCode(t, err, apperrors.CodeConflict)
}

func TestDecideApprove(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apply(t)

	resp, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, f.adminID, *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)

	// Approval activates the listing and flips the applicant's role.
	profile, err := f.ajussiRepo.FindByUserID(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.True(t, profile.IsActive)
	assert.Equal(t, "moving-help", profile.Slug)
	assert.Equal(t, "Moving Help", profile.Title)

	user, err := f.userRepo.FindByID(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAjussi, user.Role)
}

func TestDecideApproveDeduplicatesSlug(t *testing.T) {
	f := newApplicationFixture(t)
	f.ajussiRepo.add(&models.AjussiProfile{UserID: "other", Slug: "moving-help", IsActive: true})
	application := f.apply(t)

	_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "approved")
	require.NoError(t, err)

	profile, err := f.ajussiRepo.FindByUserID(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, "moving-help-2", profile.Slug)
}

func TestDecideApproveReactivatesExistingProfile(t *testing.T) {
	f := newApplicationFixture(t)
	existing := f.ajussiRepo.add(&models.AjussiProfile{
		UserID:   f.applicantID,
		Slug:     "moving-help",
		Title:    "Moving Help",
		IsActive: false,
	})
	application := f.apply(t)

	_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "approved")
	require.NoError(t, err)

	profile, err := f.ajussiRepo.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsActive)
}

func TestDecideApproveRollsBackOnFailedUpdate(t *testing.T) {
	// When the decision row fails to persist, the listing activation and
	// role flip roll back with it: no active listing may exist against a
	// still-pending application.
	f := newApplicationFixture(t)
	application := f.apply(t)
	f.applicationRepo.failUpdate = errors.New("connection reset by peer")

	_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "approved")
	require.Error(t, err)

	_, err = f.ajussiRepo.FindByUserID(context.Background(), f.applicantID)
	assert.Error(t, err, "no listing should survive the rollback")

	user, err := f.userRepo.FindByID(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, user.Role)

	stored, err := f.applicationRepo.FindByID(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
	assert.Nil(t, stored.DecidedBy)
}

func TestDecideReject(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apply(t)

	resp, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, resp.Status)

	// Rejection creates no listing and leaves the role alone.
	_, err = f.ajussiRepo.FindByUserID(context.Background(), f.applicantID)
	assert.Error(t, err)
	user, err := f.userRepo.FindByID(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, user.Role)
}

func TestDecideIsTerminal(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apply(t)

	_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "rejected")
	require.NoError(t, err)

	for _, decision := range []string{"approved", "rejected"} {
		_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, decision)
		assertCode(t, err, apperrors.CodeInvalidTransition)
	}
}

func TestDecideUnknownStatus(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apply(t)

	for _, raw := range []string{"pending", "done", ""} {
		_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, raw)
		assertCode(t, err, apperrors.CodeInvalidStatus)
	}
}

func TestListApplications(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.apply(t)
	_, err := f.svc.Decide(context.Background(), f.adminID, application.ID, "rejected")
	require.NoError(t, err)

	second := &models.User{Email: "second@example.com", Role: models.UserRoleClient}
	require.NoError(t, f.userRepo.Create(context.Background(), second))
	_, err = f.svc.Apply(context.Background(), second.ID, &dto.CreateApplicationRequest{
		Title:      "Plumbing",
		City:       "Busan",
		Categories: []string{"plumbing"},
		HourlyRate: 40000,
	})
	require.NoError(t, err)

	all, err := f.svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	pending, err := f.svc.List(context.Background(), "pending", 1, 20)
	require.NoError(t, err)
	require.Len(t, pending.Applications, 1)
	assert.Equal(t, second.ID, pending.Applications[0].UserID)

	_, err = f.svc.List(context.Background(), "done", 1, 20)
	assertCode(t, err, apperrors.CodeInvalidStatus)
}

func TestGetMineApplication(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.GetMine(context.Background(), f.applicantID)
	assertCode(t, err, apperrors.CodeNotFound)

	application := f.apply(t)
	resp, err := f.svc.GetMine(context.Background(), f.applicantID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, resp.ID)
}
