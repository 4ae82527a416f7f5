package services

// In-memory repository fakes. They enforce the same contracts the Postgres
// implementations lean on (missing rows as gorm.ErrRecordNotFound, unique
// constraints as gorm.ErrDuplicatedKey, compare-and-swap semantics) so the
// services can be exercised without a database.

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ajussi_backend/internal/models"
	"ajussi_backend/internal/repositories"
)

// --- requests ---

type fakeRequestRepo struct {
	requests map[string]*models.ServiceRequest

	// preCAS runs at the top of UpdateStatusCAS, letting a test slip in a
	// "concurrent" status change between the service's read and its swap.
	preCAS func()
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.ServiceRequest)}
}

func (f *fakeRequestRepo) Create(_ context.Context, request *models.ServiceRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id string) (*models.ServiceRequest, error) {
	stored, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeRequestRepo) UpdateStatusCAS(_ context.Context, id string, from, to models.RequestStatus) (bool, error) {
	if f.preCAS != nil {
		f.preCAS()
	}
	stored, ok := f.requests[id]
	if !ok || stored.Status != from {
		return false, nil
	}
	stored.Status = to
	stored.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeRequestRepo) ListByClient(_ context.Context, clientID string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	return f.list(func(r *models.ServiceRequest) bool { return r.ClientID == clientID }, limit, offset)
}

func (f *fakeRequestRepo) ListByProvider(_ context.Context, providerID string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	return f.list(func(r *models.ServiceRequest) bool { return r.ProviderID == providerID }, limit, offset)
}

func (f *fakeRequestRepo) list(match func(*models.ServiceRequest) bool, limit, offset int) ([]models.ServiceRequest, int64, error) {
	var all []models.ServiceRequest
	for _, r := range f.requests {
		if match(r) {
			all = append(all, *r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// --- ajussi profiles ---

type fakeAjussiRepo struct {
	profiles map[string]*models.AjussiProfile
}

func newFakeAjussiRepo() *fakeAjussiRepo {
	return &fakeAjussiRepo{profiles: make(map[string]*models.AjussiProfile)}
}

func (f *fakeAjussiRepo) add(profile *models.AjussiProfile) *models.AjussiProfile {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.ID] = profile
	return profile
}

func (f *fakeAjussiRepo) Create(_ context.Context, profile *models.AjussiProfile) error {
	for _, p := range f.profiles {
		if p.Slug == profile.Slug || p.UserID == profile.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.add(profile)
	return nil
}

func (f *fakeAjussiRepo) FindByID(_ context.Context, id string) (*models.AjussiProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeAjussiRepo) FindBySlug(_ context.Context, slug string) (*models.AjussiProfile, error) {
	for _, p := range f.profiles {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAjussiRepo) FindByUserID(_ context.Context, userID string) (*models.AjussiProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAjussiRepo) Update(_ context.Context, profile *models.AjussiProfile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *profile
	f.profiles[profile.ID] = &copied
	return nil
}

func (f *fakeAjussiRepo) ListActive(_ context.Context, filters repositories.AjussiProfileFilters, limit, offset int) ([]models.AjussiProfile, int64, error) {
	var all []models.AjussiProfile
	for _, p := range f.profiles {
		if !p.IsActive {
			continue
		}
		if filters.City != "" && p.City != filters.City {
			continue
		}
		all = append(all, *p)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeAjussiRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range f.profiles {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAjussiRepo) RefreshRatingAggregates(_ context.Context) (int64, error) {
	return 0, nil
}

// --- display profiles ---

type fakeProfileRepo struct {
	byUser map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.byUser[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID string) (*models.Profile, error) {
	profile, ok := f.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) FindByUserIDs(_ context.Context, userIDs []string) (map[string]*models.Profile, error) {
	result := make(map[string]*models.Profile)
	for _, id := range userIDs {
		if p, ok := f.byUser[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *models.Profile) error {
	f.byUser[profile.UserID] = profile
	return nil
}

// --- reviews ---

type fakeReviewRepo struct {
	reviews map[string]*models.Review

	// postExists runs once after ExistsForRequest has taken its snapshot,
	// so a test can interleave a winning insert behind the advisory check.
	postExists func()
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	for _, r := range f.reviews {
		if r.RequestID == review.RequestID {
			return gorm.ErrDuplicatedKey
		}
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = time.Now()
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id string) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) ExistsForRequest(_ context.Context, requestID string) (bool, error) {
	exists := false
	for _, r := range f.reviews {
		if r.RequestID == requestID {
			exists = true
			break
		}
	}
	if f.postExists != nil {
		hook := f.postExists
		f.postExists = nil
		hook()
	}
	return exists, nil
}

func (f *fakeReviewRepo) ListByAjussiProfile(_ context.Context, profileID string, limit, offset int) ([]models.Review, int64, error) {
	var all []models.Review
	for _, r := range f.reviews {
		if r.AjussiProfileID == profileID {
			all = append(all, *r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, userID string, role models.UserRole) error {
	user, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	return nil
}

// --- applications ---

type fakeApplicationRepo struct {
	applications map[string]*models.AjussiApplication

	// failUpdate makes the next Update return this error, for exercising
	// the transactional rollback path.
	failUpdate error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.AjussiApplication)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *models.AjussiApplication) error {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	stored := *application
	f.applications[application.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.AjussiApplication, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) FindPendingByUser(_ context.Context, userID string) (*models.AjussiApplication, error) {
	for _, a := range f.applications {
		if a.UserID == userID && a.Status == models.ApplicationStatusPending {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeApplicationRepo) Update(_ context.Context, application *models.AjussiApplication) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if _, ok := f.applications[application.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *application
	f.applications[application.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) List(_ context.Context, status models.ApplicationStatus, limit, offset int) ([]models.AjussiApplication, int64, error) {
	var all []models.AjussiApplication
	for _, a := range f.applications {
		if status != "" && a.Status != status {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// --- unit of work ---

// fakeUnitOfWork mirrors transaction semantics over the map-backed fakes:
// it snapshots the stores before running the function and restores them
// when the function fails.
type fakeUnitOfWork struct {
	applications *fakeApplicationRepo
	ajussi       *fakeAjussiRepo
	users        *fakeUserRepo
}

func (u *fakeUnitOfWork) Do(_ context.Context, fn func(r repositories.Repositories) error) error {
	applicationsSnap := snapshotStore(u.applications.applications)
	profilesSnap := snapshotStore(u.ajussi.profiles)
	usersSnap := snapshotStore(u.users.users)

	err := fn(repositories.Repositories{
		Applications:   u.applications,
		AjussiProfiles: u.ajussi,
		Users:          u.users,
	})
	if err != nil {
		u.applications.applications = applicationsSnap
		u.ajussi.profiles = profilesSnap
		u.users.users = usersSnap
	}
	return err
}

func snapshotStore[V any](store map[string]*V) map[string]*V {
	snap := make(map[string]*V, len(store))
	for id, v := range store {
		copied := *v
		snap[id] = &copied
	}
	return snap
}

// --- favorites ---

type fakeFavoriteRepo struct {
	favorites map[string]*models.Favorite
	ajussi    *fakeAjussiRepo
}

func newFakeFavoriteRepo(ajussi *fakeAjussiRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*models.Favorite), ajussi: ajussi}
}

func (f *fakeFavoriteRepo) Find(_ context.Context, userID, profileID string) (*models.Favorite, error) {
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.AjussiProfileID == profileID {
			copied := *fav
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *models.Favorite) error {
	for _, fav := range f.favorites {
		if fav.UserID == favorite.UserID && fav.AjussiProfileID == favorite.AjussiProfileID {
			return gorm.ErrDuplicatedKey
		}
	}
	if favorite.ID == "" {
		favorite.ID = uuid.NewString()
	}
	favorite.CreatedAt = time.Now()
	stored := *favorite
	f.favorites[favorite.ID] = &stored
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, userID, profileID string) error {
	for id, fav := range f.favorites {
		if fav.UserID == userID && fav.AjussiProfileID == profileID {
			delete(f.favorites, id)
			return nil
		}
	}
	return nil
}

func (f *fakeFavoriteRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]models.Favorite, int64, error) {
	var all []models.Favorite
	for _, fav := range f.favorites {
		if fav.UserID != userID {
			continue
		}
		copied := *fav
		if f.ajussi != nil {
			if profile, ok := f.ajussi.profiles[fav.AjussiProfileID]; ok {
				copied.AjussiProfile = *profile
			}
		}
		all = append(all, copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}
