package services

// ServiceContainer holds every service in the application.
type ServiceContainer struct {
	AuthService        AuthService
	RequestService     RequestService
	ReviewService      ReviewService
	ProfileService     ProfileService
	FavoriteService    FavoriteService
	ApplicationService ApplicationService
}
