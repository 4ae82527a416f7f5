package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	RequestHandler     *RequestHandler
	ReviewHandler      *ReviewHandler
	ProfileHandler     *ProfileHandler
	FavoriteHandler    *FavoriteHandler
	ApplicationHandler *ApplicationHandler
}
