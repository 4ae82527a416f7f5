package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/middleware"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/services"
	"ajussi_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, authMW, optionalAuthMW gin.HandlerFunc) {
	public := r.Group("/ajussi")
	public.Use(optionalAuthMW)
	{
		public.GET("", h.Browse)
		// Slug lookup is public but honors the viewer's identity when a
		// token is present, so owners can preview an inactive listing.
		public.GET("/:slug", h.GetBySlug)
	}

	mine := r.Group("/ajussi")
	mine.Use(authMW, middleware.RoleMiddleware(models.UserRoleAjussi))
	{
		mine.GET("/me/profile", h.GetMine)
		mine.PUT("/me/profile", h.UpdateMine)
	}
}

func (h *ProfileHandler) Browse(c *gin.Context) {
	var query dto.BrowseAjussiQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.profileService.Browse(c.Request.Context(), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetBySlug(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	viewerRole := middleware.GetRole(c)

	resp, err := h.profileService.GetBySlug(c.Request.Context(), c.Param("slug"), viewerID, viewerRole)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAjussiProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
