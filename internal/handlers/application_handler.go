package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/middleware"
	"ajussi_backend/internal/models"
	"ajussi_backend/internal/services"
	"ajussi_backend/internal/services/dto"
)

// ApplicationHandler covers both sides of provider onboarding: users submit
// applications, admins list and decide them.
type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	applications := r.Group("/applications")
	applications.Use(authMW)
	{
		applications.POST("", h.Apply)
		applications.GET("/my", h.GetMine)
	}

	admin := r.Group("/admin/applications")
	admin.Use(authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PUT("/:applicationId", h.Decide)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.applicationService.List(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Decide(c.Request.Context(), adminID, c.Param("applicationId"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
