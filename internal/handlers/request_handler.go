package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/services"
	"ajussi_backend/internal/services/dto"
)

// RequestHandler exposes the service-request lifecycle over HTTP. All routes
// require authentication; per-request authorization (who may trigger which
// transition) lives in the service, not here.
type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	requests := r.Group("/requests")
	requests.Use(authMW)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("/sent", h.ListSent)
		requests.GET("/received", h.ListReceived)
		requests.GET("/:requestId", h.GetRequest)
		requests.PUT("/:requestId", h.ChangeStatus)
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.CreateRequest(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RequestHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeRequestStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.ChangeStatus(c.Request.Context(), c.Param("requestId"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.requestService.GetRequest(c.Request.Context(), c.Param("requestId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) ListSent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.requestService.ListSent(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.requestService.ListReceived(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
