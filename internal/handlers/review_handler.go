package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/services"
	"ajussi_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := r.Group("/reviews")
	{
		public.GET("/:reviewId", h.GetReview)
		public.GET("/ajussi/:profileId", h.ListAjussiReviews)
	}

	protected := r.Group("/reviews")
	protected.Use(authMW)
	{
		protected.POST("", h.CreateReview)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.CreateReview(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	resp, err := h.reviewService.GetReview(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) ListAjussiReviews(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	resp, err := h.reviewService.ListAjussiReviews(c.Request.Context(), c.Param("profileId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
