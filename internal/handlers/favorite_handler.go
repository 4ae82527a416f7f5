package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/services"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	favorites := r.Group("/favorites")
	favorites.Use(authMW)
	{
		favorites.POST("/:profileId/toggle", h.Toggle)
		favorites.GET("", h.ListMine)
	}
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.favoriteService.Toggle(c.Request.Context(), userID, c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.favoriteService.ListMine(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
