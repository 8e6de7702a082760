package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/web"
)

type FavoriteHandler struct {
	favorites service.IFavoriteService
	view      *web.View
}

func NewFavoriteHandler(favorites service.IFavoriteService, view *web.View) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, view: view}
}

func (h *FavoriteHandler) RegisterRoutes(member *gin.RouterGroup) {
	member.GET("/favorites", h.Index)
	member.POST("/favorites/:id/delete", h.Delete)
	member.POST("/restaurants/:id/favorites/create", h.Create)
}

func (h *FavoriteHandler) Index(c *gin.Context) {
	page, err := h.favorites.ListByUser(c.Request.Context(), middleware.UserID(c), pageable(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "favorites/index", gin.H{
		"favoritePage": page,
	})
}

// Create favorites the restaurant; repeating it keeps the single row
func (h *FavoriteHandler) Create(c *gin.Context) {
	id := idParam(c, "id")
	if err := h.favorites.Add(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, restaurantPath(id), web.FlashSuccess, "お気に入りに追加しました。")
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	if err := h.favorites.Remove(c.Request.Context(), idParam(c, "id"), middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/favorites", web.FlashSuccess, "お気に入りを解除しました。")
}
