package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

// CategoryHandler serves the admin category pages
type CategoryHandler struct {
	categories service.ICategoryService
	view       *web.View
}

func NewCategoryHandler(categories service.ICategoryService, view *web.View) *CategoryHandler {
	return &CategoryHandler{categories: categories, view: view}
}

// RegisterRoutes mounts the handlers on an admin-only group
func (h *CategoryHandler) RegisterRoutes(admin *gin.RouterGroup) {
	categories := admin.Group("/categories")
	{
		categories.GET("", h.Index)
		categories.GET("/register", h.Register)
		categories.POST("/create", h.Create)
		categories.GET("/:id/edit", h.Edit)
		categories.POST("/:id/update", h.Update)
		categories.POST("/:id/delete", h.Delete)
	}
}

func (h *CategoryHandler) Index(c *gin.Context) {
	keyword := c.Query("keyword")
	page, err := h.categories.List(c.Request.Context(), keyword, pageable(c))
	if err != nil {
		fail(c, err)
		return
	}

	h.view.HTML(c, http.StatusOK, "admin/categories/index", gin.H{
		"categoryPage":         page,
		"keyword":              keyword,
		"categoryRegisterForm": types.CategoryRegisterForm{},
	})
}

func (h *CategoryHandler) Register(c *gin.Context) {
	h.view.HTML(c, http.StatusOK, "admin/categories/register", gin.H{
		"categoryRegisterForm": types.CategoryRegisterForm{},
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var form types.CategoryRegisterForm
	if errs := bind(c, &form, "categoryName"); errs.Any() {
		h.view.HTML(c, http.StatusUnprocessableEntity, "admin/categories/register", gin.H{
			"categoryRegisterForm": form,
			"errors":               errs,
		})
		return
	}

	if err := h.categories.Create(c.Request.Context(), form); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/admin/categories", web.FlashSuccess, "カテゴリを登録しました。")
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}

	h.view.HTML(c, http.StatusOK, "admin/categories/edit", gin.H{
		"categoryEditForm": types.CategoryEditForm{ID: category.ID, CategoryName: category.CategoryName},
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id := idParam(c, "id")
	if id == 0 {
		middleware.ErrorPage(c, http.StatusNotFound)
		return
	}

	var form types.CategoryEditForm
	errs := bind(c, &form, "categoryName")
	form.ID = id
	if errs.Any() {
		h.view.HTML(c, http.StatusUnprocessableEntity, "admin/categories/edit", gin.H{
			"categoryEditForm": form,
			"errors":           errs,
		})
		return
	}

	if err := h.categories.Update(c.Request.Context(), form); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/admin/categories", web.FlashSuccess, "カテゴリー名を変更しました。")
}

// Delete removes the category; an unknown id still reports success
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/admin/categories", web.FlashSuccess, "カテゴリを削除しました。")
}
