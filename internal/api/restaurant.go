package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

// searchPrices are the budget choices of the restaurant search
var searchPrices = []int{1000, 2000, 3000, 4000, 5000, 6000, 8000, 10000}

// RestaurantHandler serves the public restaurant pages and their admin screens
type RestaurantHandler struct {
	restaurants service.IRestaurantService
	categories  service.ICategoryService
	view        *web.View
}

func NewRestaurantHandler(restaurants service.IRestaurantService, categories service.ICategoryService, view *web.View) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, categories: categories, view: view}
}

func (h *RestaurantHandler) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	public.GET("/", h.Home)
	public.GET("/restaurants", h.Index)
	public.GET("/restaurants/:id", h.Show)

	restaurants := admin.Group("/restaurants")
	{
		restaurants.GET("", h.AdminIndex)
		restaurants.GET("/register", h.Register)
		restaurants.POST("/create", h.Create)
		restaurants.GET("/:id", h.AdminShow)
		restaurants.GET("/:id/edit", h.Edit)
		restaurants.POST("/:id/update", h.Update)
		restaurants.POST("/:id/delete", h.Delete)
	}
}

func (h *RestaurantHandler) Home(c *gin.Context) {
	restaurants, categories, err := h.restaurants.Home(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "index", gin.H{
		"restaurants": restaurants,
		"categories":  categories,
	})
}

func (h *RestaurantHandler) Index(c *gin.Context) {
	var search types.RestaurantSearch
	_ = c.ShouldBindQuery(&search)
	if search.Order == "" {
		search.Order = types.OrderCreatedAtDesc
	}

	ctx := c.Request.Context()
	page, err := h.restaurants.Search(ctx, search, pageable(c))
	if err != nil {
		fail(c, err)
		return
	}
	categories, err := h.categories.All(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	h.view.HTML(c, http.StatusOK, "restaurants/index", gin.H{
		"restaurantPage": page,
		"search":         search,
		"categories":     categories,
		"prices":         searchPrices,
	})
}

func (h *RestaurantHandler) Show(c *gin.Context) {
	detail, err := h.restaurants.Detail(c.Request.Context(), idParam(c, "id"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "restaurants/show", gin.H{
		"detail":               detail,
		"reservationInputForm": types.ReservationInputForm{},
	})
}

func (h *RestaurantHandler) AdminIndex(c *gin.Context) {
	keyword := c.Query("keyword")
	page, err := h.restaurants.AdminList(c.Request.Context(), keyword, pageable(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "admin/restaurants/index", gin.H{
		"restaurantPage": page,
		"keyword":        keyword,
	})
}

func (h *RestaurantHandler) AdminShow(c *gin.Context) {
	restaurant, err := h.restaurants.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "admin/restaurants/show", gin.H{
		"restaurant": restaurant,
	})
}

// renderForm renders the register or edit view with the category choices
func (h *RestaurantHandler) renderForm(c *gin.Context, status int, name string, data gin.H) {
	categories, err := h.categories.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	data["categories"] = categories
	h.view.HTML(c, status, name, data)
}

func (h *RestaurantHandler) Register(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "admin/restaurants/register", gin.H{
		"restaurantForm": types.RestaurantForm{},
	})
}

// bindForm binds the multipart form and runs the cross-field checks
func (h *RestaurantHandler) bindForm(c *gin.Context) (types.RestaurantForm, types.FieldErrors) {
	var form types.RestaurantForm
	errs := bind(c, &form, "name")
	errs.Merge(h.restaurants.ValidateForm(c.Request.Context(), &form))
	return form, errs
}

func imageError(errs types.FieldErrors, err error) bool {
	if errors.Is(err, service.ErrUnsupportedImage) {
		errs.Add("imageFile", "画像ファイル（jpg, png, gif, webp）を選択してください。")
		return true
	}
	return false
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	form, errs := h.bindForm(c)
	if !errs.Any() {
		_, err := h.restaurants.Create(c.Request.Context(), form)
		if err == nil {
			h.view.Redirect(c, "/admin/restaurants", web.FlashSuccess, "店舗を登録しました。")
			return
		}
		if !imageError(errs, err) {
			fail(c, err)
			return
		}
	}

	h.renderForm(c, http.StatusUnprocessableEntity, "admin/restaurants/register", gin.H{
		"restaurantForm": form,
		"errors":         errs,
	})
}

func (h *RestaurantHandler) Edit(c *gin.Context) {
	id := idParam(c, "id")
	restaurant, err := h.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	form, err := h.restaurants.EditForm(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, "admin/restaurants/edit", gin.H{
		"restaurantForm": form,
		"imageName":      restaurant.ImageName,
	})
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	id := idParam(c, "id")
	form, errs := h.bindForm(c)
	form.ID = id
	if !errs.Any() {
		err := h.restaurants.Update(c.Request.Context(), id, form)
		if err == nil {
			h.view.Redirect(c, "/admin/restaurants/"+c.Param("id"), web.FlashSuccess, "店舗情報を編集しました。")
			return
		}
		if !imageError(errs, err) {
			fail(c, err)
			return
		}
	}

	h.renderForm(c, http.StatusUnprocessableEntity, "admin/restaurants/edit", gin.H{
		"restaurantForm": form,
		"errors":         errs,
	})
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	if err := h.restaurants.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/admin/restaurants", web.FlashSuccess, "店舗を削除しました。")
}
