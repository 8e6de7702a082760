package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

const msgAlreadyReviewed = "この店舗のレビューはすでに投稿済みです。"

type ReviewHandler struct {
	reviews     service.IReviewService
	restaurants service.IRestaurantService
	view        *web.View
}

func NewReviewHandler(reviews service.IReviewService, restaurants service.IRestaurantService, view *web.View) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, restaurants: restaurants, view: view}
}

func (h *ReviewHandler) RegisterRoutes(public *gin.RouterGroup, member *gin.RouterGroup) {
	public.GET("/restaurants/:id/reviews", h.Index)

	member.GET("/restaurants/:id/reviews/register", h.Register)
	member.POST("/restaurants/:id/reviews/create", h.Create)
	member.GET("/restaurants/:id/reviews/:reviewId/edit", h.Edit)
	member.POST("/restaurants/:id/reviews/:reviewId/update", h.Update)
	member.POST("/restaurants/:id/reviews/:reviewId/delete", h.Delete)
}

func restaurantPath(id uint) string {
	return fmt.Sprintf("/restaurants/%d", id)
}

func (h *ReviewHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	restaurant, err := h.restaurants.Get(ctx, idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.reviews.ListByRestaurant(ctx, restaurant.ID, pageable(c))
	if err != nil {
		fail(c, err)
		return
	}

	hasReviewed := false
	if userID := middleware.UserID(c); userID != 0 {
		if hasReviewed, err = h.reviews.HasReviewed(ctx, restaurant.ID, userID); err != nil {
			fail(c, err)
			return
		}
	}

	h.view.HTML(c, http.StatusOK, "reviews/index", gin.H{
		"restaurant":  restaurant,
		"reviewPage":  page,
		"hasReviewed": hasReviewed,
	})
}

func (h *ReviewHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	restaurant, err := h.restaurants.Get(ctx, idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	reviewed, err := h.reviews.HasReviewed(ctx, restaurant.ID, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if reviewed {
		h.view.Redirect(c, restaurantPath(restaurant.ID), web.FlashError, msgAlreadyReviewed)
		return
	}

	h.view.HTML(c, http.StatusOK, "reviews/register", gin.H{
		"restaurant": restaurant,
		"reviewForm": types.ReviewForm{},
	})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	restaurant, err := h.restaurants.Get(ctx, idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}

	var form types.ReviewForm
	if errs := bind(c, &form, "score"); errs.Any() {
		h.view.HTML(c, http.StatusUnprocessableEntity, "reviews/register", gin.H{
			"restaurant": restaurant,
			"reviewForm": form,
			"errors":     errs,
		})
		return
	}

	_, err = h.reviews.Create(ctx, restaurant.ID, middleware.UserID(c), form)
	switch {
	case err == nil:
		h.view.Redirect(c, restaurantPath(restaurant.ID), web.FlashSuccess, "レビューを投稿しました。")
	case errors.Is(err, service.ErrAlreadyReviewed):
		h.view.Redirect(c, restaurantPath(restaurant.ID), web.FlashError, msgAlreadyReviewed)
	default:
		fail(c, err)
	}
}

// own loads the restaurant and the session user's review of it
func (h *ReviewHandler) own(c *gin.Context) (*models.Restaurant, *models.Review, bool) {
	ctx := c.Request.Context()
	restaurant, err := h.restaurants.Get(ctx, idParam(c, "id"))
	if err != nil {
		fail(c, err)
		return nil, nil, false
	}
	review, err := h.reviews.GetOwn(ctx, restaurant.ID, idParam(c, "reviewId"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return nil, nil, false
	}
	return restaurant, review, true
}

func (h *ReviewHandler) Edit(c *gin.Context) {
	restaurant, review, ok := h.own(c)
	if !ok {
		return
	}
	h.view.HTML(c, http.StatusOK, "reviews/edit", gin.H{
		"restaurant": restaurant,
		"review":     review,
		"reviewForm": types.ReviewForm{Score: review.Score, Content: review.Content},
	})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	restaurant, review, ok := h.own(c)
	if !ok {
		return
	}

	var form types.ReviewForm
	if errs := bind(c, &form, "score"); errs.Any() {
		h.view.HTML(c, http.StatusUnprocessableEntity, "reviews/edit", gin.H{
			"restaurant": restaurant,
			"review":     review,
			"reviewForm": form,
			"errors":     errs,
		})
		return
	}

	if err := h.reviews.Update(c.Request.Context(), restaurant.ID, review.ID, middleware.UserID(c), form); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, restaurantPath(restaurant.ID), web.FlashSuccess, "レビューを編集しました。")
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	restaurantID := idParam(c, "id")
	err := h.reviews.Delete(c.Request.Context(), restaurantID, idParam(c, "reviewId"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, restaurantPath(restaurantID), web.FlashSuccess, "レビューを削除しました。")
}
