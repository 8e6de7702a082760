package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

const msgReservationInvalid = "予約内容に不備があります。"

// ReservationHandler runs the input, confirm and create steps of a booking
// and the member's reservation list
type ReservationHandler struct {
	reservations service.IReservationService
	restaurants  service.IRestaurantService
	view         *web.View
}

func NewReservationHandler(reservations service.IReservationService, restaurants service.IRestaurantService, view *web.View) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, restaurants: restaurants, view: view}
}

// RegisterRoutes mounts the handlers on a logged-in group; limit guards
// reservation creation
func (h *ReservationHandler) RegisterRoutes(member *gin.RouterGroup, limit gin.HandlerFunc) {
	member.GET("/reservations", h.Index)
	member.POST("/reservations/:id/delete", h.Delete)
	member.GET("/reservations/:id/qrcode", h.QRCode)
	member.GET("/restaurants/:id/reservations/input", h.Input)
	member.GET("/restaurants/:id/reservations/confirm", h.Confirm)
	member.POST("/restaurants/:id/reservations/create", limit, h.Create)
}

func (h *ReservationHandler) Index(c *gin.Context) {
	page, err := h.reservations.ListByUser(c.Request.Context(), middleware.UserID(c), pageable(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "reservations/index", gin.H{
		"reservationPage": page,
		"reserved":        c.Request.URL.Query().Has("reserved"),
	})
}

// Input validates the first step. Failures re-render the restaurant page
// with the field errors; success moves on to the confirm step.
func (h *ReservationHandler) Input(c *gin.Context) {
	ctx := c.Request.Context()
	id := idParam(c, "id")
	restaurant, err := h.restaurants.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}

	var form types.ReservationInputForm
	errs := bind(c, &form, "numberOfPeople")
	errs.Merge(h.reservations.ValidateInput(restaurant, form))
	if errs.Any() {
		detail, err := h.restaurants.Detail(ctx, id, middleware.UserID(c))
		if err != nil {
			fail(c, err)
			return
		}
		h.view.HTML(c, http.StatusUnprocessableEntity, "restaurants/show", gin.H{
			"detail":               detail,
			"reservationInputForm": form,
			"errors":               errs,
			"errorMessage":         msgReservationInvalid,
		})
		return
	}

	q := url.Values{}
	q.Set("reservationDate", form.ReservationDate)
	q.Set("reservationTime", form.ReservationTime)
	q.Set("numberOfPeople", strconv.Itoa(form.NumberOfPeople))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/restaurants/%d/reservations/confirm?%s", restaurant.ID, q.Encode()))
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	id := idParam(c, "id")
	restaurant, err := h.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	var form types.ReservationInputForm
	errs := bind(c, &form, "numberOfPeople")
	errs.Merge(h.reservations.ValidateInput(restaurant, form))
	if errs.Any() {
		h.view.Redirect(c, fmt.Sprintf("/restaurants/%d", restaurant.ID), web.FlashError, msgReservationInvalid)
		return
	}

	h.view.HTML(c, http.StatusOK, "reservations/confirm", gin.H{
		"restaurant": restaurant,
		"reservationRegisterForm": types.ReservationRegisterForm{
			RestaurantID:    restaurant.ID,
			UserID:          middleware.UserID(c),
			ReservationDate: form.ReservationDate,
			ReservationTime: form.ReservationTime,
			NumberOfPeople:  form.NumberOfPeople,
		},
	})
}

func (h *ReservationHandler) Create(c *gin.Context) {
	id := idParam(c, "id")
	back := fmt.Sprintf("/restaurants/%d", id)

	var form types.ReservationRegisterForm
	errs := bind(c, &form, "numberOfPeople")
	if form.RestaurantID != id {
		errs.Add("restaurantId", "店舗が正しくありません。")
	}
	if errs.Any() {
		h.view.Redirect(c, back, web.FlashError, msgReservationInvalid)
		return
	}

	userID := middleware.UserID(c)
	form.UserID = userID
	_, err := h.reservations.Create(c.Request.Context(), userID, form)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/reservations?reserved")
	case errors.Is(err, service.ErrOutsideBusinessHours):
		h.view.Redirect(c, back, web.FlashError, types.MsgReservationTimeRange)
	case errors.Is(err, service.ErrOverCapacity):
		h.view.Redirect(c, back, web.FlashError, "来店人数が座席数を超えています。")
	default:
		fail(c, err)
	}
}

// Delete cancels the member's reservation; unknown ids still report success
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.reservations.Cancel(c.Request.Context(), idParam(c, "id"), middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	h.view.Redirect(c, "/reservations", web.FlashSuccess, "予約をキャンセルしました。")
}

func (h *ReservationHandler) QRCode(c *gin.Context) {
	png, err := h.reservations.QRCode(c.Request.Context(), idParam(c, "id"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}
