package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
)

// validateInput runs the real business check so the handler sees genuine errors
func validateInput(restaurant *models.Restaurant, form types.ReservationInputForm) types.FieldErrors {
	return (&service.ReservationService{}).ValidateInput(restaurant, form)
}

func TestReservationInputOutsideHoursRerendersDetail(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()
	form := types.ReservationInputForm{ReservationDate: "2026-11-01", ReservationTime: "23:00", NumberOfPeople: 2}

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.reservations.On("ValidateInput", restaurant, form).Return(validateInput(restaurant, form)).Once()
	m.restaurants.On("Detail", mock.Anything, uint(1), memberID).Return(&types.RestaurantDetail{Restaurant: restaurant}, nil).Once()

	w := get(r, "/restaurants/1/reservations/input?reservationDate=2026-11-01&reservationTime=23:00&numberOfPeople=2", memberToken)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, types.MsgReservationDateRequired)
	assert.Contains(t, body, types.MsgReservationTimeRange)
	assert.Contains(t, body, types.MsgNumberOfPeopleMin)
	assert.Contains(t, body, "予約内容に不備があります。")
	assert.Contains(t, body, "味噌かつ 矢場とん")
}

func TestReservationInputWithoutTimeFails(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()
	form := types.ReservationInputForm{ReservationDate: "2026-11-01", NumberOfPeople: 2}

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.reservations.On("ValidateInput", restaurant, form).Return(validateInput(restaurant, form)).Once()
	m.restaurants.On("Detail", mock.Anything, uint(1), memberID).Return(&types.RestaurantDetail{Restaurant: restaurant}, nil).Once()

	w := get(r, "/restaurants/1/reservations/input?reservationDate=2026-11-01&numberOfPeople=2", memberToken)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), types.MsgReservationTimeRange)
}

func TestReservationInputRedirectsToConfirm(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()
	form := types.ReservationInputForm{ReservationDate: "2026-11-01", ReservationTime: "21:00", NumberOfPeople: 2}

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.reservations.On("ValidateInput", restaurant, form).Return(validateInput(restaurant, form)).Once()

	w := get(r, "/restaurants/1/reservations/input?reservationDate=2026-11-01&reservationTime=21:00&numberOfPeople=2", memberToken)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t,
		"/restaurants/1/reservations/confirm?numberOfPeople=2&reservationDate=2026-11-01&reservationTime=21%3A00",
		w.Header().Get("Location"))
}

func TestReservationInputRequiresLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/restaurants/1/reservations/input?reservationDate=2026-11-01", "")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestReservationConfirm(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()
	form := types.ReservationInputForm{ReservationDate: "2026-11-01", ReservationTime: "11:00", NumberOfPeople: 4}

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.reservations.On("ValidateInput", restaurant, form).Return(types.FieldErrors{}).Once()

	w := get(r, "/restaurants/1/reservations/confirm?reservationDate=2026-11-01&reservationTime=11:00&numberOfPeople=4", memberToken)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="reservationTime" value="11:00"`)
	assert.Contains(t, body, `name="numberOfPeople" value="4"`)
	assert.Contains(t, body, `action="/restaurants/1/reservations/create"`)
}

func TestReservationConfirmInvalidRedirectsBack(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.reservations.On("ValidateInput", restaurant, mock.Anything).Return(types.FieldErrors{}).Once()

	w := get(r, "/restaurants/1/reservations/confirm?reservationTime=11:00&numberOfPeople=4", memberToken)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/restaurants/1", w.Header().Get("Location"))
}

func TestReservationCreate(t *testing.T) {
	r, m := newTestRouter(t)
	form := types.ReservationRegisterForm{
		RestaurantID:    1,
		UserID:          memberID,
		ReservationDate: "2026-11-01",
		ReservationTime: "18:00",
		NumberOfPeople:  2,
	}
	m.reservations.On("Create", mock.Anything, memberID, form).Return(&models.Reservation{ID: 10}, nil).Once()

	w := post(r, "/restaurants/1/reservations/create", memberToken, url.Values{
		"restaurantId":    {"1"},
		"userId":          {"999"},
		"reservationDate": {"2026-11-01"},
		"reservationTime": {"18:00"},
		"numberOfPeople":  {"2"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/reservations?reserved", w.Header().Get("Location"))
}

func TestReservationCreateOutsideHours(t *testing.T) {
	r, m := newTestRouter(t)
	m.reservations.On("Create", mock.Anything, memberID, mock.Anything).Return(nil, service.ErrOutsideBusinessHours).Once()

	w := post(r, "/restaurants/1/reservations/create", memberToken, url.Values{
		"restaurantId":    {"1"},
		"reservationDate": {"2026-11-01"},
		"reservationTime": {"23:30"},
		"numberOfPeople":  {"2"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/restaurants/1", w.Header().Get("Location"))
}

func TestReservationCreateRejectsMismatchedRestaurant(t *testing.T) {
	r, _ := newTestRouter(t)

	w := post(r, "/restaurants/1/reservations/create", memberToken, url.Values{
		"restaurantId":    {"2"},
		"reservationDate": {"2026-11-01"},
		"reservationTime": {"18:00"},
		"numberOfPeople":  {"2"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/restaurants/1", w.Header().Get("Location"))
}

func TestReservationIndexShowsBanner(t *testing.T) {
	r, m := newTestRouter(t)
	m.reservations.On("ListByUser", mock.Anything, memberID, types.Pageable{}).
		Return(types.NewPage([]models.Reservation{}, types.Pageable{Size: 10}, 0), nil).Twice()

	w := get(r, "/reservations?reserved", memberToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "予約が完了しました。")

	w = get(r, "/reservations", memberToken)
	assert.NotContains(t, w.Body.String(), "予約が完了しました。")
}

func TestReservationDelete(t *testing.T) {
	r, m := newTestRouter(t)
	m.reservations.On("Cancel", mock.Anything, uint(5), memberID).Return(nil).Once()

	w := post(r, "/reservations/5/delete", memberToken, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/reservations", w.Header().Get("Location"))
}

func TestReservationQRCode(t *testing.T) {
	r, m := newTestRouter(t)
	m.reservations.On("QRCode", mock.Anything, uint(5), memberID).Return([]byte("\x89PNG"), nil).Once()
	m.reservations.On("QRCode", mock.Anything, uint(6), memberID).Return(nil, service.ErrForbidden).Once()

	w := get(r, "/reservations/5/qrcode", memberToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = get(r, "/reservations/6/qrcode", memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
