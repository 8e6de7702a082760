package api

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
)

func restaurantValues() url.Values {
	return url.Values{
		"name":            {"ひつまぶし 備長"},
		"description":     {"老舗の鰻"},
		"lowestPrice":     {"3000"},
		"highestPrice":    {"6000"},
		"postalCode":      {"460-0008"},
		"address":         {"名古屋市中区栄"},
		"phoneNumber":     {"052-111-2222"},
		"openingTime":     {"11:00"},
		"closingTime":     {"21:00"},
		"regularHoliday":  {"水曜日"},
		"seatingCapacity": {"40"},
		"categoryId":      {"3"},
	}
}

func TestHome(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("Home", mock.Anything).Return(
		[]models.Restaurant{*testRestaurant()},
		[]models.Category{{ID: 1, CategoryName: "味噌カツ"}},
		nil,
	).Once()

	w := get(r, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "味噌かつ 矢場とん")
	assert.Contains(t, w.Body.String(), "味噌カツ")
}

func TestRestaurantIndexDefaultsOrder(t *testing.T) {
	r, m := newTestRouter(t)
	search := types.RestaurantSearch{Keyword: "栄", Order: types.OrderCreatedAtDesc}
	m.restaurants.On("Search", mock.Anything, search, types.Pageable{Page: 1}).
		Return(types.NewPage([]models.Restaurant{*testRestaurant()}, types.Pageable{Page: 1, Size: 15}, 16), nil).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{}, nil).Once()

	w := get(r, "/restaurants?keyword=%E6%A0%84&page=1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "味噌かつ 矢場とん")
}

func TestRestaurantIndexKeepsRequestedOrder(t *testing.T) {
	r, m := newTestRouter(t)
	search := types.RestaurantSearch{Price: 3000, Order: types.OrderLowestPriceAsc}
	m.restaurants.On("Search", mock.Anything, search, types.Pageable{}).
		Return(types.NewPage([]models.Restaurant{}, types.Pageable{Size: 15}, 0), nil).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{}, nil).Once()

	w := get(r, "/restaurants?price=3000&order=lowestPriceAsc", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRestaurantShow(t *testing.T) {
	r, m := newTestRouter(t)
	detail := &types.RestaurantDetail{
		Restaurant:   testRestaurant(),
		Reviews:      []models.Review{{ID: 1, Score: 4, Content: "絶品", User: &models.User{Name: "山田"}}},
		ReviewCount:  1,
		AverageScore: 4,
	}
	m.restaurants.On("Detail", mock.Anything, uint(1), uint(0)).Return(detail, nil).Once()
	m.restaurants.On("Detail", mock.Anything, uint(1), memberID).Return(detail, nil).Once()

	w := get(r, "/restaurants/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "絶品")
	assert.Contains(t, body, `href="/login"`)
	assert.NotContains(t, body, "/reservations/input")

	w = get(r, "/restaurants/1", memberToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/restaurants/1/reservations/input"`)
	assert.Contains(t, w.Body.String(), `action="/restaurants/1/favorites/create"`)
}

func TestRestaurantShowNotFound(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("Detail", mock.Anything, uint(99), uint(0)).Return(nil, repository.ErrNotFound).Once()

	w := get(r, "/restaurants/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRestaurantsRequireAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusFound, get(r, "/admin/restaurants", "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin/restaurants", memberToken).Code)
}

func TestAdminRestaurantIndex(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("AdminList", mock.Anything, "矢場", types.Pageable{}).
		Return(types.NewPage([]models.Restaurant{*testRestaurant()}, types.Pageable{Size: 15}, 1), nil).Once()

	w := get(r, "/admin/restaurants?keyword=%E7%9F%A2%E5%A0%B4", adminToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "味噌かつ 矢場とん")
}

func TestAdminRestaurantCreate(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("ValidateForm", mock.Anything, mock.AnythingOfType("*types.RestaurantForm")).Return(types.FieldErrors{}).Once()
	m.restaurants.On("Create", mock.Anything, mock.MatchedBy(func(f types.RestaurantForm) bool {
		return f.Name == "ひつまぶし 備長" && f.CategoryID == 3 && f.SeatingCapacity == 40
	})).Return(&models.Restaurant{ID: 2}, nil).Once()

	w := post(r, "/admin/restaurants/create", adminToken, restaurantValues())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/restaurants", w.Header().Get("Location"))

	m.restaurants.On("AdminList", mock.Anything, "", types.Pageable{}).
		Return(types.NewPage([]models.Restaurant{}, types.Pageable{Size: 15}, 0), nil).Once()
	assert.Contains(t, followFlash(r, w, adminToken).Body.String(), "店舗を登録しました。")
}

func TestAdminRestaurantCreateInvalid(t *testing.T) {
	r, m := newTestRouter(t)
	values := restaurantValues()
	values.Set("name", "")
	values.Set("highestPrice", "1000")

	m.restaurants.On("ValidateForm", mock.Anything, mock.AnythingOfType("*types.RestaurantForm")).Return(types.FieldErrors{}).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{{ID: 3, CategoryName: "うなぎ"}}, nil).Once()

	w := post(r, "/admin/restaurants/create", adminToken, values)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "老舗の鰻")
	assert.Contains(t, w.Body.String(), "うなぎ")
}

func TestAdminRestaurantCreateUnsupportedImage(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("ValidateForm", mock.Anything, mock.Anything).Return(types.FieldErrors{}).Once()
	m.restaurants.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrUnsupportedImage).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{}, nil).Once()

	w := post(r, "/admin/restaurants/create", adminToken, restaurantValues())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "画像ファイル（jpg, png, gif, webp）を選択してください。")
}

func TestAdminRestaurantCreateFailure(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("ValidateForm", mock.Anything, mock.Anything).Return(types.FieldErrors{}).Once()
	m.restaurants.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	w := post(r, "/admin/restaurants/create", adminToken, restaurantValues())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminRestaurantEdit(t *testing.T) {
	r, m := newTestRouter(t)
	restaurant := testRestaurant()
	restaurant.ImageName = "restaurants/yabaton.jpg"
	form := &types.RestaurantForm{ID: 1, Name: restaurant.Name}

	m.restaurants.On("Get", mock.Anything, uint(1)).Return(restaurant, nil).Once()
	m.restaurants.On("EditForm", mock.Anything, uint(1)).Return(form, nil).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{}, nil).Once()

	w := get(r, "/admin/restaurants/1/edit", adminToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "味噌かつ 矢場とん")
}

func TestAdminRestaurantUpdate(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("ValidateForm", mock.Anything, mock.Anything).Return(types.FieldErrors{}).Once()
	m.restaurants.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(f types.RestaurantForm) bool {
		return f.ID == 1 && f.Name == "ひつまぶし 備長"
	})).Return(nil).Once()

	w := post(r, "/admin/restaurants/1/update", adminToken, restaurantValues())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/restaurants/1", w.Header().Get("Location"))
}

func TestAdminRestaurantUpdateCrossFieldErrors(t *testing.T) {
	r, m := newTestRouter(t)
	errs := types.FieldErrors{}
	errs.Add("closingTime", "閉店時間は開店時間よりも後に設定してください。")
	m.restaurants.On("ValidateForm", mock.Anything, mock.Anything).Return(errs).Once()
	m.categories.On("All", mock.Anything).Return([]models.Category{}, nil).Once()

	w := post(r, "/admin/restaurants/1/update", adminToken, restaurantValues())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "閉店時間は開店時間よりも後に設定してください。")
}

func TestAdminRestaurantDelete(t *testing.T) {
	r, m := newTestRouter(t)
	m.restaurants.On("Delete", mock.Anything, uint(1)).Return(nil).Once()

	w := post(r, "/admin/restaurants/1/delete", adminToken, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/restaurants", w.Header().Get("Location"))
}
