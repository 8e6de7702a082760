package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/mocks"
	"github.com/nagoyameshi/backend/internal/models"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

const (
	adminToken  = "admin-token"
	memberToken = "member-token"
	memberID    = uint(7)
)

// testServices holds one mock per service
type testServices struct {
	auth         *mocks.MockAuthService
	users        *mocks.MockUserService
	categories   *mocks.MockCategoryService
	restaurants  *mocks.MockRestaurantService
	reservations *mocks.MockReservationService
	reviews      *mocks.MockReviewService
	favorites    *mocks.MockFavoriteService
}

func newTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &testServices{
		auth:         new(mocks.MockAuthService),
		users:        new(mocks.MockUserService),
		categories:   new(mocks.MockCategoryService),
		restaurants:  new(mocks.MockRestaurantService),
		reservations: new(mocks.MockReservationService),
		reviews:      new(mocks.MockReviewService),
		favorites:    new(mocks.MockFavoriteService),
	}
	m.auth.On("ValidateToken", adminToken).Return(&types.TokenClaims{UserID: 1, Name: "管理者", Role: models.RoleAdmin}, nil).Maybe()
	m.auth.On("ValidateToken", memberToken).Return(&types.TokenClaims{UserID: memberID, Name: "会員", Role: models.RoleGeneral}, nil).Maybe()

	tmpl, err := web.ParseTemplates(nil)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, Services{
		Auth:         m.auth,
		Users:        m.users,
		Categories:   m.categories,
		Restaurants:  m.restaurants,
		Reservations: m.reservations,
		Reviews:      m.reviews,
		Favorites:    m.favorites,
	}, web.NewView(web.NewFlashStore(nil)), Options{SessionTTL: time.Hour})

	t.Cleanup(func() {
		m.categories.AssertExpectations(t)
		m.restaurants.AssertExpectations(t)
		m.reservations.AssertExpectations(t)
		m.reviews.AssertExpectations(t)
		m.favorites.AssertExpectations(t)
		m.users.AssertExpectations(t)
	})
	return r, m
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return serve(r, req, token)
}

func post(r http.Handler, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req, token)
}

func serve(r http.Handler, req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// followFlash replays the cookies of a redirect against its target
func followFlash(r http.Handler, w *httptest.ResponseRecorder, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return serve(r, req, token)
}

func testRestaurant() *models.Restaurant {
	return &models.Restaurant{
		ID:              1,
		Name:            "味噌かつ 矢場とん",
		Description:     "名古屋名物",
		LowestPrice:     1500,
		HighestPrice:    3000,
		PostalCode:      "460-0011",
		Address:         "名古屋市中区大須",
		PhoneNumber:     "052-000-2222",
		OpeningTime:     "11:00",
		ClosingTime:     "21:00",
		SeatingCapacity: 20,
	}
}
