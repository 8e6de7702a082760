package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip sets a flash on one request and pops it on the next, like a redirect
func roundTrip(t *testing.T, store FlashStore) (*Flash, *Flash) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/categories/create", nil)
	store.Set(c, Flash{Kind: FlashSuccess, Message: "カテゴリを登録しました。"})

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := func() (*Flash, []*http.Cookie) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
		for _, cookie := range cookies {
			c.Request.AddCookie(cookie)
		}
		return store.Pop(c), w.Result().Cookies()
	}

	first, cleared := next()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)

	// the browser honors the cleared cookie
	cookies = nil
	second, _ := next()
	return first, second
}

func TestCookieFlashStore(t *testing.T) {
	first, second := roundTrip(t, NewFlashStore(nil))

	require.NotNil(t, first)
	assert.Equal(t, FlashSuccess, first.Kind)
	assert.Equal(t, "カテゴリを登録しました。", first.Message)
	assert.Nil(t, second)
}

func TestCookieFlashStoreIgnoresGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%%not-base64"})

	assert.Nil(t, CookieFlashStore{}.Pop(c))
}

func TestRedisFlashStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	store := NewFlashStore(client)
	_, ok := store.(*RedisFlashStore)
	require.True(t, ok)

	first, second := roundTrip(t, store)
	require.NotNil(t, first)
	assert.Equal(t, "カテゴリを登録しました。", first.Message)
	assert.Nil(t, second)
}
