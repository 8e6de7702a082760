package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	flashCookie = "nagoyameshi_flash"
	flashTTL    = 5 * time.Minute
)

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a message shown once on the page after a redirect
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FlashStore keeps a flash between a redirect and the next page view
type FlashStore interface {
	Set(c *gin.Context, f Flash)
	Pop(c *gin.Context) *Flash
}

// NewFlashStore keeps flashes in redis when a client is given, otherwise in a cookie
func NewFlashStore(client *redis.Client) FlashStore {
	if client != nil {
		return &RedisFlashStore{client: client}
	}
	return CookieFlashStore{}
}

func setFlashCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, maxAge, "/", "", false, true)
}

// CookieFlashStore carries the flash itself in a short lived cookie
type CookieFlashStore struct{}

func (CookieFlashStore) Set(c *gin.Context, f Flash) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	setFlashCookie(c, base64.RawURLEncoding.EncodeToString(data), int(flashTTL.Seconds()))
}

func (CookieFlashStore) Pop(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	setFlashCookie(c, "", -1)

	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return &f
}

// RedisFlashStore keeps the flash in redis under a random id held by the cookie
type RedisFlashStore struct {
	client *redis.Client
}

func flashKey(id string) string {
	return "flash:" + id
}

func (s *RedisFlashStore) Set(c *gin.Context, f Flash) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	id := uuid.NewString()
	if err := s.client.Set(c.Request.Context(), flashKey(id), data, flashTTL).Err(); err != nil {
		log.Printf("Failed to store flash: %v", err)
		return
	}
	setFlashCookie(c, id, int(flashTTL.Seconds()))
}

func (s *RedisFlashStore) Pop(c *gin.Context) *Flash {
	id, err := c.Cookie(flashCookie)
	if err != nil || id == "" {
		return nil
	}
	setFlashCookie(c, "", -1)

	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	data, err := s.client.GetDel(ctx, flashKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read flash: %v", err)
		}
		return nil
	}
	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return &f
}
