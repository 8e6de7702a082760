package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

// AuthHandler serves signup, email verification, login and logout
type AuthHandler struct {
	auth         service.IAuthService
	view         *web.View
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(auth service.IAuthService, view *web.View, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, view: view, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

// RegisterRoutes mounts the account routes; limit guards the credential posts
func (h *AuthHandler) RegisterRoutes(public *gin.RouterGroup, limit gin.HandlerFunc) {
	public.GET("/signup", h.SignupPage)
	public.POST("/signup", limit, h.Signup)
	public.GET("/signup/verify", h.Verify)
	public.GET("/login", h.LoginPage)
	public.POST("/login", limit, h.Login)
	public.POST("/logout", h.Logout)
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	if middleware.UserID(c) != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.view.HTML(c, http.StatusOK, "auth/signup", gin.H{
		"signupForm": types.SignupForm{},
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form types.SignupForm
	errs := bind(c, &form, "email")
	if !errs.Any() {
		_, err := h.auth.Signup(c.Request.Context(), form)
		if err == nil {
			h.view.Redirect(c, "/", web.FlashSuccess,
				"ご入力いただいたメールアドレスに認証メールを送信しました。メールに記載されているリンクをクリックし、会員登録を完了してください。")
			return
		}
		if !errors.Is(err, service.ErrEmailTaken) {
			fail(c, err)
			return
		}
		errs.Add("email", "すでに登録済みのメールアドレスです。")
	}

	form.Password, form.PasswordConfirmation = "", ""
	h.view.HTML(c, http.StatusUnprocessableEntity, "auth/signup", gin.H{
		"signupForm": form,
		"errors":     errs,
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	err := h.auth.Verify(c.Request.Context(), c.Query("token"))
	switch {
	case err == nil:
		h.view.HTML(c, http.StatusOK, "auth/verify", gin.H{
			"message":  "会員登録が完了しました。",
			"verified": true,
		})
	case errors.Is(err, service.ErrInvalidToken):
		h.view.HTML(c, http.StatusBadRequest, "auth/verify", gin.H{
			"message": "トークンが無効です。",
		})
	default:
		fail(c, err)
	}
}

// safeNext keeps post-login redirects on this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.UserID(c) != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.view.HTML(c, http.StatusOK, "auth/login", gin.H{
		"loginForm": types.LoginForm{},
		"next":      safeNext(c.Query("next")),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	next := safeNext(c.PostForm("next"))

	var form types.LoginForm
	if errs := bind(c, &form, "email"); errs.Any() {
		h.view.HTML(c, http.StatusUnprocessableEntity, "auth/login", gin.H{
			"loginForm": types.LoginForm{Email: form.Email},
			"errors":    errs,
			"next":      next,
		})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			msg = "メールアドレスまたはパスワードが正しくありません。"
		case errors.Is(err, service.ErrAccountDisabled):
			msg = "メール認証が完了していません。届いたメールのリンクから会員登録を完了してください。"
		default:
			fail(c, err)
			return
		}
		h.view.HTML(c, http.StatusUnauthorized, "auth/login", gin.H{
			"loginForm":    types.LoginForm{Email: form.Email},
			"errorMessage": msg,
			"next":         next,
		})
		return
	}

	middleware.SetSession(c, token, int(h.sessionTTL.Seconds()), h.secureCookie)
	if next == "/" && user.IsAdmin() {
		next = "/admin/restaurants"
	}
	h.view.Redirect(c, next, web.FlashSuccess, "ログインしました。")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	h.view.Redirect(c, "/", web.FlashSuccess, "ログアウトしました。")
}
