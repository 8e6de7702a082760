package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
	"github.com/nagoyameshi/backend/internal/web"
)

// UserHandler serves the member profile pages and the admin member list
type UserHandler struct {
	users        service.IUserService
	auth         service.IAuthService
	view         *web.View
	sessionTTL   time.Duration
	secureCookie bool
}

func NewUserHandler(users service.IUserService, auth service.IAuthService, view *web.View, sessionTTL time.Duration, secureCookie bool) *UserHandler {
	return &UserHandler{users: users, auth: auth, view: view, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

func (h *UserHandler) RegisterRoutes(member *gin.RouterGroup, admin *gin.RouterGroup) {
	member.GET("/user", h.Show)
	member.GET("/user/edit", h.Edit)
	member.POST("/user/update", h.Update)

	admin.GET("/users", h.AdminIndex)
}

func (h *UserHandler) Show(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "user/index", gin.H{"user": user})
}

func (h *UserHandler) Edit(c *gin.Context) {
	form, err := h.users.EditForm(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "user/edit", gin.H{"userEditForm": form})
}

func (h *UserHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	var form types.UserEditForm
	errs := bind(c, &form, "email")
	form.ID = userID
	if !errs.Any() {
		user, err := h.users.Update(c.Request.Context(), userID, form)
		if err == nil {
			// the session carries the name and email, so it is reissued
			if token, err := h.auth.GenerateToken(user); err == nil {
				middleware.SetSession(c, token, int(h.sessionTTL.Seconds()), h.secureCookie)
			}
			h.view.Redirect(c, "/user", web.FlashSuccess, "会員情報を編集しました。")
			return
		}
		if !errors.Is(err, service.ErrEmailTaken) {
			fail(c, err)
			return
		}
		errs.Add("email", "すでに登録済みのメールアドレスです。")
	}

	h.view.HTML(c, http.StatusUnprocessableEntity, "user/edit", gin.H{
		"userEditForm": form,
		"errors":       errs,
	})
}

func (h *UserHandler) AdminIndex(c *gin.Context) {
	keyword := c.Query("keyword")
	page, err := h.users.Search(c.Request.Context(), keyword, pageable(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.view.HTML(c, http.StatusOK, "admin/users/index", gin.H{
		"userPage": page,
		"keyword":  keyword,
	})
}
