package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
)

// View renders pages with the session user and any pending flash attached
type View struct {
	Flashes FlashStore
}

func NewView(flashes FlashStore) *View {
	return &View{Flashes: flashes}
}

// HTML renders the named view
func (v *View) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if claims, ok := middleware.CurrentUser(c); ok {
		data["currentUser"] = claims
	}
	if f := v.Flashes.Pop(c); f != nil {
		data["flash"] = f
	}
	data["path"] = c.Request.URL.Path
	data["query"] = c.Request.URL.Query()
	c.HTML(status, name, data)
}

// Redirect stores a flash and redirects with 303 See Other
func (v *View) Redirect(c *gin.Context, location, kind, message string) {
	if message != "" {
		v.Flashes.Set(c, Flash{Kind: kind, Message: message})
	}
	c.Redirect(http.StatusSeeOther, location)
}
