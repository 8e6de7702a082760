package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/repository"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/types"
)

var registerRulesOnce sync.Once

// SetupValidator installs the form rules on gin's validator
func SetupValidator() {
	registerRulesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := types.RegisterRules(v); err != nil {
				log.Fatalf("Failed to register validation rules: %v", err)
			}
		}
	})
}

// bind fills form from the query string or the posted form. A failure is
// returned as field errors; parse failures land on fallbackField.
func bind(c *gin.Context, form interface{}, fallbackField string) types.FieldErrors {
	if err := c.ShouldBind(form); err != nil {
		return types.FromError(err, fallbackField)
	}
	return types.FieldErrors{}
}

// pageable binds the page and size parameters
func pageable(c *gin.Context) types.Pageable {
	var p types.Pageable
	_ = c.ShouldBindQuery(&p)
	return p
}

// idParam parses a numeric path parameter; 0 means malformed
func idParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// fail renders the error page that matches err
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		middleware.ErrorPage(c, http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		middleware.ErrorPage(c, http.StatusForbidden)
	default:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		middleware.ErrorPage(c, http.StatusInternalServerError)
	}
}
