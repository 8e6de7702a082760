package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorView is the template rendered for error pages
const ErrorView = "error"

var errorMessages = map[int]string{
	http.StatusBadRequest:          "リクエストが正しくありません。",
	http.StatusForbidden:           "このページへのアクセス権限がありません。",
	http.StatusNotFound:            "お探しのページは見つかりませんでした。",
	http.StatusTooManyRequests:     "リクエストが多すぎます。しばらくしてから再度お試しください。",
	http.StatusInternalServerError: "エラーが発生しました。時間をおいて再度お試しください。",
}

// ErrorPage renders the HTML error page for status and aborts the chain
func ErrorPage(c *gin.Context, status int) {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	c.HTML(status, ErrorView, gin.H{
		"status":  status,
		"message": msg,
	})
	c.Abort()
}

// Recovery logs panics and answers with the 500 page
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		log.Printf("Recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		ErrorPage(c, http.StatusInternalServerError)
	})
}

// NotFound is the NoRoute/NoMethod handler
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		ErrorPage(c, http.StatusNotFound)
	}
}
