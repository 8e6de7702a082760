// Package web holds the server rendered views: embedded templates, the
// template helpers and the one-shot flash message stores.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nagoyameshi/backend/internal/types"
)

//go:embed templates
var files embed.FS

// ImageResolver turns a stored image key into a browser URL
type ImageResolver interface {
	URL(ctx context.Context, key string) string
}

// ParseTemplates parses every embedded view. Views are addressed by the name
// in their define block, e.g. "admin/categories/index".
func ParseTemplates(images ImageResolver) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(images)).ParseFS(files,
		"templates/*.html",
		"templates/*/*.html",
		"templates/*/*/*.html",
	)
}

var yenPrinter = message.NewPrinter(language.Japanese)

// FuncMap returns the helpers available to every view
func FuncMap(images ImageResolver) template.FuncMap {
	return template.FuncMap{
		"imageURL": func(key string) string {
			if images == nil || key == "" {
				return ""
			}
			return images.URL(context.Background(), key)
		},
		"yen": func(n int) string {
			return yenPrinter.Sprintf("%d", n)
		},
		"date": func(t time.Time) string {
			return t.Format("2006年01月02日")
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006年01月02日 15:04")
		},
		"stars":      stars,
		"score":      func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
		"fieldError": func(errs types.FieldErrors, field string) string { return errs.First(field) },
		"hasError":   func(errs types.FieldErrors, field string) bool { return errs.Has(field) },
		"pageURL":    pageURL,
		"selected": func(a, b interface{}) bool {
			return fmt.Sprint(deref(a)) == fmt.Sprint(deref(b))
		},
		"add": func(a, b int) int { return a + b },
		"dict": func(kv ...interface{}) map[string]interface{} {
			m := make(map[string]interface{}, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				m[fmt.Sprint(kv[i])] = kv[i+1]
			}
			return m
		},
		"label": types.Label,
	}
}

func stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// pageURL rewrites the page parameter of the current query
func pageURL(path string, query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	return path + "?" + q.Encode()
}

func deref(v interface{}) interface{} {
	if p, ok := v.(*uint); ok {
		if p == nil {
			return ""
		}
		return *p
	}
	return v
}
