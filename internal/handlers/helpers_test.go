package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soocci/soocci-backend/internal/repository"
)

func errNotFound() error { return repository.ErrNotFound }

func errUploadFailed() error { return errors.New("bucket quota exceeded") }

// newRouter registers the full route table against the given handlers so
// tests exercise the same paths the server serves.
func newRouter(h *Handlers) *gin.Engine {
	r := gin.New()

	r.GET("/v1/categories", h.GetCategories)
	r.GET("/v1/categories/:slug/products", h.GetCategoryProducts)
	r.GET("/v1/products/:slug", h.GetProductDetail)
	r.POST("/v1/contact", h.Contact)
	r.POST("/v1/newsletter", h.Newsletter)

	r.POST("/admin/login", h.Login)
	r.GET("/admin/dashboard/stats", h.GetDashboardStats)
	r.GET("/admin/categories", h.GetAdminCategories)
	r.POST("/admin/categories", h.CreateCategory)
	r.PUT("/admin/categories/:id", h.UpdateCategory)
	r.DELETE("/admin/categories/:id", h.DeleteCategory)
	r.GET("/admin/products", h.GetAdminProducts)
	r.POST("/admin/products", h.CreateProduct)
	r.PUT("/admin/products/:id", h.UpdateProduct)
	r.DELETE("/admin/products/:id", h.DeleteProduct)

	return r
}

func serve(h *Handlers, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)
	return rec
}

// formRequest builds an urlencoded form submit (no files attached).
func formRequest(method, target string, fields url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a multipart submit with optional in-memory files
// attached under the given field name.
func multipartRequest(method, target string, fields url.Values, fileField string, filenames []string) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range fields {
		for _, v := range vals {
			_ = w.WriteField(key, v)
		}
	}
	for _, name := range filenames {
		part, _ := w.CreateFormFile(fileField, name)
		_, _ = part.Write([]byte("fake image bytes"))
	}
	w.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
