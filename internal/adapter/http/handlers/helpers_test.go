package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// newRouter returns an engine whose requests carry the given caller, as if
// the identity middleware had accepted a token for it.
func newRouter(caller entities.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if !caller.Anonymous() {
			middleware.SetIdentity(c, caller)
		}
		c.Next()
	})
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
