package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gotest.tools/v3/assert"
)

func TestMiddlewareLogsRequest(t *testing.T) {
	writer := &bytes.Buffer{}
	PatchLogger(t, writer)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(false))
	router.GET("/good", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/good", nil)
	router.ServeHTTP(resp, req)

	line := writer.String()
	assert.Assert(t, strings.Contains(line, `"method":"GET"`), line)
	assert.Assert(t, strings.Contains(line, `"path":"/good"`), line)
	assert.Assert(t, strings.Contains(line, `"statusCode":200`), line)
}
