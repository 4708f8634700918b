package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(capture *string) *gin.Engine {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			*capture = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"message": "success"})
		})
		return router
	}

	t.Run("Assigns an ID when none is given", func(t *testing.T) {
		var captured string
		router := newRouter(&captured)

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, w.Header().Get(RequestIDHeader))

		// The generated ID is a valid UUID
		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
	})

	t.Run("Keeps an incoming ID", func(t *testing.T) {
		var captured string
		router := newRouter(&captured)

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "client-supplied-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-supplied-id", captured)
		assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader))
	})
}
