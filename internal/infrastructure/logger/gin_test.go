package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGinEngine(l *zap.Logger, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(GinRequestIDKey, "req-7")
		c.Next()
	})
	r.Use(GinMiddleware(l))
	r.GET("/contas/:id", handler)
	return r
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs level by status", func(t *testing.T) {
		tests := []struct {
			status int
			level  zapcore.Level
		}{
			{http.StatusOK, zapcore.InfoLevel},
			{http.StatusNotFound, zapcore.WarnLevel},
			{http.StatusInternalServerError, zapcore.ErrorLevel},
		}

		for _, tt := range tests {
			core, recorded := observer.New(zapcore.DebugLevel)
			r := newGinEngine(zap.New(core), func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contas/1?x=1", nil))

			entries := recorded.FilterMessage("HTTP Request").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, "req-7", fields["request_id"])
			assert.Equal(t, "/contas/:id", fields["route"])
			assert.Equal(t, "x=1", fields["query"])
			assert.EqualValues(t, tt.status, fields["status"])
		}
	})

	t.Run("exposes logger and request id to handlers", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		r := newGinEngine(zap.New(core), func(c *gin.Context) {
			assert.Equal(t, "req-7", GetRequestID(c.Request.Context()))
			L(c.Request.Context()).Info("inside handler")
			GetGinLogger(c).Info("via gin")
			c.Status(http.StatusNoContent)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contas/1", nil))

		assert.Equal(t, 1, recorded.FilterMessage("inside handler").Len())
		assert.Equal(t, 1, recorded.FilterMessage("via gin").Len())
	})
}

func TestRecovery(t *testing.T) {
	t.Run("aborts with bare 500", func(t *testing.T) {
		core, recorded := observer.New(zapcore.ErrorLevel)
		r := gin.New()
		r.Use(Recovery(zap.New(core), nil))
		r.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 1, recorded.FilterMessage("Panic recovered").Len())
	})

	t.Run("delegates the response to onPanic", func(t *testing.T) {
		r := gin.New()
		r.Use(Recovery(zap.NewNop(), func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		}))
		r.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false}`, w.Body.String())
	})
}

func TestGetGinLogger_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))
}
