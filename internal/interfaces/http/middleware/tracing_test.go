package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})

	r := gin.New()
	r.Use(RequestID(), Tracing("contas-test"), SpanAttributes(), SpanErrorMarker())
	r.GET("/contas-a-pagar-e-receber/:id", func(c *gin.Context) {
		if c.Param("id") == "500" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/contas-a-pagar-e-receber/9", nil)
	req.Header.Set(RequestIDHeader, "req-9")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contas-a-pagar-e-receber/500", nil))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	notFound := spans[0]
	assert.Contains(t, notFound.Name, "/contas-a-pagar-e-receber/:id")
	assert.Contains(t, notFound.Attributes, attribute.String("request_id", "req-9"))
	assert.Contains(t, notFound.Attributes, attribute.Int("http.status_code", http.StatusNotFound))
	assert.NotEqual(t, codes.Error, notFound.Status.Code)

	assert.Equal(t, codes.Error, spans[1].Status.Code)
}
