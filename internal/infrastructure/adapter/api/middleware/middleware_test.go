package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerr "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/dto"
	mockcore "github.com/amirhossein-jamali/document-lock/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("Propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("Assigns an id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] == "kaboom" && f["path"] == "/boom"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeInternalServer, resp.Code)
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug("Request processed", mock.Anything).Once()
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusConflict && f["route"] == "/locks"
	})).Once()
	mockLogger.EXPECT().Warn("Request rejected", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusBadRequest
	})).Once()
	mockLogger.EXPECT().Error("Request failed", mock.MatchedBy(func(f map[string]any) bool {
		return f["route"] == "/locks/:id" && f["path"] == "/locks/abc"
	})).Once()

	router := gin.New()
	router.Use(Logger(mockLogger))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/locks", func(c *gin.Context) { c.Status(http.StatusConflict) })
	router.GET("/locks", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/locks/:id", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/locks", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/locks", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/locks/abc", nil))
}

func TestTracing_MarksServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	router := gin.New()
	router.Use(Tracing())
	router.GET("/locks/:id", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	router.GET("/locks", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/locks/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/locks", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /locks/:id", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), spans[0].Status().Description)

	assert.Equal(t, "GET /locks", spans[1].Name())
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}
