package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	mockidentity "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/identity"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := timeprovider.NewFrozenTimeProvider(issuedAt)
	revoker := auth.NewMemoryRevoker(time.Hour, clock)

	issuer := mockidentity.NewMockTokenIssuer(t)
	issuer.EXPECT().Validate("good").Return(&identity.Claims{UID: "u1", Role: entity.RoleManager, IssuedAt: issuedAt}, nil).Maybe()
	issuer.EXPECT().Validate("revoked").Return(&identity.Claims{UID: "u2", Role: entity.RoleCustomer, IssuedAt: issuedAt}, nil).Maybe()
	issuer.EXPECT().Validate("bad").Return(nil, errs.WithMessage(errs.ErrUnauthenticated, "invalid token")).Maybe()

	clock.Advance(time.Minute)
	require.NoError(t, revoker.RevokeAll(t.Context(), "u2"))

	router := gin.New()
	router.Use(Authenticate(issuer, revoker, logger.NewNoopLogger()))
	router.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, ActorID(c)+"/"+string(ActorRole(c)))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "u1/manager"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantBody: "u1/manager"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "revoked session", header: "Bearer revoked", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			body := decodeError(t, w)
			assert.Equal(t, string(errs.KindUnauthenticated), body.Kind)
			assert.Equal(t, errs.CodeUnauthenticated, body.Code)
		})
	}
}

type failingRevoker struct{}

func (failingRevoker) RevokeAll(_ context.Context, _ string) error { return nil }
func (failingRevoker) IsRevoked(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func TestAuthenticate_RevocationStoreDown(t *testing.T) {
	issuer := mockidentity.NewMockTokenIssuer(t)
	issuer.EXPECT().Validate("good").Return(&identity.Claims{UID: "u1", IssuedAt: time.Now()}, nil)

	router := gin.New()
	router.Use(Authenticate(issuer, failingRevoker{}, logger.NewNoopLogger()))
	router.GET("/who", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, errs.ErrInternalServer.Message, body.Message, "internal details stay in the logs")
}

func TestWebhookSecret(t *testing.T) {
	router := gin.New()
	router.POST("/hook", WebhookSecret("s3cret", logger.NewNoopLogger()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for header, want := range map[string]int{
		"s3cret": http.StatusNoContent,
		"wrong":  http.StatusUnauthorized,
		"":       http.StatusUnauthorized,
	} {
		req := httptest.NewRequest(http.MethodPost, "/hook", nil)
		if header != "" {
			req.Header.Set(WebhookSecretHeader, header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "secret %q", header)
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(idgen.NewUUIDGenerator()))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not valid; drop table")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not valid; drop table", w.Body.String())
	assert.Len(t, w.Body.String(), 36)
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, errs.CodeInternalServer, body.Code)
	assert.Equal(t, string(errs.KindInternal), body.Kind)
}

func TestAbortWithError_StatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{errs.ErrPermissionDenied, http.StatusForbidden, errs.ErrPermissionDenied.Message},
		{errs.Invalidf("bad input"), http.StatusBadRequest, "bad input"},
		{errs.ErrInsufficientPoints, http.StatusBadRequest, errs.ErrInsufficientPoints.Message},
		{errs.ErrBunkNotFound, http.StatusNotFound, errs.ErrBunkNotFound.Message},
		{errs.ErrDuplicateUser, http.StatusConflict, errs.ErrDuplicateUser.Message},
		{errors.New("pq: relation missing"), http.StatusInternalServerError, errs.ErrInternalServer.Message},
	}

	for _, tt := range tests {
		router := gin.New()
		router.GET("/", func(c *gin.Context) { AbortWithError(c, logger.NewNoopLogger(), tt.err) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, tt.wantStatus, w.Code)
		assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
	}
}
