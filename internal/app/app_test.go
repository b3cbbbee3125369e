package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/app"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const webhookSecret = "test-webhook-secret"

type testServer struct {
	t     *testing.T
	app   *app.App
	h     http.Handler
	clock *timeprovider.FrozenTimeProvider
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment: config.Test,
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Database: config.DatabaseConfig{
			Driver:        "sqlite",
			Database:      filepath.Join(t.TempDir(), "app_test.db"),
			MaxOpenConns:  1,
			MaxIdleConns:  1,
			QueryTimeout:  5 * time.Second,
			RetryAttempts: 1,
			LogLevel:      "silent",
		},
		Logger: config.LoggerConfig{Level: "error", Output: "stderr"},
		Ledger: config.LedgerConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 10 * time.Millisecond},
		Auth: config.AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			TokenTTL:        time.Hour,
			Issuer:          "bunk-loyalty-test",
			WebhookSecret:   webhookSecret,
			RevocationStore: "memory",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://loyalty.example.com"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "bunk_loyalty"},
		Seed: config.SeedConfig{
			AdminUID:         "admin",
			AdminEmail:       "admin@example.com",
			AdminPassword:    "admin123",
			AdminFirstName:   "System",
			AdminLastName:    "Admin",
			CreditPercentage: "10",
			RedemptionRate:   "1.5",
		},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := timeprovider.NewFrozenTimeProvider(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	a, err := app.New(t.Context(), testConfig(t), logger.NewNoopLogger(),
		app.WithTimeProvider(clock),
		app.WithBcryptCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.Migrate(t.Context()))
	require.NoError(t, a.Seed(t.Context()))
	// seeding twice must be harmless
	require.NoError(t, a.Seed(t.Context()))

	return &testServer{t: t, app: a, h: a.Handler(), clock: clock}
}

// do sends one request. The clock moves one second per request so audit
// records get distinct timestamps.
func (s *testServer) do(method, path, token string, body any, headers ...string) (int, map[string]any) {
	s.t.Helper()
	s.clock.Advance(time.Second)

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, code, body)
	return body["token"].(string)
}

func (s *testServer) register(first, email string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/v1/customers/register", "", map[string]string{
		"firstName": first,
		"lastName":  "Tester",
		"email":     email,
		"password":  "secret1",
	})
	require.Equal(s.t, http.StatusCreated, code, body)
	return body["userId"].(string)
}

func (s *testServer) verify(uid string) {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/v1/hooks/contact-verified", "", map[string]string{"uid": uid},
		middleware.WebhookSecretHeader, webhookSecret)
	require.Equal(s.t, http.StatusOK, code, body)
}

func (s *testServer) createBunk(adminToken, name string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/v1/admin/bunks", adminToken, map[string]string{
		"name":     name,
		"location": "NH 48",
		"district": "Pune",
		"state":    "Maharashtra",
		"pincode":  "411001",
	})
	require.Equal(s.t, http.StatusCreated, code, body)
	return body["bunkId"].(string)
}

// setupManager registers a user, promotes them and assigns them to bunkID
func (s *testServer) setupManager(adminToken, email, bunkID string) (string, string) {
	s.t.Helper()
	uid := s.register("Mike", email)

	code, body := s.do(http.MethodPut, "/v1/admin/users/"+uid+"/role", adminToken, map[string]string{"role": "manager"})
	require.Equal(s.t, http.StatusOK, code, body)

	code, body = s.do(http.MethodPost, "/v1/admin/bunks/"+bunkID+"/managers", adminToken, map[string]string{"managerUid": uid})
	require.Equal(s.t, http.StatusOK, code, body)

	return uid, s.login(email, "secret1")
}

func TestLoyaltyScenario(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login("admin@example.com", "admin123")

	bunkID := s.createBunk(adminToken, "Highway Fuels")
	_, managerToken := s.setupManager(adminToken, "mike@example.com", bunkID)

	customerID := s.register("Jane", "jane@example.com")

	// unverified customers cannot earn points
	code, body := s.do(http.MethodPost, "/v1/ledger/credit", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "amountSpent": 500,
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "failed-precondition", body["kind"])

	s.verify(customerID)
	s.verify(customerID)

	code, body = s.do(http.MethodPost, "/v1/ledger/credit", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "amountSpent": 500, "requestId": "credit-1",
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(50), body["pointsAdded"])
	assert.Equal(t, float64(50), body["newPoints"])

	// same request id replays the first result
	code, body = s.do(http.MethodPost, "/v1/ledger/credit", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "amountSpent": 500, "requestId": "credit-1",
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(50), body["newPoints"])
	assert.Equal(t, true, body["replayed"])

	code, body = s.do(http.MethodPost, "/v1/ledger/credit", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "amountSpent": 150,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(15), body["pointsAdded"])
	assert.Equal(t, float64(65), body["newPoints"])

	code, body = s.do(http.MethodPost, "/v1/ledger/redeem", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "pointsToRedeem": 20,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(45), body["newPoints"])
	assert.Equal(t, float64(30), body["redeemedValue"])

	code, body = s.do(http.MethodPost, "/v1/ledger/redeem", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "pointsToRedeem": 1000,
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "insufficient points")

	customerToken := s.login("jane@example.com", "secret1")

	code, body = s.do(http.MethodGet, "/v1/me", customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	user := body["user"].(map[string]any)
	assert.Equal(t, float64(45), user["points"])
	assert.Equal(t, true, user["isVerified"])

	code, body = s.do(http.MethodGet, "/v1/me/transactions?limit=3", customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	records := body["transactions"].([]any)
	require.Len(t, records, 3)
	types := make([]string, 0, len(records))
	for _, r := range records {
		types = append(types, r.(map[string]any)["type"].(string))
	}
	assert.Equal(t, []string{"redeem", "credit", "credit"}, types)

	// customers cannot act as managers
	code, _ = s.do(http.MethodPost, "/v1/ledger/credit", customerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkID, "amountSpent": 100,
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(http.MethodGet, "/v1/manager/bunk", managerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, bunkID, body["bunk"].(map[string]any)["id"])

	// two credits, one redeem and the manager's own registration
	code, body = s.do(http.MethodGet, "/v1/manager/transactions", managerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["transactions"].([]any), 4)
}

func TestWrongBunkScenario(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login("admin@example.com", "admin123")

	bunkA := s.createBunk(adminToken, "Bunk A")
	bunkB := s.createBunk(adminToken, "Bunk B")
	_, managerToken := s.setupManager(adminToken, "mgr@example.com", bunkA)

	customerID := s.register("Jane", "jane@example.com")
	s.verify(customerID)

	code, body := s.do(http.MethodPost, "/v1/ledger/credit", managerToken, map[string]any{
		"customerId": customerID, "bunkId": bunkB, "amountSpent": 500,
	})
	require.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "permission-denied", body["kind"])

	code, body = s.do(http.MethodGet, "/v1/admin/transactions", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	for _, r := range body["transactions"].([]any) {
		assert.NotEqual(t, "credit", r.(map[string]any)["type"], "a rejected credit leaves no audit record")
	}

	customerToken := s.login("jane@example.com", "secret1")
	code, body = s.do(http.MethodGet, "/v1/me", customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["user"].(map[string]any)["points"], "a rejected credit leaves the balance unchanged")
}

func TestConfigUpdateScenario(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login("admin@example.com", "admin123")

	code, body := s.do(http.MethodPatch, "/v1/admin/config", adminToken, `{"creditPercentage": 101}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid-argument", body["kind"])

	code, body = s.do(http.MethodPatch, "/v1/admin/config", adminToken, `{"creditPercentage": "5"}`)
	require.Equal(t, http.StatusBadRequest, code, body)

	code, body = s.do(http.MethodGet, "/v1/admin/config", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(10), body["creditPercentage"])
	assert.Equal(t, 1.5, body["redemptionRate"])

	code, body = s.do(http.MethodPatch, "/v1/admin/config", adminToken, `{"pointValue": 2}`)
	require.Equal(t, http.StatusOK, code, body)

	s.register("Jane", "jane@example.com")
	customerToken := s.login("jane@example.com", "secret1")
	code, body = s.do(http.MethodGet, "/v1/admin/config", customerToken, nil)
	require.Equal(t, http.StatusOK, code, "any authenticated user may read the config")
	assert.Equal(t, float64(2), body["redemptionRate"])
	assert.Equal(t, float64(2), body["pointValue"])

	code, _ = s.do(http.MethodPatch, "/v1/admin/config", customerToken, `{"creditPercentage": 5}`)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login("admin@example.com", "admin123")

	customerID := s.register("Jane", "jane@example.com")
	customerToken := s.login("jane@example.com", "secret1")

	code, _ := s.do(http.MethodGet, "/v1/me", customerToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, body := s.do(http.MethodDelete, "/v1/admin/users/admin", adminToken, nil)
	require.Equal(t, http.StatusForbidden, code, body)

	code, body = s.do(http.MethodDelete, "/v1/admin/users/"+customerID, adminToken, nil)
	require.Equal(t, http.StatusOK, code, body)

	code, _ = s.do(http.MethodGet, "/v1/me", customerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "jane@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPublicSurface(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "up", body["database"])

	code, _ = s.do(http.MethodGet, "/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/v1/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodPost, "/v1/hooks/contact-verified", "", map[string]string{"uid": "admin"},
		middleware.WebhookSecretHeader, "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = s.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not-found", body["kind"])

	code, _ = s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "admin@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	metricsBody, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metricsBody), "bunk_loyalty_http_requests_total")
	assert.Contains(t, string(metricsBody), "go_sql_open_connections")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/ledger/credit", nil)
	req.Header.Set("Origin", "https://loyalty.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)

	assert.Equal(t, "https://loyalty.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/ledger/credit", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	s.h.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
