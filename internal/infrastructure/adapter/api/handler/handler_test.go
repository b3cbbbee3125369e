package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withActor stands in for the auth middleware
func withActor(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor_id", uid)
		c.Next()
	}
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLedgerHandler_Credit(t *testing.T) {
	ledger := mockusecase.NewMockLedgerUseCase(t)
	h := NewLedgerHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/credit", withActor("mgr-1"), h.Credit)

	ledger.EXPECT().CreditPoints(mock.Anything, usecase.CreditRequest{
		ActorID:     "mgr-1",
		CustomerID:  "cust-1",
		BunkID:      "bunk-1",
		AmountSpent: 500,
		RequestID:   "req-1",
	}).Return(&usecase.CreditResult{NewPoints: 150, PointsAdded: 50}, nil).Once()

	w := perform(router, http.MethodPost, "/credit", map[string]any{
		"customerId":  "cust-1",
		"bunkId":      "bunk-1",
		"amountSpent": 500,
		"requestId":   "req-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CreditResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CreditResponse{Status: "success", NewPoints: 150, PointsAdded: 50}, resp)
}

func TestLedgerHandler_CreditErrors(t *testing.T) {
	ledger := mockusecase.NewMockLedgerUseCase(t)
	h := NewLedgerHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/credit", withActor("mgr-1"), h.Credit)

	t.Run("malformed body", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/credit", `{"amountSpent": "lots"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong bunk", func(t *testing.T) {
		ledger.EXPECT().CreditPoints(mock.Anything, mock.Anything).Return(nil, errs.ErrWrongBunk).Once()

		w := perform(router, http.MethodPost, "/credit", map[string]any{"customerId": "c", "bunkId": "b2", "amountSpent": 10})
		require.Equal(t, http.StatusForbidden, w.Code)

		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, errs.CodeWrongBunk, body.Code)
		assert.Equal(t, "permission-denied", body.Kind)
	})
}

func TestLedgerHandler_Redeem(t *testing.T) {
	ledger := mockusecase.NewMockLedgerUseCase(t)
	h := NewLedgerHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/redeem", withActor("mgr-1"), h.Redeem)

	ledger.EXPECT().RedeemPoints(mock.Anything, usecase.RedeemRequest{
		ActorID:        "mgr-1",
		CustomerID:     "cust-1",
		BunkID:         "bunk-1",
		PointsToRedeem: 100,
	}).Return(&usecase.RedeemResult{NewPoints: 50, RedeemedValue: decimal.RequireFromString("150")}, nil).Once()

	w := perform(router, http.MethodPost, "/redeem", map[string]any{
		"customerId":     "cust-1",
		"bunkId":         "bunk-1",
		"pointsToRedeem": 100,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","newPoints":50,"redeemedValue":150}`, w.Body.String())
}

func TestAdminHandler_UpdateConfigPassesRawBody(t *testing.T) {
	admin := mockusecase.NewMockAdminUseCase(t)
	h := NewAdminHandler(admin, logger.NewNoopLogger())

	router := gin.New()
	router.PATCH("/config", withActor("admin-1"), h.UpdateConfig)

	raw := `{"creditPercentage": 101}`
	admin.EXPECT().UpdateGlobalConfig(mock.Anything, "admin-1", []byte(raw)).
		Return(errs.WithMessage(errs.ErrInvalidConfigUpdate, "creditPercentage must be a number between 0 and 100")).Once()

	w := perform(router, http.MethodPatch, "/config", raw)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "creditPercentage must be a number between 0 and 100")
}

func TestAdminHandler_GetConfig(t *testing.T) {
	admin := mockusecase.NewMockAdminUseCase(t)
	h := NewAdminHandler(admin, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/config", withActor("cust-1"), h.GetConfig)

	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	admin.EXPECT().GetGlobalConfig(mock.Anything, "cust-1").Return(&entity.GlobalConfig{
		CreditPercentage: decimal.NewFromInt(10),
		RedemptionRate:   decimal.RequireFromString("1.5"),
		UpdatedAt:        updated,
	}, nil).Once()

	w := perform(router, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","creditPercentage":10,"redemptionRate":1.5,"pointValue":1.5,"updatedAt":"2024-03-01T00:00:00Z"}`, w.Body.String())
}

func TestAdminHandler_PathParams(t *testing.T) {
	admin := mockusecase.NewMockAdminUseCase(t)
	h := NewAdminHandler(admin, logger.NewNoopLogger())

	router := gin.New()
	router.Use(withActor("admin-1"))
	router.POST("/bunks/:bunkId/managers", h.AssignManager)
	router.DELETE("/bunks/:bunkId/managers/:managerUid", h.UnassignManager)
	router.PUT("/users/:uid/role", h.SetUserRole)
	router.DELETE("/users/:uid", h.DeleteUser)

	admin.EXPECT().AssignManagerToBunk(mock.Anything, "admin-1", "mgr-1", "bunk-1").Return(nil).Once()
	admin.EXPECT().UnassignManagerFromBunk(mock.Anything, "admin-1", "mgr-1", "bunk-1").Return(errs.ErrManagerNotAssigned).Once()
	admin.EXPECT().SetUserRole(mock.Anything, "admin-1", "u-9", "manager").Return(nil).Once()
	admin.EXPECT().DeleteUser(mock.Anything, "admin-1", "admin-1").Return(errs.ErrSelfDeletion).Once()

	assert.Equal(t, http.StatusOK, perform(router, http.MethodPost, "/bunks/bunk-1/managers", map[string]string{"managerUid": "mgr-1"}).Code)
	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodDelete, "/bunks/bunk-1/managers/mgr-1", nil).Code)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodPut, "/users/u-9/role", map[string]string{"role": "manager"}).Code)
	assert.Equal(t, http.StatusForbidden, perform(router, http.MethodDelete, "/users/admin-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, perform(router, http.MethodPut, "/users/u-9/role", map[string]string{}).Code)
}

func TestAccountHandler_TransactionsLimit(t *testing.T) {
	accounts := mockusecase.NewMockAccountUseCase(t)
	h := NewAccountHandler(accounts, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/me/transactions", withActor("cust-1"), h.CustomerTransactions)

	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	accounts.EXPECT().CustomerTransactions(mock.Anything, "cust-1", 5).Return([]*entity.Transaction{{
		ID:          "t1",
		Type:        entity.TypeCredit,
		InitiatorID: "mgr-1",
		TargetUID:   "cust-1",
		Timestamp:   ts,
		Details:     map[string]any{"pointsAdded": float64(50)},
	}}, nil).Once()

	w := perform(router, http.MethodGet, "/me/transactions?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "t1", resp.Transactions[0].ID)
	assert.Equal(t, string(entity.TypeCredit), resp.Transactions[0].Type)

	w = perform(router, http.MethodGet, "/me/transactions?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	accounts := mockusecase.NewMockAccountUseCase(t)
	sessions := mockusecase.NewMockSessionUseCase(t)
	h := NewAuthHandler(sessions, accounts, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/register", h.Register)

	accounts.EXPECT().RegisterCustomer(mock.Anything, usecase.RegisterCustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	}).Return("new-uid", nil).Once()
	accounts.EXPECT().RegisterCustomer(mock.Anything, mock.Anything).Return("", errs.ErrDuplicateUser).Once()

	body := map[string]string{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "secret1"}

	w := perform(router, http.MethodPost, "/register", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","userId":"new-uid"}`, w.Body.String())

	w = perform(router, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}
