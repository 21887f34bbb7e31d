package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/santhoshclientric/Revyn-sub001/api/controllers/testing"
	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/payments"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type paymentsTestEnv struct {
	router      *gin.Engine
	submissions *memorySubmissionStorage
	orders      *memoryOrderStorage
	client      *fakePaymentsClient
}

func newPaymentsEnv(client *fakePaymentsClient) *paymentsTestEnv {
	env := &paymentsTestEnv{
		submissions: newMemorySubmissionStorage(),
		orders:      newMemoryOrderStorage(),
		client:      client,
	}

	env.router = gin.New()
	NewPaymentsController(env.orders, env.submissions, env.client, 4900, "eur").RegisterRoutes(env.router)

	seed := seededSubmission("sub-1", scoring.Default())
	env.submissions.items[seed.ID] = seed

	return env
}

func TestPaymentsController_CreateCheckout(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{})

	req := models.CreateCheckoutRequest{SubmissionID: "sub-1"}
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/checkout", req, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.CheckoutResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "https://checkout.example/pay/"+resp.OrderID, resp.URL)

	order, ok := env.orders.items[resp.OrderID]
	require.True(t, ok)
	assert.Equal(t, "sub-1", order.SubmissionID)
	assert.Equal(t, storage.OrderStatusPending, order.Status)
	assert.Equal(t, int64(4900), order.AmountCents)
	assert.Equal(t, "eur", order.Currency)
	assert.Equal(t, "cs_test_"+resp.OrderID, order.CheckoutSessionID)
}

func TestPaymentsController_CreateCheckout_MissingSubmissionID(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{})

	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/checkout", models.CreateCheckoutRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestPaymentsController_CreateCheckout_UnknownSubmission(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{})

	req := models.CreateCheckoutRequest{SubmissionID: "missing"}
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/checkout", req, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Empty(t, env.orders.items)
}

func TestPaymentsController_CreateCheckout_ProviderError(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{createErr: errors.New("stripe is down")})

	req := models.CreateCheckoutRequest{SubmissionID: "sub-1"}
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/checkout", req, nil)
	assert.Equal(t, http.StatusBadGateway, res.Code)
	assert.Empty(t, env.orders.items)
}

func TestPaymentsController_ConfirmCheckout_Pending(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{confirmErr: payments.ErrNotPaid})
	env.orders.items["order-1"] = &storage.Order{
		ID:                "order-1",
		SubmissionID:      "sub-1",
		CheckoutSessionID: "cs_test_order-1",
		Status:            storage.OrderStatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/checkout/order-1", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.ConfirmCheckoutResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))

	assert.Equal(t, storage.OrderStatusPending, resp.Status)
	assert.Empty(t, resp.TransactionID)
	assert.Equal(t, storage.OrderStatusPending, env.orders.items["order-1"].Status)
}

func TestPaymentsController_ConfirmCheckout_Paid(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{transactionID: "pi_123"})
	env.orders.items["order-1"] = &storage.Order{
		ID:                "order-1",
		SubmissionID:      "sub-1",
		CheckoutSessionID: "cs_test_order-1",
		Status:            storage.OrderStatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/checkout/order-1", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.ConfirmCheckoutResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))

	assert.Equal(t, storage.OrderStatusPaid, resp.Status)
	assert.Equal(t, "pi_123", resp.TransactionID)

	order := env.orders.items["order-1"]
	assert.Equal(t, storage.OrderStatusPaid, order.Status)
	assert.Equal(t, "pi_123", order.TransactionID)
	assert.False(t, order.PaidAt.IsZero())
}

func TestPaymentsController_ConfirmCheckout_AlreadyPaid(t *testing.T) {
	// The provider must not be asked again once the order is settled.
	env := newPaymentsEnv(&fakePaymentsClient{confirmErr: errors.New("must not be called")})
	env.orders.items["order-1"] = &storage.Order{
		ID:                "order-1",
		SubmissionID:      "sub-1",
		CheckoutSessionID: "cs_test_order-1",
		Status:            storage.OrderStatusPaid,
		TransactionID:     "pi_123",
		CreatedAt:         time.Now().UTC(),
		PaidAt:            time.Now().UTC(),
	}

	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/checkout/order-1", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.ConfirmCheckoutResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))

	assert.Equal(t, storage.OrderStatusPaid, resp.Status)
	assert.Equal(t, "pi_123", resp.TransactionID)
	assert.Zero(t, env.client.confirmCalls)
}

func TestPaymentsController_ConfirmCheckout_NotFound(t *testing.T) {
	env := newPaymentsEnv(&fakePaymentsClient{})

	res := testutils.PerformRequest(env.router, http.MethodGet, "/api/checkout/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
