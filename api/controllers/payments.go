package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/payments"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type PaymentsController struct {
	orders      storage.OrderStorage
	submissions storage.SubmissionStorage
	payments    payments.Client
	amountCents int64
	currency    string
}

func NewPaymentsController(orders storage.OrderStorage, submissions storage.SubmissionStorage, client payments.Client, amountCents int64, currency string) *PaymentsController {
	return &PaymentsController{
		orders:      orders,
		submissions: submissions,
		payments:    client,
		amountCents: amountCents,
		currency:    currency,
	}
}

func (c *PaymentsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/checkout")

	group.POST("", c.createCheckout)
	group.GET("/:orderId", c.confirmCheckout)
}

// createCheckout godoc
// @Summary Start the purchase of a submission's report
// @Description Creates an order and a payment checkout session; the caller redirects to the returned URL
// @Tags payments
// @Accept json
// @Produce json
// @Param checkout body models.CreateCheckoutRequest true "Checkout request"
// @Success 200 {object} models.CheckoutResponse
// @Failure 404 {object} models.ErrorResponse "Unknown submission"
// @Failure 502 {object} models.ErrorResponse "Payment provider error"
// @Router /api/checkout [post]
func (c *PaymentsController) createCheckout(g *gin.Context) {
	var req models.CreateCheckoutRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.SubmissionID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "submissionId is required"})
		return
	}

	if _, err := c.submissions.Get(g.Request.Context(), req.SubmissionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("submission not found: %s", req.SubmissionID)})
			return
		}
		logging.Log.Errorf("PAYMENTS: failed to load submission %s: %v", req.SubmissionID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submission"})
		return
	}

	orderID := uuid.NewString()
	checkout, err := c.payments.CreateCheckout(g.Request.Context(), orderID)
	if err != nil {
		logging.Log.Errorf("PAYMENTS: checkout creation failed for order %s: %v", orderID, err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not start checkout"})
		return
	}

	order := &storage.Order{
		ID:                orderID,
		SubmissionID:      req.SubmissionID,
		CheckoutSessionID: checkout.SessionID,
		Status:            storage.OrderStatusPending,
		AmountCents:       c.amountCents,
		Currency:          c.currency,
		CreatedAt:         time.Now().UTC(),
	}
	if err := c.orders.Create(g.Request.Context(), order); err != nil {
		logging.Log.Errorf("PAYMENTS: failed to store order %s: %v", orderID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save order"})
		return
	}

	logging.Log.Infof("PAYMENTS: created order %s for submission %s", orderID, req.SubmissionID)
	g.JSON(http.StatusOK, &models.CheckoutResponse{OrderID: orderID, URL: checkout.URL})
}

// confirmCheckout godoc
// @Summary Confirm a checkout and collect the transaction identifier
// @Description Polled by the frontend after redirect; marks the order paid once the provider confirms
// @Tags payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.ConfirmCheckoutResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/checkout/{orderId} [get]
func (c *PaymentsController) confirmCheckout(g *gin.Context) {
	orderID := g.Param("orderId")
	if orderID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "orderId is required"})
		return
	}

	order, err := c.orders.Get(g.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("order not found: %s", orderID)})
			return
		}
		logging.Log.Errorf("PAYMENTS: failed to load order %s: %v", orderID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load order"})
		return
	}

	if order.Status == storage.OrderStatusPaid {
		g.JSON(http.StatusOK, &models.ConfirmCheckoutResponse{
			OrderID:       order.ID,
			Status:        order.Status,
			TransactionID: order.TransactionID,
		})
		return
	}

	transactionID, err := c.payments.Confirm(g.Request.Context(), order.CheckoutSessionID)
	if err != nil {
		if errors.Is(err, payments.ErrNotPaid) {
			g.JSON(http.StatusOK, &models.ConfirmCheckoutResponse{OrderID: order.ID, Status: storage.OrderStatusPending})
			return
		}
		logging.Log.Errorf("PAYMENTS: confirmation failed for order %s: %v", orderID, err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not confirm payment"})
		return
	}

	if err := c.orders.MarkPaid(g.Request.Context(), order.ID, transactionID); err != nil {
		logging.Log.Errorf("PAYMENTS: failed to mark order %s paid: %v", orderID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update order"})
		return
	}

	logging.Log.Infof("PAYMENTS: order %s paid, transaction %s", order.ID, transactionID)
	g.JSON(http.StatusOK, &models.ConfirmCheckoutResponse{
		OrderID:       order.ID,
		Status:        storage.OrderStatusPaid,
		TransactionID: transactionID,
	})
}
