package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	sessions service.SessionService
}

func NewCheckoutHandler(checkout service.CheckoutService, sessions service.SessionService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, sessions: sessions}
}

func (h *CheckoutHandler) Start(c *gin.Context) {
	view, err := h.checkout.Start(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) Evaluate(c *gin.Context) {
	// Evaluation never fails: a malformed body simply evaluates paid=0.
	var req dto.EvaluatePaymentRequest
	_ = c.ShouldBindJSON(&req)
	c.JSON(http.StatusOK, h.checkout.Evaluate(req.Paid))
}

// Complete finalizes the sale and hands the transaction to the session
// aggregator. The engine itself stays ignorant of session structure.
func (h *CheckoutHandler) Complete(c *gin.Context) {
	var req dto.CompleteCheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tx, err := h.checkout.Complete(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrInvalidPayment) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}

	session, err := h.sessions.Record(c.Request.Context(), *tx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Sale completed but could not be recorded"))
		return
	}

	c.JSON(http.StatusCreated, dto.CompleteCheckoutResponse{
		Transaction: *tx,
		SessionID:   session.SessionID,
	})
}
