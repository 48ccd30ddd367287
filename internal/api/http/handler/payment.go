package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/service"
)

// Payment exposes the payment session flow.
type Payment struct {
	payments *service.Payment
	logger   *logger.Logger
}

func NewPayment(payments *service.Payment, logger *logger.Logger) *Payment {
	return &Payment{
		payments: payments,
		logger:   logger.Component("payment_handler"),
	}
}

type initializeRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

func (h *Payment) Initialize(c echo.Context) error {
	ctx := c.Request().Context()

	var req initializeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sessionID, err := h.payments.Initialize(ctx, req.Amount, req.Currency, req.Description)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"session_id": sessionID,
		"message":    "Payment session initialized",
	})
}

type processRequest struct {
	CardNumber     string `json:"card_number"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

func (h *Payment) Process(c echo.Context) error {
	ctx := c.Request().Context()

	var req processRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	paymentID, result, err := h.payments.Process(ctx, c.Param("id"), model.CardInput{
		Number:      req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
		HolderName:  req.CardholderName,
	})
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"payment_id": paymentID,
		"result":     result,
	})
}

func (h *Payment) Status(c echo.Context) error {
	view, err := h.payments.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *Payment) Clear(c echo.Context) error {
	if err := h.payments.Clear(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Session cleared"})
}
