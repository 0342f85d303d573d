package handlers

import (
	"net/http"

	"realty-crm-backend/internal/auth"
	"realty-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentReceiptHandler handles HTTP requests for payment receipt
// operations
type PaymentReceiptHandler struct {
	receiptService service.PaymentReceiptServiceInterface
}

// NewPaymentReceiptHandler creates a new payment receipt handler
func NewPaymentReceiptHandler(receiptService service.PaymentReceiptServiceInterface) *PaymentReceiptHandler {
	return &PaymentReceiptHandler{
		receiptService: receiptService,
	}
}

// CreatePaymentReceipt handles POST /payment-receipts
// @Summary Record a payment receipt
// @Description Record a payment received against a booking, optionally settling a demand note
// @Tags payment-receipts
// @Accept json
// @Produce json
// @Param request body service.CreatePaymentReceiptRequest true "Receipt details"
// @Success 201 {object} service.PaymentReceiptResponse "Receipt recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Booking or demand note not found"
// @Failure 409 {object} ErrorResponse "Receipt number already taken"
// @Failure 422 {object} ErrorResponse "Demand note is not issued"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /payment-receipts [post]
func (h *PaymentReceiptHandler) CreatePaymentReceipt(c *gin.Context) {
	var req service.CreatePaymentReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.Create(&req, auth.ActorFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// GetPaymentReceipt handles GET /payment-receipts/:id
// @Summary Get a payment receipt
// @Description Get a payment receipt by its ID
// @Tags payment-receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} service.PaymentReceiptResponse "Receipt details"
// @Failure 400 {object} ErrorResponse "Invalid receipt ID"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /payment-receipts/{id} [get]
func (h *PaymentReceiptHandler) GetPaymentReceipt(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// ListPaymentReceiptsByBooking handles GET /bookings/:id/payment-receipts
// @Summary List payment receipts of a booking
// @Description List a booking's payment receipts with pagination, newest first
// @Tags payment-receipts
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PaymentReceiptListResponse "Receipts"
// @Failure 400 {object} ErrorResponse "Invalid booking ID"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /bookings/{id}/payment-receipts [get]
func (h *PaymentReceiptHandler) ListPaymentReceiptsByBooking(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	receipts, err := h.receiptService.ListByBooking(bookingID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipts)
}
