// Package ledger provides the occupancy ledger HTTP handlers: bookings,
// payments, room occupancy and the dashboard.
package ledger

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/handler"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/metrics"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/response"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
	ledgerService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/ledger"
)

// Handler handles ledger endpoints.
type Handler struct {
	ledgerService    *ledgerService.LedgerService
	dashboardService *ledgerService.DashboardService
}

// NewHandler creates the ledger handler.
func NewHandler(ledgerSvc *ledgerService.LedgerService, dashboardSvc *ledgerService.DashboardService) *Handler {
	return &Handler{
		ledgerService:    ledgerSvc,
		dashboardService: dashboardSvc,
	}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/close", h.CloseBooking)
		bookings.POST("/:id/payments", h.RecordPayment)
		bookings.GET("/:id/payments", h.ListBookingPayments)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.ListPayments)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.GET("/:id/occupancy", h.GetRoomOccupancy)
		rooms.GET("/:id/bookings", h.ListRoomBookings)
	}

	rg.GET("/dashboard", h.GetDashboard)
}

// CreateBookingRequest is the wire form of a new booking. Dates travel as
// YYYY-MM-DD strings.
type CreateBookingRequest struct {
	TenantID      int64   `json:"tenant_id" binding:"required"`
	RoomID        int64   `json:"room_id" binding:"required"`
	BedNo         int     `json:"bed_no" binding:"required,min=1"`
	DepositAmount float64 `json:"deposit_amount"`
	CheckinDate   string  `json:"checkin_date,omitempty"`
}

// CreateBooking creates an active booking for a bed slot
// @Summary Create a booking
// @Tags ledger
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateBookingRequest true "request body"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	svcReq := &ledgerService.CreateBookingRequest{
		TenantID:      req.TenantID,
		RoomID:        req.RoomID,
		BedNo:         req.BedNo,
		DepositAmount: req.DepositAmount,
	}
	if req.CheckinDate != "" {
		t, err := handler.ParseDate(req.CheckinDate)
		if err != nil {
			response.BadRequest(c, "invalid checkin_date, expected YYYY-MM-DD")
			return
		}
		svcReq.CheckinDate = &t
	}

	booking, err := h.ledgerService.CreateBooking(c.Request.Context(), svcReq)
	if err == nil {
		metrics.GetMetrics().RecordBooking(models.BookingStatusActive)
	}
	handler.MustSucceed(c, err, booking)
}

// ListBookings lists bookings
// @Summary List bookings
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param tenant_id query int false "filter by tenant"
// @Param room_id query int false "filter by room"
// @Param status query string false "filter by status (Active/Closed)"
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	tenantID, ok := handler.ParseQueryID(c, "tenant_id", "tenant")
	if !ok {
		return
	}
	roomID, ok := handler.ParseQueryID(c, "room_id", "room")
	if !ok {
		return
	}

	filter := &repository.BookingFilter{
		TenantID: tenantID,
		RoomID:   roomID,
		Status:   c.Query("status"),
	}

	p := handler.BindPagination(c)
	bookings, total, err := h.ledgerService.ListBookings(c.Request.Context(), filter, p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, bookings, total, p.Page, p.PageSize)
}

// GetBooking fetches one booking with tenant and room
// @Summary Get a booking
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param id path int true "booking id"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.ledgerService.GetBooking(c.Request.Context(), id)
	handler.MustSucceed(c, err, booking)
}

// CloseBookingRequest is the wire form of a checkout.
type CloseBookingRequest struct {
	CheckoutDate string `json:"checkout_date,omitempty"`
}

// CloseBooking closes a booking and frees its bed slot
// @Summary Close a booking
// @Tags ledger
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "booking id"
// @Param request body CloseBookingRequest false "request body"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /bookings/{id}/close [post]
func (h *Handler) CloseBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "booking")
	if !ok {
		return
	}

	var req CloseBookingRequest
	// The body is optional; checkout defaults to today.
	_ = c.ShouldBindJSON(&req)

	var checkoutDate *time.Time
	if req.CheckoutDate != "" {
		t, err := handler.ParseDate(req.CheckoutDate)
		if err != nil {
			response.BadRequest(c, "invalid checkout_date, expected YYYY-MM-DD")
			return
		}
		checkoutDate = &t
	}

	booking, err := h.ledgerService.CloseBooking(c.Request.Context(), id, checkoutDate)
	if err == nil {
		metrics.GetMetrics().RecordBooking(models.BookingStatusClosed)
	}
	handler.MustSucceed(c, err, booking)
}

// RecordPaymentRequest is the wire form of a payment.
type RecordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Mode        string  `json:"mode"`
	TxnRef      *string `json:"txn_ref,omitempty"`
	Remarks     *string `json:"remarks,omitempty"`
	PaymentDate string  `json:"payment_date,omitempty"`
}

// RecordPayment appends a payment to a booking
// @Summary Record a payment
// @Tags ledger
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "booking id"
// @Param request body RecordPaymentRequest true "request body"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /bookings/{id}/payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "booking")
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	svcReq := &ledgerService.RecordPaymentRequest{
		BookingID: id,
		Amount:    req.Amount,
		Mode:      req.Mode,
		TxnRef:    req.TxnRef,
		Remarks:   req.Remarks,
	}
	if req.PaymentDate != "" {
		t, err := handler.ParseDate(req.PaymentDate)
		if err != nil {
			response.BadRequest(c, "invalid payment_date, expected YYYY-MM-DD")
			return
		}
		svcReq.PaymentDate = &t
	}

	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), svcReq)
	if err == nil {
		metrics.GetMetrics().RecordPayment(payment.Mode, payment.Amount)
	}
	handler.MustSucceed(c, err, payment)
}

// ListBookingPayments lists a booking's payments
// @Summary List a booking's payments
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param id path int true "booking id"
// @Success 200 {object} response.Response{data=[]models.Payment}
// @Router /bookings/{id}/payments [get]
func (h *Handler) ListBookingPayments(c *gin.Context) {
	id, ok := handler.ParseID(c, "booking")
	if !ok {
		return
	}

	payments, err := h.ledgerService.ListPaymentsForBooking(c.Request.Context(), id)
	handler.MustSucceed(c, err, payments)
}

// ListPayments lists all payments
// @Summary List payments
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	p := handler.BindPagination(c)
	payments, total, err := h.ledgerService.ListPayments(c.Request.Context(), p.Page, p.PageSize)
	handler.MustSucceedPage(c, err, payments, total, p.Page, p.PageSize)
}

// GetRoomOccupancy returns occupied and vacant beds for a room
// @Summary Get room occupancy
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param id path int true "room id"
// @Success 200 {object} response.Response{data=ledgerService.RoomOccupancy}
// @Router /rooms/{id}/occupancy [get]
func (h *Handler) GetRoomOccupancy(c *gin.Context) {
	id, ok := handler.ParseID(c, "room")
	if !ok {
		return
	}

	occupancy, err := h.ledgerService.GetRoomOccupancy(c.Request.Context(), id)
	handler.MustSucceed(c, err, occupancy)
}

// ListRoomBookings lists a room's bookings over its lifetime
// @Summary List a room's bookings
// @Tags ledger
// @Produce json
// @Security Bearer
// @Param id path int true "room id"
// @Success 200 {object} response.Response{data=[]models.Booking}
// @Router /rooms/{id}/bookings [get]
func (h *Handler) ListRoomBookings(c *gin.Context) {
	id, ok := handler.ParseID(c, "room")
	if !ok {
		return
	}

	bookings, err := h.ledgerService.ListBookingsForRoom(c.Request.Context(), id)
	handler.MustSucceed(c, err, bookings)
}

// GetDashboard returns aggregate metrics
// @Summary Get dashboard metrics
// @Tags ledger
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=ledgerService.DashboardMetrics}
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	m, err := h.dashboardService.GetMetrics(c.Request.Context())
	if err == nil {
		metrics.GetMetrics().SetActiveBookings(float64(m.ActiveBookings))
	}
	handler.MustSucceed(c, err, m)
}
