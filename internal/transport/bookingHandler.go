package transport

import (
	"net/http"

	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/bookings", h.CreateBooking)
}

// RegisterCustomerRoutes expects a group that already requires a token.
func (h *BookingHandler) RegisterCustomerRoutes(router *gin.RouterGroup) {
	router.GET("/bookings/my", h.MyBookings)
}

func (h *BookingHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("", h.CreateBooking)
	bookings.PUT("/:id/status", h.UpdateBookingStatus)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.DELETE("/:id", h.DeleteBooking)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var in service.BookingInput
	if !bindInput(c, &in) {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookings: GET /admin/bookings?status=confirmed
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	bookings, err := h.bookingService.ListCustomerBookings(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req updateStatusRequest
	if !bindInput(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var in service.BookingInput
	if !bindInput(c, &in) {
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	booking, err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "booking": booking})
}
