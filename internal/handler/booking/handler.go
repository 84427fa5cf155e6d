package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-directory/internal/handler"
	"github.com/jwalitptl/clinic-directory/internal/model"
	bookingService "github.com/jwalitptl/clinic-directory/internal/service/booking"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
)

type Handler struct {
	service bookingService.BookingServicer
}

func NewHandler(service bookingService.BookingServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.BookingInput
	if !handler.BindJSON(c, &req, "Invalid booking data") {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to create booking")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, booking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch bookings")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "Booking")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch booking")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, booking)
}
