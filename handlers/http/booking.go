package httpHandler

import (
	"net/http"

	"realty-server/entities"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	useCase *usecases.BookingUseCase
}

func NewBookingHandler(useCase *usecases.BookingUseCase) *BookingHandler {
	return &BookingHandler{useCase: useCase}
}

// CreateBooking handles POST /services/book
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking entities.ServiceBooking

	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.CreateBooking(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBooking handles GET /services/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.useCase.GetBooking(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetAllBookings handles GET /services/bookings
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.useCase.GetAllBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = []entities.ServiceBooking{}
	}

	c.JSON(http.StatusOK, bookings)
}
