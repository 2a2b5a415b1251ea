package wire

import (
	"guesthouse-booking/internal/adaptor"
	"guesthouse-booking/pkg/middleware"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Create booking, returns checkout URL for online payment
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{ref} - Guest confirmation lookup by booking reference
	r.Get("/api/bookings/{ref}", bookingHandler.GetBookingByRef)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin, log))

		// GET /api/admin/bookings - Paginated booking list, newest first (admin)
		r.Get("/", bookingHandler.GetBookings)

		// PUT /api/admin/bookings/{id}/status - Mark booking paid or cancelled (admin)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
