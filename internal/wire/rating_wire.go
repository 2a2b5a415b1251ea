package wire

import (
	"guesthouse-booking/internal/adaptor"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms/{id}/ratings - Ratings and average for a room
	r.Get("/api/rooms/{id}/ratings", ratingHandler.GetRoomRatings)

	// GET /api/activities/{id}/ratings - Ratings and average for an activity
	r.Get("/api/activities/{id}/ratings", ratingHandler.GetActivityRatings)

	// POST /api/ratings - Submit a guest rating
	r.Post("/api/ratings", ratingHandler.CreateRating)
}
