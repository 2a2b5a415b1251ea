package wire

import (
	"guesthouse-booking/internal/adaptor"
	"guesthouse-booking/pkg/middleware"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - List available rooms, featured first
	r.Get("/api/rooms", catalogHandler.GetRooms)

	// GET /api/rooms/{id} - Room detail
	r.Get("/api/rooms/{id}", catalogHandler.GetRoomByID)

	// GET /api/activities - List available activities, featured first
	r.Get("/api/activities", catalogHandler.GetActivities)

	// GET /api/activities/{id} - Activity detail
	r.Get("/api/activities/{id}", catalogHandler.GetActivityByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin, log))

		// GET /api/admin/rooms - List all rooms including unavailable (admin)
		r.Get("/api/admin/rooms", catalogHandler.GetAllRooms)

		// POST /api/admin/rooms - Create room with image upload (admin)
		r.Post("/api/admin/rooms", catalogHandler.CreateRoom)

		// PUT /api/admin/rooms/{id} - Update room details (admin)
		r.Put("/api/admin/rooms/{id}", catalogHandler.UpdateRoom)

		// DELETE /api/admin/rooms/{id} - Remove a room (admin)
		r.Delete("/api/admin/rooms/{id}", catalogHandler.DeleteRoom)

		// GET /api/admin/activities - List all activities including unavailable (admin)
		r.Get("/api/admin/activities", catalogHandler.GetAllActivities)

		// POST /api/admin/activities - Create activity with image upload (admin)
		r.Post("/api/admin/activities", catalogHandler.CreateActivity)

		// PUT /api/admin/activities/{id} - Update activity details (admin)
		r.Put("/api/admin/activities/{id}", catalogHandler.UpdateActivity)

		// DELETE /api/admin/activities/{id} - Remove an activity (admin)
		r.Delete("/api/admin/activities/{id}", catalogHandler.DeleteActivity)
	})
}
