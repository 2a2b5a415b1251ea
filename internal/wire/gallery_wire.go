package wire

import (
	"guesthouse-booking/internal/adaptor"
	"guesthouse-booking/pkg/middleware"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGallery(
	r chi.Router,
	galleryHandler *adaptor.GalleryHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/gallery - Gallery listing ordered by sort order
	r.Get("/api/gallery", galleryHandler.GetGallery)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/gallery", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin, log))

		// GET /api/admin/gallery - Gallery listing for the admin panel
		r.Get("/", galleryHandler.GetGallery)

		// POST /api/admin/gallery - Upload gallery images (admin)
		r.Post("/", galleryHandler.CreateGalleryItems)

		// DELETE /api/admin/gallery/{id} - Remove a gallery item (admin)
		r.Delete("/{id}", galleryHandler.DeleteGalleryItem)
	})
}
