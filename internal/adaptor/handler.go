package adaptor

import (
	"guesthouse-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
	Rating  *RatingHandler
	Gallery *GalleryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(service.Catalog, service.Admin, log),
		Booking: NewBookingHandler(service.Booking, log),
		Rating:  NewRatingHandler(service.Rating, log),
		Gallery: NewGalleryHandler(service.Admin, log),
	}
}
