package repository

import (
	"guesthouse-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room     RoomRepository
	Activity ActivityRepository
	Booking  BookingRepository
	Rating   RatingRepository
	Gallery  GalleryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:     NewRoomRepository(db, log),
		Activity: NewActivityRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Rating:   NewRatingRepository(db, log),
		Gallery:  NewGalleryRepository(db, log),
	}
}
