package usecase

import (
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/pkg/email"
	"guesthouse-booking/pkg/payment"
	"guesthouse-booking/pkg/storage"
	"guesthouse-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Booking BookingService
	Rating  RatingService
	Admin   AdminService
}

func NewService(repo *repository.Repository, payments payment.Gateway, mailer email.Sender, uploader storage.Uploader, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, payments, mailer, config, log),
		Rating:  NewRatingService(repo, log),
		Admin:   NewAdminService(repo, uploader, log),
	}
}
