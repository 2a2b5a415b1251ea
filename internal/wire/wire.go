// internal/wire/wire.go
package wire

import (
	"net/http"

	"guesthouse-booking/internal/adaptor"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/usecase"
	"guesthouse-booking/pkg/email"
	"guesthouse-booking/pkg/middleware"
	"guesthouse-booking/pkg/payment"
	"guesthouse-booking/pkg/storage"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds all wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initialises all dependencies
func Wiring(
	repo *repository.Repository,
	payments payment.Gateway,
	mailer email.Sender,
	uploader storage.Uploader,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, payments, mailer, uploader, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCatalog(r, handler.Catalog, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireRating(r, handler.Rating, config, logger)
	wireGallery(r, handler.Gallery, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
