package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/internal/usecase"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetRoomRatings handles GET /api/rooms/{id}/ratings (public)
func (h *RatingHandler) GetRoomRatings(w http.ResponseWriter, r *http.Request) {
	h.getItemRatings(w, r, "room")
}

// GetActivityRatings handles GET /api/activities/{id}/ratings (public)
func (h *RatingHandler) GetActivityRatings(w http.ResponseWriter, r *http.Request) {
	h.getItemRatings(w, r, "activity")
}

func (h *RatingHandler) getItemRatings(w http.ResponseWriter, r *http.Request, ratingType string) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	summary, err := h.service.GetItemRatings(r.Context(), ratingType, itemID)
	if err != nil {
		h.handleServiceError(w, err, "get item ratings")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// CreateRating handles POST /api/ratings (public)
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

// handleServiceError handles errors for rating operations
func (h *RatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
