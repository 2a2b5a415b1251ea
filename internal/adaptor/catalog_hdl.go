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

type CatalogHandler struct {
	service usecase.CatalogService
	admin   usecase.AdminService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, admin usecase.AdminService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		admin:   admin,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetRooms handles GET /api/rooms (public)
func (h *CatalogHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id} (public)
func (h *CatalogHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// GetActivities handles GET /api/activities (public)
func (h *CatalogHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.GetActivities(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// GetActivityByID handles GET /api/activities/{id} (public)
func (h *CatalogHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), activityID)
	if err != nil {
		h.handleServiceError(w, err, "get activity by ID")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// ==================== ADMIN METHODS ====================

// GetAllRooms handles GET /api/admin/rooms (admin only)
func (h *CatalogHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetAllRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetAllActivities handles GET /api/admin/activities (admin only)
func (h *CatalogHandler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.GetAllActivities(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// CreateRoom handles POST /api/admin/rooms (admin only, multipart)
func (h *CatalogHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	images, cleanup, err := parseMultipartImages(r, &req)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	defer cleanup()

	room, err := h.admin.CreateRoom(r.Context(), &req, images)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// CreateActivity handles POST /api/admin/activities (admin only, multipart)
func (h *CatalogHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActivityRequest
	images, cleanup, err := parseMultipartImages(r, &req)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	defer cleanup()

	activity, err := h.admin.CreateActivity(r.Context(), &req, images)
	if err != nil {
		h.handleServiceError(w, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "success", activity)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin only)
func (h *CatalogHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.admin.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin only)
func (h *CatalogHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.admin.DeleteRoom(r.Context(), roomID); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpdateActivity handles PUT /api/admin/activities/{id} (admin only)
func (h *CatalogHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	var req request.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	activity, err := h.admin.UpdateActivity(r.Context(), activityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// DeleteActivity handles DELETE /api/admin/activities/{id} (admin only)
func (h *CatalogHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	if err := h.admin.DeleteActivity(r.Context(), activityID); err != nil {
		h.handleServiceError(w, err, "delete activity")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors for catalog operations
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "upload image"):
		h.log.Error(operation+" failed - image upload",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
