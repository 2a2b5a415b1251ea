package adaptor

import (
	"net/http"
	"strings"

	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/internal/usecase"
	"guesthouse-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewGalleryHandler(service usecase.AdminService, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		log:     log.With(zap.String("handler", "gallery")),
	}
}

// GetGallery handles GET /api/gallery (public)
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetGallery(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get gallery")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// ==================== ADMIN METHODS ====================

// CreateGalleryItems handles POST /api/admin/gallery (admin only, multipart)
func (h *GalleryHandler) CreateGalleryItems(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGalleryRequest
	images, cleanup, err := parseMultipartImages(r, &req)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	defer cleanup()

	items, err := h.service.CreateGalleryItems(r.Context(), &req, images)
	if err != nil {
		h.handleServiceError(w, err, "create gallery items")
		return
	}

	utils.ResponseCreated(w, "success", items)
}

// DeleteGalleryItem handles DELETE /api/admin/gallery/{id} (admin only)
func (h *GalleryHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Gallery item ID is required", nil)
		return
	}

	if err := h.service.DeleteGalleryItem(r.Context(), itemID); err != nil {
		h.handleServiceError(w, err, "delete gallery item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors for gallery operations
func (h *GalleryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
