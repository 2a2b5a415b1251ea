package response

import (
	"time"

	"guesthouse-booking/internal/data/entity"
)

type GalleryItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func GalleryItemToResponse(item *entity.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		SortOrder:   item.SortOrder,
		CreatedAt:   item.CreatedAt,
	}
}
