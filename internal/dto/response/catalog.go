package response

import (
	"time"

	"guesthouse-booking/internal/data/entity"
)

type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	SizeSqm     *int      `json:"size_sqm,omitempty"`
	PriceNAD    int64     `json:"price_nad"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	IsFeatured  bool      `json:"is_featured"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ActivityResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Capacity        int       `json:"capacity"`
	PriceNAD        int64     `json:"price_nad"`
	Duration        *string   `json:"duration,omitempty"`
	Category        *string   `json:"category,omitempty"`
	DifficultyLevel *string   `json:"difficulty_level,omitempty"`
	Includes        []string  `json:"includes"`
	Images          []string  `json:"images"`
	IsFeatured      bool      `json:"is_featured"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Helper converters
func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		Name:        room.Name,
		Description: room.Description,
		Capacity:    room.Capacity,
		SizeSqm:     room.SizeSqm,
		PriceNAD:    room.PriceNAD,
		Amenities:   room.Amenities,
		Images:      room.Images,
		IsFeatured:  room.IsFeatured,
		IsAvailable: room.IsAvailable,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              activity.ID.String(),
		Name:            activity.Name,
		Description:     activity.Description,
		Capacity:        activity.Capacity,
		PriceNAD:        activity.PriceNAD,
		Duration:        activity.Duration,
		Category:        activity.Category,
		DifficultyLevel: activity.DifficultyLevel,
		Includes:        activity.Includes,
		Images:          activity.Images,
		IsFeatured:      activity.IsFeatured,
		IsAvailable:     activity.IsAvailable,
		CreatedAt:       activity.CreatedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}
