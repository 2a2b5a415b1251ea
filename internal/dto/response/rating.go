package response

import (
	"time"

	"guesthouse-booking/internal/data/entity"
)

type RatingResponse struct {
	ID         string    `json:"id"`
	Rating     int       `json:"rating"`
	ReviewText *string   `json:"review_text,omitempty"`
	GuestName  string    `json:"guest_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingSummary is the combined display payload: full review list plus the
// store-computed average. Zero ratings renders as average 0.0, count 0.
type RatingSummary struct {
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int              `json:"review_count"`
	Ratings       []RatingResponse `json:"ratings"`
}

// Helper converter
func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:         rating.ID.String(),
		Rating:     rating.Rating,
		ReviewText: rating.ReviewText,
		GuestName:  rating.GuestName,
		CreatedAt:  rating.CreatedAt,
	}
}
