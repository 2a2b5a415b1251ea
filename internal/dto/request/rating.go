package request

type CreateRatingRequest struct {
	RatingType string  `json:"rating_type" validate:"required,oneof=room activity"`
	RoomID     string  `json:"room_id,omitempty" validate:"omitempty,uuid4"`
	ActivityID string  `json:"activity_id,omitempty" validate:"omitempty,uuid4"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=1000"`
	GuestName  string  `json:"guest_name" validate:"required,min=1,max=200"`
}
