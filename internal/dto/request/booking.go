package request

// CreateBookingRequest is tagged by BookingType: a room booking carries
// room_id plus check-in/check-out dates, an activity booking carries
// activity_id plus a single activity date. The per-type requirements are
// enforced in the booking service, not by tags, so the two variants stay
// exhaustively distinguished.
type CreateBookingRequest struct {
	BookingType     string  `json:"booking_type" validate:"required,oneof=room activity"`
	RoomID          string  `json:"room_id,omitempty" validate:"omitempty,uuid4"`
	ActivityID      string  `json:"activity_id,omitempty" validate:"omitempty,uuid4"`
	GuestName       string  `json:"guest_name" validate:"required,min=1,max=200"`
	GuestEmail      string  `json:"guest_email" validate:"required,email"`
	GuestPhone      *string `json:"guest_phone,omitempty" validate:"omitempty,max=30"`
	Guests          int     `json:"number_of_guests" validate:"required,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
	CheckInDate     *string `json:"check_in_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string `json:"check_out_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ActivityDate    *string `json:"activity_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod   string  `json:"payment_method" validate:"required,oneof=online arrival"`
}

type UpdateBookingStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=paid cancelled"`
}
