package response

import (
	"time"

	"guesthouse-booking/internal/data/entity"
)

// BookingResponse is returned from booking creation and the admin list.
// CheckoutURL is only present for online bookings whose checkout session was
// created successfully.
type BookingResponse struct {
	ID               string               `json:"id"`
	BookingRef       string               `json:"booking_ref"`
	BookingType      entity.BookingType   `json:"booking_type"`
	ItemID           string               `json:"item_id"`
	ItemName         string               `json:"item_name,omitempty"`
	GuestName        string               `json:"guest_name"`
	GuestEmail       string               `json:"guest_email"`
	GuestPhone       *string              `json:"guest_phone,omitempty"`
	Guests           int                  `json:"number_of_guests"`
	SpecialRequests  *string              `json:"special_requests,omitempty"`
	CheckInDate      string               `json:"check_in_date,omitempty"`
	CheckOutDate     string               `json:"check_out_date,omitempty"`
	ActivityDate     string               `json:"activity_date,omitempty"`
	TotalAmount      int64                `json:"total_amount"`
	PaymentOnArrival bool                 `json:"payment_on_arrival"`
	PaymentStatus    entity.PaymentStatus `json:"payment_status"`
	CheckoutURL      string               `json:"checkout_url,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// Helper converter; item name and checkout URL are filled in by the caller.
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               booking.ID.String(),
		BookingRef:       booking.BookingRef,
		BookingType:      booking.BookingType,
		ItemID:           booking.ItemID().String(),
		GuestName:        booking.GuestName,
		GuestEmail:       booking.GuestEmail,
		GuestPhone:       booking.GuestPhone,
		Guests:           booking.Guests,
		SpecialRequests:  booking.SpecialRequests,
		TotalAmount:      booking.TotalAmount,
		PaymentOnArrival: booking.PaymentOnArrival,
		PaymentStatus:    booking.PaymentStatus,
		CreatedAt:        booking.CreatedAt,
	}
	if booking.CheckIn != nil {
		resp.CheckInDate = booking.CheckIn.Format("2006-01-02")
	}
	if booking.CheckOut != nil {
		resp.CheckOutDate = booking.CheckOut.Format("2006-01-02")
	}
	if booking.ActivityDate != nil {
		resp.ActivityDate = booking.ActivityDate.Format("2006-01-02")
	}

	return resp
}
