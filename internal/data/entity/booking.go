package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingTypeRoom     BookingType = "room"
	BookingTypeActivity BookingType = "activity"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Booking is a guest reservation for either a room (check-in/check-out span)
// or an activity (single date). The unused date columns stay NULL.
type Booking struct {
	BaseSimple
	BookingRef       string        `db:"booking_ref"`
	BookingType      BookingType   `db:"booking_type"`
	RoomID           *uuid.UUID    `db:"room_id"`
	ActivityID       *uuid.UUID    `db:"activity_id"`
	GuestName        string        `db:"guest_name"`
	GuestEmail       string        `db:"guest_email"`
	GuestPhone       *string       `db:"guest_phone"`
	Guests           int           `db:"guests"`
	SpecialRequests  *string       `db:"special_requests"`
	CheckIn          *time.Time    `db:"check_in"`
	CheckOut         *time.Time    `db:"check_out"`
	ActivityDate     *time.Time    `db:"activity_date"`
	TotalAmount      int64         `db:"total_amount"` // whole NAD
	PaymentOnArrival bool          `db:"payment_on_arrival"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
}

// ItemID returns the catalog item the booking targets.
func (b *Booking) ItemID() uuid.UUID {
	if b.BookingType == BookingTypeRoom && b.RoomID != nil {
		return *b.RoomID
	}
	if b.ActivityID != nil {
		return *b.ActivityID
	}
	return uuid.Nil
}
