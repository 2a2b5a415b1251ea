package usecase

import (
	"fmt"
	"math"
	"time"

	"guesthouse-booking/internal/data/entity"
)

const (
	// Per-type guest ceilings; the item's own capacity lowers these further.
	maxRoomGuests     = 4
	maxActivityGuests = 10

	// Stored prices are whole NAD; the payment provider wants cents.
	minorUnitsPerNAD = 100
)

// CalculateTotal computes the booking total in whole NAD from the item's unit
// price. Room bookings are priced per night, nights rounded up from the
// check-in/check-out span; both dates are required and check-out must fall
// strictly after check-in. Activity bookings are priced per guest.
func CalculateTotal(bookingType entity.BookingType, unitPrice int64, checkIn, checkOut *time.Time, guests int) (int64, error) {
	if unitPrice <= 0 {
		return 0, fmt.Errorf("unit price must be positive, got %d", unitPrice)
	}

	switch bookingType {
	case entity.BookingTypeRoom:
		if checkIn == nil || checkOut == nil {
			return 0, fmt.Errorf("check-in and check-out dates are required for room bookings")
		}
		if !checkOut.After(*checkIn) {
			return 0, fmt.Errorf("check-out date must be after check-in date")
		}

		nights := int64(math.Ceil(checkOut.Sub(*checkIn).Hours() / 24))
		return unitPrice * nights, nil

	case entity.BookingTypeActivity:
		if guests < 1 {
			return 0, fmt.Errorf("number of guests must be positive, got %d", guests)
		}

		return unitPrice * int64(guests), nil

	default:
		return 0, fmt.Errorf("unknown booking type %q", bookingType)
	}
}

// maxGuestsFor returns the guest ceiling for an item, the smaller of the
// per-type cap and the item's capacity.
func maxGuestsFor(bookingType entity.BookingType, capacity int) int {
	limit := maxActivityGuests
	if bookingType == entity.BookingTypeRoom {
		limit = maxRoomGuests
	}
	if capacity > 0 && capacity < limit {
		limit = capacity
	}
	return limit
}
