package usecase

import (
	"context"
	"fmt"
	"time"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/internal/dto/response"
	"guesthouse-booking/pkg/email"
	"guesthouse-booking/pkg/payment"
	"guesthouse-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByRef(ctx context.Context, ref string) (*response.BookingResponse, error)

	// Admin endpoints
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo     *repository.Repository
	payments payment.Gateway
	mailer   email.Sender
	config   *utils.Config
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, payments payment.Gateway, mailer email.Sender, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		payments: payments,
		mailer:   mailer,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
	}
}

// bookingTarget is the catalog item a booking resolves to.
type bookingTarget struct {
	id       uuid.UUID
	name     string
	priceNAD int64
	capacity int
}

// CreateBooking runs the two-step submission: insert the booking record,
// then, for online payment only, create a checkout session at the payment
// provider. A provider failure after step one leaves the unpaid booking in
// place; there is no rollback.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingType := entity.BookingType(req.BookingType)

	checkIn, checkOut, activityDate, err := parseBookingDates(bookingType, req)
	if err != nil {
		return nil, err
	}

	// Resolve the target item; it must exist and be open for booking
	target, err := s.resolveTarget(ctx, bookingType, req)
	if err != nil {
		return nil, err
	}

	if limit := maxGuestsFor(bookingType, target.capacity); req.Guests > limit {
		return nil, fmt.Errorf("number of guests %d exceeds the maximum of %d for this %s", req.Guests, limit, string(bookingType))
	}

	// Price is computed once here; the payment step reuses this exact total
	total, err := CalculateTotal(bookingType, target.priceNAD, checkIn, checkOut, req.Guests)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingRef:       utils.GenerateBookingRef(),
		BookingType:      bookingType,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       req.GuestPhone,
		Guests:           req.Guests,
		SpecialRequests:  req.SpecialRequests,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		ActivityDate:     activityDate,
		TotalAmount:      total,
		PaymentOnArrival: req.PaymentMethod == "arrival",
		PaymentStatus:    entity.PaymentStatusUnpaid,
	}

	if bookingType == entity.BookingTypeRoom {
		booking.RoomID = &target.id
	} else {
		booking.ActivityID = &target.id
	}

	// Step 1: persist the booking
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_type", string(bookingType)),
			zap.String("guest_email", req.GuestEmail),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_ref", booking.BookingRef),
		zap.String("booking_type", string(bookingType)),
		zap.String("item_name", target.name),
		zap.Int64("total_amount", total),
		zap.Bool("payment_on_arrival", booking.PaymentOnArrival),
	)

	// Confirmation email is best effort; the booking stands either way
	if err := s.mailer.Send(booking.GuestEmail, "Booking confirmation "+booking.BookingRef,
		confirmationBody(booking, target.name)); err != nil {
		s.log.Warn("Failed to send confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	resp := response.BookingToResponse(booking)
	resp.ItemName = target.name

	if booking.PaymentOnArrival {
		return &resp, nil
	}

	// Step 2: checkout session, issued only after step 1 succeeded. The
	// amount is the calculator's total converted to minor units, never
	// recomputed.
	session, err := s.payments.CreateCheckoutSession(ctx, &payment.CheckoutRequest{
		BookingID:   booking.ID.String(),
		Amount:      total * minorUnitsPerNAD,
		Currency:    s.config.Payment.Currency,
		Description: fmt.Sprintf("%s booking: %s", typeLabel(bookingType), target.name),
	})
	if err != nil {
		// The unpaid booking stays behind; settlement can still be taken
		// on arrival or resolved from the admin side.
		s.log.Error("Failed to create payment session",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.Int64("amount", total*minorUnitsPerNAD),
		)
		return nil, fmt.Errorf("payment session for booking %s: %w", booking.BookingRef, err)
	}

	resp.CheckoutURL = session.URL

	return &resp, nil
}

// GetBookingByRef is the guest-facing confirmation lookup by the public
// booking reference.
func (s *bookingService) GetBookingByRef(ctx context.Context, ref string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingRef(ctx, ref)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", ref)
	}

	resp := response.BookingToResponse(booking)
	resp.ItemName = s.lookupItemName(ctx, booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := response.BookingToResponse(booking)
		resp.ItemName = s.lookupItemName(ctx, booking)
		bookingResponses[i] = resp
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.PaymentStatus(req.PaymentStatus)

	if booking.PaymentStatus == entity.PaymentStatusCancelled && status == entity.PaymentStatusPaid {
		return fmt.Errorf("cannot mark cancelled booking %s as paid", booking.BookingRef)
	}

	if err := s.repo.Booking.UpdatePaymentStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("booking_ref", booking.BookingRef),
		zap.String("status", string(status)),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) resolveTarget(ctx context.Context, bookingType entity.BookingType, req *request.CreateBookingRequest) (*bookingTarget, error) {
	switch bookingType {
	case entity.BookingTypeRoom:
		if req.RoomID == "" {
			return nil, fmt.Errorf("validation failed: room_id is required for room bookings")
		}

		roomID, err := uuid.Parse(req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
		}

		room, err := s.repo.Room.FindByID(ctx, roomID)
		if err != nil || room == nil {
			return nil, fmt.Errorf("room %s not found", req.RoomID)
		}
		if !room.IsAvailable {
			return nil, fmt.Errorf("room %s is not available for booking", room.Name)
		}

		return &bookingTarget{id: room.ID, name: room.Name, priceNAD: room.PriceNAD, capacity: room.Capacity}, nil

	case entity.BookingTypeActivity:
		if req.ActivityID == "" {
			return nil, fmt.Errorf("validation failed: activity_id is required for activity bookings")
		}

		activityID, err := uuid.Parse(req.ActivityID)
		if err != nil {
			return nil, fmt.Errorf("invalid activity ID format %s: %w", req.ActivityID, err)
		}

		activity, err := s.repo.Activity.FindByID(ctx, activityID)
		if err != nil || activity == nil {
			return nil, fmt.Errorf("activity %s not found", req.ActivityID)
		}
		if !activity.IsAvailable {
			return nil, fmt.Errorf("activity %s is not available for booking", activity.Name)
		}

		return &bookingTarget{id: activity.ID, name: activity.Name, priceNAD: activity.PriceNAD, capacity: activity.Capacity}, nil

	default:
		return nil, fmt.Errorf("unknown booking type %q", bookingType)
	}
}

// parseBookingDates enforces the per-type date variant: rooms need a
// check-in/check-out pair, activities exactly one activity date.
func parseBookingDates(bookingType entity.BookingType, req *request.CreateBookingRequest) (checkIn, checkOut, activityDate *time.Time, err error) {
	switch bookingType {
	case entity.BookingTypeRoom:
		if req.CheckInDate == nil || req.CheckOutDate == nil {
			return nil, nil, nil, fmt.Errorf("validation failed: check_in_date and check_out_date are required for room bookings")
		}
		if req.ActivityDate != nil {
			return nil, nil, nil, fmt.Errorf("validation failed: activity_date is not allowed for room bookings")
		}

		checkIn, err = parseDate(*req.CheckInDate)
		if err != nil {
			return nil, nil, nil, err
		}
		checkOut, err = parseDate(*req.CheckOutDate)
		if err != nil {
			return nil, nil, nil, err
		}
		if !checkOut.After(*checkIn) {
			return nil, nil, nil, fmt.Errorf("check-out date must be after check-in date")
		}

		return checkIn, checkOut, nil, nil

	case entity.BookingTypeActivity:
		if req.ActivityDate == nil {
			return nil, nil, nil, fmt.Errorf("validation failed: activity_date is required for activity bookings")
		}
		if req.CheckInDate != nil || req.CheckOutDate != nil {
			return nil, nil, nil, fmt.Errorf("validation failed: check-in/check-out dates are not allowed for activity bookings")
		}

		activityDate, err = parseDate(*req.ActivityDate)
		if err != nil {
			return nil, nil, nil, err
		}

		return nil, nil, activityDate, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown booking type %q", bookingType)
	}
}

func parseDate(value string) (*time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", value, err)
	}
	return &parsed, nil
}

func typeLabel(bookingType entity.BookingType) string {
	if bookingType == entity.BookingTypeRoom {
		return "Room"
	}
	return "Activity"
}

func (s *bookingService) lookupItemName(ctx context.Context, booking *entity.Booking) string {
	if booking.BookingType == entity.BookingTypeRoom && booking.RoomID != nil {
		room, err := s.repo.Room.FindByID(ctx, *booking.RoomID)
		if err != nil {
			s.log.Error("Failed to look up room name for booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("room_id", booking.RoomID.String()),
			)
			return ""
		}
		if room != nil {
			return room.Name
		}
		return ""
	}

	if booking.ActivityID != nil {
		activity, err := s.repo.Activity.FindByID(ctx, *booking.ActivityID)
		if err != nil {
			s.log.Error("Failed to look up activity name for booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("activity_id", booking.ActivityID.String()),
			)
			return ""
		}
		if activity != nil {
			return activity.Name
		}
	}
	return ""
}

func confirmationBody(booking *entity.Booking, itemName string) string {
	var dates string
	if booking.BookingType == entity.BookingTypeRoom && booking.CheckIn != nil && booking.CheckOut != nil {
		dates = fmt.Sprintf("%s to %s", booking.CheckIn.Format("2006-01-02"), booking.CheckOut.Format("2006-01-02"))
	} else if booking.ActivityDate != nil {
		dates = booking.ActivityDate.Format("2006-01-02")
	}

	paymentNote := "Complete your payment online to confirm the booking."
	if booking.PaymentOnArrival {
		paymentNote = "Payment will be collected upon arrival."
	}

	return fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for your booking of <strong>%s</strong> (%s).</p>
<p>Reference: %s<br>Guests: %d<br>Total: %s</p>
<p>%s</p>`,
		booking.GuestName,
		itemName,
		dates,
		booking.BookingRef,
		booking.Guests,
		utils.FormatNAD(booking.TotalAmount),
		paymentNote,
	)
}
