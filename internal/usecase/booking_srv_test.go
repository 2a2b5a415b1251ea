package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/pkg/payment"
	"guesthouse-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeRoomRepo struct {
	rooms   map[uuid.UUID]*entity.Room
	findErr error
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindAllAvailable(_ context.Context) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.IsAvailable {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

type fakeActivityRepo struct {
	activities map[uuid.UUID]*entity.Activity
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	return f.activities[id], nil
}

func (f *fakeActivityRepo) FindAllAvailable(_ context.Context) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, activity := range f.activities {
		if activity.IsAvailable {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) FindAll(_ context.Context) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, activity := range f.activities {
		out = append(out, activity)
	}
	return out, nil
}

func (f *fakeActivityRepo) Update(_ context.Context, activity *entity.Activity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.activities, id)
	return nil
}

type fakeBookingRepo struct {
	created   []*entity.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, booking := range f.created {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByBookingRef(_ context.Context, ref string) (*entity.Booking, error) {
	for _, booking := range f.created {
		if booking.BookingRef == ref {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	if offset >= len(f.created) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.created) {
		end = len(f.created)
	}
	return f.created[offset:end], nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	for _, booking := range f.created {
		if booking.ID == bookingID {
			booking.PaymentStatus = status
			return nil
		}
	}
	return errors.New("no rows updated")
}

type fakeGateway struct {
	calls   []*payment.CheckoutRequest
	session *payment.CheckoutSession
	err     error
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, req *payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	f.sent = append(f.sent, to)
	return f.err
}

// ==================== FIXTURES ====================

type bookingFixture struct {
	service  BookingService
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	gateway  *fakeGateway
	mailer   *fakeSender
	roomID   uuid.UUID
	actID    uuid.UUID
}

func newBookingFixture() *bookingFixture {
	roomID := uuid.New()
	actID := uuid.New()

	rooms := &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{
		roomID: {
			Base:        entity.Base{ID: roomID},
			Name:        "Garden Room",
			Capacity:    3,
			PriceNAD:    1500,
			IsAvailable: true,
		},
	}}

	activities := &fakeActivityRepo{activities: map[uuid.UUID]*entity.Activity{
		actID: {
			Base:        entity.Base{ID: actID},
			Name:        "Sossusvlei Day Trip",
			Capacity:    12,
			PriceNAD:    800,
			IsAvailable: true,
		},
	}}

	bookings := &fakeBookingRepo{}
	gateway := &fakeGateway{session: &payment.CheckoutSession{
		SessionID: "cs_test_123",
		URL:       "https://pay.example.com/cs_test_123",
	}}
	mailer := &fakeSender{}

	repo := &repository.Repository{
		Room:     rooms,
		Activity: activities,
		Booking:  bookings,
	}
	config := &utils.Config{Payment: utils.PaymentConfig{Currency: "NAD"}}

	return &bookingFixture{
		service:  NewBookingService(repo, gateway, mailer, config, zap.NewNop()),
		rooms:    rooms,
		bookings: bookings,
		gateway:  gateway,
		mailer:   mailer,
		roomID:   roomID,
		actID:    actID,
	}
}

func strPtr(s string) *string { return &s }

func roomRequest(fx *bookingFixture, paymentMethod string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		BookingType:   "room",
		RoomID:        fx.roomID.String(),
		GuestName:     "Anna Shikongo",
		GuestEmail:    "anna@example.com",
		Guests:        2,
		CheckInDate:   strPtr("2026-03-10"),
		CheckOutDate:  strPtr("2026-03-13"),
		PaymentMethod: paymentMethod,
	}
}

// ==================== TESTS ====================

func TestCreateBookingOnArrival(t *testing.T) {
	fx := newBookingFixture()

	resp, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fx.gateway.calls) != 0 {
		t.Errorf("gateway called %d times for on-arrival booking, want 0", len(fx.gateway.calls))
	}
	if resp.CheckoutURL != "" {
		t.Errorf("checkout URL = %q, want empty for on-arrival booking", resp.CheckoutURL)
	}
	if !resp.PaymentOnArrival {
		t.Error("payment_on_arrival = false, want true")
	}
	if resp.PaymentStatus != entity.PaymentStatusUnpaid {
		t.Errorf("payment status = %s, want unpaid", resp.PaymentStatus)
	}
	if resp.TotalAmount != 4500 {
		t.Errorf("total = %d, want 4500 for 3 nights at 1500", resp.TotalAmount)
	}
	if resp.ItemName != "Garden Room" {
		t.Errorf("item name = %q, want Garden Room", resp.ItemName)
	}
	if len(fx.bookings.created) != 1 {
		t.Fatalf("bookings created = %d, want 1", len(fx.bookings.created))
	}
	if len(fx.mailer.sent) != 1 || fx.mailer.sent[0] != "anna@example.com" {
		t.Errorf("confirmation email recipients = %v, want [anna@example.com]", fx.mailer.sent)
	}
}

func TestCreateBookingOnline(t *testing.T) {
	fx := newBookingFixture()

	resp, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "online"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fx.gateway.calls) != 1 {
		t.Fatalf("gateway called %d times, want 1", len(fx.gateway.calls))
	}

	call := fx.gateway.calls[0]
	if call.Amount != 450000 {
		t.Errorf("checkout amount = %d, want 450000 minor units for NAD 4500", call.Amount)
	}
	if call.Currency != "NAD" {
		t.Errorf("checkout currency = %q, want NAD", call.Currency)
	}
	if call.Description != "Room booking: Garden Room" {
		t.Errorf("checkout description = %q", call.Description)
	}

	if resp.CheckoutURL != "https://pay.example.com/cs_test_123" {
		t.Errorf("checkout URL = %q", resp.CheckoutURL)
	}
	if resp.PaymentStatus != entity.PaymentStatusUnpaid {
		t.Errorf("payment status = %s, want unpaid until the provider confirms", resp.PaymentStatus)
	}
}

func TestCreateBookingActivity(t *testing.T) {
	fx := newBookingFixture()

	req := &request.CreateBookingRequest{
		BookingType:   "activity",
		ActivityID:    fx.actID.String(),
		GuestName:     "Josef Amadhila",
		GuestEmail:    "josef@example.com",
		Guests:        4,
		ActivityDate:  strPtr("2026-04-02"),
		PaymentMethod: "online",
	}

	resp, err := fx.service.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TotalAmount != 3200 {
		t.Errorf("total = %d, want 3200 for 4 guests at 800", resp.TotalAmount)
	}
	if len(fx.gateway.calls) != 1 {
		t.Fatalf("gateway called %d times, want 1", len(fx.gateway.calls))
	}
	if fx.gateway.calls[0].Description != "Activity booking: Sossusvlei Day Trip" {
		t.Errorf("checkout description = %q", fx.gateway.calls[0].Description)
	}
}

func TestCreateBookingInsertFailureSkipsPayment(t *testing.T) {
	fx := newBookingFixture()
	fx.bookings.createErr = errors.New("connection refused")

	_, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "online"))
	if err == nil {
		t.Fatal("expected error when booking insert fails")
	}
	if len(fx.gateway.calls) != 0 {
		t.Errorf("gateway called %d times after failed insert, want 0", len(fx.gateway.calls))
	}
}

func TestCreateBookingPaymentFailureKeepsBooking(t *testing.T) {
	fx := newBookingFixture()
	fx.gateway.err = errors.New("provider timeout")

	_, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "online"))
	if err == nil {
		t.Fatal("expected error when checkout session fails")
	}
	if !strings.Contains(err.Error(), "payment session") {
		t.Errorf("error = %v, want payment session failure", err)
	}
	if len(fx.bookings.created) != 1 {
		t.Fatalf("bookings created = %d, want the unpaid booking kept", len(fx.bookings.created))
	}
	if fx.bookings.created[0].PaymentStatus != entity.PaymentStatusUnpaid {
		t.Errorf("kept booking status = %s, want unpaid", fx.bookings.created[0].PaymentStatus)
	}
}

func TestCreateBookingGuestLimit(t *testing.T) {
	fx := newBookingFixture()

	// Room capacity is 3, below the per-type cap of 4
	req := roomRequest(fx, "arrival")
	req.Guests = 4

	_, err := fx.service.CreateBooking(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for guest count above room capacity")
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %v, want guest limit message", err)
	}
	if len(fx.bookings.created) != 0 {
		t.Errorf("bookings created = %d, want 0", len(fx.bookings.created))
	}
}

func TestCreateBookingDateVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fx *bookingFixture, req *request.CreateBookingRequest)
	}{
		{
			name: "room booking without dates",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.CheckInDate = nil
				req.CheckOutDate = nil
			},
		},
		{
			name: "room booking missing check-out",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.CheckOutDate = nil
			},
		},
		{
			name: "room booking with activity date",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.ActivityDate = strPtr("2026-03-10")
			},
		},
		{
			name: "room booking with inverted dates",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.CheckInDate = strPtr("2026-03-13")
				req.CheckOutDate = strPtr("2026-03-10")
			},
		},
		{
			name: "activity booking without activity date",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.BookingType = "activity"
				req.RoomID = ""
				req.ActivityID = fx.actID.String()
				req.CheckInDate = nil
				req.CheckOutDate = nil
			},
		},
		{
			name: "activity booking with room dates",
			mutate: func(fx *bookingFixture, req *request.CreateBookingRequest) {
				req.BookingType = "activity"
				req.RoomID = ""
				req.ActivityID = fx.actID.String()
				req.ActivityDate = strPtr("2026-04-02")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newBookingFixture()
			req := roomRequest(fx, "arrival")
			tt.mutate(fx, req)

			if _, err := fx.service.CreateBooking(context.Background(), req); err == nil {
				t.Fatal("expected error")
			}
			if len(fx.bookings.created) != 0 {
				t.Errorf("bookings created = %d, want 0", len(fx.bookings.created))
			}
		})
	}
}

func TestCreateBookingUnavailableRoom(t *testing.T) {
	fx := newBookingFixture()
	fx.rooms.rooms[fx.roomID].IsAvailable = false

	_, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival"))
	if err == nil {
		t.Fatal("expected error for unavailable room")
	}
	if !strings.Contains(err.Error(), "not available") {
		t.Errorf("error = %v, want not-available message", err)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	fx := newBookingFixture()

	req := roomRequest(fx, "arrival")
	req.RoomID = uuid.New().String()

	_, err := fx.service.CreateBooking(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for unknown room")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestCreateBookingEmailFailureIsNotFatal(t *testing.T) {
	fx := newBookingFixture()
	fx.mailer.err = errors.New("smtp unreachable")

	if _, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fx.bookings.created) != 1 {
		t.Errorf("bookings created = %d, want 1", len(fx.bookings.created))
	}
}

func TestGetBookingByRef(t *testing.T) {
	fx := newBookingFixture()

	created, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := fx.service.GetBookingByRef(context.Background(), created.BookingRef)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.ID != created.ID {
		t.Errorf("booking ID = %s, want %s", found.ID, created.ID)
	}
	if found.ItemName != "Garden Room" {
		t.Errorf("item name = %q, want Garden Room", found.ItemName)
	}
}

func TestGetBookingByRefUnknown(t *testing.T) {
	fx := newBookingFixture()

	_, err := fx.service.GetBookingByRef(context.Background(), "GH-unknown")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	fx := newBookingFixture()

	resp, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = fx.service.UpdatePaymentStatus(context.Background(), resp.ID, &request.UpdateBookingStatusRequest{PaymentStatus: "paid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fx.bookings.created[0].PaymentStatus; got != entity.PaymentStatusPaid {
		t.Errorf("status = %s, want paid", got)
	}
}

func TestUpdatePaymentStatusCancelledStaysCancelled(t *testing.T) {
	fx := newBookingFixture()

	resp, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := fx.service.UpdatePaymentStatus(context.Background(), resp.ID, &request.UpdateBookingStatusRequest{PaymentStatus: "cancelled"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = fx.service.UpdatePaymentStatus(context.Background(), resp.ID, &request.UpdateBookingStatusRequest{PaymentStatus: "paid"})
	if err == nil {
		t.Fatal("expected error marking a cancelled booking paid")
	}
	if !strings.Contains(err.Error(), "cannot") {
		t.Errorf("error = %v, want invalid state message", err)
	}
}

func TestUpdatePaymentStatusUnknownBooking(t *testing.T) {
	fx := newBookingFixture()

	err := fx.service.UpdatePaymentStatus(context.Background(), uuid.New().String(), &request.UpdateBookingStatusRequest{PaymentStatus: "paid"})
	if err == nil {
		t.Fatal("expected error for unknown booking")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestGetBookingsPagination(t *testing.T) {
	fx := newBookingFixture()

	for i := 0; i < 3; i++ {
		if _, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, err := fx.service.GetBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", page.Pagination.Total)
	}
	if page.Data[0].ItemName != "Garden Room" {
		t.Errorf("item name = %q, want Garden Room", page.Data[0].ItemName)
	}
}

func TestGetBookingsItemLookupFailure(t *testing.T) {
	fx := newBookingFixture()

	if _, err := fx.service.CreateBooking(context.Background(), roomRequest(fx, "arrival")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A failing name lookup degrades to an empty item name, not an error
	fx.rooms.findErr = errors.New("connection refused")

	page, err := fx.service.GetBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("page size = %d, want 1", len(page.Data))
	}
	if page.Data[0].ItemName != "" {
		t.Errorf("item name = %q, want empty on lookup failure", page.Data[0].ItemName)
	}
}
