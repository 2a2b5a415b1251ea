package repository

import (
	"context"
	"fmt"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingRef(ctx context.Context, ref string) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_ref, booking_type, room_id, activity_id, guest_name, guest_email, guest_phone, guests, special_requests, check_in, check_out, activity_date, total_amount, payment_on_arrival, payment_status, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.BookingType,
		&booking.RoomID,
		&booking.ActivityID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.Guests,
		&booking.SpecialRequests,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.ActivityDate,
		&booking.TotalAmount,
		&booking.PaymentOnArrival,
		&booking.PaymentStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_ref, booking_type, room_id, activity_id, guest_name, guest_email, guest_phone, guests, special_requests, check_in, check_out, activity_date, total_amount, payment_on_arrival, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingRef,
		booking.BookingType,
		booking.RoomID,
		booking.ActivityID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.Guests,
		booking.SpecialRequests,
		booking.CheckIn,
		booking.CheckOut,
		booking.ActivityDate,
		booking.TotalAmount,
		booking.PaymentOnArrival,
		booking.PaymentStatus,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
			zap.String("guest_email", booking.GuestEmail),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingRef, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBookingRef(ctx context.Context, ref string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_ref = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, ref))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ref",
			zap.Error(err),
			zap.String("booking_ref", ref),
		)
		return nil, fmt.Errorf("find booking by ref %s: %w", ref, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to query bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s payment status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
