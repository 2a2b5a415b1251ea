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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAllAvailable(ctx context.Context) ([]*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, name, description, capacity, size_sqm, price_nad, amenities, images, is_featured, is_available, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.Capacity,
		&room.SizeSqm,
		&room.PriceNAD,
		&room.Amenities,
		&room.Images,
		&room.IsFeatured,
		&room.IsAvailable,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, description, capacity, size_sqm, price_nad, amenities, images, is_featured, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Description,
		room.Capacity,
		room.SizeSqm,
		room.PriceNAD,
		room.Amenities,
		room.Images,
		room.IsFeatured,
		room.IsAvailable,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindAllAvailable(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE is_available = true
		ORDER BY is_featured DESC, created_at
	`

	return r.queryRooms(ctx, query)
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY created_at`

	return r.queryRooms(ctx, query)
}

func (r *roomRepository) queryRooms(ctx context.Context, query string, args ...any) ([]*entity.Room, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query rooms", zap.Error(err))
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate room rows", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, description = $3, capacity = $4, size_sqm = $5, price_nad = $6,
		    amenities = $7, images = $8, is_featured = $9, is_available = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Description,
		room.Capacity,
		room.SizeSqm,
		room.PriceNAD,
		room.Amenities,
		room.Images,
		room.IsFeatured,
		room.IsAvailable,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}
