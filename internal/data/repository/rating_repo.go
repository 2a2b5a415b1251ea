package repository

import (
	"context"
	"fmt"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByItem(ctx context.Context, ratingType entity.RatingType, itemID uuid.UUID) ([]*entity.Rating, error)
	AverageForItem(ctx context.Context, ratingType entity.RatingType, itemID uuid.UUID) (float64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// itemColumn picks the FK column for the rating type. Room and activity
// ratings live in the same table with a type discriminator.
func itemColumn(ratingType entity.RatingType) string {
	if ratingType == entity.RatingTypeRoom {
		return "room_id"
	}
	return "activity_id"
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, rating_type, room_id, activity_id, rating, review_text, guest_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.RatingType,
		rating.RoomID,
		rating.ActivityID,
		rating.Rating,
		rating.ReviewText,
		rating.GuestName,
		rating.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("rating_type", string(rating.RatingType)),
		)
		return fmt.Errorf("create rating: %w", err)
	}

	return nil
}

func (r *ratingRepository) FindByItem(ctx context.Context, ratingType entity.RatingType, itemID uuid.UUID) ([]*entity.Rating, error) {
	query := fmt.Sprintf(`
		SELECT id, rating_type, room_id, activity_id, rating, review_text, guest_name, created_at
		FROM ratings
		WHERE rating_type = $1 AND %s = $2
		ORDER BY created_at DESC
	`, itemColumn(ratingType))

	rows, err := r.db.Query(ctx, query, ratingType, itemID)
	if err != nil {
		r.log.Error("Failed to query ratings",
			zap.Error(err),
			zap.String("rating_type", string(ratingType)),
			zap.String("item_id", itemID.String()),
		)
		return nil, fmt.Errorf("query ratings for %s %s: %w", string(ratingType), itemID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		var rating entity.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.RatingType,
			&rating.RoomID,
			&rating.ActivityID,
			&rating.Rating,
			&rating.ReviewText,
			&rating.GuestName,
			&rating.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate rating rows", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

// AverageForItem computes the mean rating server-side; items with no ratings
// yield 0, not an error.
func (r *ratingRepository) AverageForItem(ctx context.Context, ratingType entity.RatingType, itemID uuid.UUID) (float64, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(rating), 0)
		FROM ratings
		WHERE rating_type = $1 AND %s = $2
	`, itemColumn(ratingType))

	var average float64
	if err := r.db.QueryRow(ctx, query, ratingType, itemID).Scan(&average); err != nil {
		r.log.Error("Failed to compute average rating",
			zap.Error(err),
			zap.String("rating_type", string(ratingType)),
			zap.String("item_id", itemID.String()),
		)
		return 0, fmt.Errorf("average rating for %s %s: %w", string(ratingType), itemID.String(), err)
	}

	return average, nil
}
