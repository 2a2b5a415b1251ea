package repository

import (
	"context"
	"fmt"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GalleryRepository interface {
	Create(ctx context.Context, item *entity.GalleryItem) error
	FindAll(ctx context.Context) ([]*entity.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

func (r *galleryRepository) Create(ctx context.Context, item *entity.GalleryItem) error {
	query := `
		INSERT INTO gallery (id, title, description, category, image_url, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Category,
		item.ImageURL,
		item.SortOrder,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create gallery item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("create gallery item %s: %w", item.Title, err)
	}

	return nil
}

func (r *galleryRepository) FindAll(ctx context.Context) ([]*entity.GalleryItem, error) {
	query := `
		SELECT id, title, description, category, image_url, sort_order, created_at
		FROM gallery
		ORDER BY sort_order, created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query gallery", zap.Error(err))
		return nil, fmt.Errorf("query gallery: %w", err)
	}
	defer rows.Close()

	var items []*entity.GalleryItem
	for rows.Next() {
		var item entity.GalleryItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.ImageURL,
			&item.SortOrder,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan gallery row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate gallery rows", zap.Error(err))
		return nil, fmt.Errorf("iterate gallery rows: %w", err)
	}

	return items, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gallery WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete gallery item",
			zap.Error(err),
			zap.String("gallery_id", id.String()),
		)
		return fmt.Errorf("delete gallery item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery item %s not found", id.String())
	}

	r.log.Info("Gallery item deleted", zap.String("gallery_id", id.String()))
	return nil
}
