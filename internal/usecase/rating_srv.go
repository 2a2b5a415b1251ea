package usecase

import (
	"context"
	"fmt"
	"time"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/internal/dto/response"
	"guesthouse-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RatingService interface {
	CreateRating(ctx context.Context, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	GetItemRatings(ctx context.Context, ratingType, itemID string) (*response.RatingSummary, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) CreateRating(ctx context.Context, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ratingType := entity.RatingType(req.RatingType)

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		RatingType: ratingType,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		GuestName:  req.GuestName,
	}

	// The rated item must exist
	switch ratingType {
	case entity.RatingTypeRoom:
		if req.RoomID == "" {
			return nil, fmt.Errorf("validation failed: room_id is required for room ratings")
		}

		roomID, err := uuid.Parse(req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
		}

		room, err := s.repo.Room.FindByID(ctx, roomID)
		if err != nil || room == nil {
			return nil, fmt.Errorf("room %s not found", req.RoomID)
		}
		rating.RoomID = &room.ID

	case entity.RatingTypeActivity:
		if req.ActivityID == "" {
			return nil, fmt.Errorf("validation failed: activity_id is required for activity ratings")
		}

		activityID, err := uuid.Parse(req.ActivityID)
		if err != nil {
			return nil, fmt.Errorf("invalid activity ID format %s: %w", req.ActivityID, err)
		}

		activity, err := s.repo.Activity.FindByID(ctx, activityID)
		if err != nil || activity == nil {
			return nil, fmt.Errorf("activity %s not found", req.ActivityID)
		}
		rating.ActivityID = &activity.ID
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("rating_type", req.RatingType),
		)
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.String("rating_type", req.RatingType),
		zap.Int("rating", req.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

// GetItemRatings fetches the review list and the store-computed average with
// two concurrent queries. They are not transactionally consistent with each
// other; a review landing between the two may show in one result only, which
// is fine for an advisory display.
func (s *ratingService) GetItemRatings(ctx context.Context, ratingType, itemID string) (*response.RatingSummary, error) {
	rt := entity.RatingType(ratingType)
	if rt != entity.RatingTypeRoom && rt != entity.RatingTypeActivity {
		return nil, fmt.Errorf("invalid rating type %q", ratingType)
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid item ID format %s: %w", itemID, err)
	}

	var (
		ratings []*entity.Rating
		average float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		ratings, err = s.repo.Rating.FindByItem(gctx, rt, id)
		return err
	})

	g.Go(func() error {
		var err error
		average, err = s.repo.Rating.AverageForItem(gctx, rt, id)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to get item ratings",
			zap.Error(err),
			zap.String("rating_type", ratingType),
			zap.String("item_id", itemID),
		)
		return nil, fmt.Errorf("get ratings for %s %s: %w", ratingType, itemID, err)
	}

	ratingResponses := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		ratingResponses[i] = response.RatingToResponse(rating)
	}

	return &response.RatingSummary{
		AverageRating: average,
		ReviewCount:   len(ratingResponses),
		Ratings:       ratingResponses,
	}, nil
}
