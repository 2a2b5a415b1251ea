package usecase

import (
	"context"
	"errors"
	"testing"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeRatingRepo struct {
	ratings   []*entity.Rating
	average   float64
	findErr   error
	avgErr    error
	createErr error
}

func (f *fakeRatingRepo) Create(_ context.Context, rating *entity.Rating) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepo) FindByItem(_ context.Context, ratingType entity.RatingType, itemID uuid.UUID) ([]*entity.Rating, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Rating
	for _, rating := range f.ratings {
		if rating.RatingType != ratingType {
			continue
		}
		if ratingType == entity.RatingTypeRoom && rating.RoomID != nil && *rating.RoomID == itemID {
			out = append(out, rating)
		}
		if ratingType == entity.RatingTypeActivity && rating.ActivityID != nil && *rating.ActivityID == itemID {
			out = append(out, rating)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) AverageForItem(_ context.Context, _ entity.RatingType, _ uuid.UUID) (float64, error) {
	if f.avgErr != nil {
		return 0, f.avgErr
	}
	return f.average, nil
}

type ratingFixture struct {
	service RatingService
	ratings *fakeRatingRepo
	roomID  uuid.UUID
	actID   uuid.UUID
}

func newRatingFixture() *ratingFixture {
	roomID := uuid.New()
	actID := uuid.New()

	rooms := &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{
		roomID: {Base: entity.Base{ID: roomID}, Name: "Garden Room", IsAvailable: true},
	}}
	activities := &fakeActivityRepo{activities: map[uuid.UUID]*entity.Activity{
		actID: {Base: entity.Base{ID: actID}, Name: "Sossusvlei Day Trip", IsAvailable: true},
	}}
	ratings := &fakeRatingRepo{}

	repo := &repository.Repository{
		Room:     rooms,
		Activity: activities,
		Rating:   ratings,
	}

	return &ratingFixture{
		service: NewRatingService(repo, zap.NewNop()),
		ratings: ratings,
		roomID:  roomID,
		actID:   actID,
	}
}

func TestCreateRating(t *testing.T) {
	fx := newRatingFixture()

	resp, err := fx.service.CreateRating(context.Background(), &request.CreateRatingRequest{
		RatingType: "room",
		RoomID:     fx.roomID.String(),
		Rating:     5,
		GuestName:  "Maria Nangolo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Rating != 5 {
		t.Errorf("rating = %d, want 5", resp.Rating)
	}
	if len(fx.ratings.ratings) != 1 {
		t.Fatalf("ratings stored = %d, want 1", len(fx.ratings.ratings))
	}
	if fx.ratings.ratings[0].RoomID == nil || *fx.ratings.ratings[0].RoomID != fx.roomID {
		t.Error("stored rating not linked to the rated room")
	}
}

func TestCreateRatingUnknownItem(t *testing.T) {
	fx := newRatingFixture()

	tests := []struct {
		name string
		req  *request.CreateRatingRequest
	}{
		{
			name: "unknown room",
			req: &request.CreateRatingRequest{
				RatingType: "room",
				RoomID:     uuid.New().String(),
				Rating:     4,
				GuestName:  "Maria Nangolo",
			},
		},
		{
			name: "unknown activity",
			req: &request.CreateRatingRequest{
				RatingType: "activity",
				ActivityID: uuid.New().String(),
				Rating:     4,
				GuestName:  "Maria Nangolo",
			},
		},
		{
			name: "room rating without room ID",
			req: &request.CreateRatingRequest{
				RatingType: "room",
				Rating:     4,
				GuestName:  "Maria Nangolo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fx.service.CreateRating(context.Background(), tt.req); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetItemRatings(t *testing.T) {
	fx := newRatingFixture()

	for i, score := range []int{5, 4} {
		_, err := fx.service.CreateRating(context.Background(), &request.CreateRatingRequest{
			RatingType: "room",
			RoomID:     fx.roomID.String(),
			Rating:     score,
			GuestName:  "Guest",
		})
		if err != nil {
			t.Fatalf("seed rating %d: %v", i, err)
		}
	}
	fx.ratings.average = 4.5

	summary, err := fx.service.GetItemRatings(context.Background(), "room", fx.roomID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2", summary.ReviewCount)
	}
	if summary.AverageRating != 4.5 {
		t.Errorf("average = %f, want 4.5", summary.AverageRating)
	}
	if len(summary.Ratings) != 2 {
		t.Errorf("ratings listed = %d, want 2", len(summary.Ratings))
	}
}

func TestGetItemRatingsEmpty(t *testing.T) {
	fx := newRatingFixture()

	summary, err := fx.service.GetItemRatings(context.Background(), "room", fx.roomID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.AverageRating != 0 {
		t.Errorf("average = %f, want 0 with no reviews", summary.AverageRating)
	}
	if summary.ReviewCount != 0 {
		t.Errorf("review count = %d, want 0", summary.ReviewCount)
	}
}

func TestGetItemRatingsInvalidInput(t *testing.T) {
	fx := newRatingFixture()

	if _, err := fx.service.GetItemRatings(context.Background(), "hotel", fx.roomID.String()); err == nil {
		t.Error("expected error for invalid rating type")
	}
	if _, err := fx.service.GetItemRatings(context.Background(), "room", "not-a-uuid"); err == nil {
		t.Error("expected error for malformed item ID")
	}
}

func TestGetItemRatingsQueryFailure(t *testing.T) {
	fx := newRatingFixture()
	fx.ratings.avgErr = errors.New("query cancelled")

	if _, err := fx.service.GetItemRatings(context.Background(), "room", fx.roomID.String()); err == nil {
		t.Error("expected error when one of the concurrent queries fails")
	}
}
