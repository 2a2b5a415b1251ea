package usecase

import (
	"context"
	"fmt"

	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	// Public endpoints; only available items, featured first
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	GetActivities(ctx context.Context) ([]response.ActivityResponse, error)
	GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error)

	// Admin endpoints; full lists including hidden items
	GetAllRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetAllActivities(ctx context.Context) ([]response.ActivityResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAllAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return roomResponses, nil
}

func (s *catalogService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *catalogService) GetActivities(ctx context.Context) ([]response.ActivityResponse, error) {
	activities, err := s.repo.Activity.FindAllAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to get activities", zap.Error(err))
		return nil, fmt.Errorf("get activities: %w", err)
	}

	activityResponses := make([]response.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityResponses[i] = response.ActivityToResponse(activity)
	}

	return activityResponses, nil
}

func (s *catalogService) GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil || activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *catalogService) GetAllRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all rooms", zap.Error(err))
		return nil, fmt.Errorf("get all rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return roomResponses, nil
}

func (s *catalogService) GetAllActivities(ctx context.Context) ([]response.ActivityResponse, error) {
	activities, err := s.repo.Activity.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all activities", zap.Error(err))
		return nil, fmt.Errorf("get all activities: %w", err)
	}

	activityResponses := make([]response.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityResponses[i] = response.ActivityToResponse(activity)
	}

	return activityResponses, nil
}
