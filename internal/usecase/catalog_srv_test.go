package usecase

import (
	"context"
	"strings"
	"testing"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newCatalogFixture() (CatalogService, uuid.UUID, uuid.UUID) {
	roomID := uuid.New()
	hiddenID := uuid.New()

	rooms := &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{
		roomID:   {Base: entity.Base{ID: roomID}, Name: "Garden Room", IsAvailable: true},
		hiddenID: {Base: entity.Base{ID: hiddenID}, Name: "Closed Wing", IsAvailable: false},
	}}
	activities := &fakeActivityRepo{activities: map[uuid.UUID]*entity.Activity{}}

	repo := &repository.Repository{Room: rooms, Activity: activities}
	return NewCatalogService(repo, zap.NewNop()), roomID, hiddenID
}

func TestGetRoomsHidesUnavailable(t *testing.T) {
	service, _, _ := newCatalogFixture()

	rooms, err := service.GetRooms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rooms) != 1 {
		t.Fatalf("rooms listed = %d, want only the available one", len(rooms))
	}
	if rooms[0].Name != "Garden Room" {
		t.Errorf("room name = %q, want Garden Room", rooms[0].Name)
	}
}

func TestGetAllRoomsIncludesUnavailable(t *testing.T) {
	service, _, _ := newCatalogFixture()

	rooms, err := service.GetAllRooms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rooms) != 2 {
		t.Errorf("rooms listed = %d, want 2 for admin view", len(rooms))
	}
}

func TestGetRoomByID(t *testing.T) {
	service, roomID, _ := newCatalogFixture()

	room, err := service.GetRoomByID(context.Background(), roomID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Name != "Garden Room" {
		t.Errorf("room name = %q, want Garden Room", room.Name)
	}

	_, err = service.GetRoomByID(context.Background(), uuid.New().String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found", err)
	}

	if _, err := service.GetRoomByID(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected error for malformed room ID")
	}
}
