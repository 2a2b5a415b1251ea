package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"guesthouse-booking/internal/data/entity"
	"guesthouse-booking/internal/data/repository"
	"guesthouse-booking/internal/dto/request"
	"guesthouse-booking/internal/dto/response"
	"guesthouse-booking/pkg/storage"
	"guesthouse-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageFile is an uploaded image on its way to bucket storage.
type ImageFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type AdminService interface {
	// Content management; images are uploaded before the record insert and
	// any upload failure aborts the whole operation
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest, images []ImageFile) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
	CreateActivity(ctx context.Context, req *request.CreateActivityRequest, images []ImageFile) (*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, activityID string) error
	CreateGalleryItems(ctx context.Context, req *request.CreateGalleryRequest, images []ImageFile) ([]response.GalleryItemResponse, error)
	DeleteGalleryItem(ctx context.Context, itemID string) error

	// Gallery listing, shared with the public site
	GetGallery(ctx context.Context) ([]response.GalleryItemResponse, error)
}

type adminService struct {
	repo     *repository.Repository
	uploader storage.Uploader
	log      *zap.Logger
}

func NewAdminService(repo *repository.Repository, uploader storage.Uploader, log *zap.Logger) AdminService {
	return &adminService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest, images []ImageFile) (*response.RoomResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	imageURLs, err := s.uploadImages(ctx, "room-images", images)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		SizeSqm:     req.SizeSqm,
		PriceNAD:    req.PriceNAD,
		Amenities:   req.Amenities,
		Images:      imageURLs,
		IsFeatured:  req.IsFeatured,
		IsAvailable: isAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("image_count", len(imageURLs)),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *adminService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.SizeSqm = req.SizeSqm
	room.PriceNAD = req.PriceNAD
	room.Amenities = req.Amenities
	room.IsFeatured = req.IsFeatured
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated",
		zap.String("room_id", roomID),
		zap.String("name", room.Name),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *adminService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return err
	}

	return nil
}

func (s *adminService) CreateActivity(ctx context.Context, req *request.CreateActivityRequest, images []ImageFile) (*response.ActivityResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	imageURLs, err := s.uploadImages(ctx, "activity-images", images)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Description:     req.Description,
		Capacity:        req.Capacity,
		PriceNAD:        req.PriceNAD,
		Duration:        req.Duration,
		Category:        req.Category,
		DifficultyLevel: req.DifficultyLevel,
		Includes:        req.Includes,
		Images:          imageURLs,
		IsFeatured:      req.IsFeatured,
		IsAvailable:     isAvailable,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("name", activity.Name),
		zap.Int("image_count", len(imageURLs)),
	)

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *adminService) UpdateActivity(ctx context.Context, activityID string, req *request.UpdateActivityRequest) (*response.ActivityResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil || activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	activity.Name = req.Name
	activity.Description = req.Description
	activity.Capacity = req.Capacity
	activity.PriceNAD = req.PriceNAD
	activity.Duration = req.Duration
	activity.Category = req.Category
	activity.DifficultyLevel = req.DifficultyLevel
	activity.Includes = req.Includes
	activity.IsFeatured = req.IsFeatured
	if req.IsAvailable != nil {
		activity.IsAvailable = *req.IsAvailable
	}
	activity.UpdatedAt = time.Now()

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activityID),
		)
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.log.Info("Activity updated",
		zap.String("activity_id", activityID),
		zap.String("name", activity.Name),
	)

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *adminService) DeleteActivity(ctx context.Context, activityID string) error {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", activityID),
		)
		return err
	}

	return nil
}

// CreateGalleryItems uploads the batch and inserts one gallery record per
// uploaded image.
func (s *adminService) CreateGalleryItems(ctx context.Context, req *request.CreateGalleryRequest, images []ImageFile) ([]response.GalleryItemResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create gallery validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("validation failed: at least one image is required for gallery items")
	}

	imageURLs, err := s.uploadImages(ctx, "gallery", images)
	if err != nil {
		return nil, err
	}

	items := make([]response.GalleryItemResponse, 0, len(imageURLs))
	for _, url := range imageURLs {
		item := &entity.GalleryItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    url,
			SortOrder:   req.SortOrder,
		}

		if err := s.repo.Gallery.Create(ctx, item); err != nil {
			s.log.Error("Failed to create gallery item",
				zap.Error(err),
				zap.String("title", req.Title),
			)
			return nil, fmt.Errorf("create gallery item: %w", err)
		}

		items = append(items, response.GalleryItemToResponse(item))
	}

	s.log.Info("Gallery items created",
		zap.String("title", req.Title),
		zap.Int("count", len(items)),
	)

	return items, nil
}

func (s *adminService) DeleteGalleryItem(ctx context.Context, itemID string) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("invalid gallery item ID format %s: %w", itemID, err)
	}

	if err := s.repo.Gallery.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete gallery item",
			zap.Error(err),
			zap.String("gallery_id", itemID),
		)
		return err
	}

	return nil
}

func (s *adminService) GetGallery(ctx context.Context) ([]response.GalleryItemResponse, error) {
	items, err := s.repo.Gallery.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get gallery", zap.Error(err))
		return nil, fmt.Errorf("get gallery: %w", err)
	}

	itemResponses := make([]response.GalleryItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.GalleryItemToResponse(item)
	}

	return itemResponses, nil
}

// uploadImages pushes the batch to bucket storage one by one. The first
// failure aborts the batch so the dependent insert never runs against a
// partial upload.
func (s *adminService) uploadImages(ctx context.Context, folder string, images []ImageFile) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.uploader.Upload(ctx, folder, image.Filename, image.ContentType, image.Body)
		if err != nil {
			s.log.Error("Image upload failed, aborting batch",
				zap.Error(err),
				zap.String("folder", folder),
				zap.String("filename", image.Filename),
				zap.Int("uploaded", len(urls)),
			)
			return nil, fmt.Errorf("upload image %s: %w", image.Filename, err)
		}
		urls = append(urls, url)
	}

	return urls, nil
}
