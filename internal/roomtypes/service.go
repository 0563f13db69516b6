package roomtypes

import (
	"context"
	"errors"
	"fmt"
	"math"

	"stayhub/internal/amenities"
	"stayhub/internal/shared/constants"
	"stayhub/pkg/cache"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound  = errors.New("room type not found")
	ErrRoomTypeNameTaken = errors.New("room type name already in use")
	ErrRoomTypeInUse     = errors.New("room type still has rooms assigned")
)

type Service interface {
	Create(ctx context.Context, req CreateRoomTypeRequest, createdBy uuid.UUID) (*RoomTypeResponse, error)
	GetByID(ctx context.Context, id string) (*RoomTypeResponse, error)
	GetAll(ctx context.Context, query RoomTypeListQuery) (*PaginatedRoomTypes, error)
	Update(ctx context.Context, id string, req UpdateRoomTypeRequest, updatedBy uuid.UUID) (*RoomTypeResponse, error)
	Delete(ctx context.Context, id string) error
	ReplaceAmenities(ctx context.Context, id string, amenityIDs []string) (*RoomTypeResponse, error)
}

type service struct {
	repo           Repository
	amenityService amenities.Service
	cache          cache.Service
	log            *logger.Logger
}

func NewService(repo Repository, amenityService amenities.Service, cacheService cache.Service) Service {
	return &service{
		repo:           repo,
		amenityService: amenityService,
		cache:          cacheService,
		log:            logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRoomTypeRequest, createdBy uuid.UUID) (*RoomTypeResponse, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check room type name: %w", err)
	}
	if existing != nil {
		return nil, ErrRoomTypeNameTaken
	}

	roomType := &RoomType{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		NightlyPrice: req.NightlyPrice,
		Capacity:     req.Capacity,
		BedCount:     req.BedCount,
		FloorArea:    req.FloorArea,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		CreatedBy:    createdBy,
	}

	if err := s.repo.Create(ctx, roomType); err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}

	if len(req.AmenityIDs) > 0 {
		if _, err := s.amenityService.ReplaceRoomTypeAmenities(ctx, roomType.ID.String(), req.AmenityIDs); err != nil {
			if errors.Is(err, amenities.ErrAmenityNotFound) {
				return nil, amenities.ErrAmenityNotFound
			}
			return nil, fmt.Errorf("failed to assign amenities: %w", err)
		}
	}

	s.invalidateCache(ctx)

	return s.buildResponse(ctx, roomType)
}

func (s *service) GetByID(ctx context.Context, id string) (*RoomTypeResponse, error) {
	roomTypeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	var resp RoomTypeResponse
	cacheKey := constants.BuildRoomTypeDetailKey(id)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_ROOMTYPE_DETAIL, func() (interface{}, error) {
		roomType, err := s.repo.GetByID(ctx, roomTypeID)
		if err != nil {
			return nil, err
		}
		built, err := s.buildResponse(ctx, roomType)
		if err != nil {
			return nil, err
		}
		return *built, nil
	}, &resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, query RoomTypeListQuery) (*PaginatedRoomTypes, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	// Only the unfiltered listing is cached; filtered queries go straight
	// to the database.
	cacheable := query.Search == "" && query.IsActive == nil && query.MinPrice == nil && query.MaxPrice == nil

	if cacheable {
		var cached PaginatedRoomTypes
		cacheKey := constants.BuildRoomTypeListKey(query.Page, query.Limit)
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	roomTypes, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	responses := make([]RoomTypeResponse, len(roomTypes))
	for i := range roomTypes {
		built, err := s.buildResponse(ctx, &roomTypes[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *built
	}

	result := &PaginatedRoomTypes{
		RoomTypes:  responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if cacheable {
		cacheKey := constants.BuildRoomTypeListKey(query.Page, query.Limit)
		if err := s.cache.Set(ctx, cacheKey, result, constants.TTL_ROOMTYPE_LIST); err != nil {
			s.log.WithError(err).Warn("failed to cache room type list")
		}
	}

	return result, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoomTypeRequest, updatedBy uuid.UUID) (*RoomTypeResponse, error) {
	roomTypeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	updates := map[string]interface{}{
		"updated_by": updatedBy,
	}

	if req.Name != nil && *req.Name != existing.Name {
		taken, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check room type name: %w", err)
		}
		if taken != nil {
			return nil, ErrRoomTypeNameTaken
		}
		updates["name"] = *req.Name
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.NightlyPrice != nil {
		updates["nightly_price"] = *req.NightlyPrice
	}

	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}

	if req.BedCount != nil {
		updates["bed_count"] = *req.BedCount
	}

	if req.FloorArea != nil {
		updates["floor_area"] = *req.FloorArea
	}

	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	roomType, err := s.repo.Update(ctx, roomTypeID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}

	if req.AmenityIDs != nil {
		if _, err := s.amenityService.ReplaceRoomTypeAmenities(ctx, id, req.AmenityIDs); err != nil {
			if errors.Is(err, amenities.ErrAmenityNotFound) {
				return nil, amenities.ErrAmenityNotFound
			}
			return nil, fmt.Errorf("failed to assign amenities: %w", err)
		}
	}

	s.invalidateCache(ctx)

	return s.buildResponse(ctx, roomType)
}

func (s *service) Delete(ctx context.Context, id string) error {
	roomTypeID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid room type ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("failed to get room type: %w", err)
	}

	roomCount, err := s.repo.CountRooms(ctx, roomTypeID)
	if err != nil {
		return fmt.Errorf("failed to count rooms for room type: %w", err)
	}
	if roomCount > 0 {
		return ErrRoomTypeInUse
	}

	if err := s.repo.Delete(ctx, roomTypeID); err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) ReplaceAmenities(ctx context.Context, id string, amenityIDs []string) (*RoomTypeResponse, error) {
	roomTypeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	roomType, err := s.repo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	if _, err := s.amenityService.ReplaceRoomTypeAmenities(ctx, id, amenityIDs); err != nil {
		if errors.Is(err, amenities.ErrAmenityNotFound) {
			return nil, amenities.ErrAmenityNotFound
		}
		return nil, fmt.Errorf("failed to assign amenities: %w", err)
	}

	s.invalidateCache(ctx)

	return s.buildResponse(ctx, roomType)
}

func (s *service) buildResponse(ctx context.Context, roomType *RoomType) (*RoomTypeResponse, error) {
	resp := roomType.ToResponse()

	amenityList, err := s.amenityService.GetByRoomTypeID(ctx, roomType.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get room type amenities: %w", err)
	}

	infos := make([]AmenityInfo, len(amenityList))
	for i, a := range amenityList {
		infos[i] = AmenityInfo{
			ID:   a.ID,
			Name: a.Name,
			Slug: a.Slug,
			Icon: a.Icon,
		}
	}
	resp.Amenities = infos

	roomCount, err := s.repo.CountRooms(ctx, roomType.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms for room type: %w", err)
	}
	resp.RoomCount = roomCount

	return &resp, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROOMTYPES); err != nil {
		s.log.WithError(err).Warn("failed to invalidate room types cache")
	}
}
