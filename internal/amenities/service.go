package amenities

import (
	"context"
	"errors"
	"fmt"
	"math"

	"stayhub/internal/shared/constants"
	"stayhub/pkg/cache"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAmenityNotFound = errors.New("amenity not found")
	ErrAmenityExists   = errors.New("amenity already exists")
)

type Service interface {
	Create(ctx context.Context, req CreateAmenityRequest, createdBy uuid.UUID) (*AmenityResponse, error)
	GetByID(ctx context.Context, id string) (*AmenityResponse, error)
	GetAll(ctx context.Context, query AmenityListQuery) (*PaginatedAmenities, error)
	GetActive(ctx context.Context) ([]AmenityResponse, error)
	Update(ctx context.Context, id string, req UpdateAmenityRequest, updatedBy uuid.UUID) (*AmenityResponse, error)
	Delete(ctx context.Context, id string) error

	ReplaceRoomTypeAmenities(ctx context.Context, roomTypeID string, amenityIDs []string) ([]AmenityResponse, error)
	GetByRoomTypeID(ctx context.Context, roomTypeID string) ([]AmenityResponse, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateAmenityRequest, createdBy uuid.UUID) (*AmenityResponse, error) {
	slug := GenerateSlug(req.Name)

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check amenity slug: %w", err)
	}
	if existing != nil {
		return nil, ErrAmenityExists
	}

	amenity := &Amenity{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, amenity); err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	s.invalidateCache(ctx)

	resp := amenity.ToResponse()
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*AmenityResponse, error) {
	amenityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid amenity ID: %w", err)
	}

	var resp AmenityResponse
	cacheKey := constants.CACHE_KEY_AMENITY_DETAIL + id
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_AMENITIES, func() (interface{}, error) {
		amenity, err := s.repo.GetByID(ctx, amenityID)
		if err != nil {
			return nil, err
		}
		return amenity.ToResponse(), nil
	}, &resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, fmt.Errorf("failed to get amenity: %w", err)
	}

	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, query AmenityListQuery) (*PaginatedAmenities, error) {
	amenities, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	responses := make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		responses[i] = a.ToResponse()
	}

	return &PaginatedAmenities{
		Amenities:  responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) GetActive(ctx context.Context) ([]AmenityResponse, error) {
	var responses []AmenityResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_AMENITIES_ACTIVE, constants.TTL_AMENITIES, func() (interface{}, error) {
		amenities, err := s.repo.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]AmenityResponse, len(amenities))
		for i, a := range amenities {
			out[i] = a.ToResponse()
		}
		return out, nil
	}, &responses)
	if err != nil {
		return nil, fmt.Errorf("failed to list active amenities: %w", err)
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAmenityRequest, updatedBy uuid.UUID) (*AmenityResponse, error) {
	amenityID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid amenity ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, fmt.Errorf("failed to get amenity: %w", err)
	}

	updates := map[string]interface{}{
		"updated_by": updatedBy,
	}

	if req.Name != nil && *req.Name != existing.Name {
		slug := GenerateSlug(*req.Name)
		taken, err := s.repo.GetBySlug(ctx, slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check amenity slug: %w", err)
		}
		if taken != nil && taken.ID != amenityID {
			return nil, ErrAmenityExists
		}
		updates["name"] = *req.Name
		updates["slug"] = slug
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}

	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	amenity, err := s.repo.Update(ctx, amenityID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}

	s.invalidateCache(ctx)

	resp := amenity.ToResponse()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	amenityID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid amenity ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAmenityNotFound
		}
		return fmt.Errorf("failed to get amenity: %w", err)
	}

	if err := s.repo.Delete(ctx, amenityID); err != nil {
		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) ReplaceRoomTypeAmenities(ctx context.Context, roomTypeID string, amenityIDs []string) ([]AmenityResponse, error) {
	roomTypeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	ids := make([]uuid.UUID, len(amenityIDs))
	for i, raw := range amenityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid amenity ID %q: %w", raw, err)
		}

		// Every referenced amenity must exist
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAmenityNotFound
			}
			return nil, fmt.Errorf("failed to verify amenity: %w", err)
		}
		ids[i] = id
	}

	if err := s.repo.ReplaceRoomTypeAmenities(ctx, roomTypeUUID, ids); err != nil {
		return nil, fmt.Errorf("failed to assign amenities: %w", err)
	}

	s.invalidateCache(ctx)

	return s.GetByRoomTypeID(ctx, roomTypeID)
}

func (s *service) GetByRoomTypeID(ctx context.Context, roomTypeID string) ([]AmenityResponse, error) {
	roomTypeUUID, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	amenities, err := s.repo.GetByRoomTypeID(ctx, roomTypeUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room type amenities: %w", err)
	}

	responses := make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		responses[i] = a.ToResponse()
	}
	return responses, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_AMENITIES); err != nil {
		s.log.WithError(err).Warn("failed to invalidate amenities cache")
	}
	// Room type detail payloads embed amenity lists
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROOMTYPES); err != nil {
		s.log.WithError(err).Warn("failed to invalidate room types cache")
	}
}
