package floors

import (
	"context"
	"errors"
	"fmt"

	"stayhub/internal/shared/constants"
	"stayhub/pkg/cache"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFloorNotFound     = errors.New("floor not found")
	ErrFloorNumberTaken  = errors.New("floor number already in use")
	ErrFloorHasRooms     = errors.New("floor still has rooms assigned")
)

type Service interface {
	Create(ctx context.Context, req CreateFloorRequest) (*FloorResponse, error)
	GetByID(ctx context.Context, id string) (*FloorResponse, error)
	GetAll(ctx context.Context) ([]FloorResponse, error)
	Update(ctx context.Context, id string, req UpdateFloorRequest) (*FloorResponse, error)
	Delete(ctx context.Context, id string) error
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

func (s *service) Create(ctx context.Context, req CreateFloorRequest) (*FloorResponse, error) {
	existing, err := s.repo.GetByNumber(ctx, req.Number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check floor number: %w", err)
	}
	if existing != nil {
		return nil, ErrFloorNumberTaken
	}

	floor := &Floor{
		ID:          uuid.New(),
		Number:      req.Number,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, floor); err != nil {
		return nil, fmt.Errorf("failed to create floor: %w", err)
	}

	s.invalidateCache(ctx)

	resp := floor.ToResponse()
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*FloorResponse, error) {
	floorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid floor ID: %w", err)
	}

	floor, err := s.repo.GetByID(ctx, floorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, fmt.Errorf("failed to get floor: %w", err)
	}

	roomCount, err := s.repo.CountRooms(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms on floor: %w", err)
	}

	resp := floor.ToResponse()
	resp.RoomCount = roomCount
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]FloorResponse, error) {
	var responses []FloorResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_FLOORS_ALL, constants.TTL_FLOORS, func() (interface{}, error) {
		floors, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]FloorResponse, len(floors))
		for i, f := range floors {
			out[i] = f.ToResponse()
		}
		return out, nil
	}, &responses)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFloorRequest) (*FloorResponse, error) {
	floorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid floor ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, floorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, fmt.Errorf("failed to get floor: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Number != nil && *req.Number != existing.Number {
		taken, err := s.repo.GetByNumber(ctx, *req.Number)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check floor number: %w", err)
		}
		if taken != nil {
			return nil, ErrFloorNumberTaken
		}
		updates["number"] = *req.Number
	}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		resp := existing.ToResponse()
		return &resp, nil
	}

	floor, err := s.repo.Update(ctx, floorID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update floor: %w", err)
	}

	s.invalidateCache(ctx)

	resp := floor.ToResponse()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	floorID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid floor ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, floorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFloorNotFound
		}
		return fmt.Errorf("failed to get floor: %w", err)
	}

	roomCount, err := s.repo.CountRooms(ctx, floorID)
	if err != nil {
		return fmt.Errorf("failed to count rooms on floor: %w", err)
	}
	if roomCount > 0 {
		return ErrFloorHasRooms
	}

	if err := s.repo.Delete(ctx, floorID); err != nil {
		return fmt.Errorf("failed to delete floor: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLOORS); err != nil {
		s.log.WithError(err).Warn("failed to invalidate floors cache")
	}
}
