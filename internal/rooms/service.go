package rooms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"stayhub/internal/shared/constants"
	"stayhub/pkg/cache"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomNumberTaken    = errors.New("room number already in use")
	ErrRoomHasBookings    = errors.New("room has active bookings")
	ErrRoomNotBookable    = errors.New("room is under maintenance")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrHoldConflict       = errors.New("one or more rooms are already held")
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateRoomRequest) (*RoomResponse, error)
	GetByID(ctx context.Context, id string) (*RoomResponse, error)
	GetAll(ctx context.Context, query RoomListQuery) (*PaginatedRooms, error)
	Update(ctx context.Context, id string, req UpdateRoomRequest) (*RoomResponse, error)
	Delete(ctx context.Context, id string) error
	SetMaintenance(ctx context.Context, id string, req SetMaintenanceRequest) (*RoomResponse, error)

	GetAvailable(ctx context.Context, query AvailableRoomsQuery) ([]RoomResponse, error)
	HoldRooms(ctx context.Context, userID string, req HoldRoomsRequest) (*HoldResponse, error)
	ReleaseHold(ctx context.Context, userID, holdID string) error
}

type service struct {
	repo    Repository
	holds   *HoldManager
	cache   cache.Service
	holdTTL time.Duration
	log     *logger.Logger
}

func NewService(repo Repository, holds *HoldManager, cacheService cache.Service, holdTTL time.Duration) Service {
	return &service{
		repo:    repo,
		holds:   holds,
		cache:   cacheService,
		holdTTL: holdTTL,
		log:     logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRoomRequest) (*RoomResponse, error) {
	existing, err := s.repo.GetByNumber(ctx, req.Number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if existing != nil {
		return nil, ErrRoomNumberTaken
	}

	floorID, err := uuid.Parse(req.FloorID)
	if err != nil {
		return nil, fmt.Errorf("invalid floor ID: %w", err)
	}
	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID: %w", err)
	}

	room := &Room{
		ID:         uuid.New(),
		Number:     req.Number,
		FloorID:    floorID,
		RoomTypeID: roomTypeID,
		Status:     StatusVacant,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateCache(ctx)

	resp := room.ToResponse()
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*RoomResponse, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID: %w", err)
	}

	room, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	resp := room.ToResponse()
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, query RoomListQuery) (*PaginatedRooms, error) {
	rooms, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 50
	}

	responses := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = room.ToResponse()
	}

	return &PaginatedRooms{
		Rooms:      responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoomRequest) (*RoomResponse, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Number != nil && *req.Number != existing.Number {
		taken, err := s.repo.GetByNumber(ctx, *req.Number)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check room number: %w", err)
		}
		if taken != nil {
			return nil, ErrRoomNumberTaken
		}
		updates["number"] = *req.Number
	}

	if req.FloorID != nil {
		floorID, err := uuid.Parse(*req.FloorID)
		if err != nil {
			return nil, fmt.Errorf("invalid floor ID: %w", err)
		}
		updates["floor_id"] = floorID
	}

	if req.RoomTypeID != nil {
		roomTypeID, err := uuid.Parse(*req.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("invalid room type ID: %w", err)
		}

		// Repricing a room under an active booking would break the
		// snapshot invariant, so the type is frozen until the room clears.
		if *req.RoomTypeID != existing.RoomTypeID.String() {
			active, err := s.repo.HasActiveBookings(ctx, roomID)
			if err != nil {
				return nil, fmt.Errorf("failed to check room bookings: %w", err)
			}
			if active {
				return nil, ErrRoomHasBookings
			}
		}
		updates["room_type_id"] = roomTypeID
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		resp := existing.ToResponse()
		return &resp, nil
	}

	room, err := s.repo.Update(ctx, roomID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidateCache(ctx)

	resp := room.ToResponse()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid room ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to get room: %w", err)
	}

	active, err := s.repo.HasActiveBookings(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to check room bookings: %w", err)
	}
	if active {
		return ErrRoomHasBookings
	}

	if err := s.repo.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) SetMaintenance(ctx context.Context, id string, req SetMaintenanceRequest) (*RoomResponse, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if req.Maintenance {
		// Only an idle room can be pulled for maintenance
		if existing.Status != StatusVacant {
			return nil, ErrRoomHasBookings
		}
		updates := map[string]interface{}{"status": StatusMaintenance}
		if req.Notes != "" {
			updates["notes"] = req.Notes
		}
		room, err := s.repo.Update(ctx, roomID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to set maintenance: %w", err)
		}
		s.invalidateCache(ctx)
		resp := room.ToResponse()
		return &resp, nil
	}

	if existing.Status != StatusMaintenance {
		resp := existing.ToResponse()
		return &resp, nil
	}

	room, err := s.repo.Update(ctx, roomID, map[string]interface{}{"status": StatusVacant})
	if err != nil {
		return nil, fmt.Errorf("failed to clear maintenance: %w", err)
	}
	s.invalidateCache(ctx)
	resp := room.ToResponse()
	return &resp, nil
}

func (s *service) GetAvailable(ctx context.Context, query AvailableRoomsQuery) ([]RoomResponse, error) {
	checkIn, checkOut, err := parseDateRange(query.CheckIn, query.CheckOut)
	if err != nil {
		return nil, err
	}

	var roomTypeID *uuid.UUID
	if query.RoomTypeID != "" {
		id, err := uuid.Parse(query.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("invalid room type ID: %w", err)
		}
		roomTypeID = &id
	}

	// Availability also depends on in-flight redis holds, so only the
	// unfiltered database portion is cached.
	rooms, err := s.repo.GetAvailable(ctx, checkIn, checkOut, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if s.isHeld(ctx, room.ID, checkIn, checkOut) {
			continue
		}
		responses = append(responses, room.ToResponse())
	}

	return responses, nil
}

func (s *service) HoldRooms(ctx context.Context, userID string, req HoldRoomsRequest) (*HoldResponse, error) {
	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	roomIDs := make([]uuid.UUID, len(req.RoomIDs))
	for i, raw := range req.RoomIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID %q: %w", raw, err)
		}
		roomIDs[i] = id
	}

	rooms, err := s.repo.GetByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if len(rooms) != len(roomIDs) {
		return nil, ErrRoomNotFound
	}
	for _, room := range rooms {
		if !room.Status.IsBookable() {
			return nil, ErrRoomNotBookable
		}
	}

	holdID, err := s.holds.HoldRooms(ctx, userID, roomIDs, checkIn, checkOut, s.holdTTL)
	if err != nil {
		return nil, ErrHoldConflict
	}

	return &HoldResponse{
		HoldID:    holdID,
		RoomIDs:   req.RoomIDs,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		ExpiresAt: time.Now().Add(s.holdTTL),
	}, nil
}

func (s *service) ReleaseHold(ctx context.Context, userID, holdID string) error {
	if _, err := s.holds.ReleaseHold(ctx, userID, holdID); err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	return nil
}

func (s *service) isHeld(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) bool {
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		if s.cache.Exists(ctx, constants.BuildRoomHoldKey(roomID.String(), night.Format(dateLayout))) {
			return true
		}
	}
	return false
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROOMS); err != nil {
		s.log.WithError(err).Warn("failed to invalidate rooms cache")
	}
}

func parseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out date: %w", err)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return checkIn, checkOut, nil
}
