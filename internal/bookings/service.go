package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stayhub/internal/notifications"
	"stayhub/internal/rooms"
	"stayhub/internal/roomtypes"
	"stayhub/internal/shared/constants"
	"stayhub/internal/users"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotBookingOwner  = errors.New("booking belongs to another customer")
	ErrRoomUnavailable  = errors.New("one or more rooms are not available for the requested dates")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrRoomNotInBooking = errors.New("room is not part of this booking")
	ErrSameRoom         = errors.New("target room is the same as the current room")
	ErrOverpayment      = errors.New("payment exceeds outstanding amount")
)

// Notifier publishes booking lifecycle notifications. Nil-safe at the
// call sites so the API keeps working when Kafka is disabled.
type Notifier interface {
	SendBookingNotification(ctx context.Context, userID uuid.UUID, email, name string,
		bookingID uuid.UUID, notificationType notifications.NotificationType,
		templateData map[string]interface{}) error
}

type Service interface {
	CreateOnline(ctx context.Context, customerID string, req CreateBookingRequest) (*BookingResponse, error)
	CreateWalkIn(ctx context.Context, staffID string, req WalkInBookingRequest) (*BookingResponse, error)
	GetByID(ctx context.Context, id, requesterID string, requesterIsStaff bool) (*BookingResponse, error)
	GetMine(ctx context.Context, customerID string, query BookingListQuery) (*PaginatedBookings, error)
	List(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error)

	Approve(ctx context.Context, id string) (*BookingResponse, error)
	Reject(ctx context.Context, id string, req RejectBookingRequest) (*BookingResponse, error)
	CheckIn(ctx context.Context, id string) (*BookingResponse, error)
	CheckOut(ctx context.Context, id string) (*BookingResponse, error)
	ChangeRoom(ctx context.Context, id string, req ChangeRoomRequest) (*ChangeRoomResponse, error)
	RecordPayment(ctx context.Context, id string, req RecordPaymentRequest) (*BookingResponse, error)

	// Cancellation hooks used by the cancellations module. Both enforce
	// the transition table before touching anything.
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actor Actor) error
	CancelBookingRooms(ctx context.Context, id uuid.UUID, bookingRoomIDs []uuid.UUID) error
}

type service struct {
	repo         Repository
	roomRepo     rooms.Repository
	roomTypeRepo roomtypes.Repository
	userRepo     users.Repository
	holds        *rooms.HoldManager
	notifier     Notifier
	redisClient  *redis.Client
	log          *logger.Logger
}

func NewService(repo Repository, roomRepo rooms.Repository, roomTypeRepo roomtypes.Repository,
	userRepo users.Repository, holds *rooms.HoldManager, notifier Notifier, redisClient *redis.Client) Service {
	return &service{
		repo:         repo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		userRepo:     userRepo,
		holds:        holds,
		notifier:     notifier,
		redisClient:  redisClient,
		log:          logger.GetDefault(),
	}
}

func (s *service) CreateOnline(ctx context.Context, customerID string, req CreateBookingRequest) (*BookingResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}

	booking, err := s.createBooking(ctx, customerUUID, customerUUID, ChannelOnline, req.RoomIDs, req.CheckIn, req.CheckOut, req.GuestNote)
	if err != nil {
		return nil, err
	}

	// Online payment is collected at submission
	if err := s.repo.AddPayment(ctx, booking.ID, booking.TotalAmount); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	booking.AmountPaid = booking.TotalAmount

	if req.HoldID != "" {
		if _, err := s.holds.ReleaseHold(ctx, customerID, req.HoldID); err != nil {
			s.log.WithError(err).Warn("failed to release wizard hold after booking")
		}
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), customerID, string(ChannelOnline))
	s.notify(ctx, booking, notifications.NotificationTypeBookingSubmitted, nil)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) CreateWalkIn(ctx context.Context, staffID string, req WalkInBookingRequest) (*BookingResponse, error) {
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return nil, fmt.Errorf("invalid staff ID: %w", err)
	}
	customerUUID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}

	booking, err := s.createBooking(ctx, customerUUID, staffUUID, ChannelWalkIn, req.RoomIDs, req.CheckIn, req.CheckOut, req.GuestNote)
	if err != nil {
		return nil, err
	}

	if req.AmountPaid > 0 {
		if req.AmountPaid > booking.TotalAmount {
			return nil, ErrOverpayment
		}
		if err := s.repo.AddPayment(ctx, booking.ID, req.AmountPaid); err != nil {
			return nil, fmt.Errorf("failed to record payment: %w", err)
		}
		booking.AmountPaid = req.AmountPaid
	}

	// Front-desk bookings skip the approval queue
	if err := s.repo.Approve(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("failed to auto-approve walk-in booking: %w", err)
	}
	booking.Status = StatusApproved

	s.log.LogBookingCreated(ctx, booking.ID.String(), req.CustomerID, string(ChannelWalkIn))
	s.log.LogBookingTransition(ctx, booking.ID.String(), string(StatusPendingApproval), string(StatusApproved), string(ActorStaff))

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) createBooking(ctx context.Context, customerID, createdBy uuid.UUID, channel Channel,
	roomIDs []string, checkInStr, checkOutStr, guestNote string) (*Booking, error) {

	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date: %w", err)
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.userRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	ids := make([]uuid.UUID, len(roomIDs))
	for i, raw := range roomIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID %q: %w", raw, err)
		}
		ids[i] = id
	}

	requested, err := s.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if len(requested) != len(ids) {
		return nil, ErrRoomUnavailable
	}

	available, err := s.roomRepo.GetAvailable(ctx, checkIn, checkOut, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	availableSet := make(map[uuid.UUID]bool, len(available))
	for _, room := range available {
		availableSet[room.ID] = true
	}

	nights := Nights(checkIn, checkOut)

	bookingRooms := make([]BookingRoom, len(requested))
	var total float64
	for i, room := range requested {
		if !availableSet[room.ID] {
			return nil, ErrRoomUnavailable
		}

		roomType, err := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load room type: %w", err)
		}

		bookingRooms[i] = BookingRoom{
			ID:           uuid.New(),
			RoomID:       room.ID,
			NightlyPrice: roomType.NightlyPrice,
			Nights:       nights,
		}
		total += roomType.NightlyPrice * float64(nights)
	}

	booking := &Booking{
		ID:           uuid.New(),
		CustomerID:   customerID,
		BookingRef:   generateBookingRef(),
		Channel:      channel,
		Status:       StatusPendingApproval,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  total,
		GuestNote:    guestNote,
		CreatedBy:    createdBy,
		Rooms:        bookingRooms,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id, requesterID string, requesterIsStaff bool) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requesterIsStaff && booking.CustomerID.String() != requesterID {
		return nil, ErrNotBookingOwner
	}

	resp := booking.ToResponse()
	resp.DueFlag = s.dueFlag(ctx, booking.ID)
	return &resp, nil
}

func (s *service) GetMine(ctx context.Context, customerID string, query BookingListQuery) (*PaginatedBookings, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}

	bookings, totalCount, err := s.repo.GetByCustomer(ctx, customerUUID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return s.paginate(ctx, bookings, totalCount, query), nil
}

func (s *service) List(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error) {
	bookings, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return s.paginate(ctx, bookings, totalCount, query), nil
}

func (s *service) Approve(ctx context.Context, id string) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, StatusApproved, ActorStaff) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Approve(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("failed to approve booking: %w", err)
	}

	s.log.LogBookingTransition(ctx, id, string(booking.Status), string(StatusApproved), string(ActorStaff))
	s.notify(ctx, booking, notifications.NotificationTypeBookingApproved, nil)

	return s.reload(ctx, booking.ID)
}

func (s *service) Reject(ctx context.Context, id string, req RejectBookingRequest) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, StatusRejected, ActorStaff) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Reject(ctx, booking.ID, req.Reason); err != nil {
		return nil, fmt.Errorf("failed to reject booking: %w", err)
	}

	s.log.LogBookingTransition(ctx, id, string(booking.Status), string(StatusRejected), string(ActorStaff))
	s.notify(ctx, booking, notifications.NotificationTypeBookingRejected, map[string]interface{}{
		"reason": req.Reason,
	})

	return s.reload(ctx, booking.ID)
}

func (s *service) CheckIn(ctx context.Context, id string) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, StatusCheckedIn, ActorStaff) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.CheckIn(ctx, booking.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to check in booking: %w", err)
	}

	s.log.LogBookingTransition(ctx, id, string(booking.Status), string(StatusCheckedIn), string(ActorStaff))

	return s.reload(ctx, booking.ID)
}

func (s *service) CheckOut(ctx context.Context, id string) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, StatusCompleted, ActorStaff) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.CheckOut(ctx, booking.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to check out booking: %w", err)
	}

	s.clearDueFlag(ctx, booking.ID)
	s.log.LogBookingTransition(ctx, id, string(booking.Status), string(StatusCompleted), string(ActorStaff))

	return s.reload(ctx, booking.ID)
}

func (s *service) ChangeRoom(ctx context.Context, id string, req ChangeRoomRequest) (*ChangeRoomResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Reassignment only makes sense while the stay is reserved or live
	if booking.Status != StatusApproved && booking.Status != StatusCheckedIn {
		return nil, ErrInvalidTransition
	}

	fromRoomID, err := uuid.Parse(req.FromRoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID: %w", err)
	}
	toRoomID, err := uuid.Parse(req.ToRoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID: %w", err)
	}
	if fromRoomID == toRoomID {
		return nil, ErrSameRoom
	}

	var current *BookingRoom
	for i := range booking.Rooms {
		if booking.Rooms[i].RoomID == fromRoomID && booking.Rooms[i].CancelledAt == nil {
			current = &booking.Rooms[i]
			break
		}
	}
	if current == nil {
		return nil, ErrRoomNotInBooking
	}

	available, err := s.roomRepo.GetAvailable(ctx, booking.CheckInDate, booking.CheckOutDate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	targetAvailable := false
	for _, room := range available {
		if room.ID == toRoomID {
			targetAvailable = true
			break
		}
	}
	if !targetAvailable {
		return nil, ErrRoomUnavailable
	}

	target, err := s.roomRepo.GetByID(ctx, toRoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("failed to load target room: %w", err)
	}
	targetType, err := s.roomTypeRepo.GetByID(ctx, target.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target room type: %w", err)
	}

	remaining := RemainingNights(booking.CheckOutDate, time.Now())
	fee := ComputeChangeFee(current.NightlyPrice, targetType.NightlyPrice, remaining)

	roomStatus := "RESERVED"
	if booking.Status == StatusCheckedIn {
		roomStatus = "OCCUPIED"
	}

	if err := s.repo.ChangeRoom(ctx, booking.ID, fromRoomID, toRoomID, targetType.NightlyPrice, fee, roomStatus); err != nil {
		return nil, fmt.Errorf("failed to change room: %w", err)
	}

	s.log.InfoContext(ctx, "Room Reassigned",
		"booking_id", id,
		"from_room", req.FromRoomID,
		"to_room", req.ToRoomID,
		"change_fee", fee,
	)

	resp, err := s.reload(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return &ChangeRoomResponse{
		Booking:    resp,
		FromRoomID: req.FromRoomID,
		ToRoomID:   req.ToRoomID,
		ChangeFee:  fee,
	}, nil
}

func (s *service) RecordPayment(ctx context.Context, id string, req RecordPaymentRequest) (*BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.AmountPaid+req.Amount > booking.TotalAmount {
		return nil, ErrOverpayment
	}

	if err := s.repo.AddPayment(ctx, booking.ID, req.Amount); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return s.reload(ctx, booking.ID)
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, id uuid.UUID, actor Actor) error {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if !CanTransition(booking.Status, StatusCancelled, actor) {
		return ErrInvalidTransition
	}

	if err := s.repo.Cancel(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.clearDueFlag(ctx, id)
	s.log.LogBookingTransition(ctx, id.String(), string(booking.Status), string(StatusCancelled), string(actor))
	s.notify(ctx, booking, notifications.NotificationTypeBookingCancelled, nil)
	return nil
}

func (s *service) CancelBookingRooms(ctx context.Context, id uuid.UUID, bookingRoomIDs []uuid.UUID) error {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != StatusCheckedIn {
		return ErrInvalidTransition
	}

	selected := make(map[uuid.UUID]bool, len(bookingRoomIDs))
	for _, brID := range bookingRoomIDs {
		selected[brID] = true
	}

	remaining := 0
	matched := 0
	for _, br := range booking.ActiveRooms() {
		if selected[br.ID] {
			matched++
		} else {
			remaining++
		}
	}
	if matched != len(bookingRoomIDs) {
		return ErrRoomNotInBooking
	}

	// Cancelling the last rooms ends the whole stay
	cancelBooking := remaining == 0

	if err := s.repo.CancelRooms(ctx, id, bookingRoomIDs, time.Now(), cancelBooking); err != nil {
		return fmt.Errorf("failed to cancel booking rooms: %w", err)
	}

	if cancelBooking {
		s.clearDueFlag(ctx, id)
		s.log.LogBookingTransition(ctx, id.String(), string(booking.Status), string(StatusCancelled), string(ActorCustomer))
	}
	return nil
}

func (s *service) loadBooking(ctx context.Context, id string) (*Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}
	return s.GetBooking(ctx, bookingID)
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	resp.DueFlag = s.dueFlag(ctx, booking.ID)
	return &resp, nil
}

func (s *service) paginate(ctx context.Context, bookings []Booking, totalCount int64, query BookingListQuery) *PaginatedBookings {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	flags := s.dueFlags(ctx)

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = bookings[i].ToResponse()
		responses[i].DueFlag = flags[bookings[i].ID.String()]
	}

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}
}

// dueFlag reads the display-only DUE_SOON/OVERDUE overlay maintained by
// the due-date scanner. Failures degrade to no flag.
func (s *service) dueFlag(ctx context.Context, bookingID uuid.UUID) string {
	if s.redisClient == nil {
		return ""
	}
	flag, err := s.redisClient.HGet(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS, bookingID.String()).Result()
	if err != nil {
		return ""
	}
	return flag
}

func (s *service) dueFlags(ctx context.Context) map[string]string {
	if s.redisClient == nil {
		return map[string]string{}
	}
	flags, err := s.redisClient.HGetAll(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS).Result()
	if err != nil {
		return map[string]string{}
	}
	return flags
}

func (s *service) clearDueFlag(ctx context.Context, bookingID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.HDel(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS, bookingID.String()).Err(); err != nil {
		s.log.WithError(err).Warn("failed to clear due flag")
	}
}

func (s *service) notify(ctx context.Context, booking *Booking, notType notifications.NotificationType, extra map[string]interface{}) {
	if s.notifier == nil {
		return
	}

	customer, err := s.userRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.log.WithError(err).Warn("failed to load customer for notification")
		return
	}

	data := map[string]interface{}{
		"booking_ref":  booking.BookingRef,
		"check_in":     booking.CheckInDate.Format(dateLayout),
		"check_out":    booking.CheckOutDate.Format(dateLayout),
		"total_amount": booking.TotalAmount,
	}
	for k, v := range extra {
		data[k] = v
	}

	if err := s.notifier.SendBookingNotification(ctx, customer.ID, customer.Email, customer.FullName(),
		booking.ID, notType, data); err != nil {
		s.log.WithError(err).Warn("failed to publish booking notification")
	}
}

func generateBookingRef() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}
