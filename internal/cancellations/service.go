package cancellations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhub/internal/bookings"
	"stayhub/internal/notifications"
	"stayhub/internal/users"
	"stayhub/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrBookingNotCancellable = errors.New("booking status does not allow cancellation")
	ErrDuplicateRequest      = errors.New("booking already has an active cancellation request")
	ErrNotRequestOwner       = errors.New("cancellation request belongs to another customer")
	ErrMissingPayoutDetails  = errors.New("no bank details available for the refund")
	ErrNotCheckedIn          = errors.New("booking is not checked in")
	ErrWindowExpired         = errors.New("post-check-in cancellation window has passed")
	ErrRoomNotInBooking      = errors.New("room is not an active part of this booking")
)

type Service interface {
	Quote(ctx context.Context, bookingID, requesterID string, requesterIsStaff bool) (*QuoteResponse, error)
	Submit(ctx context.Context, requesterID string, req SubmitCancellationRequest) (*CancellationResponse, error)
	GetByID(ctx context.Context, id, requesterID string, requesterIsStaff bool) (*CancellationResponse, error)
	List(ctx context.Context, query ListQuery) (*PaginatedCancellations, error)
	GetMine(ctx context.Context, requesterID string, query ListQuery) (*PaginatedCancellations, error)
	Approve(ctx context.Context, id, reviewerID string) (*CancellationResponse, error)
	Reject(ctx context.Context, id, reviewerID string, req RejectCancellationRequest) (*CancellationResponse, error)
	CancelRooms(ctx context.Context, bookingID, requesterID string, requesterIsStaff bool, req CancelRoomsRequest) (*RoomCancellationResult, error)
	CompleteRefund(ctx context.Context, id, adminID string) (*CancellationResponse, error)
}

type service struct {
	repo           Repository
	bookingService bookings.Service
	userRepo       users.Repository
	notifier       bookings.Notifier
	log            *logger.Logger
}

func NewService(repo Repository, bookingService bookings.Service, userRepo users.Repository, notifier bookings.Notifier) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
		userRepo:       userRepo,
		notifier:       notifier,
		log:            logger.GetDefault(),
	}
}

func (s *service) Quote(ctx context.Context, bookingID, requesterID string, requesterIsStaff bool) (*QuoteResponse, error) {
	booking, err := s.loadBookingForRequester(ctx, bookingID, requesterID, requesterIsStaff)
	if err != nil {
		return nil, err
	}

	if !booking.Status.IsActive() || booking.Status == bookings.StatusCheckedIn {
		return nil, ErrBookingNotCancellable
	}

	days := DaysUntilCheckIn(booking.CheckInDate, time.Now())
	holdback, refund := ComputeRefund(booking.AmountPaid, days)

	return &QuoteResponse{
		BookingID:        booking.ID,
		TotalPaid:        booking.AmountPaid,
		DaysUntilCheckIn: days,
		HoldbackAmount:   holdback,
		RefundAmount:     refund,
	}, nil
}

func (s *service) Submit(ctx context.Context, requesterID string, req SubmitCancellationRequest) (*CancellationResponse, error) {
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, fmt.Errorf("invalid requester id: %w", err)
	}

	booking, err := s.loadBookingForRequester(ctx, req.BookingID, requesterID, false)
	if err != nil {
		return nil, err
	}

	if !booking.Status.IsActive() || booking.Status == bookings.StatusCheckedIn {
		return nil, ErrBookingNotCancellable
	}

	hasActive, err := s.repo.HasActiveRequest(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing requests: %w", err)
	}
	if hasActive {
		return nil, ErrDuplicateRequest
	}

	days := DaysUntilCheckIn(booking.CheckInDate, time.Now())
	holdback, refund := ComputeRefund(booking.AmountPaid, days)

	// Payout details are only needed when a refund is actually owed
	bankName, bankAccount, bankHolder := req.BankName, req.BankAccountNumber, req.BankAccountHolder
	if bankName == "" || bankAccount == "" || bankHolder == "" {
		requester, err := s.userRepo.GetByID(ctx, requesterUUID)
		if err != nil {
			return nil, fmt.Errorf("failed to load requester: %w", err)
		}
		if refund > 0 && !requester.HasPayoutDetails() {
			return nil, ErrMissingPayoutDetails
		}
		bankName = requester.BankName
		bankAccount = requester.BankAccountNumber
		bankHolder = requester.BankAccountHolder
	}

	request := &CancellationRequest{
		BookingID:         booking.ID,
		RequesterID:       requesterUUID,
		Reason:            req.Reason,
		Status:            RequestPending,
		HoldbackAmount:    holdback,
		RefundAmount:      refund,
		RefundStatus:      RefundPending,
		BankName:          bankName,
		BankAccountNumber: bankAccount,
		BankAccountHolder: bankHolder,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create cancellation request: %w", err)
	}

	return request.ToResponse(), nil
}

func (s *service) GetByID(ctx context.Context, id, requesterID string, requesterIsStaff bool) (*CancellationResponse, error) {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requesterIsStaff && request.RequesterID.String() != requesterID {
		return nil, ErrNotRequestOwner
	}

	return request.ToResponse(), nil
}

func (s *service) List(ctx context.Context, query ListQuery) (*PaginatedCancellations, error) {
	requests, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cancellation requests: %w", err)
	}
	return paginate(requests, totalCount, query), nil
}

func (s *service) GetMine(ctx context.Context, requesterID string, query ListQuery) (*PaginatedCancellations, error) {
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, fmt.Errorf("invalid requester id: %w", err)
	}

	requests, totalCount, err := s.repo.GetByRequester(ctx, requesterUUID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cancellation requests: %w", err)
	}
	return paginate(requests, totalCount, query), nil
}

// Approve accepts a pending request and cancels the underlying booking.
// The booking transition runs first so an illegal booking state leaves
// the request untouched.
func (s *service) Approve(ctx context.Context, id, reviewerID string) (*CancellationResponse, error) {
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, fmt.Errorf("invalid reviewer id: %w", err)
	}

	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.IsReviewed() {
		return nil, ErrRequestNotFound
	}

	if err := s.bookingService.CancelBooking(ctx, request.BookingID, bookings.ActorStaff); err != nil {
		if errors.Is(err, bookings.ErrInvalidTransition) {
			return nil, ErrBookingNotCancellable
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := s.repo.Review(ctx, request.ID, RequestApproved, reviewerUUID, nil); err != nil {
		return nil, fmt.Errorf("failed to approve cancellation request: %w", err)
	}

	s.log.LogCancellationDecided(ctx, request.ID.String(), request.BookingID.String(), string(RequestApproved), request.RefundAmount)
	s.notify(ctx, request, notifications.NotificationTypeCancellationApproved, map[string]interface{}{
		"refund_amount":   request.RefundAmount,
		"holdback_amount": request.HoldbackAmount,
	})

	return s.reload(ctx, request.ID)
}

func (s *service) Reject(ctx context.Context, id, reviewerID string, req RejectCancellationRequest) (*CancellationResponse, error) {
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return nil, fmt.Errorf("invalid reviewer id: %w", err)
	}

	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.IsReviewed() {
		return nil, ErrRequestNotFound
	}

	if err := s.repo.Review(ctx, request.ID, RequestRejected, reviewerUUID, &req.Reason); err != nil {
		return nil, fmt.Errorf("failed to reject cancellation request: %w", err)
	}

	s.log.LogCancellationDecided(ctx, request.ID.String(), request.BookingID.String(), string(RequestRejected), 0)
	s.notify(ctx, request, notifications.NotificationTypeCancellationRejected, map[string]interface{}{
		"reject_reason": req.Reason,
	})

	return s.reload(ctx, request.ID)
}

// CancelRooms drops individual rooms from a checked-in stay. Allowed only
// within 24 hours of the recorded check-in; each dropped room holds back
// one night and refunds the rest of its stay amount.
func (s *service) CancelRooms(ctx context.Context, bookingID, requesterID string, requesterIsStaff bool, req CancelRoomsRequest) (*RoomCancellationResult, error) {
	booking, err := s.loadBookingForRequester(ctx, bookingID, requesterID, requesterIsStaff)
	if err != nil {
		return nil, err
	}

	if booking.Status != bookings.StatusCheckedIn || booking.ActualCheckIn == nil {
		return nil, ErrNotCheckedIn
	}
	if !WithinPostCheckInWindow(*booking.ActualCheckIn, time.Now()) {
		return nil, ErrWindowExpired
	}

	active := booking.ActiveRooms()
	byID := make(map[uuid.UUID]bookings.BookingRoom, len(active))
	for _, br := range active {
		byID[br.ID] = br
	}

	result := &RoomCancellationResult{BookingID: booking.ID}
	ids := make([]uuid.UUID, 0, len(req.BookingRoomIDs))
	seen := make(map[uuid.UUID]bool, len(req.BookingRoomIDs))
	for _, raw := range req.BookingRoomIDs {
		brID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid booking room id: %w", err)
		}
		if seen[brID] {
			continue
		}
		seen[brID] = true
		br, ok := byID[brID]
		if !ok {
			return nil, ErrRoomNotInBooking
		}

		holdback, refund := ComputeRoomRefund(br.NightlyPrice, br.Nights)
		result.CancelledRooms = append(result.CancelledRooms, CancelledRoom{
			BookingRoomID: br.ID,
			RoomID:        br.RoomID,
			NightlyPrice:  br.NightlyPrice,
			Nights:        br.Nights,
			Holdback:      holdback,
			Refund:        refund,
		})
		result.HoldbackTotal += holdback
		result.RefundTotal += refund
		ids = append(ids, brID)
	}

	if err := s.bookingService.CancelBookingRooms(ctx, booking.ID, ids); err != nil {
		return nil, fmt.Errorf("failed to cancel booking rooms: %w", err)
	}

	result.BookingCancelled = len(ids) == len(active)
	return result, nil
}

func (s *service) CompleteRefund(ctx context.Context, id, adminID string) (*CancellationResponse, error) {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CompleteRefund(ctx, request.ID, time.Now()); err != nil {
		return nil, err
	}

	s.log.LogRefundCompleted(ctx, request.ID.String(), adminID, request.RefundAmount)
	s.notify(ctx, request, notifications.NotificationTypeRefundCompleted, map[string]interface{}{
		"refund_amount": request.RefundAmount,
	})

	return s.reload(ctx, request.ID)
}

func (s *service) loadBookingForRequester(ctx context.Context, bookingID, requesterID string, requesterIsStaff bool) (*bookings.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, bookings.ErrBookingNotFound
	}

	booking, err := s.bookingService.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !requesterIsStaff && booking.CustomerID.String() != requesterID {
		return nil, bookings.ErrNotBookingOwner
	}
	return booking, nil
}

func (s *service) loadRequest(ctx context.Context, id string) (*CancellationRequest, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return s.repo.GetByID(ctx, requestID)
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*CancellationResponse, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return request.ToResponse(), nil
}

func (s *service) notify(ctx context.Context, request *CancellationRequest, notificationType notifications.NotificationType, data map[string]interface{}) {
	if s.notifier == nil {
		return
	}

	requester, err := s.userRepo.GetByID(ctx, request.RequesterID)
	if err != nil {
		s.log.WithError(err).Warn("failed to load requester for cancellation notification")
		return
	}

	if err := s.notifier.SendBookingNotification(ctx, requester.ID, requester.Email, requester.FullName(), request.BookingID, notificationType, data); err != nil {
		s.log.WithError(err).Warn("failed to send cancellation notification")
	}
}

func paginate(requests []CancellationRequest, totalCount int64, query ListQuery) *PaginatedCancellations {
	responses := make([]CancellationResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *requests[i].ToResponse())
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	return &PaginatedCancellations{
		Cancellations: responses,
		TotalCount:    totalCount,
		Page:          page,
		Limit:         limit,
	}
}
