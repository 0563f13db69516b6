package cancellations

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/bookings"
	"stayhub/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCancellationRepository struct {
	mock.Mock
}

func (m *MockCancellationRepository) Create(ctx context.Context, req *CancellationRequest) error {
	args := m.Called(ctx, req)
	if req != nil && req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockCancellationRepository) GetByID(ctx context.Context, id uuid.UUID) (*CancellationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CancellationRequest), args.Error(1)
}

func (m *MockCancellationRepository) GetAll(ctx context.Context, query ListQuery) ([]CancellationRequest, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]CancellationRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockCancellationRepository) GetByRequester(ctx context.Context, requesterID uuid.UUID, query ListQuery) ([]CancellationRequest, int64, error) {
	args := m.Called(ctx, requesterID, query)
	return args.Get(0).([]CancellationRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockCancellationRepository) HasActiveRequest(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCancellationRepository) Review(ctx context.Context, id uuid.UUID, status RequestStatus, reviewerID uuid.UUID, rejectReason *string) error {
	args := m.Called(ctx, id, status, reviewerID, rejectReason)
	return args.Error(0)
}

func (m *MockCancellationRepository) CompleteRefund(ctx context.Context, id uuid.UUID, when time.Time) error {
	args := m.Called(ctx, id, when)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateOnline(ctx context.Context, customerID string, req bookings.CreateBookingRequest) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CreateWalkIn(ctx context.Context, staffID string, req bookings.WalkInBookingRequest) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, staffID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, id, requesterID string, requesterIsStaff bool) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id, requesterID, requesterIsStaff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetMine(ctx context.Context, customerID string, query bookings.BookingListQuery) (*bookings.PaginatedBookings, error) {
	args := m.Called(ctx, customerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.PaginatedBookings), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, query bookings.BookingListQuery) (*bookings.PaginatedBookings, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.PaginatedBookings), args.Error(1)
}

func (m *MockBookingService) Approve(ctx context.Context, id string) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) Reject(ctx context.Context, id string, req bookings.RejectBookingRequest) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CheckIn(ctx context.Context, id string) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CheckOut(ctx context.Context, id string) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ChangeRoom(ctx context.Context, id string, req bookings.ChangeRoomRequest) (*bookings.ChangeRoomResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.ChangeRoomResponse), args.Error(1)
}

func (m *MockBookingService) RecordPayment(ctx context.Context, id string, req bookings.RecordPaymentRequest) (*bookings.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, id uuid.UUID, actor bookings.Actor) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockBookingService) CancelBookingRooms(ctx context.Context, id uuid.UUID, bookingRoomIDs []uuid.UUID) error {
	args := m.Called(ctx, id, bookingRoomIDs)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, query users.ListQuery) ([]users.User, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]users.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status users.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type serviceFixture struct {
	repo       *MockCancellationRepository
	bookingSvc *MockBookingService
	userRepo   *MockUserRepository
	svc        Service
}

func newFixture() *serviceFixture {
	repo := new(MockCancellationRepository)
	bookingSvc := new(MockBookingService)
	userRepo := new(MockUserRepository)
	return &serviceFixture{
		repo:       repo,
		bookingSvc: bookingSvc,
		userRepo:   userRepo,
		svc:        NewService(repo, bookingSvc, userRepo, nil),
	}
}

func activeBooking(customerID uuid.UUID, status bookings.Status, checkIn time.Time, amountPaid float64) *bookings.Booking {
	return &bookings.Booking{
		ID:           uuid.New(),
		CustomerID:   customerID,
		BookingRef:   "BK-CANCEL01",
		Status:       status,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 3),
		TotalAmount:  amountPaid,
		AmountPaid:   amountPaid,
	}
}

func TestQuote(t *testing.T) {
	customerID := uuid.New()

	t.Run("quotes the half-holdback tier", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 10), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		quote, err := f.svc.Quote(context.Background(), booking.ID.String(), customerID.String(), false)

		assert.NoError(t, err)
		assert.Equal(t, 1000000.0, quote.HoldbackAmount)
		assert.Equal(t, 1000000.0, quote.RefundAmount)
	})

	t.Run("checked-in bookings cannot be cancelled whole", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusCheckedIn, time.Now().AddDate(0, 0, -1), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.svc.Quote(context.Background(), booking.ID.String(), customerID.String(), false)

		assert.ErrorIs(t, err, ErrBookingNotCancellable)
	})

	t.Run("other customers are rejected", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 10), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.svc.Quote(context.Background(), booking.ID.String(), uuid.New().String(), false)

		assert.ErrorIs(t, err, bookings.ErrNotBookingOwner)
	})
}

func TestSubmit(t *testing.T) {
	customerID := uuid.New()

	t.Run("freezes the refund split at submission", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 20), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.repo.On("HasActiveRequest", mock.Anything, booking.ID).Return(false, nil)
		f.userRepo.On("GetByID", mock.Anything, customerID).Return(&users.User{
			ID:                customerID,
			BankName:          "Vietcombank",
			BankAccountNumber: "00112233",
			BankAccountHolder: "NGUYEN VAN A",
		}, nil)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(req *CancellationRequest) bool {
			return req.HoldbackAmount == 0 && req.RefundAmount == 2000000 &&
				req.Status == RequestPending && req.BankName == "Vietcombank"
		})).Return(nil)

		resp, err := f.svc.Submit(context.Background(), customerID.String(), SubmitCancellationRequest{
			BookingID: booking.ID.String(),
			Reason:    "travel plans changed",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2000000.0, resp.RefundAmount)
		f.repo.AssertExpectations(t)
	})

	t.Run("one active request per booking", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 20), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.repo.On("HasActiveRequest", mock.Anything, booking.ID).Return(true, nil)

		_, err := f.svc.Submit(context.Background(), customerID.String(), SubmitCancellationRequest{
			BookingID: booking.ID.String(),
			Reason:    "travel plans changed",
		})

		assert.ErrorIs(t, err, ErrDuplicateRequest)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("no payout details needed when nothing is refundable", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 3), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.repo.On("HasActiveRequest", mock.Anything, booking.ID).Return(false, nil)
		f.userRepo.On("GetByID", mock.Anything, customerID).Return(&users.User{ID: customerID}, nil)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(req *CancellationRequest) bool {
			return req.HoldbackAmount == 2000000 && req.RefundAmount == 0
		})).Return(nil)

		resp, err := f.svc.Submit(context.Background(), customerID.String(), SubmitCancellationRequest{
			BookingID: booking.ID.String(),
			Reason:    "travel plans changed",
		})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, resp.RefundAmount)
		f.repo.AssertExpectations(t)
	})

	t.Run("refundable bookings need payout details", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 20), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.repo.On("HasActiveRequest", mock.Anything, booking.ID).Return(false, nil)
		f.userRepo.On("GetByID", mock.Anything, customerID).Return(&users.User{ID: customerID}, nil)

		_, err := f.svc.Submit(context.Background(), customerID.String(), SubmitCancellationRequest{
			BookingID: booking.ID.String(),
			Reason:    "travel plans changed",
		})

		assert.ErrorIs(t, err, ErrMissingPayoutDetails)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("request body payout details take precedence", func(t *testing.T) {
		f := newFixture()
		booking := activeBooking(customerID, bookings.StatusApproved, time.Now().AddDate(0, 0, 20), 2000000)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.repo.On("HasActiveRequest", mock.Anything, booking.ID).Return(false, nil)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(req *CancellationRequest) bool {
			return req.BankName == "Techcombank" && req.BankAccountNumber == "99887766"
		})).Return(nil)

		_, err := f.svc.Submit(context.Background(), customerID.String(), SubmitCancellationRequest{
			BookingID:         booking.ID.String(),
			Reason:            "travel plans changed",
			BankName:          "Techcombank",
			BankAccountNumber: "99887766",
			BankAccountHolder: "NGUYEN VAN B",
		})

		assert.NoError(t, err)
		f.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestApproveCancellation(t *testing.T) {
	reviewerID := uuid.New()

	pendingRequest := func() *CancellationRequest {
		return &CancellationRequest{
			ID:           uuid.New(),
			BookingID:    uuid.New(),
			RequesterID:  uuid.New(),
			Status:       RequestPending,
			RefundStatus: RefundPending,
			RefundAmount: 1000000,
		}
	}

	t.Run("cancels the booking before recording the decision", func(t *testing.T) {
		f := newFixture()
		request := pendingRequest()

		f.repo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
		f.bookingSvc.On("CancelBooking", mock.Anything, request.BookingID, bookings.ActorStaff).Return(nil)
		f.repo.On("Review", mock.Anything, request.ID, RequestApproved, reviewerID, (*string)(nil)).Return(nil)

		_, err := f.svc.Approve(context.Background(), request.ID.String(), reviewerID.String())

		assert.NoError(t, err)
		f.repo.AssertExpectations(t)
		f.bookingSvc.AssertExpectations(t)
	})

	t.Run("an uncancellable booking leaves the request untouched", func(t *testing.T) {
		f := newFixture()
		request := pendingRequest()

		f.repo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
		f.bookingSvc.On("CancelBooking", mock.Anything, request.BookingID, bookings.ActorStaff).
			Return(bookings.ErrInvalidTransition)

		_, err := f.svc.Approve(context.Background(), request.ID.String(), reviewerID.String())

		assert.ErrorIs(t, err, ErrBookingNotCancellable)
		f.repo.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already reviewed requests are gone", func(t *testing.T) {
		f := newFixture()
		request := pendingRequest()
		request.Status = RequestRejected

		f.repo.On("GetByID", mock.Anything, request.ID).Return(request, nil)

		_, err := f.svc.Approve(context.Background(), request.ID.String(), reviewerID.String())

		assert.ErrorIs(t, err, ErrRequestNotFound)
		f.bookingSvc.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRejectCancellation(t *testing.T) {
	f := newFixture()
	reviewerID := uuid.New()
	request := &CancellationRequest{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		RequesterID: uuid.New(),
		Status:      RequestPending,
	}

	f.repo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.repo.On("Review", mock.Anything, request.ID, RequestRejected, reviewerID,
		mock.MatchedBy(func(reason *string) bool {
			return reason != nil && *reason == "fees apply this close to check-in"
		})).Return(nil)

	_, err := f.svc.Reject(context.Background(), request.ID.String(), reviewerID.String(), RejectCancellationRequest{
		Reason: "fees apply this close to check-in",
	})

	assert.NoError(t, err)
	f.bookingSvc.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertExpectations(t)
}

func TestCancelRooms(t *testing.T) {
	customerID := uuid.New()

	checkedInBooking := func(checkedInAgo time.Duration) (*bookings.Booking, []uuid.UUID) {
		actualCheckIn := time.Now().Add(-checkedInAgo)
		booking := activeBooking(customerID, bookings.StatusCheckedIn, actualCheckIn, 2050000)
		booking.ActualCheckIn = &actualCheckIn
		roomA := uuid.New()
		roomB := uuid.New()
		booking.Rooms = []bookings.BookingRoom{
			{ID: roomA, BookingID: booking.ID, RoomID: uuid.New(), NightlyPrice: 800000, Nights: 2},
			{ID: roomB, BookingID: booking.ID, RoomID: uuid.New(), NightlyPrice: 450000, Nights: 1},
		}
		return booking, []uuid.UUID{roomA, roomB}
	}

	t.Run("drops one room and prices the refund", func(t *testing.T) {
		f := newFixture()
		booking, roomIDs := checkedInBooking(2 * time.Hour)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.bookingSvc.On("CancelBookingRooms", mock.Anything, booking.ID, []uuid.UUID{roomIDs[0]}).Return(nil)

		result, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{roomIDs[0].String()},
		})

		assert.NoError(t, err)
		assert.Len(t, result.CancelledRooms, 1)
		assert.Equal(t, 800000.0, result.HoldbackTotal)
		assert.Equal(t, 800000.0, result.RefundTotal)
		assert.False(t, result.BookingCancelled)
	})

	t.Run("dropping every room ends the stay", func(t *testing.T) {
		f := newFixture()
		booking, roomIDs := checkedInBooking(2 * time.Hour)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.bookingSvc.On("CancelBookingRooms", mock.Anything, booking.ID, roomIDs).Return(nil)

		result, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{roomIDs[0].String(), roomIDs[1].String()},
		})

		assert.NoError(t, err)
		assert.True(t, result.BookingCancelled)
		// one night held back per room, single-night room refunds nothing
		assert.Equal(t, 1250000.0, result.HoldbackTotal)
		assert.Equal(t, 800000.0, result.RefundTotal)
	})

	t.Run("duplicate ids are collapsed", func(t *testing.T) {
		f := newFixture()
		booking, roomIDs := checkedInBooking(2 * time.Hour)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)
		f.bookingSvc.On("CancelBookingRooms", mock.Anything, booking.ID, []uuid.UUID{roomIDs[0]}).Return(nil)

		result, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{roomIDs[0].String(), roomIDs[0].String()},
		})

		assert.NoError(t, err)
		assert.Len(t, result.CancelledRooms, 1)
		assert.False(t, result.BookingCancelled)
	})

	t.Run("window closes 24 hours after check-in", func(t *testing.T) {
		f := newFixture()
		booking, roomIDs := checkedInBooking(25 * time.Hour)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{roomIDs[0].String()},
		})

		assert.ErrorIs(t, err, ErrWindowExpired)
		f.bookingSvc.AssertNotCalled(t, "CancelBookingRooms", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requires a checked-in stay", func(t *testing.T) {
		f := newFixture()
		booking, roomIDs := checkedInBooking(2 * time.Hour)
		booking.Status = bookings.StatusApproved
		booking.ActualCheckIn = nil

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{roomIDs[0].String()},
		})

		assert.ErrorIs(t, err, ErrNotCheckedIn)
	})

	t.Run("foreign room ids are rejected", func(t *testing.T) {
		f := newFixture()
		booking, _ := checkedInBooking(2 * time.Hour)

		f.bookingSvc.On("GetBooking", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.svc.CancelRooms(context.Background(), booking.ID.String(), customerID.String(), false, CancelRoomsRequest{
			BookingRoomIDs: []string{uuid.New().String()},
		})

		assert.ErrorIs(t, err, ErrRoomNotInBooking)
	})
}

func TestCompleteRefund(t *testing.T) {
	f := newFixture()
	adminID := uuid.New()
	request := &CancellationRequest{
		ID:           uuid.New(),
		BookingID:    uuid.New(),
		RequesterID:  uuid.New(),
		Status:       RequestApproved,
		RefundStatus: RefundPending,
		RefundAmount: 1000000,
	}

	f.repo.On("GetByID", mock.Anything, request.ID).Return(request, nil)
	f.repo.On("CompleteRefund", mock.Anything, request.ID, mock.AnythingOfType("time.Time")).Return(nil)

	_, err := f.svc.CompleteRefund(context.Background(), request.ID.String(), adminID.String())

	assert.NoError(t, err)
	f.repo.AssertExpectations(t)
}
