package bookings

import (
	"context"
	"testing"
	"time"

	"stayhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) GetByCustomer(ctx context.Context, customerID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	args := m.Called(ctx, customerID, query)
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) Approve(ctx context.Context, bookingID uuid.UUID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) Reject(ctx context.Context, bookingID uuid.UUID, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) CheckIn(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	args := m.Called(ctx, bookingID, when)
	return args.Error(0)
}

func (m *MockBookingRepository) CheckOut(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	args := m.Called(ctx, bookingID, when)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	args := m.Called(ctx, bookingID, when)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelRooms(ctx context.Context, bookingID uuid.UUID, bookingRoomIDs []uuid.UUID, when time.Time, cancelBooking bool) error {
	args := m.Called(ctx, bookingID, bookingRoomIDs, when, cancelBooking)
	return args.Error(0)
}

func (m *MockBookingRepository) ChangeRoom(ctx context.Context, bookingID, fromRoomID, toRoomID uuid.UUID, newNightly, fee float64, roomStatus string) error {
	args := m.Called(ctx, bookingID, fromRoomID, toRoomID, newNightly, fee, roomStatus)
	return args.Error(0)
}

func (m *MockBookingRepository) AddPayment(ctx context.Context, bookingID uuid.UUID, amount float64) error {
	args := m.Called(ctx, bookingID, amount)
	return args.Error(0)
}

func (m *MockBookingRepository) GetCheckedInWithCheckoutBefore(ctx context.Context, deadline time.Time) ([]Booking, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func newTestService(repo Repository) *service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func testBooking(status Status) *Booking {
	return &Booking{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		BookingRef:   "BK-TEST0001",
		Status:       status,
		CheckInDate:  date(2026, 4, 10),
		CheckOutDate: date(2026, 4, 13),
		TotalAmount:  2400000,
	}
}

func TestApprove(t *testing.T) {
	t.Run("approves a pending booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusPendingApproval)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("Approve", mock.Anything, booking.ID).Return(nil)

		resp, err := svc.Approve(context.Background(), booking.ID.String())

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		repo.AssertExpectations(t)
	})

	t.Run("rejects illegal transitions without touching the booking", func(t *testing.T) {
		for _, status := range []Status{StatusCheckedIn, StatusCompleted, StatusRejected, StatusCancelled} {
			repo := new(MockBookingRepository)
			svc := newTestService(repo)
			booking := testBooking(status)

			repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

			resp, err := svc.Approve(context.Background(), booking.ID.String())

			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
			assert.Nil(t, resp)
			repo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
		}
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		id := uuid.New()

		repo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.Approve(context.Background(), id.String())

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.Nil(t, resp)
	})
}

func TestReject(t *testing.T) {
	t.Run("rejects a pending booking with a reason", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusPendingApproval)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("Reject", mock.Anything, booking.ID, "overbooked for those dates").Return(nil)

		_, err := svc.Reject(context.Background(), booking.ID.String(), RejectBookingRequest{
			Reason: "overbooked for those dates",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("approved bookings can no longer be rejected", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.Reject(context.Background(), booking.ID.String(), RejectBookingRequest{Reason: "too late"})

		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCheckIn(t *testing.T) {
	t.Run("checks in an approved booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("CheckIn", mock.Anything, booking.ID, mock.AnythingOfType("time.Time")).Return(nil)

		_, err := svc.CheckIn(context.Background(), booking.ID.String())

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("pending bookings cannot skip approval", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusPendingApproval)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.CheckIn(context.Background(), booking.ID.String())

		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("completes a checked-in booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusCheckedIn)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("CheckOut", mock.Anything, booking.ID, mock.AnythingOfType("time.Time")).Return(nil)

		_, err := svc.CheckOut(context.Background(), booking.ID.String())

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("approved bookings cannot check out", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.CheckOut(context.Background(), booking.ID.String())

		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "CheckOut", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("staff cancels an approved booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("Cancel", mock.Anything, booking.ID, mock.AnythingOfType("time.Time")).Return(nil)

		err := svc.CancelBooking(context.Background(), booking.ID, ActorStaff)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("completed bookings stay completed", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusCompleted)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		err := svc.CancelBooking(context.Background(), booking.ID, ActorStaff)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelBookingRooms(t *testing.T) {
	makeCheckedIn := func() (*Booking, []uuid.UUID) {
		booking := testBooking(StatusCheckedIn)
		roomA := uuid.New()
		roomB := uuid.New()
		booking.Rooms = []BookingRoom{
			{ID: roomA, BookingID: booking.ID, RoomID: uuid.New(), NightlyPrice: 800000, Nights: 3},
			{ID: roomB, BookingID: booking.ID, RoomID: uuid.New(), NightlyPrice: 450000, Nights: 3},
		}
		return booking, []uuid.UUID{roomA, roomB}
	}

	t.Run("cancelling one of two rooms keeps the booking alive", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking, roomIDs := makeCheckedIn()

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("CancelRooms", mock.Anything, booking.ID, []uuid.UUID{roomIDs[0]},
			mock.AnythingOfType("time.Time"), false).Return(nil)

		err := svc.CancelBookingRooms(context.Background(), booking.ID, []uuid.UUID{roomIDs[0]})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("cancelling every room cancels the booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking, roomIDs := makeCheckedIn()

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("CancelRooms", mock.Anything, booking.ID, roomIDs,
			mock.AnythingOfType("time.Time"), true).Return(nil)

		err := svc.CancelBookingRooms(context.Background(), booking.ID, roomIDs)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown room id fails without touching anything", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking, _ := makeCheckedIn()

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		err := svc.CancelBookingRooms(context.Background(), booking.ID, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, ErrRoomNotInBooking)
		repo.AssertNotCalled(t, "CancelRooms", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already cancelled rooms do not count", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking, roomIDs := makeCheckedIn()
		cancelled := time.Now()
		booking.Rooms[1].CancelledAt = &cancelled

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		err := svc.CancelBookingRooms(context.Background(), booking.ID, []uuid.UUID{roomIDs[1]})

		assert.ErrorIs(t, err, ErrRoomNotInBooking)
	})

	t.Run("requires a checked-in booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking, roomIDs := makeCheckedIn()
		booking.Status = StatusApproved

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		err := svc.CancelBookingRooms(context.Background(), booking.ID, []uuid.UUID{roomIDs[0]})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("records a partial payment", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)
		booking.AmountPaid = 1000000

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
		repo.On("AddPayment", mock.Anything, booking.ID, 1400000.0).Return(nil)

		_, err := svc.RecordPayment(context.Background(), booking.ID.String(), RecordPaymentRequest{Amount: 1400000})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("refuses payments past the booking total", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)
		booking.AmountPaid = 2000000

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.RecordPayment(context.Background(), booking.ID.String(), RecordPaymentRequest{Amount: 500000})

		assert.ErrorIs(t, err, ErrOverpayment)
		repo.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("customers only see their own bookings", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		resp, err := svc.GetByID(context.Background(), booking.ID.String(), uuid.New().String(), false)

		assert.ErrorIs(t, err, ErrNotBookingOwner)
		assert.Nil(t, resp)
	})

	t.Run("staff can see any booking", func(t *testing.T) {
		repo := new(MockBookingRepository)
		svc := newTestService(repo)
		booking := testBooking(StatusApproved)

		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		resp, err := svc.GetByID(context.Background(), booking.ID.String(), uuid.New().String(), true)

		assert.NoError(t, err)
		assert.Equal(t, booking.BookingRef, resp.BookingRef)
	})
}
