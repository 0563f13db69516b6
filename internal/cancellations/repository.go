package cancellations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("cancellation request not found")

type Repository interface {
	Create(ctx context.Context, req *CancellationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*CancellationRequest, error)
	GetAll(ctx context.Context, query ListQuery) ([]CancellationRequest, int64, error)
	GetByRequester(ctx context.Context, requesterID uuid.UUID, query ListQuery) ([]CancellationRequest, int64, error)
	HasActiveRequest(ctx context.Context, bookingID uuid.UUID) (bool, error)
	Review(ctx context.Context, id uuid.UUID, status RequestStatus, reviewerID uuid.UUID, rejectReason *string) error
	CompleteRefund(ctx context.Context, id uuid.UUID, when time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *CancellationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*CancellationRequest, error) {
	var req CancellationRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *repository) GetAll(ctx context.Context, query ListQuery) ([]CancellationRequest, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&CancellationRequest{}), query)
}

func (r *repository) GetByRequester(ctx context.Context, requesterID uuid.UUID, query ListQuery) ([]CancellationRequest, int64, error) {
	tx := r.db.WithContext(ctx).Model(&CancellationRequest{}).Where("requester_id = ?", requesterID)
	return r.list(ctx, tx, query)
}

func (r *repository) list(_ context.Context, tx *gorm.DB, query ListQuery) ([]CancellationRequest, int64, error) {
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var totalCount int64
	if err := tx.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	var requests []CancellationRequest
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, totalCount, nil
}

func (r *repository) HasActiveRequest(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CancellationRequest{}).
		Where("booking_id = ? AND status <> ?", bookingID, RequestRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Review(ctx context.Context, id uuid.UUID, status RequestStatus, reviewerID uuid.UUID, rejectReason *string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
	}
	if rejectReason != nil {
		updates["reject_reason"] = *rejectReason
	}

	result := r.db.WithContext(ctx).Model(&CancellationRequest{}).
		Where("id = ? AND status = ?", id, RequestPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *repository) CompleteRefund(ctx context.Context, id uuid.UUID, when time.Time) error {
	result := r.db.WithContext(ctx).Model(&CancellationRequest{}).
		Where("id = ? AND status = ? AND refund_status = ?", id, RequestApproved, RefundPending).
		Updates(map[string]interface{}{
			"refund_status":       RefundCompleted,
			"refund_completed_at": when,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
