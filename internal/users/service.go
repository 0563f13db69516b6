package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("email already in use")
	ErrLastAdminLock = errors.New("cannot lock the last active admin")
)

// Service interface defines the contract for user management
type Service interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, query ListQuery) ([]User, int64, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)
	LockUser(ctx context.Context, id uuid.UUID) error
	UnlockUser(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	role := strings.ToUpper(req.Role)
	if !IsValidRole(role) {
		role = string(RoleCustomer)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashed),
		Role:      Role(role),
		Status:    StatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context, query ListQuery) ([]User, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.AddressLine != nil {
		user.AddressLine = *req.AddressLine
	}
	if req.BankName != nil {
		user.BankName = *req.BankName
	}
	if req.BankAccountNumber != nil {
		user.BankAccountNumber = *req.BankAccountNumber
	}
	if req.BankAccountHolder != nil {
		user.BankAccountHolder = *req.BankAccountHolder
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *service) LockUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == RoleAdmin {
		// Locking out every admin would leave refunds unprocessable.
		admins, _, err := s.repo.List(ctx, ListQuery{Role: string(RoleAdmin), Status: string(StatusActive), Limit: 2})
		if err != nil {
			return fmt.Errorf("failed to count active admins: %w", err)
		}
		if len(admins) <= 1 {
			return ErrLastAdminLock
		}
	}
	return s.repo.UpdateStatus(ctx, id, StatusLocked)
}

func (s *service) UnlockUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusActive)
}
