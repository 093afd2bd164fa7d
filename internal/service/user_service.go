package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// UserUpdate carries the mutable preference fields; nil means unchanged.
type UserUpdate struct {
	Timezone      *string
	PreferredTime *string
	IsActive      *bool
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) (*UserService, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UserService{
		users:  users,
		logger: logger,
	}, nil
}

func (s *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user is required", domain.ErrValidation)
	}

	user.Phone = strings.TrimSpace(user.Phone)
	user.Timezone = strings.TrimSpace(user.Timezone)
	if user.Timezone == "" {
		user.Timezone = domain.DefaultTimezone
	}
	user.PreferredTime = strings.TrimSpace(user.PreferredTime)
	if user.PreferredTime == "" {
		user.PreferredTime = domain.DefaultPreferredTime
	}
	user.ID = uuid.NewString()
	user.IsActive = true

	if err := user.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByPhone(ctx, user.Phone)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: phone number already registered", domain.ErrConflict)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("userId", user.ID),
		zap.String("timezone", user.Timezone),
		zap.String("preferredTime", user.PreferredTime),
	)

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.users.GetByID(ctx, strings.TrimSpace(id))
}

func (s *UserService) List(ctx context.Context, page int, pageSize int) ([]domain.User, int64, error) {
	return s.users.List(ctx, page, pageSize)
}

func (s *UserService) Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	if update.Timezone != nil {
		user.Timezone = strings.TrimSpace(*update.Timezone)
	}
	if update.PreferredTime != nil {
		user.PreferredTime = strings.TrimSpace(*update.PreferredTime)
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.users.Delete(ctx, strings.TrimSpace(id))
}
