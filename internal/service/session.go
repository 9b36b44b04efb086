package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/repository"
)

// Терминальные состояния резолвера сессии. Каждое различимо для вызывающего:
// отсутствие пользователя, отсутствие профиля и отсутствие роли - это три
// разных ответа, а не один общий отказ.
var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrProfileNotFound  = errors.New("user profile not found")
	ErrRoleMissing      = errors.New("user role not assigned")
)

// UserRepository определяет контракт для работы с профилями пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.UserProfile) error
	GetUser(ctx context.Context, uid string) (*models.UserProfile, error)
	GetFurtherDetails(ctx context.Context, uid string) (*models.FurtherDetails, error)
	SetFurtherDetails(ctx context.Context, details *models.FurtherDetails) error
	ListUsers(ctx context.Context, state models.ApprovalState) ([]*models.UserProfile, error)
	ApproveUser(ctx context.Context, uid string, approvedAt time.Time) error
	RejectUser(ctx context.Context, uid string) error
}

// SessionService определяет контракт резолвера сессии
type SessionService interface {
	Resolve(ctx context.Context, uid string) (*models.SessionContext, error)
}

type sessionService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewSessionService(repo UserRepository, logger *logrus.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		logger: logger,
	}
}

// Resolve собирает единый объект сессии из двух записей профиля.
// Обе записи обязаны существовать: отсутствие любой из них - ErrProfileNotFound,
// и только у существующего профиля без роли - ErrRoleMissing.
func (s *sessionService) Resolve(ctx context.Context, uid string) (*models.SessionContext, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Resolve",
		"uid":     uid,
	})

	if uid == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.repo.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("User record missing")
			return nil, fmt.Errorf("service: session for %s: %w", uid, ErrProfileNotFound)
		}
		log.WithError(err).Error("Failed to get user record")
		return nil, fmt.Errorf("service: could not resolve session: %w", err)
	}

	details, err := s.repo.GetFurtherDetails(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Further details record missing")
			return nil, fmt.Errorf("service: session for %s: %w", uid, ErrProfileNotFound)
		}
		log.WithError(err).Error("Failed to get further details record")
		return nil, fmt.Errorf("service: could not resolve session: %w", err)
	}

	if details.Role == models.RoleUnset {
		log.Warn("Profile exists but role is not assigned")
		return nil, fmt.Errorf("service: session for %s: %w", uid, ErrRoleMissing)
	}

	log.WithField("role", details.Role).Debug("Session resolved")
	return &models.SessionContext{
		UID:         uid,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        details.Role,
		District:    details.District,
		Approved:    user.Approved,
	}, nil
}
