package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/models"
)

// UserService определяет контракт каталога пользователей и процесса одобрения
type UserService interface {
	Register(ctx context.Context, uid, email, name string) (*models.UserProfile, error)
	CompleteProfile(ctx context.Context, uid string, role models.Role, district string) error
	ListUsers(ctx context.Context, state models.ApprovalState) ([]*models.UserProfile, error)
	Approve(ctx context.Context, uid string) error
	Reject(ctx context.Context, uid string) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
	clock  clockwork.Clock
}

func NewUserService(repo UserRepository, logger *logrus.Logger, clock clockwork.Clock) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

// Register создает основную запись пользователя в состоянии "ожидает одобрения".
// Роль и округ не присваиваются здесь: они приходят вторым шагом, в CompleteProfile.
func (s *userService) Register(ctx context.Context, uid, email, name string) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
		"uid":     uid,
	})
	log.Info("Registering new user")

	user := &models.UserProfile{
		UID:         uid,
		Email:       email,
		DisplayName: name,
		Approved:    models.ApprovalPending,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.Info("User registered, awaiting approval")
	return user, nil
}

// CompleteProfile записывает вторую половину профиля: роль и округ
func (s *userService) CompleteProfile(ctx context.Context, uid string, role models.Role, district string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "CompleteProfile",
		"uid":      uid,
		"role":     role,
		"district": district,
	})
	log.Info("Completing user profile")

	if role.IsDistrictScoped() && district == "" {
		return fmt.Errorf("service: role %s requires a district", role)
	}

	details := &models.FurtherDetails{
		UID:      uid,
		Role:     role,
		District: district,
	}
	if err := s.repo.SetFurtherDetails(ctx, details); err != nil {
		log.WithError(err).Error("Failed to set further details in repository")
		return fmt.Errorf("service: could not complete profile: %w", err)
	}

	log.Info("User profile completed")
	return nil
}

// ListUsers возвращает пользователей в заданном состоянии одобрения
func (s *userService) ListUsers(ctx context.Context, state models.ApprovalState) ([]*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
		"state":   state.String(),
	})

	users, err := s.repo.ListUsers(ctx, state)
	if err != nil {
		log.WithError(err).Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}

	log.WithField("count", len(users)).Info("Users listed")
	return users, nil
}

// Approve одобряет учетную запись и оставляет пользователю уведомление
func (s *userService) Approve(ctx context.Context, uid string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Approve",
		"uid":     uid,
	})
	log.Info("Approving user")

	if err := s.repo.ApproveUser(ctx, uid, s.clock.Now()); err != nil {
		log.WithError(err).Error("Failed to approve user in repository")
		return fmt.Errorf("service: could not approve user: %w", err)
	}

	log.Info("User approved")
	return nil
}

// Reject отклоняет учетную запись
func (s *userService) Reject(ctx context.Context, uid string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Reject",
		"uid":     uid,
	})
	log.Info("Rejecting user")

	if err := s.repo.RejectUser(ctx, uid); err != nil {
		log.WithError(err).Error("Failed to reject user in repository")
		return fmt.Errorf("service: could not reject user: %w", err)
	}

	log.Info("User rejected")
	return nil
}
