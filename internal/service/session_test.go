package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/repository"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
)

// newTestSessionService — вспомогательная функция для создания резолвера с моками.
func newTestSessionService(t *testing.T) (SessionService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewSessionService(repoMock, logger), repoMock
}

func TestResolve_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetUser(ctx, "uid-1").
		Return(&models.UserProfile{
			UID:         "uid-1",
			Email:       "officer@example.com",
			DisplayName: "Officer One",
			Approved:    models.ApprovalApproved,
		}, nil).
		Times(1)
	repoMock.EXPECT().
		GetFurtherDetails(ctx, "uid-1").
		Return(&models.FurtherDetails{
			UID:      "uid-1",
			Role:     models.RoleCommandOfficer,
			District: "Chennai",
		}, nil).
		Times(1)

	// Действие
	session, err := service.Resolve(ctx, "uid-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.RoleCommandOfficer, session.Role)
	assert.Equal(t, "Chennai", session.District)
	assert.Equal(t, "Officer One", session.DisplayName)
	assert.Equal(t, models.ApprovalApproved, session.Approved)
}

func TestResolve_EmptyUID(t *testing.T) {
	// Подготовка
	service, repoMock := newTestSessionService(t)

	// Ожидания: хранилище не должно вызываться
	repoMock.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	session, err := service.Resolve(context.Background(), "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestResolve_MissingUserRecord(t *testing.T) {
	// Подготовка
	service, repoMock := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetUser(ctx, "ghost").
		Return(nil, fmt.Errorf("user ghost: %w", repository.ErrNotFound)).
		Times(1)

	// Действие
	_, err := service.Resolve(ctx, "ghost")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestResolve_MissingDetails_IsProfileNotFound(t *testing.T) {
	// Подготовка: основная запись есть, furtherdetails нет.
	// Это "профиль не найден", а не "роль не назначена".
	service, repoMock := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetUser(ctx, "uid-2").
		Return(&models.UserProfile{UID: "uid-2"}, nil).
		Times(1)
	repoMock.EXPECT().
		GetFurtherDetails(ctx, "uid-2").
		Return(nil, fmt.Errorf("further details uid-2: %w", repository.ErrNotFound)).
		Times(1)

	// Действие
	_, err := service.Resolve(ctx, "uid-2")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NotErrorIs(t, err, ErrRoleMissing)
}

func TestResolve_RoleMissing(t *testing.T) {
	// Подготовка: обе записи есть, но роль не назначена
	service, repoMock := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetUser(ctx, "uid-3").
		Return(&models.UserProfile{UID: "uid-3"}, nil).
		Times(1)
	repoMock.EXPECT().
		GetFurtherDetails(ctx, "uid-3").
		Return(&models.FurtherDetails{UID: "uid-3", Role: models.RoleUnset}, nil).
		Times(1)

	// Действие
	_, err := service.Resolve(ctx, "uid-3")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoleMissing)
}
