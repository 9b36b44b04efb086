package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
)

// newTestUserService — вспомогательная функция для создания сервиса пользователей с моками.
func newTestUserService(t *testing.T) (UserService, *mocks.MockUserRepository, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := clockwork.NewFakeClock()
	return NewUserService(repoMock, logger, clock), repoMock, clock
}

func TestRegister_CreatesPendingUser(t *testing.T) {
	// Подготовка
	service, repoMock, clock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Do(func(_ context.Context, user *models.UserProfile) {
			assert.Equal(t, models.ApprovalPending, user.Approved)
			assert.Equal(t, clock.Now(), user.CreatedAt)
		}).
		Return(nil).
		Times(1)

	// Действие
	user, err := service.Register(ctx, "uid-1", "new@example.com", "New User")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, models.ApprovalPending, user.Approved)
}

func TestCompleteProfile_DistrictRequiredForScopedRole(t *testing.T) {
	// Подготовка: роль с привязкой к округу без округа - это ошибка
	service, repoMock, _ := newTestUserService(t)

	// Ожидания
	repoMock.EXPECT().SetFurtherDetails(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.CompleteProfile(context.Background(), "uid-1", models.RoleFieldWorker, "")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "requires a district")
}

func TestCompleteProfile_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		SetFurtherDetails(ctx, &models.FurtherDetails{
			UID:      "uid-1",
			Role:     models.RoleCommandOfficer,
			District: "Madurai",
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.CompleteProfile(ctx, "uid-1", models.RoleCommandOfficer, "Madurai")

	// Проверки
	require.NoError(t, err)
}

func TestApprove_UsesClock(t *testing.T) {
	// Подготовка
	service, repoMock, clock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ApproveUser(ctx, "uid-1", clock.Now()).Return(nil).Times(1)

	// Действие
	err := service.Approve(ctx, "uid-1")

	// Проверки
	require.NoError(t, err)
}

func TestReject_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().RejectUser(ctx, "uid-1").Return(nil).Times(1)

	// Действие
	err := service.Reject(ctx, "uid-1")

	// Проверки
	require.NoError(t, err)
}
