package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_response_system/internal/feed"
	feed_mocks "github.com/shenikar/flood_response_system/internal/feed/mocks"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
)

// newTestWorkService — вспомогательная функция для создания сервиса заданий с моками.
func newTestWorkService(t *testing.T) (*workService, *mocks.MockWorkRepository, *feed_mocks.MockFeed, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockWorkRepository(ctrl)
	feedMock := feed_mocks.NewMockFeed(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := clockwork.NewFakeClock()
	service := NewWorkService(repoMock, feedMock, logger, observability.NewMetricsForTesting(), clock)
	return service.(*workService), repoMock, feedMock, clock
}

func officerSession() *models.SessionContext {
	return &models.SessionContext{
		UID:         "officer-1",
		DisplayName: "Officer One",
		Role:        models.RoleCommandOfficer,
		District:    "Chennai",
		Approved:    models.ApprovalApproved,
	}
}

func workerSession() *models.SessionContext {
	return &models.SessionContext{
		UID:         "worker-1",
		DisplayName: "Worker One",
		Role:        models.RoleFieldWorker,
		District:    "Chennai",
		Approved:    models.ApprovalApproved,
	}
}

func TestCreateWork_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, clock := newTestWorkService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, work *models.WorkAssignment) error {
			work.ID = "work-1"
			return nil
		}).Times(1)

	// Действие
	work, err := service.Create(ctx, officerSession(), "Sandbag the riverbank", "North bank first", models.PriorityHigh)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "work-1", work.ID)
	assert.Equal(t, models.WorkPending, work.Status)
	assert.Equal(t, "Unassigned", work.AssignedTo)
	// Округ штампуется из округа создателя
	assert.Equal(t, "Chennai", work.District)
	assert.Equal(t, clock.Now(), work.CreatedAt)
}

func TestCreateWork_ForbiddenForFieldWorker(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestWorkService(t)

	// Ожидания: хранилище не должно вызываться
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Create(context.Background(), workerSession(), "Title", "", models.PriorityLow)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClaimWork_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "work-1").
		Return(&models.WorkAssignment{ID: "work-1", Status: models.WorkPending, AssignedTo: "Unassigned"}, nil).
		Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, "work-1", map[string]interface{}{
			"status":     string(models.WorkInProgress),
			"assignedTo": "Worker One",
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.Claim(ctx, workerSession(), "work-1")

	// Проверки
	require.NoError(t, err)
}

func TestClaimWork_CompletedIsInvalidTransition(t *testing.T) {
	// Подготовка: завершенное задание нельзя взять снова
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "work-1").
		Return(&models.WorkAssignment{ID: "work-1", Status: models.WorkCompleted}, nil).
		Times(1)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Claim(ctx, workerSession(), "work-1")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClaimWork_InFlightIsNoOp(t *testing.T) {
	// Подготовка: вторая мутация того же id, пока идет первая, — no-op
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	// Ожидания: ровно один проход до хранилища
	repoMock.EXPECT().
		GetByID(ctx, "work-1").
		DoAndReturn(func(context.Context, string) (*models.WorkAssignment, error) {
			close(firstStarted)
			<-releaseFirst
			return &models.WorkAssignment{ID: "work-1", Status: models.WorkPending}, nil
		}).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, "work-1", gomock.Any()).
		Return(nil).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = service.Claim(ctx, workerSession(), "work-1")
	}()

	<-firstStarted

	// Действие: повторный вызов, пока первый держит задание
	secondErr := service.Claim(ctx, workerSession(), "work-1")

	close(releaseFirst)
	wg.Wait()

	// Проверки
	require.NoError(t, firstErr)
	require.Error(t, secondErr)
	assert.ErrorIs(t, secondErr, ErrMutationInFlight)
}

func TestCompleteWork_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "work-1").
		Return(&models.WorkAssignment{ID: "work-1", Status: models.WorkInProgress, AssignedTo: "Worker One"}, nil).
		Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, "work-1", map[string]interface{}{
			"status":  string(models.WorkCompleted),
			"comment": "Riverbank secured",
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.Complete(ctx, workerSession(), "work-1", "Riverbank secured")

	// Проверки
	require.NoError(t, err)
}

func TestCompleteWork_OnlyAssigneeCanComplete(t *testing.T) {
	// Подготовка: задание назначено другому исполнителю
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "work-1").
		Return(&models.WorkAssignment{ID: "work-1", Status: models.WorkInProgress, AssignedTo: "Somebody Else"}, nil).
		Times(1)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Complete(ctx, workerSession(), "work-1", "done")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBoard_FiltersByDistrictAndPartitions(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()
	works := []*models.WorkAssignment{
		{ID: "a", District: "Chennai", Status: models.WorkPending},
		{ID: "b", District: "Chennai", Status: models.WorkInProgress},
		{ID: "c", District: "Chennai", Status: models.WorkCompleted},
		{ID: "d", District: "Madurai", Status: models.WorkPending},
	}

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(works, nil).Times(1)

	// Действие
	board, err := service.Board(ctx, workerSession())

	// Проверки: чужой округ отфильтрован, остальное разложено по статусам
	require.NoError(t, err)
	require.Len(t, board.Available, 1)
	require.Len(t, board.InProgress, 1)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, "a", board.Available[0].ID)
	assert.Equal(t, "b", board.InProgress[0].ID)
	assert.Equal(t, "c", board.Completed[0].ID)
}

func TestBoard_AdminSeesAllDistricts(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestWorkService(t)
	ctx := context.Background()
	works := []*models.WorkAssignment{
		{ID: "a", District: "Chennai", Status: models.WorkPending},
		{ID: "d", District: "Madurai", Status: models.WorkPending},
	}
	admin := &models.SessionContext{UID: "admin-1", Role: models.RoleAdmin}

	// Ожидания
	repoMock.EXPECT().ListAll(ctx).Return(works, nil).Times(1)

	// Действие
	board, err := service.Board(ctx, admin)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, board.Available, 2)
}

func TestWatch_SnapshotReplacesState(t *testing.T) {
	// Подготовка: два снапшота подряд; второй полностью заменяет первый
	service, _, feedMock, _ := newTestWorkService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := make(chan feed.Snapshot, 2)
	snapshots <- feed.Snapshot{Works: []*models.WorkAssignment{
		{ID: "a", District: "Chennai", Status: models.WorkPending},
		{ID: "b", District: "Chennai", Status: models.WorkPending},
	}}
	snapshots <- feed.Snapshot{Works: []*models.WorkAssignment{
		{ID: "a", District: "Chennai", Status: models.WorkInProgress, AssignedTo: "Worker One"},
	}}
	close(snapshots)

	// Ожидания
	feedMock.EXPECT().
		Subscribe(gomock.Any()).
		Return((<-chan feed.Snapshot)(snapshots), nil).
		Times(1)

	// Действие
	boards, err := service.Watch(ctx, workerSession())
	require.NoError(t, err)

	// Проверки
	first := <-boards
	require.Len(t, first.Available, 2)

	second := <-boards
	assert.Empty(t, second.Available)
	require.Len(t, second.InProgress, 1)
	assert.Equal(t, "a", second.InProgress[0].ID)

	// Канал закрывается вслед за фидом
	select {
	case _, open := <-boards:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("board channel was not closed")
	}
}
