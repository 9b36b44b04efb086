package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_response_system/internal/floodrisk"
	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/risk"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
)

// newTestMapViewService — вспомогательная функция для создания сервиса карты с моками.
func newTestMapViewService(t *testing.T) (MapViewService, *mocks.MockRiskSource, *mocks.MockRiskCache) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockRiskSource(ctrl)
	cacheMock := mocks.NewMockRiskCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewMapViewService(sourceMock, cacheMock, logger), sourceMock, cacheMock
}

func TestDistrictRisks_ServedFromCache(t *testing.T) {
	// Подготовка
	service, sourceMock, cacheMock := newTestMapViewService(t)
	ctx := context.Background()
	cached := []floodrisk.DistrictRisk{
		{District: "Chennai", Assessment: risk.Assess(120, 50, true, true)},
	}

	// Ожидания: попадание в кеш, агрегация не запускается
	cacheMock.EXPECT().Get(ctx).Return(cached, nil).Times(1)
	sourceMock.EXPECT().Aggregate(gomock.Any()).Times(0)

	// Действие
	risks, err := service.DistrictRisks(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, risks)
}

func TestDistrictRisks_CacheMissTriggersAggregation(t *testing.T) {
	// Подготовка
	service, sourceMock, cacheMock := newTestMapViewService(t)
	ctx := context.Background()
	fresh := []floodrisk.DistrictRisk{
		{District: "Chennai", Assessment: risk.Assess(10, 10, false, false)},
	}

	// Ожидания
	cacheMock.EXPECT().Get(ctx).Return(nil, nil).Times(1)
	sourceMock.EXPECT().Aggregate(ctx).Return(fresh).Times(1)
	cacheMock.EXPECT().Set(ctx, fresh).Return(nil).Times(1)

	// Действие
	risks, err := service.DistrictRisks(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fresh, risks)
}

func TestFeatureView_FieldWorkerSeesOwnDistrictAndZones(t *testing.T) {
	// Подготовка: полевой работник из Chennai
	service, sourceMock, cacheMock := newTestMapViewService(t)
	ctx := context.Background()
	session := &models.SessionContext{
		UID:      "worker-1",
		Role:     models.RoleFieldWorker,
		District: "Chennai",
	}

	// Ожидания
	cacheMock.EXPECT().Get(ctx).Return(nil, nil).Times(1)
	sourceMock.EXPECT().Aggregate(ctx).Return([]floodrisk.DistrictRisk{}).Times(1)
	cacheMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	view, err := service.FeatureView(ctx, session)

	// Проверки
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range view.Features.Features {
		names[f.Properties.MustString(geo.PropName, "")] = true
	}
	// Свой округ виден
	assert.True(t, names["Chennai"])
	// Чужой округ отфильтрован
	assert.False(t, names["Coimbatore"])
	// Агрегатные зоны видны всем
	assert.True(t, names["Coastal Flood Zone"])
	assert.True(t, names["Cauvery Delta Region"])

	// Вьюпорт - рамка назначенного округа
	expected, err := geo.DistrictBoundingBox("Chennai")
	require.NoError(t, err)
	assert.Equal(t, expected, view.Viewport)

	// Сводка уровней согласована с видимыми фичами
	total := view.Counts.High + view.Counts.Medium + view.Counts.Low
	assert.Equal(t, len(view.Features.Features), total)
}

func TestFeatureView_AdminSeesEverything(t *testing.T) {
	// Подготовка
	service, sourceMock, cacheMock := newTestMapViewService(t)
	ctx := context.Background()
	session := &models.SessionContext{UID: "admin-1", Role: models.RoleAdmin}

	// Ожидания
	cacheMock.EXPECT().Get(ctx).Return(nil, nil).Times(1)
	sourceMock.EXPECT().Aggregate(ctx).Return([]floodrisk.DistrictRisk{}).Times(1)
	cacheMock.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	view, err := service.FeatureView(ctx, session)

	// Проверки: полный шаблон и вьюпорт всего штата
	require.NoError(t, err)
	assert.Len(t, view.Features.Features, len(geo.StaticFloodFeatures().Features))
	assert.Equal(t, geo.StatewideBox, view.Viewport)
}

func TestFeatureView_LiveRiskOverridesStatic(t *testing.T) {
	// Подготовка: живые данные перекрывают статический уровень риска
	service, _, cacheMock := newTestMapViewService(t)
	ctx := context.Background()
	session := &models.SessionContext{UID: "admin-1", Role: models.RoleAdmin}
	live := []floodrisk.DistrictRisk{
		{District: "Coimbatore", Assessment: risk.Assess(150, 80, true, true)},
	}

	// Ожидания
	cacheMock.EXPECT().Get(ctx).Return(live, nil).Times(1)

	// Действие
	view, err := service.FeatureView(ctx, session)

	// Проверки
	require.NoError(t, err)
	var found bool
	for _, f := range view.Features.Features {
		if f.Properties.MustString(geo.PropName, "") == "Coimbatore" {
			found = true
			assert.Equal(t, string(risk.LevelHigh), f.Properties.MustString(geo.PropRiskLevel, ""))
		}
	}
	assert.True(t, found)
}
