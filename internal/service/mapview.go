package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/floodrisk"
	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/risk"
)

// RiskSource запускает агрегацию риска по округам
type RiskSource interface {
	Aggregate(ctx context.Context) []floodrisk.DistrictRisk
}

// RiskCache кеширует последний результат агрегации. Промах кеша - это
// (nil, nil), а не ошибка.
type RiskCache interface {
	Get(ctx context.Context) ([]floodrisk.DistrictRisk, error)
	Set(ctx context.Context, risks []floodrisk.DistrictRisk) error
}

// RiskCounts - количество видимых фич по уровням риска
type RiskCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// MapView - серверная часть карты: отфильтрованная по роли коллекция фич,
// стартовый вьюпорт и сводка уровней риска. Отрисовка остается на клиенте.
type MapView struct {
	Features *geojson.FeatureCollection
	Viewport geo.BoundingBox
	Counts   RiskCounts
}

// MapViewService определяет контракт серверной части карты
type MapViewService interface {
	FeatureView(ctx context.Context, session *models.SessionContext) (*MapView, error)
	DistrictRisks(ctx context.Context) ([]floodrisk.DistrictRisk, error)
	RefreshRisks(ctx context.Context) ([]floodrisk.DistrictRisk, error)
}

type mapViewService struct {
	source RiskSource
	cache  RiskCache
	logger *logrus.Logger
}

func NewMapViewService(source RiskSource, cache RiskCache, logger *logrus.Logger) MapViewService {
	return &mapViewService{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// DistrictRisks возвращает последнюю агрегацию: из кеша, если он свеж,
// иначе свежим прогоном
func (s *mapViewService) DistrictRisks(ctx context.Context) ([]floodrisk.DistrictRisk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mapview",
		"method":  "DistrictRisks",
	})

	cached, err := s.cache.Get(ctx)
	if err != nil {
		log.WithError(err).Warn("Risk cache read failed, falling back to aggregation")
	}
	if cached != nil {
		log.Debug("Serving district risks from cache")
		return cached, nil
	}

	return s.RefreshRisks(ctx)
}

// RefreshRisks выполняет агрегацию и обновляет кеш. Отказ записи в кеш
// логируется, но не портит сам результат.
func (s *mapViewService) RefreshRisks(ctx context.Context) ([]floodrisk.DistrictRisk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mapview",
		"method":  "RefreshRisks",
	})

	risks := s.source.Aggregate(ctx)
	if err := s.cache.Set(ctx, risks); err != nil {
		log.WithError(err).Warn("Failed to cache aggregated risks")
	}
	return risks, nil
}

// FeatureView строит карту для вызывающего: живая коллекция, обрезанная по
// доступным округам, вьюпорт роли и сводка уровней риска
func (s *mapViewService) FeatureView(ctx context.Context, session *models.SessionContext) (*MapView, error) {
	risks, err := s.DistrictRisks(ctx)
	if err != nil {
		return nil, err
	}

	merged, err := floodrisk.MergeIntoCollection(geo.StaticFloodFeatures(), risks)
	if err != nil {
		return nil, fmt.Errorf("service: could not merge live risks: %w", err)
	}

	accessible := make(map[string]struct{})
	for _, d := range geo.AccessibleDistricts(session.Role, session.District) {
		accessible[d] = struct{}{}
	}

	visible := geojson.NewFeatureCollection()
	counts := RiskCounts{}
	for _, f := range merged.Features {
		name := f.Properties.MustString(geo.PropName, "")
		if !featureVisible(name, accessible) {
			continue
		}
		visible.Append(f)
		switch risk.Level(f.Properties.MustString(geo.PropRiskLevel, "")) {
		case risk.LevelHigh:
			counts.High++
		case risk.LevelMedium:
			counts.Medium++
		case risk.LevelLow:
			counts.Low++
		}
	}

	viewport, err := geo.ViewportForRole(session.Role, session.District)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve viewport: %w", err)
	}

	return &MapView{
		Features: visible,
		Viewport: viewport,
		Counts:   counts,
	}, nil
}

// featureVisible повторяет правило видимости фичи: безымянные и агрегатные
// (Zone/Region) фичи видят все, именованные округа - только те, кто имеет
// к ним доступ
func featureVisible(name string, accessible map[string]struct{}) bool {
	if name == "" {
		return true
	}
	if strings.Contains(name, "Zone") || strings.Contains(name, "Region") {
		return true
	}
	_, ok := accessible[name]
	return ok
}
