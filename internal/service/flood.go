package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/weather"
)

// WeatherService определяет контракт получения прогноза с сохранением
// сырого ответа под вызывающим. Ему удовлетворяет погодный шлюз.
type WeatherService interface {
	FetchAndStore(ctx context.Context, uid, district string) (*weather.Forecast, error)
}

// ZoneGenerator строит зоны риска для округа вызывающего
type ZoneGenerator interface {
	Generate(ctx context.Context, uid string) (*geojson.FeatureCollection, error)
}

// ZoneArchive читает сохраненные зоны риска
type ZoneArchive interface {
	GetFloodZones(ctx context.Context, uid string) (json.RawMessage, error)
}

// FloodZoneService определяет контракт генерации и чтения зон риска
type FloodZoneService interface {
	Generate(ctx context.Context, session *models.SessionContext) (*geojson.FeatureCollection, error)
	Stored(ctx context.Context, uid string) (json.RawMessage, error)
}

type floodZoneService struct {
	generator ZoneGenerator
	archive   ZoneArchive
	logger    *logrus.Logger
}

func NewFloodZoneService(generator ZoneGenerator, archive ZoneArchive, logger *logrus.Logger) FloodZoneService {
	return &floodZoneService{
		generator: generator,
		archive:   archive,
		logger:    logger,
	}
}

// Generate запускает генерацию зон от имени вызывающего. Доступна чиновникам
// и админу: генерация тратит вызов LLM и перезаписывает сохраненные зоны.
func (s *floodZoneService) Generate(ctx context.Context, session *models.SessionContext) (*geojson.FeatureCollection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "floodzone",
		"method":  "Generate",
		"uid":     session.UID,
	})

	if session.Role != models.RoleGovernmentOfficial && session.Role != models.RoleAdmin {
		log.WithField("role", session.Role).Warn("Zone generation attempted by unauthorized role")
		return nil, ErrForbidden
	}

	zones, err := s.generator.Generate(ctx, session.UID)
	if err != nil {
		log.WithError(err).Error("Zone generation failed")
		return nil, fmt.Errorf("service: could not generate flood zones: %w", err)
	}
	return zones, nil
}

// Stored возвращает последние сохраненные зоны вызывающего
func (s *floodZoneService) Stored(ctx context.Context, uid string) (json.RawMessage, error) {
	zones, err := s.archive.GetFloodZones(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("service: could not read flood zones: %w", err)
	}
	return zones, nil
}
