package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	forecastCollection  = "weather_forecast"
	floodZoneCollection = "flood_risk_zones"
)

// ForecastRepository хранит сырые прогнозы и сгенерированные зоны риска.
// Оба вида документов ключуются uid вызывающего.
type ForecastRepository struct {
	client *firestore.Client
}

// NewForecastRepository создает репозиторий прогнозов
func NewForecastRepository(client *firestore.Client) *ForecastRepository {
	return &ForecastRepository{client: client}
}

// SaveRawForecast сохраняет сырой ответ погодного API под uid вызывающего
func (r *ForecastRepository) SaveRawForecast(ctx context.Context, uid, district string, raw json.RawMessage) error {
	var rawDoc map[string]interface{}
	if err := json.Unmarshal(raw, &rawDoc); err != nil {
		return fmt.Errorf("failed to decode raw forecast: %w", err)
	}
	_, err := r.client.Collection(forecastCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"district":    district,
		"rawForecast": rawDoc,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to save raw forecast for %s: %w", uid, err)
	}
	return nil
}

// GetRawForecast читает сохраненный прогноз вызывающего
func (r *ForecastRepository) GetRawForecast(ctx context.Context, uid string) (json.RawMessage, string, error) {
	doc, err := r.client.Collection(forecastCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, "", fmt.Errorf("forecast %s: %w", uid, ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to get forecast %s: %w", uid, err)
	}

	data := doc.Data()
	raw, err := json.Marshal(data["rawForecast"])
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode raw forecast %s: %w", uid, err)
	}
	district, _ := data["district"].(string)
	return raw, district, nil
}

// SaveFloodZones сохраняет сгенерированную коллекцию зон риска
func (r *ForecastRepository) SaveFloodZones(ctx context.Context, uid, district string, zones json.RawMessage, generatedAt time.Time) error {
	var zonesDoc map[string]interface{}
	if err := json.Unmarshal(zones, &zonesDoc); err != nil {
		return fmt.Errorf("failed to decode flood zones: %w", err)
	}
	_, err := r.client.Collection(floodZoneCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"district":    district,
		"geojson":     zonesDoc,
		"generatedAt": generatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to save flood zones for %s: %w", uid, err)
	}
	return nil
}

// GetFloodZones читает сохраненные зоны риска вызывающего
func (r *ForecastRepository) GetFloodZones(ctx context.Context, uid string) (json.RawMessage, error) {
	doc, err := r.client.Collection(floodZoneCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("flood zones %s: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get flood zones %s: %w", uid, err)
	}

	raw, err := json.Marshal(doc.Data()["geojson"])
	if err != nil {
		return nil, fmt.Errorf("failed to encode flood zones %s: %w", uid, err)
	}
	return raw, nil
}
