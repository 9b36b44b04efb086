package floodrisk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
)

// ErrInvalidGeoJSON возвращается, когда ответ модели не парсится как
// FeatureCollection. Невалидный ответ - ошибка, а не данные для использования.
var ErrInvalidGeoJSON = errors.New("LLM response is not a valid GeoJSON FeatureCollection")

const floodZoneModel = "meta-llama/llama-3-70b-instruct"

// ChatCompleter - минимальный контракт LLM-клиента, которому удовлетворяет
// *openai.Client
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// DetailsReader читает запись furtherdetails вызывающего
type DetailsReader interface {
	GetFurtherDetails(ctx context.Context, uid string) (*models.FurtherDetails, error)
}

// ForecastReader читает сохраненный сырой прогноз вызывающего
type ForecastReader interface {
	GetRawForecast(ctx context.Context, uid string) (json.RawMessage, string, error)
}

// ZoneStore сохраняет и читает сгенерированные зоны риска
type ZoneStore interface {
	SaveFloodZones(ctx context.Context, uid, district string, zones json.RawMessage, generatedAt time.Time) error
	GetFloodZones(ctx context.Context, uid string) (json.RawMessage, error)
}

// Generator строит зоны риска наводнения для округа вызывающего через
// LLM-эндпоинт: промпт с рамкой округа и историческими данными погоды,
// ответ парсится как GeoJSON
type Generator struct {
	llm       ChatCompleter
	details   DetailsReader
	forecasts ForecastReader
	zones     ZoneStore
	logger    *logrus.Logger
}

// NewGenerator создает генератор зон риска
func NewGenerator(llm ChatCompleter, details DetailsReader, forecasts ForecastReader, zones ZoneStore, logger *logrus.Logger) *Generator {
	return &Generator{
		llm:       llm,
		details:   details,
		forecasts: forecasts,
		zones:     zones,
		logger:    logger,
	}
}

// NewOpenRouterClient создает go-openai клиент, направленный на OpenRouter
func NewOpenRouterClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Generate читает округ и сохраненный прогноз вызывающего, запрашивает у
// модели FeatureCollection зон риска в рамке округа, валидирует ответ и
// сохраняет его в flood_risk_zones под uid вызывающего
func (g *Generator) Generate(ctx context.Context, uid string) (*geojson.FeatureCollection, error) {
	log := g.logger.WithFields(logrus.Fields{
		"service": "floodrisk",
		"method":  "Generate",
		"uid":     uid,
	})
	log.Info("Generating flood risk zones")

	details, err := g.details.GetFurtherDetails(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("generator: district not found: %w", err)
	}

	rawForecast, _, err := g.forecasts.GetRawForecast(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("generator: weather data not found: %w", err)
	}

	bbox, err := geo.DistrictBoundingBox(details.District)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	prompt := buildFloodPrompt(details.District, bbox, rawForecast)

	resp, err := g.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: floodZoneModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generator: LLM call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generator: LLM returned no choices")
	}

	content := extractJSON(resp.Choices[0].Message.Content)
	zones, err := geojson.UnmarshalFeatureCollection([]byte(content))
	if err != nil {
		log.WithError(err).Error("LLM returned unparseable GeoJSON")
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}

	rawZones, err := json.Marshal(zones)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to marshal zones: %w", err)
	}
	if err := g.zones.SaveFloodZones(ctx, uid, details.District, rawZones, time.Now()); err != nil {
		return nil, fmt.Errorf("generator: failed to store flood zones: %w", err)
	}

	log.WithField("features", len(zones.Features)).Info("Flood risk zones generated")
	return zones, nil
}

func buildFloodPrompt(district string, bbox geo.BoundingBox, rawForecast json.RawMessage) string {
	bboxJSON, _ := json.Marshal(map[string]float64{
		"minLat": bbox.MinLat,
		"maxLat": bbox.MaxLat,
		"minLon": bbox.MinLon,
		"maxLon": bbox.MaxLon,
	})
	return fmt.Sprintf(`You are an expert flood risk analyst with knowledge of hydrology, topography, soil types, drainage infrastructure, land use, and historical flood data.

Given the last 3 days of weather data for the %s district in Tamil Nadu, along with your knowledge of other relevant flood risk factors (topography, soil permeability, drainage capacity, land cover, historical flood events), predict the flood risk zones in GeoJSON format.

Risk levels: High, Moderate, Low. Each feature must have:
- geometry (Polygon strictly within the bounding box coordinates %s)
- properties: risk_level

Weather data:
%s

Return ONLY valid GeoJSON (FeatureCollection) representing flood risk zones.`, district, bboxJSON, rawForecast)
}

// extractJSON вырезает JSON-объект из ответа модели: модели любят оборачивать
// ответ в markdown-ограждения или пояснительный текст
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
