package floodrisk

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/flood_response_system/internal/models"
)

type stubLLM struct {
	content string
}

func (s *stubLLM) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

type stubZoneDeps struct {
	district    string
	savedZones  json.RawMessage
	savedUID    string
	savedAt     time.Time
	rawForecast json.RawMessage
}

func (s *stubZoneDeps) GetFurtherDetails(_ context.Context, uid string) (*models.FurtherDetails, error) {
	return &models.FurtherDetails{UID: uid, Role: models.RoleGovernmentOfficial, District: s.district}, nil
}

func (s *stubZoneDeps) GetRawForecast(_ context.Context, _ string) (json.RawMessage, string, error) {
	return s.rawForecast, s.district, nil
}

func (s *stubZoneDeps) SaveFloodZones(_ context.Context, uid, _ string, zones json.RawMessage, generatedAt time.Time) error {
	s.savedUID = uid
	s.savedZones = zones
	s.savedAt = generatedAt
	return nil
}

func (s *stubZoneDeps) GetFloodZones(_ context.Context, _ string) (json.RawMessage, error) {
	return s.savedZones, nil
}

func newTestGenerator(llm ChatCompleter) (*Generator, *stubZoneDeps) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	deps := &stubZoneDeps{
		district:    "Chennai",
		rawForecast: json.RawMessage(`{"forecast":{}}`),
	}
	return NewGenerator(llm, deps, deps, deps, logger), deps
}

const validZoneJSON = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"risk_level": "High"},
		"geometry": {"type": "Polygon", "coordinates": [[[80.1,12.9],[80.3,12.9],[80.3,13.1],[80.1,12.9]]]}
	}]
}`

func TestGenerate_Success(t *testing.T) {
	gen, deps := newTestGenerator(&stubLLM{content: validZoneJSON})

	zones, err := gen.Generate(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Len(t, zones.Features, 1)

	// Зоны сохранены под uid вызывающего
	assert.Equal(t, "uid-1", deps.savedUID)
	assert.NotEmpty(t, deps.savedZones)
	assert.False(t, deps.savedAt.IsZero())
}

func TestGenerate_StripsMarkdownFences(t *testing.T) {
	wrapped := "Here is the result:\n```json\n" + validZoneJSON + "\n```\n"
	gen, _ := newTestGenerator(&stubLLM{content: wrapped})

	zones, err := gen.Generate(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Len(t, zones.Features, 1)
}

func TestGenerate_InvalidGeoJSONIsError(t *testing.T) {
	// Невалидный ответ модели - ошибка, а не данные для использования
	gen, deps := newTestGenerator(&stubLLM{content: "sorry, I cannot help with that"})

	_, err := gen.Generate(context.Background(), "uid-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeoJSON)
	assert.Empty(t, deps.savedZones)
}
