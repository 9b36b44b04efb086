package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/observability"
)

// ErrAPIKeyMissing возвращается, когда ключ погодного API не сконфигурирован
var ErrAPIKeyMissing = errors.New("weather API key not configured")

const defaultBaseURL = "https://api.weatherapi.com/v1"

// ForecastStore сохраняет сырой прогноз под идентификатором вызывающего
type ForecastStore interface {
	SaveRawForecast(ctx context.Context, uid, district string, raw json.RawMessage) error
}

// Gateway получает прогнозы у внешнего API или синтезирует их для зон
type Gateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	store      ForecastStore
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

// NewGateway создает погодный шлюз
func NewGateway(apiKey string, store ForecastStore, logger *logrus.Logger, metrics *observability.Metrics) *Gateway {
	return &Gateway{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// WithBaseURL переопределяет адрес API (для тестов)
func (g *Gateway) WithBaseURL(u string) *Gateway {
	g.baseURL = u
	return g
}

// Fetch возвращает трехдневный прогноз для округа или зоны.
// Для зон-псевдоокругов внешний API не вызывается: возвращаются синтетические
// данные той же формы. Ошибка сети или отсутствующий ключ отдаются вызывающему
// как есть, без тихих повторов.
func (g *Gateway) Fetch(ctx context.Context, district string) (*Forecast, error) {
	log := g.logger.WithFields(logrus.Fields{
		"gateway":  "weather",
		"district": district,
	})

	coord, err := geo.Centroid(district)
	if err != nil {
		return nil, err
	}

	if geo.IsZone(district) {
		log.Debug("Synthesizing forecast for zone pseudo-district")
		g.metrics.WeatherFetches.WithLabelValues("synthetic", "success").Inc()
		return syntheticForecast(district, coord), nil
	}

	if g.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("q", fmt.Sprintf("%g,%g", coord.Lat, coord.Lon))
	q.Set("days", "3")
	q.Set("aqi", "no")
	q.Set("alerts", "yes")

	reqURL := fmt.Sprintf("%s/forecast.json?%s", g.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to build request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.metrics.WeatherFetches.WithLabelValues("api", "error").Inc()
		return nil, fmt.Errorf("weather: failed to fetch forecast for %s: %w", district, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.metrics.WeatherFetches.WithLabelValues("api", "error").Inc()
		return nil, fmt.Errorf("weather: unexpected status %d fetching forecast for %s", resp.StatusCode, district)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to read response body: %w", err)
	}

	forecast := &Forecast{}
	if err := json.Unmarshal(body, forecast); err != nil {
		return nil, fmt.Errorf("weather: failed to decode forecast: %w", err)
	}

	g.metrics.WeatherFetches.WithLabelValues("api", "success").Inc()
	return forecast, nil
}

// FetchAndStore получает прогноз и сохраняет сырой ответ под uid вызывающего.
// Сохранение выполняется в фоне: его отказ логируется и учитывается в метриках
// отдельно от отказа самого запроса, но не блокирует вызывающего.
func (g *Gateway) FetchAndStore(ctx context.Context, uid, district string) (*Forecast, error) {
	forecast, err := g.Fetch(ctx, district)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(forecast)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to marshal forecast: %w", err)
	}

	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := g.store.SaveRawForecast(saveCtx, uid, district, raw); err != nil {
			g.metrics.ForecastPersistErrors.Inc()
			g.logger.WithError(err).WithFields(logrus.Fields{
				"gateway":  "weather",
				"district": district,
				"uid":      uid,
			}).Error("Failed to persist raw forecast")
		}
	}()

	return forecast, nil
}
