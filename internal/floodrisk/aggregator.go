package floodrisk

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/risk"
	"github.com/shenikar/flood_response_system/internal/weather"
)

// WeatherSource получает прогноз для округа или зоны
type WeatherSource interface {
	Fetch(ctx context.Context, district string) (*weather.Forecast, error)
}

// DistrictRisk - оценка риска одного округа. При отказе запроса погода
// деградирует до нулевого плейсхолдера с заполненным полем Error.
type DistrictRisk struct {
	District string `json:"district"`
	risk.Assessment
	Error string `json:"error,omitempty"`
}

// Фиксированный список целей агрегации: округа с историей наводнений плюс
// агрегатные зоны
var defaultTargets = []string{
	"Chennai", "Cuddalore", "Nagapattinam", "Thanjavur",
	"Tiruvarur", "Nilgiris", "Kanyakumari", "Thoothukudi",
	"Coastal Flood Zone", "Cauvery Delta Region", "Chennai Coastal Zone",
}

// Aggregator разворачивает запросы погоды по фиксированному списку округов
// и сводит каждый ответ через классификатор риска
type Aggregator struct {
	source  WeatherSource
	logger  *logrus.Logger
	metrics *observability.Metrics
	targets []string
}

// NewAggregator создает агрегатор по стандартному списку целей
func NewAggregator(source WeatherSource, logger *logrus.Logger, metrics *observability.Metrics) *Aggregator {
	return &Aggregator{
		source:  source,
		logger:  logger,
		metrics: metrics,
		targets: defaultTargets,
	}
}

// WithTargets переопределяет список целей (для тестов)
func (a *Aggregator) WithTargets(targets []string) *Aggregator {
	a.targets = targets
	return a
}

// Aggregate запрашивает погоду по всем целям параллельно. Отказ одного округа
// изолируется: его запись деградирует до low/нулей с маркером ошибки и никогда
// не прерывает общий прогон. Порядок выполнения не гарантирован, но результат
// ключуется именем округа, поэтому слияние коммутативно.
func (a *Aggregator) Aggregate(ctx context.Context) []DistrictRisk {
	log := a.logger.WithFields(logrus.Fields{
		"service": "floodrisk",
		"method":  "Aggregate",
	})
	log.Info("Starting flood risk aggregation")
	start := time.Now()

	results := make([]DistrictRisk, len(a.targets))
	var wg sync.WaitGroup
	for i, district := range a.targets {
		wg.Add(1)
		go func(i int, district string) {
			defer wg.Done()
			forecast, err := a.source.Fetch(ctx, district)
			if err != nil {
				log.WithError(err).WithField("district", district).Warn("District fetch failed, degrading to placeholder")
				a.metrics.AggregationDegraded.Inc()
				results[i] = DistrictRisk{
					District:   district,
					Assessment: risk.Assessment{Level: risk.LevelLow},
					Error:      err.Error(),
				}
				return
			}
			s := weather.Summarize(forecast)
			results[i] = DistrictRisk{
				District:   district,
				Assessment: risk.Assess(s.TotalRainfallMM, s.MaxWindKph, s.HasAlerts, s.FloodAlerts),
			}
		}(i, district)
	}
	wg.Wait()

	a.metrics.AggregationRuns.Inc()
	a.metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	log.WithField("count", len(results)).Info("Flood risk aggregation completed")
	return results
}

// realTimeData - транзиентная аннотация фичи, никогда не сохраняется в шаблон
type realTimeData struct {
	Rainfall  float64 `json:"rainfall"`
	WindSpeed float64 `json:"windSpeed"`
	HasAlerts bool    `json:"hasAlerts"`
}

// MergeIntoCollection клонирует коллекцию и для каждой фичи, чье имя совпало
// с посчитанным округом, перезаписывает riskLevel и навешивает realTimeData.
// Фичи без совпадения остаются со статическими значениями - это намеренный
// fallback. Записи с маркером ошибки пропускаются.
func MergeIntoCollection(fc *geojson.FeatureCollection, risks []DistrictRisk) (*geojson.FeatureCollection, error) {
	raw, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("floodrisk: failed to marshal collection: %w", err)
	}
	merged, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("floodrisk: failed to clone collection: %w", err)
	}

	byDistrict := make(map[string]DistrictRisk, len(risks))
	for _, r := range risks {
		if r.Error == "" {
			byDistrict[r.District] = r
		}
	}

	for _, f := range merged.Features {
		name := f.Properties.MustString(geo.PropName, "")
		r, ok := byDistrict[name]
		if !ok {
			continue
		}
		f.Properties[geo.PropRiskLevel] = string(r.Level)
		f.Properties[geo.PropRealTimeData] = realTimeData{
			Rainfall:  r.RainfallMM,
			WindSpeed: r.MaxWindKph,
			HasAlerts: r.HasAlerts,
		}
		desc := f.Properties.MustString(geo.PropDescription, "")
		desc = fmt.Sprintf("%s. Expected rainfall: %.1fmm over next 3 days.", desc, r.RainfallMM)
		if r.FloodAlerts {
			desc += " FLOOD ALERT ACTIVE!"
		}
		f.Properties[geo.PropDescription] = desc
	}
	return merged, nil
}
