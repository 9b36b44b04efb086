package risk

// Level - уровень риска наводнения
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Пороговые значения классификатора. Фиксированные константы - это
// осознанное решение, конфигурация здесь не нужна.
const (
	highRainfallMM    = 100.0
	highComboRainMM   = 75.0
	highComboWindKph  = 60.0
	mediumRainfallMM  = 50.0
	mediumComboRainMM = 25.0
	mediumComboWind   = 40.0
)

// Assessment - результат оценки риска по прогнозу погоды
type Assessment struct {
	Level       Level   `json:"risk_level"`
	RainfallMM  float64 `json:"rainfall_mm"`
	MaxWindKph  float64 `json:"max_wind_kph"`
	HasAlerts   bool    `json:"has_alerts"`
	FloodAlerts bool    `json:"flood_alerts"`
}

// Classify возвращает уровень риска по суммарным осадкам за окно прогноза (мм),
// максимальной скорости ветра (км/ч) и наличию предупреждения о наводнении.
// Правила применяются по порядку, первое совпадение выигрывает.
func Classify(rainfallMM, maxWindKph float64, floodAlert bool) Level {
	if floodAlert || rainfallMM > highRainfallMM || (rainfallMM > highComboRainMM && maxWindKph > highComboWindKph) {
		return LevelHigh
	}
	if rainfallMM > mediumRainfallMM || (rainfallMM > mediumComboRainMM && maxWindKph > mediumComboWind) {
		return LevelMedium
	}
	return LevelLow
}

// Assess собирает полную оценку риска
func Assess(rainfallMM, maxWindKph float64, hasAlerts, floodAlerts bool) Assessment {
	return Assessment{
		Level:       Classify(rainfallMM, maxWindKph, floodAlerts),
		RainfallMM:  rainfallMM,
		MaxWindKph:  maxWindKph,
		HasAlerts:   hasAlerts,
		FloodAlerts: floodAlerts,
	}
}
