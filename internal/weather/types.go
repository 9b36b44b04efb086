package weather

import "strings"

// Forecast - ответ внешнего погодного API (weatherapi.com), схема сохранена
// один в один, чтобы синтетические данные зон были shape-совместимы
type Forecast struct {
	Location Location     `json:"location"`
	Current  Current      `json:"current"`
	Forecast ForecastDays `json:"forecast"`
	Alerts   Alerts       `json:"alerts"`
}

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Current struct {
	TempC     float64   `json:"temp_c"`
	Condition Condition `json:"condition"`
	WindKph   float64   `json:"wind_kph"`
	PrecipMM  float64   `json:"precip_mm"`
}

type ForecastDays struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c,omitempty"`
	TotalPrecipMM     float64   `json:"totalprecip_mm"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain,omitempty"`
	Condition         Condition `json:"condition,omitempty"`
}

type Alerts struct {
	Alert []Alert `json:"alert"`
}

type Alert struct {
	Headline string `json:"headline"`
	Desc     string `json:"desc"`
	Severity string `json:"severity"`
}

// Summary - свертка прогноза до входов классификатора риска
type Summary struct {
	TotalRainfallMM float64
	MaxWindKph      float64
	HasAlerts       bool
	FloodAlerts     bool
}

// Summarize сводит прогноз к суммарным осадкам за окно, максимальному ветру
// и флагам предупреждений. Предупреждение считается "наводненческим", если
// слово flood встречается в заголовке или описании.
func Summarize(f *Forecast) Summary {
	var s Summary
	for _, day := range f.Forecast.ForecastDay {
		s.TotalRainfallMM += day.Day.TotalPrecipMM
		if day.Day.MaxWindKph > s.MaxWindKph {
			s.MaxWindKph = day.Day.MaxWindKph
		}
	}
	s.HasAlerts = len(f.Alerts.Alert) > 0
	for _, a := range f.Alerts.Alert {
		if strings.Contains(strings.ToLower(a.Headline), "flood") ||
			strings.Contains(strings.ToLower(a.Desc), "flood") {
			s.FloodAlerts = true
			break
		}
	}
	return s
}
