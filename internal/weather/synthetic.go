package weather

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shenikar/flood_response_system/internal/geo"
)

// syntheticForecast строит shape-совместимый прогноз для зоны-псевдоокруга.
// Зоны с "coastal" или "flood" в имени получают повышенные осадки и ветер,
// чтобы их базовый риск коррелировал с названием.
func syntheticForecast(zone string, coord geo.Coordinate) *Forecast {
	lower := strings.ToLower(zone)
	highRisk := strings.Contains(lower, "coastal") || strings.Contains(lower, "flood")

	now := time.Now()
	conditionText := "Moderate rain"
	if highRisk {
		conditionText = "Heavy rain"
	}

	mkDay := func(offsetDays int, baseRain, rainSpread, baseWind, windSpread float64) ForecastDay {
		return ForecastDay{
			Date: now.AddDate(0, 0, offsetDays).Format("2006-01-02"),
			Day: Day{
				MaxTempC:      30 + rand.Float64()*3,
				MinTempC:      24 + rand.Float64()*3,
				TotalPrecipMM: baseRain + rand.Float64()*rainSpread,
				MaxWindKph:    baseWind + rand.Float64()*windSpread,
				Condition:     Condition{Text: conditionText},
			},
		}
	}

	var days []ForecastDay
	if highRisk {
		days = []ForecastDay{
			mkDay(0, 35, 20, 50, 20),
			mkDay(1, 40, 25, 55, 20),
			mkDay(2, 30, 20, 45, 15),
		}
	} else {
		days = []ForecastDay{
			mkDay(0, 15, 10, 30, 15),
			mkDay(1, 20, 15, 35, 15),
			mkDay(2, 10, 10, 25, 15),
		}
	}

	f := &Forecast{
		Location: Location{
			Name:      zone,
			Region:    "Tamil Nadu",
			Country:   "India",
			Lat:       coord.Lat,
			Lon:       coord.Lon,
			Localtime: now.Format(time.RFC3339),
		},
		Current: Current{
			TempC:     28 + rand.Float64()*4,
			Condition: Condition{Text: conditionText},
			WindKph:   25 + rand.Float64()*15,
			PrecipMM:  5 + rand.Float64()*5,
		},
		Forecast: ForecastDays{ForecastDay: days},
	}
	if highRisk {
		f.Current.WindKph = 45 + rand.Float64()*15
		f.Current.PrecipMM = 15 + rand.Float64()*10
		f.Alerts = Alerts{Alert: []Alert{{
			Headline: "Flood Warning for " + zone,
			Desc:     "Heavy rainfall expected in " + zone + " with potential for flooding in low-lying areas.",
			Severity: "Moderate",
		}}}
	}
	return f
}
