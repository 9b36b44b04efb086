package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/flood_response_system/internal/risk"
)

// Ключи свойств фич риска наводнения
const (
	PropName         = "name"
	PropRiskLevel    = "riskLevel"
	PropDescription  = "description"
	PropRealTimeData = "realTimeData"
	PropError        = "error"
)

type staticFeature struct {
	name        string
	level       risk.Level
	description string
	geometry    orb.Geometry
}

func ring(points ...[2]float64) orb.Polygon {
	r := make(orb.Ring, len(points))
	for i, p := range points {
		r[i] = orb.Point{p[0], p[1]}
	}
	return orb.Polygon{r}
}

// Статический набор фич - неизменяемые справочные данные.
// Наружу отдаются только копии, шаблон никогда не мутируется.
var staticFloodFeatures = []staticFeature{
	{
		name:        "Chennai",
		level:       risk.LevelHigh,
		description: "Urban flooding risk due to coastal location and dense infrastructure",
		geometry: ring(
			[2]float64{80.15, 12.85},
			[2]float64{80.35, 12.85},
			[2]float64{80.35, 13.25},
			[2]float64{80.15, 13.25},
			[2]float64{80.15, 12.85},
		),
	},
	{
		name:        "Chennai North",
		level:       risk.LevelHigh,
		description: "Northern Chennai area with high flood risk",
		geometry:    orb.Point{80.28, 13.15},
	},
	{
		name:        "Chennai Central",
		level:       risk.LevelHigh,
		description: "Central Chennai with critical infrastructure",
		geometry:    orb.Point{80.27, 13.08},
	},
	{
		name:        "Chennai South",
		level:       risk.LevelMedium,
		description: "Southern Chennai with moderate flood risk",
		geometry:    orb.Point{80.25, 13.00},
	},
	{
		name:        "Cuddalore",
		level:       risk.LevelHigh,
		description: "Coastal district with history of severe flooding during monsoons",
		geometry:    orb.Point{79.767, 11.748},
	},
	{
		name:        "Nagapattinam",
		level:       risk.LevelHigh,
		description: "Low-lying coastal area vulnerable to cyclones and flooding",
		geometry:    orb.Point{79.844, 10.763},
	},
	{
		name:        "Thanjavur",
		level:       risk.LevelMedium,
		description: "Part of Cauvery delta, susceptible to riverine flooding",
		geometry:    orb.Point{79.1378, 10.7867},
	},
	{
		name:        "Tiruvarur",
		level:       risk.LevelMedium,
		description: "Low elevation and part of Cauvery delta region",
		geometry:    orb.Point{79.6365, 10.7728},
	},
	{
		name:        "Nilgiris",
		level:       risk.LevelLow,
		description: "Hilly terrain with localized landslide risk during heavy rains",
		geometry:    orb.Point{76.693, 11.41},
	},
	{
		name:        "Coimbatore",
		level:       risk.LevelLow,
		description: "Urban area with moderate rainfall and good drainage",
		geometry:    orb.Point{76.9558, 11.0168},
	},
	{
		name:        "Madurai",
		level:       risk.LevelLow,
		description: "Inland city with moderate flood risk",
		geometry:    orb.Point{78.1198, 9.9252},
	},
	{
		name:        "Coastal Flood Zone",
		level:       risk.LevelHigh,
		description: "High risk coastal flooding area",
		geometry: ring(
			[2]float64{80.3, 13.2},
			[2]float64{80.4, 13.1},
			[2]float64{80.2, 12.9},
			[2]float64{80.1, 13.0},
			[2]float64{80.3, 13.2},
		),
	},
	{
		name:        "Cauvery Delta Region",
		level:       risk.LevelMedium,
		description: "River delta prone to seasonal flooding",
		geometry: ring(
			[2]float64{79.0, 10.7},
			[2]float64{79.3, 10.8},
			[2]float64{79.4, 10.6},
			[2]float64{79.2, 10.5},
			[2]float64{79.0, 10.7},
		),
	},
	{
		name:        "Chennai Coastal Zone",
		level:       risk.LevelHigh,
		description: "Chennai's coastal areas with high vulnerability to storm surges and flooding",
		geometry: ring(
			[2]float64{80.25, 13.05},
			[2]float64{80.35, 13.05},
			[2]float64{80.35, 13.15},
			[2]float64{80.25, 13.15},
			[2]float64{80.25, 13.05},
		),
	},
}

// StaticFloodFeatures собирает свежую копию статической коллекции фич.
// Каждый вызов строит коллекцию заново, поэтому вызывающий может свободно
// навешивать live-аннотации, не трогая шаблон.
func StaticFloodFeatures() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, sf := range staticFloodFeatures {
		f := geojson.NewFeature(orb.Clone(sf.geometry))
		f.Properties = geojson.Properties{
			PropName:        sf.name,
			PropRiskLevel:   string(sf.level),
			PropDescription: sf.description,
		}
		fc.Append(f)
	}
	return fc
}
