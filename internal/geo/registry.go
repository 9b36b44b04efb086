package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/shenikar/flood_response_system/internal/models"
)

// ErrDistrictNotFound возвращается при запросе округа, отсутствующего в реестре.
// Для вызывающего это фатально в рамках данного округа, повтор не поможет.
var ErrDistrictNotFound = errors.New("district not found in registry")

// Coordinate - центроид округа
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox - рамка округа в формате [minLat, minLon, maxLat, maxLon]
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Bound преобразует рамку в orb.Bound
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// Center возвращает центр рамки
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Радиус производной рамки вокруг центроида, примерно 15 км
const derivedBoxRadiusDeg = 0.15

// StatewideBox - рамка всего штата. Отдельный литерал, не выводится из реестра.
var StatewideBox = BoundingBox{MinLat: 8.0, MinLon: 76.0, MaxLat: 13.5, MaxLon: 80.5}

// Округа по умолчанию для публичного доступа
var publicDistricts = []string{"Chennai", "Coimbatore", "Madurai"}

// Центроиды округов Тамил-Наду
var districtCoordinates = map[string]Coordinate{
	"Ariyalur":        {Lat: 11.139, Lon: 79.075},
	"Chengalpattu":    {Lat: 12.692, Lon: 79.983},
	"Chennai":         {Lat: 13.0827, Lon: 80.2707},
	"Coimbatore":      {Lat: 11.0168, Lon: 76.9558},
	"Cuddalore":       {Lat: 11.748, Lon: 79.767},
	"Dharmapuri":      {Lat: 12.1277, Lon: 78.1576},
	"Dindigul":        {Lat: 10.365, Lon: 77.9695},
	"Erode":           {Lat: 11.341, Lon: 77.7172},
	"Kallakurichi":    {Lat: 11.738, Lon: 78.962},
	"Kancheepuram":    {Lat: 12.835, Lon: 79.703},
	"Karur":           {Lat: 10.957, Lon: 78.076},
	"Krishnagiri":     {Lat: 12.526, Lon: 78.213},
	"Madurai":         {Lat: 9.9252, Lon: 78.1198},
	"Mayiladuthurai":  {Lat: 11.1, Lon: 79.652},
	"Nagapattinam":    {Lat: 10.763, Lon: 79.844},
	"Namakkal":        {Lat: 11.219, Lon: 78.167},
	"Nilgiris":        {Lat: 11.41, Lon: 76.693},
	"Perambalur":      {Lat: 11.233, Lon: 78.883},
	"Pudukkottai":     {Lat: 10.383, Lon: 78.817},
	"Ramanathapuram":  {Lat: 9.3716, Lon: 78.8309},
	"Ranipet":         {Lat: 12.931, Lon: 79.332},
	"Salem":           {Lat: 11.6643, Lon: 78.146},
	"Sivagangai":      {Lat: 9.847, Lon: 78.483},
	"Tenkasi":         {Lat: 8.959, Lon: 77.315},
	"Thanjavur":       {Lat: 10.7867, Lon: 79.1378},
	"Theni":           {Lat: 10.0104, Lon: 77.4777},
	"Thoothukudi":     {Lat: 8.7642, Lon: 78.1348},
	"Tiruchirappalli": {Lat: 10.7905, Lon: 78.7047},
	"Tirunelveli":     {Lat: 8.7139, Lon: 77.7567},
	"Tirupathur":      {Lat: 12.496, Lon: 78.565},
	"Tiruppur":        {Lat: 11.1075, Lon: 77.3411},
	"Tiruvallur":      {Lat: 13.1439, Lon: 79.908},
	"Tiruvannamalai":  {Lat: 12.225, Lon: 79.074},
	"Tiruvarur":       {Lat: 10.7728, Lon: 79.6365},
	"Vellore":         {Lat: 12.9165, Lon: 79.1325},
	"Viluppuram":      {Lat: 11.9416, Lon: 79.5005},
	"Virudhunagar":    {Lat: 9.584, Lon: 77.957},
	"Kanyakumari":     {Lat: 8.0883, Lon: 77.5385},
}

// Центры агрегатных зон, не являющихся административными округами.
// Для них погода синтезируется, а не запрашивается у внешнего API.
var zoneCoordinates = map[string]Coordinate{
	"Coastal Flood Zone":   {Lat: 13.05, Lon: 80.25},
	"Cauvery Delta Region": {Lat: 10.7, Lon: 79.2},
	"Chennai Coastal Zone": {Lat: 13.1, Lon: 80.3},
}

// Кураторские рамки для крупных округов. Остальные выводятся из центроида.
var curatedBoundingBoxes = map[string]BoundingBox{
	"Chennai":      {MinLat: 12.8, MinLon: 80.1, MaxLat: 13.3, MaxLon: 80.4},
	"Cuddalore":    {MinLat: 11.5, MinLon: 79.5, MaxLat: 12.0, MaxLon: 80.0},
	"Nagapattinam": {MinLat: 10.5, MinLon: 79.6, MaxLat: 11.0, MaxLon: 80.0},
	"Thanjavur":    {MinLat: 10.5, MinLon: 78.9, MaxLat: 11.1, MaxLon: 79.5},
	"Tiruvarur":    {MinLat: 10.5, MinLon: 79.3, MaxLat: 11.0, MaxLon: 79.8},
	"Nilgiris":     {MinLat: 11.2, MinLon: 76.4, MaxLat: 11.6, MaxLon: 77.0},
	"Coimbatore":   {MinLat: 10.8, MinLon: 76.7, MaxLat: 11.2, MaxLon: 77.1},
	"Madurai":      {MinLat: 9.7, MinLon: 77.9, MaxLat: 10.1, MaxLon: 78.3},
	"Salem":        {MinLat: 11.4, MinLon: 77.9, MaxLat: 11.9, MaxLon: 78.3},
	"Kanyakumari":  {MinLat: 8.0, MinLon: 77.2, MaxLat: 8.3, MaxLon: 77.7},
}

// Centroid возвращает центроид округа или зоны
func Centroid(name string) (Coordinate, error) {
	if c, ok := districtCoordinates[name]; ok {
		return c, nil
	}
	if c, ok := zoneCoordinates[name]; ok {
		return c, nil
	}
	return Coordinate{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, name)
}

// IsZone сообщает, является ли имя псевдоокругом-зоной
func IsZone(name string) bool {
	_, ok := zoneCoordinates[name]
	return ok
}

// Districts возвращает имена всех округов реестра
func Districts() []string {
	names := make([]string, 0, len(districtCoordinates))
	for name := range districtCoordinates {
		names = append(names, name)
	}
	return names
}

// DistrictBoundingBox возвращает рамку округа: кураторский литерал, если он
// есть, иначе центроид ± derivedBoxRadiusDeg по каждой оси
func DistrictBoundingBox(name string) (BoundingBox, error) {
	if box, ok := curatedBoundingBoxes[name]; ok {
		return box, nil
	}
	c, err := Centroid(name)
	if err != nil {
		return BoundingBox{}, err
	}
	return BoundingBox{
		MinLat: c.Lat - derivedBoxRadiusDeg,
		MinLon: c.Lon - derivedBoxRadiusDeg,
		MaxLat: c.Lat + derivedBoxRadiusDeg,
		MaxLon: c.Lon + derivedBoxRadiusDeg,
	}, nil
}

// AccessibleDistricts возвращает список округов, доступных роли.
// Пустой список для окружной роли без назначенного округа - это "ничего не
// отображается", а не ошибка.
func AccessibleDistricts(role models.Role, assignedDistrict string) []string {
	switch {
	case role == models.RoleAdmin:
		return Districts()
	case role.IsDistrictScoped():
		if assignedDistrict == "" {
			return []string{}
		}
		return []string{assignedDistrict}
	case role == models.RolePublic:
		out := make([]string, len(publicDistricts))
		copy(out, publicDistricts)
		return out
	}
	return []string{}
}

// ViewportForRole возвращает начальную рамку карты для роли.
// Администратор получает рамку штата, окружные роли - рамку назначенного
// округа, публичная роль - запрошенный округ или Chennai по умолчанию.
func ViewportForRole(role models.Role, assignedDistrict string) (BoundingBox, error) {
	switch {
	case role == models.RoleAdmin:
		return StatewideBox, nil
	case role.IsDistrictScoped():
		if assignedDistrict == "" {
			return BoundingBox{}, fmt.Errorf("no district assigned for role %s", role)
		}
		return DistrictBoundingBox(assignedDistrict)
	case role == models.RolePublic:
		district := assignedDistrict
		if district == "" {
			district = "Chennai"
		}
		return DistrictBoundingBox(district)
	}
	return BoundingBox{}, fmt.Errorf("unknown role %q", role)
}
