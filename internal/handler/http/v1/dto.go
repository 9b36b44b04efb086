package v1

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/flood_response_system/internal/floodrisk"
	"github.com/shenikar/flood_response_system/internal/risk"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/weather"
)

// RegisterUserRequest DTO для регистрации пользователя
type RegisterUserRequest struct {
	UID   string `json:"uid" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2,max=255"`
}

// CompleteProfileRequest DTO для второго шага профиля: роль и округ
type CompleteProfileRequest struct {
	Role     string `json:"role" validate:"required,oneof=admin government-official command-officer field-worker public"`
	District string `json:"district,omitempty"`
}

// UserResponse DTO для ответа с информацией о пользователе
type UserResponse struct {
	UID        string     `json:"uid"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Approved   string     `json:"approved"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// SessionResponse DTO для ответа резолвера сессии
type SessionResponse struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	District string `json:"district,omitempty"`
	Approved string `json:"approved"`
}

// CreateWorkRequest DTO для создания рабочего задания
type CreateWorkRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
}

// CompleteWorkRequest DTO для завершения задания с итоговым комментарием
type CompleteWorkRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// WorkResponse DTO для ответа с рабочим заданием
type WorkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to"`
	Comment     string    `json:"comment,omitempty"`
	District    string    `json:"district"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkBoardResponse DTO для доски заданий: три представления целиком
type WorkBoardResponse struct {
	Available  []*WorkResponse `json:"available"`
	InProgress []*WorkResponse `json:"in_progress"`
	Completed  []*WorkResponse `json:"completed"`
}

// ViewportResponse DTO для стартового вьюпорта карты
type ViewportResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// MapViewResponse DTO для серверной части карты
type MapViewResponse struct {
	Features *geojson.FeatureCollection `json:"features"`
	Viewport ViewportResponse           `json:"viewport"`
	Counts   service.RiskCounts         `json:"risk_counts"`
}

// RisksResponse DTO для списка рисков по округам
type RisksResponse struct {
	Risks []floodrisk.DistrictRisk `json:"risks"`
}

// WeatherResponse DTO для прогноза с оценкой риска
type WeatherResponse struct {
	District string           `json:"district"`
	Forecast *weather.Forecast `json:"forecast"`
	Risk     risk.Assessment  `json:"risk"`
}

// ZonesResponse DTO для сохраненных зон риска
type ZonesResponse struct {
	Zones json.RawMessage `json:"zones"`
}
