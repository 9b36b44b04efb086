package v1

import (
	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
)

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.UserProfile) *UserResponse {
	return &UserResponse{
		UID:        model.UID,
		Name:       model.DisplayName,
		Email:      model.Email,
		Approved:   model.Approved.String(),
		CreatedAt:  model.CreatedAt,
		ApprovedAt: model.ApprovedAt,
		Message:    model.Message,
	}
}

// ModelsToUserResponses преобразует слайс моделей в слайс DTO
func ModelsToUserResponses(models []*models.UserProfile) []*UserResponse {
	responses := make([]*UserResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// SessionToResponse преобразует объект сессии в DTO для ответа
func SessionToResponse(session *models.SessionContext) *SessionResponse {
	return &SessionResponse{
		UID:      session.UID,
		Email:    session.Email,
		Name:     session.DisplayName,
		Role:     string(session.Role),
		District: session.District,
		Approved: session.Approved.String(),
	}
}

// ModelToWorkResponse преобразует доменную модель задания в DTO для ответа
func ModelToWorkResponse(model *models.WorkAssignment) *WorkResponse {
	return &WorkResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Priority:    string(model.Priority),
		Status:      string(model.Status),
		AssignedTo:  model.AssignedTo,
		Comment:     model.Comment,
		District:    model.District,
		CreatedAt:   model.CreatedAt,
	}
}

// BoardToResponse преобразует доску заданий в DTO для ответа
func BoardToResponse(board *models.WorkBoard) *WorkBoardResponse {
	toResponses := func(list []*models.WorkAssignment) []*WorkResponse {
		responses := make([]*WorkResponse, len(list))
		for i, model := range list {
			responses[i] = ModelToWorkResponse(model)
		}
		return responses
	}
	return &WorkBoardResponse{
		Available:  toResponses(board.Available),
		InProgress: toResponses(board.InProgress),
		Completed:  toResponses(board.Completed),
	}
}

// ViewportToResponse преобразует рамку вьюпорта в DTO для ответа
func ViewportToResponse(box geo.BoundingBox) ViewportResponse {
	return ViewportResponse{
		MinLat: box.MinLat,
		MinLon: box.MinLon,
		MaxLat: box.MaxLat,
		MaxLon: box.MaxLon,
	}
}

// MapViewToResponse преобразует серверную часть карты в DTO для ответа
func MapViewToResponse(view *service.MapView) *MapViewResponse {
	return &MapViewResponse{
		Features: view.Features,
		Viewport: ViewportToResponse(view.Viewport),
		Counts:   view.Counts,
	}
}
