package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/floodrisk"
	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/repository"
	"github.com/shenikar/flood_response_system/internal/risk"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/weather"
)

// Заголовок с идентификатором вызывающего. Проверка подлинности токена -
// забота внешнего identity-провайдера перед этим сервисом.
const userIDHeader = "X-User-ID"

type Handler struct {
	sessions service.SessionService
	users    service.UserService
	mapView  service.MapViewService
	weather  service.WeatherService
	zones    service.FloodZoneService
	work     service.WorkService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(
	sessions service.SessionService,
	users service.UserService,
	mapView service.MapViewService,
	weatherSvc service.WeatherService,
	zones service.FloodZoneService,
	work service.WorkService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		sessions: sessions,
		users:    users,
		mapView:  mapView,
		weather:  weatherSvc,
		zones:    zones,
		work:     work,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// resolveSession разрешает сессию вызывающего по заголовку X-User-ID.
// Три терминальных состояния резолвера отображаются в разные ответы.
func (h *Handler) resolveSession(c *gin.Context) (*models.SessionContext, bool) {
	session, err := h.sessions.Resolve(c.Request.Context(), c.GetHeader(userIDHeader))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user profile not found"})
		case errors.Is(err, service.ErrRoleMissing):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user role not assigned"})
		default:
			h.logger.WithError(err).Error("Failed to resolve session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return nil, false
	}
	return session, true
}

// approvedSession дополнительно требует одобренную учетную запись.
// Неодобренные и отклоненные пользователи резолвятся, но до данных не допускаются.
func (h *Handler) approvedSession(c *gin.Context) (*models.SessionContext, bool) {
	session, ok := h.resolveSession(c)
	if !ok {
		return nil, false
	}
	if session.Approved != models.ApprovalApproved {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
		return nil, false
	}
	return session, true
}

// registerUser создает учетную запись в состоянии "ожидает одобрения"
func (h *Handler) registerUser(c *gin.Context) {
	var input RegisterUserRequest
	log := h.logger.WithField("method", "registerUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), input.UID, input.Email, input.Name)
	if err != nil {
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// completeProfile записывает роль и округ пользователя
func (h *Handler) completeProfile(c *gin.Context) {
	uid := c.Param("uid")
	log := h.logger.WithField("method", "completeProfile").WithField("uid", uid)

	var input CompleteProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	if err := h.users.CompleteProfile(c.Request.Context(), uid, role, input.District); err != nil {
		log.WithError(err).Error("Failed to complete profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// getSession возвращает сессию вызывающего, включая неодобренных:
// клиент показывает по ней экран "ожидает одобрения"
func (h *Handler) getSession(c *gin.Context) {
	session, ok := h.resolveSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SessionToResponse(session))
}

// listUsers возвращает пользователей по состоянию одобрения
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	state := models.ApprovalPending
	if c.DefaultQuery("state", "pending") == "approved" {
		state = models.ApprovalApproved
	}

	users, err := h.users.ListUsers(c.Request.Context(), state)
	if err != nil {
		log.WithError(err).Error("Failed to list users from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// approveUser одобряет учетную запись
func (h *Handler) approveUser(c *gin.Context) {
	uid := c.Param("uid")
	log := h.logger.WithField("method", "approveUser").WithField("uid", uid)

	if err := h.users.Approve(c.Request.Context(), uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.WithError(err).Error("Failed to approve user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// rejectUser отклоняет учетную запись
func (h *Handler) rejectUser(c *gin.Context) {
	uid := c.Param("uid")
	log := h.logger.WithField("method", "rejectUser").WithField("uid", uid)

	if err := h.users.Reject(c.Request.Context(), uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.WithError(err).Error("Failed to reject user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// getFloodFeatures возвращает живую коллекцию фич, вьюпорт и сводку риска
func (h *Handler) getFloodFeatures(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getFloodFeatures").WithField("uid", session.UID)

	view, err := h.mapView.FeatureView(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, geo.ErrDistrictNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no district assigned"})
			return
		}
		log.WithError(err).Error("Failed to build map view in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MapViewToResponse(view))
}

// getFloodRisks возвращает агрегированные риски по округам
func (h *Handler) getFloodRisks(c *gin.Context) {
	if _, ok := h.approvedSession(c); !ok {
		return
	}
	log := h.logger.WithField("method", "getFloodRisks")

	risks, err := h.mapView.DistrictRisks(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get district risks from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, RisksResponse{Risks: risks})
}

// getWeather возвращает прогноз для округа и сохраняет сырой ответ под вызывающим
func (h *Handler) getWeather(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	district := c.Param("district")
	log := h.logger.WithField("method", "getWeather").WithField("district", district)

	if !districtAccessible(session, district) {
		c.JSON(http.StatusForbidden, gin.H{"error": "district not accessible for role"})
		return
	}

	forecast, err := h.weather.FetchAndStore(c.Request.Context(), session.UID, district)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrDistrictNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown district"})
		case errors.Is(err, weather.ErrAPIKeyMissing):
			log.WithError(err).Error("Weather API key is not configured")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "weather service unavailable"})
		default:
			log.WithError(err).Error("Failed to fetch forecast")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch forecast"})
		}
		return
	}

	s := weather.Summarize(forecast)
	c.JSON(http.StatusOK, WeatherResponse{
		District: district,
		Forecast: forecast,
		Risk:     risk.Assess(s.TotalRainfallMM, s.MaxWindKph, s.HasAlerts, s.FloodAlerts),
	})
}

// generateZones запускает LLM-генерацию зон риска для округа вызывающего
func (h *Handler) generateZones(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "generateZones").WithField("uid", session.UID)

	zones, err := h.zones.Generate(c.Request.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "zone generation not permitted for role"})
		case errors.Is(err, floodrisk.ErrInvalidGeoJSON):
			log.WithError(err).Error("Zone generation returned invalid GeoJSON")
			c.JSON(http.StatusBadGateway, gin.H{"error": "generation produced invalid zones"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no stored forecast for caller"})
		default:
			log.WithError(err).Error("Failed to generate zones in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, zones)
}

// getZones возвращает последние сохраненные зоны вызывающего
func (h *Handler) getZones(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getZones").WithField("uid", session.UID)

	zones, err := h.zones.Stored(c.Request.Context(), session.UID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no stored zones"})
			return
		}
		log.WithError(err).Error("Failed to read zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ZonesResponse{Zones: zones})
}

// createWork создает рабочее задание от имени командира
func (h *Handler) createWork(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createWork").WithField("uid", session.UID)

	var input CreateWorkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority, err := models.ParseWorkPriority(input.Priority)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority"})
		return
	}

	work, err := h.work.Create(c.Request.Context(), session, input.Title, input.Description, priority)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "only command officers create assignments"})
			return
		}
		log.WithError(err).Error("Failed to create work assignment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToWorkResponse(work))
}

// getWorkBoard возвращает доску заданий вызывающего
func (h *Handler) getWorkBoard(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getWorkBoard").WithField("uid", session.UID)

	board, err := h.work.Board(c.Request.Context(), session)
	if err != nil {
		log.WithError(err).Error("Failed to build work board in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, BoardToResponse(board))
}

// claimWork переводит задание pending -> in-progress на вызывающего
func (h *Handler) claimWork(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	log := h.logger.WithField("method", "claimWork").WithField("work_id", id)

	if err := h.work.Claim(c.Request.Context(), session, id); err != nil {
		h.respondWorkMutationError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// completeWork переводит задание in-progress -> completed с комментарием
func (h *Handler) completeWork(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	log := h.logger.WithField("method", "completeWork").WithField("work_id", id)

	var input CompleteWorkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.work.Complete(c.Request.Context(), session, id, input.Comment); err != nil {
		h.respondWorkMutationError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) respondWorkMutationError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "mutation not permitted"})
	case errors.Is(err, service.ErrMutationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "mutation already in flight"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "work assignment not found"})
	default:
		log.WithError(err).Error("Work mutation failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// streamWork отдает доску заданий потоком server-sent events: одно событие
// на каждый снапшот фида, соединение живет до отключения клиента
func (h *Handler) streamWork(c *gin.Context) {
	session, ok := h.approvedSession(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "streamWork").WithField("uid", session.UID)

	boards, err := h.work.Watch(c.Request.Context(), session)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to work feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		board, open := <-boards
		if !open {
			return false
		}
		c.SSEvent("snapshot", BoardToResponse(board))
		return true
	})
}

// healthCheck возвращает статус сервиса
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// districtAccessible проверяет доступность округа для роли вызывающего.
// Агрегатные зоны доступны всем одобренным ролям.
func districtAccessible(session *models.SessionContext, district string) bool {
	if geo.IsZone(district) {
		return true
	}
	for _, d := range geo.AccessibleDistricts(session.Role, session.District) {
		if d == district {
			return true
		}
	}
	return false
}
