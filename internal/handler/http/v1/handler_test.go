package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/geo"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/repository"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
)

// handlerMocks собирает моки всех сервисов обработчика
type handlerMocks struct {
	sessions *mocks.MockSessionService
	users    *mocks.MockUserService
	mapView  *mocks.MockMapViewService
	weather  *mocks.MockWeatherService
	zones    *mocks.MockFloodZoneService
	work     *mocks.MockWorkService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		sessions: mocks.NewMockSessionService(ctrl),
		users:    mocks.NewMockUserService(ctrl),
		mapView:  mocks.NewMockMapViewService(ctrl),
		weather:  mocks.NewMockWeatherService(ctrl),
		zones:    mocks.NewMockFloodZoneService(ctrl),
		work:     mocks.NewMockWorkService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.sessions, m.users, m.mapView, m.weather, m.zones, m.work, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func approvedOfficer() *models.SessionContext {
	return &models.SessionContext{
		UID:         "officer-1",
		Email:       "officer@example.com",
		DisplayName: "Officer One",
		Role:        models.RoleCommandOfficer,
		District:    "Chennai",
		Approved:    models.ApprovalApproved,
	}
}

func approvedWorker() *models.SessionContext {
	return &models.SessionContext{
		UID:         "worker-1",
		Email:       "worker@example.com",
		DisplayName: "Worker One",
		Role:        models.RoleFieldWorker,
		District:    "Chennai",
		Approved:    models.ApprovalApproved,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterUserRequest{
		UID:   "new-user-1",
		Email: "new@example.com",
		Name:  "New User",
	}
	created := &models.UserProfile{
		UID:         reqBody.UID,
		Email:       reqBody.Email,
		DisplayName: reqBody.Name,
		Approved:    models.ApprovalPending,
		CreatedAt:   time.Now(),
	}

	m.users.EXPECT().
		Register(gomock.Any(), reqBody.UID, reqBody.Email, reqBody.Name).
		Return(created, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.UID, resp.UID)
	assert.Equal(t, "pending", resp.Approved)
}

func TestRegisterUser_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterUserRequest{UID: "new-user-1", Name: "No Email"}

	m.users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteProfile_UnknownRole(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().CompleteProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/users/u1/details",
		bytes.NewBufferString(`{"role": "mayor", "district": "Chennai"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSession_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()

	m.sessions.EXPECT().
		Resolve(gomock.Any(), "worker-1").
		Return(session, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/session", nil, map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "field-worker", resp.Role)
	assert.Equal(t, "Chennai", resp.District)
}

func TestGetSession_Unauthenticated(t *testing.T) {
	m, router := newTestHandler(t)

	m.sessions.EXPECT().
		Resolve(gomock.Any(), "").
		Return(nil, service.ErrNotAuthenticated).Times(1)

	w := makeRequest(router, "GET", "/api/v1/session", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetSession_ProfileNotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.sessions.EXPECT().
		Resolve(gomock.Any(), "ghost").
		Return(nil, service.ErrProfileNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/session", nil, map[string]string{"X-User-ID": "ghost"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApproveUser_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().Approve(gomock.Any(), "pending-1").Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/admin/users/pending-1/approve", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveUser_MissingAPIKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.users.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/admin/users/pending-1/approve", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetFloodFeatures_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()
	view := &service.MapView{
		Features: nil,
		Viewport: geo.BoundingBox{MinLat: 12.8, MinLon: 80.1, MaxLat: 13.3, MaxLon: 80.4},
		Counts:   service.RiskCounts{High: 1, Low: 2},
	}

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.mapView.EXPECT().FeatureView(gomock.Any(), session).Return(view, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/flood/features", nil, map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MapViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 13.3, resp.Viewport.MaxLat)
	assert.Equal(t, 1, resp.Counts.High)
}

func TestGetFloodFeatures_PendingApproval(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()
	session.Approved = models.ApprovalPending

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.mapView.EXPECT().FeatureView(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/flood/features", nil, map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")
}

func TestGetWeather_DistrictNotAccessible(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker() // прикреплен к Chennai

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.weather.EXPECT().FetchAndStore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/weather/Coimbatore", nil, map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateWork_Success(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedOfficer()
	reqBody := CreateWorkRequest{
		Title:    "Sandbag the riverbank",
		Priority: "high",
	}
	created := &models.WorkAssignment{
		ID:         "work-1",
		Title:      reqBody.Title,
		Priority:   models.PriorityHigh,
		Status:     models.WorkPending,
		AssignedTo: "Unassigned",
		District:   "Chennai",
		CreatedAt:  time.Now(),
	}

	m.sessions.EXPECT().Resolve(gomock.Any(), "officer-1").Return(session, nil).Times(1)
	m.work.EXPECT().
		Create(gomock.Any(), session, reqBody.Title, "", models.PriorityHigh).
		Return(created, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/work", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-User-ID": "officer-1"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp WorkResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "work-1", resp.ID)
	assert.Equal(t, "Chennai", resp.District)
}

func TestCreateWork_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.work.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrForbidden).Times(1)

	bodyBytes, _ := json.Marshal(CreateWorkRequest{Title: "Not allowed", Priority: "low"})
	w := makeRequest(router, "POST", "/api/v1/work", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClaimWork_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.work.EXPECT().
		Claim(gomock.Any(), session, "work-1").
		Return(service.ErrMutationInFlight).Times(1)

	w := makeRequest(router, "POST", "/api/v1/work/work-1/claim", nil, map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "in flight")
}

func TestCompleteWork_MissingComment(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedWorker()

	m.sessions.EXPECT().Resolve(gomock.Any(), "worker-1").Return(session, nil).Times(1)
	m.work.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/work/work-1/complete",
		bytes.NewBufferString(`{}`), map[string]string{"X-User-ID": "worker-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetZones_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	session := approvedOfficer()

	m.sessions.EXPECT().Resolve(gomock.Any(), "officer-1").Return(session, nil).Times(1)
	m.zones.EXPECT().Stored(gomock.Any(), "officer-1").Return(nil, repository.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/flood/zones", nil, map[string]string{"X-User-ID": "officer-1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
