package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/cronjobs"
	"github.com/shenikar/flood_response_system/internal/feed"
	"github.com/shenikar/flood_response_system/internal/floodrisk"
	v1 "github.com/shenikar/flood_response_system/internal/handler/http/v1"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/repository"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/weather"
	firestoreclient "github.com/shenikar/flood_response_system/pkg/firestore"
	"github.com/shenikar/flood_response_system/pkg/logger"
	redisclient "github.com/shenikar/flood_response_system/pkg/redis"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к Firestore
	fsClient, err := firestoreclient.NewClient(ctx, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer fsClient.Close()
	log.Info("Successfully connected to Firestore")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	metrics := observability.NewMetrics()

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(fsClient)
	workRepo := repository.NewWorkRepository(fsClient)
	forecastRepo := repository.NewForecastRepository(fsClient)
	riskCache := repository.NewRiskCache(redisClient, cfg.RiskCacheTTL)

	// Погодный шлюз и агрегация риска
	weatherGateway := weather.NewGateway(cfg.WeatherAPIKey, forecastRepo, log, metrics)
	aggregator := floodrisk.NewAggregator(weatherGateway, log, metrics)

	// LLM-генератор зон риска
	llmClient := floodrisk.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL)
	zoneGenerator := floodrisk.NewGenerator(llmClient, userRepo, forecastRepo, forecastRepo, log)

	// Канал заданий: Firestore-слушатель как основной транспорт,
	// redis pub/sub как ретрансляция для внешних подписчиков
	workFeed := feed.NewFirestoreFeed(fsClient, log, metrics)
	redisFeed := feed.NewRedisFeed(redisClient, log, metrics)
	go relaySnapshots(ctx, workFeed, redisFeed, log)

	// Инициализация сервисов
	clock := clockwork.NewRealClock()
	sessionService := service.NewSessionService(userRepo, log)
	userService := service.NewUserService(userRepo, log, clock)
	workService := service.NewWorkService(workRepo, workFeed, log, metrics, clock)
	mapViewService := service.NewMapViewService(aggregator, riskCache, log)
	floodZoneService := service.NewFloodZoneService(zoneGenerator, forecastRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, userService, mapViewService, weatherGateway, floodZoneService, workService, log, cfg)

	// Планировщик обновления агрегации риска
	scheduler := cronjobs.New(mapViewService, log, cfg.RiskRefreshSpec)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start risk refresh scheduler: %v", err)
	}

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	scheduler.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// relaySnapshots ретранслирует снапшоты Firestore-слушателя в redis-канал.
// Сбой подписки фатален только для ретрансляции, сервис продолжает работать.
func relaySnapshots(ctx context.Context, src *feed.FirestoreFeed, dst *feed.RedisFeed, log *logrus.Logger) {
	snapshots, err := src.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe snapshot relay")
		return
	}
	for snap := range snapshots {
		if err := dst.Publish(ctx, snap.Works); err != nil {
			log.WithError(err).Warn("Failed to relay work snapshot to redis")
		}
	}
}
