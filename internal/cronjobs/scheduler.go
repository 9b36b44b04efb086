package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/service"
)

// Scheduler периодически обновляет статовую агрегацию риска, чтобы запросы
// карты обслуживались из свежего кеша, а не ждали fan-out по погодному API
type Scheduler struct {
	cron    *cron.Cron
	mapView service.MapViewService
	logger  *logrus.Logger
	spec    string
}

// New создает планировщик с cron-выражением из конфигурации
func New(mapView service.MapViewService, logger *logrus.Logger, spec string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		mapView: mapView,
		logger:  logger,
		spec:    spec,
	}
}

// Start регистрирует задачу обновления и запускает планировщик.
// Первый прогон выполняется сразу, чтобы кеш был теплым с момента старта.
func (s *Scheduler) Start() error {
	log := s.logger.WithFields(logrus.Fields{
		"job":  "risk_refresh",
		"spec": s.spec,
	})

	if _, err := s.cron.AddFunc(s.spec, s.refresh); err != nil {
		return fmt.Errorf("cronjobs: failed to schedule risk refresh: %w", err)
	}

	go s.refresh()
	s.cron.Start()
	log.Info("Risk refresh scheduler started")
	return nil
}

// Stop останавливает планировщик и ждет завершения активных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Risk refresh scheduler stopped")
}

func (s *Scheduler) refresh() {
	log := s.logger.WithField("job", "risk_refresh")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	risks, err := s.mapView.RefreshRisks(ctx)
	if err != nil {
		log.WithError(err).Error("Scheduled risk refresh failed")
		return
	}
	log.WithField("count", len(risks)).Info("Scheduled risk refresh completed")
}
