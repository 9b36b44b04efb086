package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/observability"
)

const workSnapshotChannel = "work_assignment_snapshots"

// RedisFeed - запасной транспорт канала заданий поверх redis pub/sub.
// Сообщение в канале несет полный JSON-снапшот коллекции, так что подписчик
// получает ту же семантику "снапшот заменяет состояние", что и у
// Firestore-слушателя.
type RedisFeed struct {
	client  *redis.Client
	logger  *logrus.Logger
	metrics *observability.Metrics
}

// NewRedisFeed создает redis-транспорт канала заданий
func NewRedisFeed(client *redis.Client, logger *logrus.Logger, metrics *observability.Metrics) *RedisFeed {
	return &RedisFeed{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// Publish отправляет полный снапшот коллекции всем подписчикам
func (f *RedisFeed) Publish(ctx context.Context, works []*models.WorkAssignment) error {
	payload, err := json.Marshal(works)
	if err != nil {
		return fmt.Errorf("feed: failed to marshal snapshot: %w", err)
	}
	if err := f.client.Publish(ctx, workSnapshotChannel, payload).Err(); err != nil {
		return fmt.Errorf("feed: failed to publish snapshot: %w", err)
	}
	return nil
}

// Subscribe подписывается на канал снапшотов. Сообщения, которые не парсятся,
// логируются и пропускаются: один битый снапшот не должен обрывать подписку.
func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan Snapshot, error) {
	log := f.logger.WithFields(logrus.Fields{
		"feed":    "redis",
		"channel": workSnapshotChannel,
	})

	sub := f.client.Subscribe(ctx, workSnapshotChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("feed: failed to subscribe to %s: %w", workSnapshotChannel, err)
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				log.Debug("Redis feed subscription stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var works []*models.WorkAssignment
				if err := json.Unmarshal([]byte(msg.Payload), &works); err != nil {
					log.WithError(err).Error("Failed to unmarshal snapshot payload")
					continue
				}
				f.metrics.FeedSnapshots.Inc()
				select {
				case <-ctx.Done():
					return
				case out <- Snapshot{Works: works, At: time.Now()}:
				}
			}
		}
	}()

	return out, nil
}
