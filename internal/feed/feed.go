package feed

import (
	"context"
	"time"

	"github.com/shenikar/flood_response_system/internal/models"
)

// Snapshot - полное текущее состояние коллекции рабочих заданий.
// Каждый снапшот целиком заменяет предыдущий: подписчик никогда не
// применяет дельты.
type Snapshot struct {
	Works []*models.WorkAssignment
	At    time.Time
}

// Feed - канал живых обновлений рабочих заданий. Реализация выбирает
// транспорт (Firestore-слушатель или redis pub/sub); подписка живет до
// отмены контекста, после чего канал закрывается.
type Feed interface {
	Subscribe(ctx context.Context) (<-chan Snapshot, error)
}
