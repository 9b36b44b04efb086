package feed

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/repository"
)

// FirestoreFeed слушает снапшоты коллекции рабочих заданий напрямую у
// Firestore. Это основной транспорт канала.
type FirestoreFeed struct {
	client  *firestore.Client
	logger  *logrus.Logger
	metrics *observability.Metrics
}

// NewFirestoreFeed создает Firestore-транспорт канала заданий
func NewFirestoreFeed(client *firestore.Client, logger *logrus.Logger, metrics *observability.Metrics) *FirestoreFeed {
	return &FirestoreFeed{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// Subscribe запускает слушатель снапшотов. Каждый снапшот читается целиком
// и отправляется в канал; при отмене контекста слушатель останавливается
// и канал закрывается.
func (f *FirestoreFeed) Subscribe(ctx context.Context) (<-chan Snapshot, error) {
	log := f.logger.WithFields(logrus.Fields{
		"feed":       "firestore",
		"collection": repository.WorkCollection,
	})

	iter := f.client.Collection(repository.WorkCollection).Snapshots(ctx)
	out := make(chan Snapshot, 1)

	go func() {
		defer close(out)
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					log.Debug("Snapshot listener stopped")
					return
				}
				log.WithError(err).Error("Snapshot listener failed")
				return
			}

			works, err := readSnapshot(snap)
			if err != nil {
				log.WithError(err).Error("Failed to read snapshot documents")
				return
			}

			f.metrics.FeedSnapshots.Inc()
			select {
			case <-ctx.Done():
				return
			case out <- Snapshot{Works: works, At: snap.ReadTime}:
			}
		}
	}()

	return out, nil
}

func readSnapshot(snap *firestore.QuerySnapshot) ([]*models.WorkAssignment, error) {
	works := make([]*models.WorkAssignment, 0)
	for {
		doc, err := snap.Documents.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		works = append(works, repository.WorkFromDoc(doc.Ref.ID, doc.Data()))
	}
	return works, nil
}
