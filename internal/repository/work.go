package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shenikar/flood_response_system/internal/models"
)

// WorkCollection - историческое имя коллекции рабочих заданий, сохранено как есть
const WorkCollection = "newcollection"

// WorkRepository - доступ к рабочим заданиям в Firestore
type WorkRepository struct {
	client *firestore.Client
}

// NewWorkRepository создает репозиторий рабочих заданий
func NewWorkRepository(client *firestore.Client) *WorkRepository {
	return &WorkRepository{client: client}
}

// Create сохраняет новое задание и проставляет сгенерированный id
func (r *WorkRepository) Create(ctx context.Context, work *models.WorkAssignment) error {
	ref := r.client.Collection(WorkCollection).Doc(uuid.NewString())
	work.ID = ref.ID
	if _, err := ref.Set(ctx, workToDoc(work)); err != nil {
		return fmt.Errorf("failed to create work assignment: %w", err)
	}
	return nil
}

// GetByID читает задание по идентификатору документа
func (r *WorkRepository) GetByID(ctx context.Context, id string) (*models.WorkAssignment, error) {
	doc, err := r.client.Collection(WorkCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("work assignment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get work assignment %s: %w", id, err)
	}
	return WorkFromDoc(doc.Ref.ID, doc.Data()), nil
}

// UpdateStatus записывает новый статус задания вместе с сопутствующими полями.
// Это одиночная запись в один документ, без транзакций: единственный пишущий
// на документ обеспечивается на уровне канала заданий.
func (r *WorkRepository) UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error {
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.client.Collection(WorkCollection).Doc(id).Update(ctx, fsUpdates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("work assignment %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to update work assignment %s: %w", id, err)
	}
	return nil
}

// ListAll возвращает все задания коллекции. Фильтрация по округу выполняется
// на стороне канала заданий, как и в live-пути.
func (r *WorkRepository) ListAll(ctx context.Context) ([]*models.WorkAssignment, error) {
	iter := r.client.Collection(WorkCollection).Documents(ctx)
	defer iter.Stop()

	works := make([]*models.WorkAssignment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate work assignments: %w", err)
		}
		works = append(works, WorkFromDoc(doc.Ref.ID, doc.Data()))
	}
	return works, nil
}

func workToDoc(w *models.WorkAssignment) map[string]interface{} {
	return map[string]interface{}{
		"title":       w.Title,
		"description": w.Description,
		"priority":    string(w.Priority),
		"status":      string(w.Status),
		"assignedTo":  w.AssignedTo,
		"comment":     w.Comment,
		"district":    w.District,
		"timestamp":   w.CreatedAt,
	}
}

// WorkFromDoc восстанавливает задание из данных документа, подставляя
// значения по умолчанию для отсутствующих полей
func WorkFromDoc(id string, data map[string]interface{}) *models.WorkAssignment {
	w := &models.WorkAssignment{
		ID:         id,
		Priority:   models.PriorityLow,
		Status:     models.WorkPending,
		AssignedTo: "Unassigned",
	}
	if v, ok := data["title"].(string); ok {
		w.Title = v
	}
	if v, ok := data["description"].(string); ok {
		w.Description = v
	}
	if v, ok := data["priority"].(string); ok {
		if p, err := models.ParseWorkPriority(v); err == nil {
			w.Priority = p
		}
	}
	if v, ok := data["status"].(string); ok {
		switch models.WorkStatus(v) {
		case models.WorkPending, models.WorkInProgress, models.WorkCompleted:
			w.Status = models.WorkStatus(v)
		}
	}
	if v, ok := data["assignedTo"].(string); ok && v != "" {
		w.AssignedTo = v
	}
	if v, ok := data["comment"].(string); ok {
		w.Comment = v
	}
	if v, ok := data["district"].(string); ok {
		w.District = v
	}
	if v, ok := data["timestamp"].(time.Time); ok {
		w.CreatedAt = v
	}
	return w
}
