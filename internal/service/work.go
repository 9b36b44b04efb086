package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_response_system/internal/feed"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/observability"
)

var (
	// ErrMutationInFlight возвращается, когда по этому же заданию уже идет
	// мутация. Повторный вызов - no-op, состояние не меняется.
	ErrMutationInFlight = errors.New("mutation already in flight for this assignment")
	// ErrInvalidTransition возвращается при попытке перевести статус назад
	// или через шаг
	ErrInvalidTransition = errors.New("invalid work status transition")
	// ErrForbidden возвращается, когда операция не разрешена роли вызывающего
	ErrForbidden = errors.New("operation not permitted for role")
)

// WorkRepository определяет контракт для работы с хранилищем заданий
type WorkRepository interface {
	Create(ctx context.Context, work *models.WorkAssignment) error
	GetByID(ctx context.Context, id string) (*models.WorkAssignment, error)
	UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error
	ListAll(ctx context.Context) ([]*models.WorkAssignment, error)
}

// WorkService определяет контракт канала рабочих заданий
type WorkService interface {
	Create(ctx context.Context, session *models.SessionContext, title, description string, priority models.WorkPriority) (*models.WorkAssignment, error)
	Board(ctx context.Context, session *models.SessionContext) (*models.WorkBoard, error)
	Claim(ctx context.Context, session *models.SessionContext, id string) error
	Complete(ctx context.Context, session *models.SessionContext, id, comment string) error
	Watch(ctx context.Context, session *models.SessionContext) (<-chan *models.WorkBoard, error)
}

type workService struct {
	repo    WorkRepository
	feed    feed.Feed
	logger  *logrus.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewWorkService(repo WorkRepository, f feed.Feed, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) WorkService {
	return &workService{
		repo:     repo,
		feed:     f,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		inFlight: make(map[string]struct{}),
	}
}

// begin помечает задание как мутируемое. Возвращает false, если по нему уже
// идет мутация. Защита консультативная: хранилище она не блокирует, но в
// пределах процесса двойной клик не породит двух записей.
func (s *workService) begin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *workService) end(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// Create создает задание от имени командира. Округ штампуется из округа
// создателя и далее не меняется; статус всегда pending, исполнитель не назначен.
func (s *workService) Create(ctx context.Context, session *models.SessionContext, title, description string, priority models.WorkPriority) (*models.WorkAssignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "work",
		"method":  "Create",
		"uid":     session.UID,
	})

	if session.Role != models.RoleCommandOfficer {
		log.WithField("role", session.Role).Warn("Create attempted by non command officer")
		return nil, ErrForbidden
	}

	work := &models.WorkAssignment{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      models.WorkPending,
		AssignedTo:  "Unassigned",
		District:    session.District,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.Create(ctx, work); err != nil {
		s.metrics.WorkMutations.WithLabelValues("create", "error").Inc()
		log.WithError(err).Error("Failed to create work assignment in repository")
		return nil, fmt.Errorf("service: could not create work assignment: %w", err)
	}

	s.metrics.WorkMutations.WithLabelValues("create", "success").Inc()
	log.WithField("work_id", work.ID).Info("Work assignment created")
	return work, nil
}

// Claim переводит задание pending -> in-progress и назначает исполнителя
func (s *workService) Claim(ctx context.Context, session *models.SessionContext, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "work",
		"method":  "Claim",
		"work_id": id,
		"uid":     session.UID,
	})

	if session.Role != models.RoleFieldWorker {
		log.WithField("role", session.Role).Warn("Claim attempted by non field worker")
		return ErrForbidden
	}

	if !s.begin(id) {
		s.metrics.WorkMutations.WithLabelValues("claim", "in_flight").Inc()
		log.Warn("Claim skipped, mutation already in flight")
		return ErrMutationInFlight
	}
	defer s.end(id)

	work, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.WorkMutations.WithLabelValues("claim", "error").Inc()
		log.WithError(err).Error("Failed to get work assignment")
		return fmt.Errorf("service: could not claim work assignment: %w", err)
	}
	if !work.Status.CanTransitionTo(models.WorkInProgress) {
		s.metrics.WorkMutations.WithLabelValues("claim", "error").Inc()
		return fmt.Errorf("service: work %s is %s: %w", id, work.Status, ErrInvalidTransition)
	}

	err = s.repo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":     string(models.WorkInProgress),
		"assignedTo": session.DisplayName,
	})
	if err != nil {
		s.metrics.WorkMutations.WithLabelValues("claim", "error").Inc()
		log.WithError(err).Error("Failed to update work assignment")
		return fmt.Errorf("service: could not claim work assignment: %w", err)
	}

	s.metrics.WorkMutations.WithLabelValues("claim", "success").Inc()
	log.Info("Work assignment claimed")
	return nil
}

// Complete переводит задание in-progress -> completed с итоговым комментарием.
// Завершить может только назначенный исполнитель.
func (s *workService) Complete(ctx context.Context, session *models.SessionContext, id, comment string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "work",
		"method":  "Complete",
		"work_id": id,
		"uid":     session.UID,
	})

	if session.Role != models.RoleFieldWorker {
		log.WithField("role", session.Role).Warn("Complete attempted by non field worker")
		return ErrForbidden
	}

	if !s.begin(id) {
		s.metrics.WorkMutations.WithLabelValues("complete", "in_flight").Inc()
		log.Warn("Complete skipped, mutation already in flight")
		return ErrMutationInFlight
	}
	defer s.end(id)

	work, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.WorkMutations.WithLabelValues("complete", "error").Inc()
		log.WithError(err).Error("Failed to get work assignment")
		return fmt.Errorf("service: could not complete work assignment: %w", err)
	}
	if work.AssignedTo != session.DisplayName {
		s.metrics.WorkMutations.WithLabelValues("complete", "error").Inc()
		log.WithField("assigned_to", work.AssignedTo).Warn("Complete attempted by non-assignee")
		return ErrForbidden
	}
	if !work.Status.CanTransitionTo(models.WorkCompleted) {
		s.metrics.WorkMutations.WithLabelValues("complete", "error").Inc()
		return fmt.Errorf("service: work %s is %s: %w", id, work.Status, ErrInvalidTransition)
	}

	err = s.repo.UpdateStatus(ctx, id, map[string]interface{}{
		"status":  string(models.WorkCompleted),
		"comment": comment,
	})
	if err != nil {
		s.metrics.WorkMutations.WithLabelValues("complete", "error").Inc()
		log.WithError(err).Error("Failed to update work assignment")
		return fmt.Errorf("service: could not complete work assignment: %w", err)
	}

	s.metrics.WorkMutations.WithLabelValues("complete", "success").Inc()
	log.Info("Work assignment completed")
	return nil
}

// Board возвращает текущее состояние доски заданий для вызывающего
func (s *workService) Board(ctx context.Context, session *models.SessionContext) (*models.WorkBoard, error) {
	works, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list work assignments: %w", err)
	}
	return buildBoard(works, session), nil
}

// Watch подписывается на живые обновления и отдает доску на каждый снапшот.
// Каждый снапшот полностью заменяет производное состояние; дельты не применяются.
func (s *workService) Watch(ctx context.Context, session *models.SessionContext) (<-chan *models.WorkBoard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "work",
		"method":  "Watch",
		"uid":     session.UID,
	})

	snapshots, err := s.feed.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to work feed")
		return nil, fmt.Errorf("service: could not subscribe to work feed: %w", err)
	}

	out := make(chan *models.WorkBoard, 1)
	go func() {
		defer close(out)
		for snap := range snapshots {
			board := buildBoard(snap.Works, session)
			select {
			case <-ctx.Done():
				return
			case out <- board:
			}
		}
	}()

	log.Info("Work feed subscription started")
	return out, nil
}

// buildBoard фильтрует задания по округу вызывающего и раскладывает их на
// три представления. Админ видит все округа; роли с округом - только свой;
// остальные не видят ничего.
func buildBoard(works []*models.WorkAssignment, session *models.SessionContext) *models.WorkBoard {
	board := &models.WorkBoard{
		Available:  make([]*models.WorkAssignment, 0),
		InProgress: make([]*models.WorkAssignment, 0),
		Completed:  make([]*models.WorkAssignment, 0),
	}
	for _, w := range works {
		if !visibleTo(w, session) {
			continue
		}
		switch w.Status {
		case models.WorkPending:
			board.Available = append(board.Available, w)
		case models.WorkInProgress:
			board.InProgress = append(board.InProgress, w)
		case models.WorkCompleted:
			board.Completed = append(board.Completed, w)
		}
	}
	byNewest := func(list []*models.WorkAssignment) {
		sort.Slice(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
	byNewest(board.Available)
	byNewest(board.InProgress)
	byNewest(board.Completed)
	return board
}

func visibleTo(w *models.WorkAssignment, session *models.SessionContext) bool {
	if session.Role == models.RoleAdmin {
		return true
	}
	if session.Role.IsDistrictScoped() {
		return w.District == session.District
	}
	return false
}
