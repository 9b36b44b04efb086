package models

import (
	"fmt"
	"time"
)

// WorkStatus - статус рабочего задания. Переходы только вперед:
// pending -> in-progress -> completed, обратных переходов нет.
type WorkStatus string

const (
	WorkPending    WorkStatus = "pending"
	WorkInProgress WorkStatus = "in-progress"
	WorkCompleted  WorkStatus = "completed"
)

// CanTransitionTo проверяет допустимость перехода статуса
func (s WorkStatus) CanTransitionTo(next WorkStatus) bool {
	switch s {
	case WorkPending:
		return next == WorkInProgress
	case WorkInProgress:
		return next == WorkCompleted
	}
	return false
}

// WorkPriority - приоритет рабочего задания
type WorkPriority string

const (
	PriorityLow    WorkPriority = "low"
	PriorityMedium WorkPriority = "medium"
	PriorityHigh   WorkPriority = "high"
)

// ParseWorkPriority преобразует строку в WorkPriority
func ParseWorkPriority(s string) (WorkPriority, error) {
	switch WorkPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return WorkPriority(s), nil
	}
	return PriorityLow, fmt.Errorf("unknown priority %q", s)
}

// WorkAssignment - рабочее задание (коллекция newcollection).
// Округ устанавливается один раз при создании из округа создателя и не меняется.
type WorkAssignment struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    WorkPriority `json:"priority"`
	Status      WorkStatus   `json:"status"`
	AssignedTo  string       `json:"assigned_to"`
	Comment     string       `json:"comment,omitempty"`
	District    string       `json:"district"`
	CreatedAt   time.Time    `json:"created_at"`
}

// WorkBoard - производное состояние канала заданий: три представления,
// полностью заменяемые при каждом снапшоте
type WorkBoard struct {
	Available  []*WorkAssignment `json:"available"`
	InProgress []*WorkAssignment `json:"in_progress"`
	Completed  []*WorkAssignment `json:"completed"`
}
