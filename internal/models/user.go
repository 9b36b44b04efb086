package models

import (
	"fmt"
	"time"
)

// Role - закрытое перечисление ролей пользователей.
// Строковые значения совпадают с тем, что хранится в документах furtherdetails.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleGovernmentOfficial Role = "government-official"
	RoleCommandOfficer     Role = "command-officer"
	RoleFieldWorker        Role = "field-worker"
	RolePublic             Role = "public"
	RoleUnset              Role = ""
)

// ParseRole преобразует строку из документа в Role.
// Неизвестная роль - это ошибка, а не тихий fallthrough.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleGovernmentOfficial, RoleCommandOfficer, RoleFieldWorker, RolePublic:
		return Role(s), nil
	case RoleUnset:
		return RoleUnset, nil
	}
	return RoleUnset, fmt.Errorf("unknown role %q", s)
}

// IsDistrictScoped сообщает, привязана ли роль к одному округу
func (r Role) IsDistrictScoped() bool {
	switch r {
	case RoleGovernmentOfficial, RoleCommandOfficer, RoleFieldWorker:
		return true
	}
	return false
}

// ApprovalState - состояние одобрения учетной записи администратором
type ApprovalState int

const (
	ApprovalPending ApprovalState = iota
	ApprovalApproved
	ApprovalRejected
)

// ApprovalFromDoc читает значение поля approved из документа Firestore.
// Исторический формат смешанный: false (ожидает), true (одобрен), "rejected" (отклонен).
func ApprovalFromDoc(v interface{}) ApprovalState {
	switch val := v.(type) {
	case bool:
		if val {
			return ApprovalApproved
		}
		return ApprovalPending
	case string:
		if val == "rejected" {
			return ApprovalRejected
		}
	}
	return ApprovalPending
}

// DocValue возвращает значение для записи в документ в историческом формате
func (a ApprovalState) DocValue() interface{} {
	switch a {
	case ApprovalApproved:
		return true
	case ApprovalRejected:
		return "rejected"
	}
	return false
}

func (a ApprovalState) String() string {
	switch a {
	case ApprovalApproved:
		return "approved"
	case ApprovalRejected:
		return "rejected"
	}
	return "pending"
}

// UserProfile - основная запись пользователя (коллекция users)
type UserProfile struct {
	UID         string        `json:"uid"`
	Email       string        `json:"email"`
	DisplayName string        `json:"display_name"`
	Approved    ApprovalState `json:"approved"`
	CreatedAt   time.Time     `json:"created_at"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty"`
	Message     string        `json:"message,omitempty"`
}

// FurtherDetails - связанная запись с ролью и округом (коллекция furtherdetails).
// Профиль разделен на две записи; обе обязаны существовать, чтобы роль была разрешима.
type FurtherDetails struct {
	UID      string `json:"uid"`
	Role     Role   `json:"role"`
	District string `json:"district,omitempty"`
}

// SessionContext - единый объект сессии, который резолвер собирает один раз
// и который передается всем обработчикам вместо повторных чтений профиля
type SessionContext struct {
	UID         string        `json:"uid"`
	Email       string        `json:"email"`
	DisplayName string        `json:"display_name"`
	Role        Role          `json:"role"`
	District    string        `json:"district,omitempty"`
	Approved    ApprovalState `json:"approved"`
}
