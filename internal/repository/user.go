package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shenikar/flood_response_system/internal/models"
)

// ErrNotFound возвращается, когда запрошенный документ отсутствует
var ErrNotFound = errors.New("document not found")

const (
	usersCollection   = "users"
	detailsCollection = "furtherdetails"
)

// UserRepository - доступ к профилям пользователей в Firestore.
// Профиль разделен на две записи (users + furtherdetails) с общим uid.
type UserRepository struct {
	client *firestore.Client
}

// NewUserRepository создает репозиторий пользователей
func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// CreateUser создает основную запись пользователя со статусом "ожидает одобрения"
func (r *UserRepository) CreateUser(ctx context.Context, user *models.UserProfile) error {
	_, err := r.client.Collection(usersCollection).Doc(user.UID).Set(ctx, map[string]interface{}{
		"name":      user.DisplayName,
		"email":     user.Email,
		"approved":  user.Approved.DocValue(),
		"createdAt": user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.UID, err)
	}
	return nil
}

// GetUser читает основную запись пользователя
func (r *UserRepository) GetUser(ctx context.Context, uid string) (*models.UserProfile, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %s: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}
	return userFromDoc(uid, doc.Data()), nil
}

// GetFurtherDetails читает связанную запись с ролью и округом
func (r *UserRepository) GetFurtherDetails(ctx context.Context, uid string) (*models.FurtherDetails, error) {
	doc, err := r.client.Collection(detailsCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("further details %s: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get further details %s: %w", uid, err)
	}

	data := doc.Data()
	details := &models.FurtherDetails{UID: uid}
	if roleStr, ok := data["role"].(string); ok {
		role, err := models.ParseRole(roleStr)
		if err != nil {
			return nil, fmt.Errorf("further details %s: %w", uid, err)
		}
		details.Role = role
	}
	if district, ok := data["district"].(string); ok {
		details.District = district
	}
	return details, nil
}

// SetFurtherDetails записывает роль и округ пользователя
func (r *UserRepository) SetFurtherDetails(ctx context.Context, details *models.FurtherDetails) error {
	_, err := r.client.Collection(detailsCollection).Doc(details.UID).Set(ctx, map[string]interface{}{
		"role":     string(details.Role),
		"district": details.District,
	})
	if err != nil {
		return fmt.Errorf("failed to set further details %s: %w", details.UID, err)
	}
	return nil
}

// ListUsers возвращает пользователей в заданном состоянии одобрения,
// новые первыми
func (r *UserRepository) ListUsers(ctx context.Context, state models.ApprovalState) ([]*models.UserProfile, error) {
	iter := r.client.Collection(usersCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	users := make([]*models.UserProfile, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}
		user := userFromDoc(doc.Ref.ID, doc.Data())
		// Ожидающие и отклоненные показываются в одном списке админа
		if state == models.ApprovalPending {
			if user.Approved != models.ApprovalApproved {
				users = append(users, user)
			}
			continue
		}
		if user.Approved == state {
			users = append(users, user)
		}
	}
	return users, nil
}

// ApproveUser переводит пользователя в состояние "одобрен"
func (r *UserRepository) ApproveUser(ctx context.Context, uid string, approvedAt time.Time) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "approved", Value: true},
		{Path: "approvedAt", Value: approvedAt},
		{Path: "message", Value: "Your account has been approved! You can now log in to the system."},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user %s: %w", uid, ErrNotFound)
		}
		return fmt.Errorf("failed to approve user %s: %w", uid, err)
	}
	return nil
}

// RejectUser переводит пользователя в состояние "отклонен"
func (r *UserRepository) RejectUser(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "approved", Value: "rejected"},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user %s: %w", uid, ErrNotFound)
		}
		return fmt.Errorf("failed to reject user %s: %w", uid, err)
	}
	return nil
}

func userFromDoc(uid string, data map[string]interface{}) *models.UserProfile {
	user := &models.UserProfile{UID: uid}
	if v, ok := data["name"].(string); ok {
		user.DisplayName = v
	}
	if v, ok := data["email"].(string); ok {
		user.Email = v
	}
	user.Approved = models.ApprovalFromDoc(data["approved"])
	if v, ok := data["createdAt"].(time.Time); ok {
		user.CreatedAt = v
	}
	if v, ok := data["approvedAt"].(time.Time); ok {
		user.ApprovedAt = &v
	}
	if v, ok := data["message"].(string); ok {
		user.Message = v
	}
	return user
}
