package firestore

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// NewClient создает клиент Firestore из base64-кодированного JSON сервисного
// аккаунта. Кодирование позволяет передавать ключ одной переменной окружения.
func NewClient(ctx context.Context, credentialsB64 string) (*firestore.Client, error) {
	creds, err := base64.StdEncoding.DecodeString(credentialsB64)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования FIREBASE_CREDENTIALS: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент firestore: %w", err)
	}
	return client, nil
}
