package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	users_models "taskhive/internal/features/users/models"
	"taskhive/internal/storage"

	"gorm.io/gorm"
)

// SecretKeyRepository holds the HMAC secret used to sign access
// tokens. The secret is generated on first use and persisted so
// tokens survive restarts.
type SecretKeyRepository struct {
	mu     sync.Mutex
	cached string
}

func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}

	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		r.cached = secretKey.Secret
		return r.cached, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey.Secret = hex.EncodeToString(randomBytes)

	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to persist secret key: %w", err)
	}

	r.cached = secretKey.Secret

	return r.cached, nil
}
