package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"product-helium-addon/models"
)

// ErrCartNotFound is returned when a session has no stored cart
var ErrCartNotFound = errors.New("cart session not found")

// CartSessionRepository stores the per-line session values of each cart in Redis
type CartSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartSessionRepository creates a CartSessionRepository. A zero ttl keeps carts forever.
func NewCartSessionRepository(client *redis.Client, ttl time.Duration) *CartSessionRepository {
	return &CartSessionRepository{client: client, ttl: ttl}
}

// Ensure CartSessionRepository implements CartSessionRepositoryInterface
var _ CartSessionRepositoryInterface = (*CartSessionRepository)(nil)

func generateCartSessionKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:lines", sessionID)
}

// Load returns the stored lines of a session, or ErrCartNotFound
func (r *CartSessionRepository) Load(ctx context.Context, sessionID string) ([]models.SessionValues, error) {
	raw, err := r.client.Get(ctx, generateCartSessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrCartNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart session %s: %w", sessionID, err)
	}

	var lines []models.SessionValues
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart session %s: %w", sessionID, err)
	}
	return lines, nil
}

// Save replaces the stored lines of a session and refreshes its TTL
func (r *CartSessionRepository) Save(ctx context.Context, sessionID string, lines []models.SessionValues) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, generateCartSessionKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart session %s: %w", sessionID, err)
	}
	return nil
}

// Clear removes a session cart
func (r *CartSessionRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, generateCartSessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart session %s: %w", sessionID, err)
	}
	return nil
}
