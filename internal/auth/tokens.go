package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "church-planning-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenStore persists refresh tokens
type TokenStore interface {
	Save(ctx context.Context, token string, data *RefreshTokenData) error
	Get(ctx context.Context, token string) (*RefreshTokenData, error)
	Delete(ctx context.Context, token string) error
}

// MemoryTokenStore keeps refresh tokens in process memory
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*RefreshTokenData
}

// NewMemoryTokenStore creates an empty in-memory store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]*RefreshTokenData)}
}

// Save stores the token data
func (s *MemoryTokenStore) Save(_ context.Context, token string, data *RefreshTokenData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = data
	return nil
}

// Get returns the token data or ErrInvalidRefreshToken
func (s *MemoryTokenStore) Get(_ context.Context, token string) (*RefreshTokenData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.tokens[token]
	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	return data, nil
}

// Delete removes the token
func (s *MemoryTokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// RedisTokenStore keeps refresh tokens in Redis with a TTL matching their expiry
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedisTokenStore creates a Redis backed store
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// Save stores the token data until its expiry
func (s *RedisTokenStore) Save(ctx context.Context, token string, data *RefreshTokenData) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode refresh token: %w", err)
	}
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return apperrors.ErrRefreshTokenExpired
	}
	return s.client.Set(ctx, refreshKeyPrefix+token, body, ttl).Err()
}

// Get returns the token data or ErrInvalidRefreshToken
func (s *RedisTokenStore) Get(ctx context.Context, token string) (*RefreshTokenData, error) {
	body, err := s.client.Get(ctx, refreshKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}
	var data RefreshTokenData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return &data, nil
}

// Delete removes the token
func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}
