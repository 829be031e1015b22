package mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mahalo/shared/cache"
	"strings"
	"sync"
)

// ErrUnavailable simulates a mirror outage when FailOps is set.
var ErrUnavailable = errors.New("cache unavailable")

// MemoryCache is an in-memory stand-in for the redis cache used in tests.
// Set FailOps to make every operation fail, mimicking an unreachable mirror.
type MemoryCache struct {
	mu      sync.Mutex
	values  map[string]string
	FailOps bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		values: map[string]string{},
	}
}

// Len reports the number of stored keys.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.values)
}

// Save implements cache.RedisCache.
func (m *MemoryCache) Save(_ context.Context, key string, value any, _ int) error {
	if m.FailOps {
		return ErrUnavailable
	}

	var strValue string

	switch v := value.(type) {
	case string:
		strValue = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}

		strValue = string(raw)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = strValue

	return nil
}

// Get implements cache.RedisCache.
func (m *MemoryCache) Get(_ context.Context, key string, value any) error {
	if m.FailOps {
		return ErrUnavailable
	}

	m.mu.Lock()
	strValue, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	switch v := value.(type) {
	case *string:
		*v = strValue
	default:
		if err := json.Unmarshal([]byte(strValue), value); err != nil {
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

// GetAllByPrefix implements cache.RedisCache.
func (m *MemoryCache) GetAllByPrefix(_ context.Context, prefix string) (map[string]string, error) {
	if m.FailOps {
		return nil, ErrUnavailable
	}

	match := strings.TrimSuffix(prefix, "*")

	m.mu.Lock()
	defer m.mu.Unlock()

	values := map[string]string{}

	for key, value := range m.values {
		if strings.HasPrefix(key, match) {
			values[key] = value
		}
	}

	return values, nil
}

// Delete implements cache.RedisCache.
func (m *MemoryCache) Delete(_ context.Context, key string) error {
	if m.FailOps {
		return ErrUnavailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

// Clear implements cache.RedisCache.
func (m *MemoryCache) Clear(_ context.Context, prefix string) error {
	if m.FailOps {
		return ErrUnavailable
	}

	match := strings.TrimSuffix(prefix, "*")

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.values {
		if strings.HasPrefix(key, match) {
			delete(m.values, key)
		}
	}

	return nil
}
