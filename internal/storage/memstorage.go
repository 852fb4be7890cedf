package storage

import (
	"context"
	"sync"

	"github.com/azaliaz/ruboni/internal/logger"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

type MemStorage struct {
	mu sync.RWMutex
	kv map[string]string
}

func New() *MemStorage {
	return &MemStorage{
		kv: make(map[string]string),
	}
}

func (ms *MemStorage) Get(_ context.Context, key string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	value, ok := ms.kv[key]
	if !ok {
		return "", storerrors.ErrKeyNotFound
	}
	return value, nil
}

func (ms *MemStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return storerrors.ErrEmptyKey
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.kv[key] = value
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (ms *MemStorage) Remove(_ context.Context, key string) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.kv[key]; !ok {
		log.Debug().Str("key", key).Msg("remove of absent key")
		return nil
	}
	delete(ms.kv, key)
	return nil
}

func (ms *MemStorage) Close() error {
	return nil
}
