package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"multitimer/internal/core/model"
)

// timersKey is the fixed blob key holding the serialized timer collection.
const timersKey = "timers.json"

// TimerRepository reads and writes the full timer collection as one blob.
type TimerRepository struct {
	blobs BlobStore
}

// NewTimerRepository creates a repository over the given blob store.
func NewTimerRepository(blobs BlobStore) *TimerRepository {
	return &TimerRepository{blobs: blobs}
}

// Load returns the stored timer collection. A missing blob yields an empty
// collection and no error; malformed data is reported to the caller.
func (repo *TimerRepository) Load() ([]model.Timer, error) {
	data, err := repo.blobs.Get(timersKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Timer{}, nil
		}
		return nil, err
	}

	var timers []model.Timer
	if err := json.Unmarshal(data, &timers); err != nil {
		return nil, fmt.Errorf("decode timers blob: %w", err)
	}
	if timers == nil {
		timers = []model.Timer{}
	}
	return timers, nil
}

// Save serializes the full collection and replaces the stored blob.
func (repo *TimerRepository) Save(timers []model.Timer) error {
	data, err := json.Marshal(timers)
	if err != nil {
		return fmt.Errorf("encode timers blob: %w", err)
	}
	return repo.blobs.Set(timersKey, data)
}
