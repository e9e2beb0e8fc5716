package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"catalog-service/internal/models"
)

// snapshotKey is versioned: a schema change bumps the suffix, which simply
// orphans the old blob instead of migrating it.
const snapshotKey = "catalog:snapshot:v2"

// Snapshot is the unit of persistence: the whole product list plus its
// freshness stamp in unix milliseconds (zero when never fetched).
type Snapshot struct {
	Products      []models.Product `json:"products"`
	LastFetchedAt int64            `json:"lastFetchedAt"`
}

// SnapshotStore persists catalog snapshots as a single JSON blob in Redis.
// A nil client disables persistence; the catalog then lives in memory only.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Load returns the persisted snapshot, or nil when none exists.
func (s *SnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	if s.client == nil {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, snapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save replaces the persisted snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	if s.client == nil {
		return nil
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, raw, 0).Err()
}
