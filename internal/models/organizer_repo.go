package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

type MemoryOrganizerRepo struct {
	mu    sync.RWMutex
	byID  map[string]OrganizerStats
	order []string
}

func NewMemoryOrganizerRepo(seed ...*OrganizerStats) *MemoryOrganizerRepo {
	r := &MemoryOrganizerRepo{byID: make(map[string]OrganizerStats, len(seed))}
	for _, s := range seed {
		_ = r.SaveOrganizer(context.Background(), s)
	}
	return r
}

func (r *MemoryOrganizerRepo) GetOrganizer(ctx context.Context, id string) (*OrganizerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("organizer %s: %w", id, ErrNotFound)
	}
	return &s, nil
}

func (r *MemoryOrganizerRepo) SaveOrganizer(ctx context.Context, stats *OrganizerStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[stats.ID]; !ok {
		r.order = append(r.order, stats.ID)
	}
	r.byID[stats.ID] = *stats
	return nil
}

func (r *MemoryOrganizerRepo) ListOrganizers(ctx context.Context) ([]*OrganizerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*OrganizerStats, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		out = append(out, &s)
	}
	return out, nil
}

// OrganizersKey is the Redis hash holding one JSON document per organizer id.
const OrganizersKey = "eventhub:organizers"

type RedisOrganizerRepo struct {
	redis redis.Cmdable
}

func NewRedisOrganizerRepo(client redis.Cmdable) *RedisOrganizerRepo {
	return &RedisOrganizerRepo{redis: client}
}

func (r *RedisOrganizerRepo) GetOrganizer(ctx context.Context, id string) (*OrganizerStats, error) {
	raw, err := r.redis.HGet(ctx, OrganizersKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("organizer %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer %s: %w", id, err)
	}

	var stats OrganizerStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, fmt.Errorf("failed to decode organizer %s: %w", id, err)
	}
	return &stats, nil
}

func (r *RedisOrganizerRepo) SaveOrganizer(ctx context.Context, stats *OrganizerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode organizer %s: %w", stats.ID, err)
	}
	if err := r.redis.HSet(ctx, OrganizersKey, stats.ID, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to save organizer %s: %w", stats.ID, err)
	}
	return nil
}

func (r *RedisOrganizerRepo) ListOrganizers(ctx context.Context) ([]*OrganizerStats, error) {
	values, err := r.redis.HVals(ctx, OrganizersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizers: %w", err)
	}

	out := make([]*OrganizerStats, 0, len(values))
	for _, raw := range values {
		var stats OrganizerStats
		if err := json.Unmarshal([]byte(raw), &stats); err != nil {
			return nil, fmt.Errorf("failed to decode organizer: %w", err)
		}
		out = append(out, &stats)
	}
	return out, nil
}

// SeedIfEmpty writes the given organizers only when the hash does not exist yet.
func (r *RedisOrganizerRepo) SeedIfEmpty(ctx context.Context, seed []*OrganizerStats) error {
	n, err := r.redis.HLen(ctx, OrganizersKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count organizers: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, s := range seed {
		if err := r.SaveOrganizer(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
