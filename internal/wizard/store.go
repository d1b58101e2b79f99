package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"garageFront/internal/models"
)

// Store persists drafts in Redis keyed by draft id. An abandoned draft simply
// expires.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a draft store. A zero ttl defaults to one hour.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func draftKey(id string) string {
	return fmt.Sprintf("wizard:%s", id)
}

// Save writes the draft, refreshing its expiry.
func (s *Store) Save(ctx context.Context, d *Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("wizard: encode draft %s: %w", d.ID, err)
	}
	return s.rdb.Set(ctx, draftKey(d.ID), raw, s.ttl).Err()
}

// Get loads a draft owned by subscriberID. A missing key or a foreign draft
// both surface as ErrWizardNotFound.
func (s *Store) Get(ctx context.Context, id string, subscriberID int) (*Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(id)).Result()
	if err == redis.Nil {
		return nil, models.ErrWizardNotFound
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("wizard: decode draft %s: %w", id, err)
	}
	if d.SubscriberID != subscriberID {
		return nil, models.ErrWizardNotFound
	}
	return &d, nil
}

// Delete removes a draft.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, draftKey(id)).Err()
}
