package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"confmatch/internal/form"
)

const (
	formStateTTL  = 24 * time.Hour
	submitLockTTL = 30 * time.Second
)

// FormCache holds each user's in-progress questionnaire state and the
// submission-in-progress guard.
type FormCache interface {
	Get(ctx context.Context, userID string) (*form.State, error)
	Set(ctx context.Context, userID string, st *form.State) error
	Delete(ctx context.Context, userID string) error
	AcquireSubmitLock(ctx context.Context, userID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, userID string) error
}

type formCache struct {
	client *redis.Client
}

func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
	}
}

// Get returns nil without error on a cache miss.
func (c *formCache) Get(ctx context.Context, userID string) (*form.State, error) {
	data, err := c.client.Get(ctx, "form:"+userID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st form.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *formCache) Set(ctx context.Context, userID string, st *form.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "form:"+userID, data, formStateTTL).Err()
}

func (c *formCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "form:"+userID).Err()
}

// AcquireSubmitLock reports false when a submission is already in
// flight for the user. The TTL covers a crashed submitter.
func (c *formCache) AcquireSubmitLock(ctx context.Context, userID string) (bool, error) {
	return c.client.SetNX(ctx, "form:submitting:"+userID, "1", submitLockTTL).Result()
}

func (c *formCache) ReleaseSubmitLock(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "form:submitting:"+userID).Err()
}
