package contacts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "contact:"
	redisIndexKey  = "contacts:ids"
)

// RedisRepository stores submissions as JSON values with a list index
// preserving insertion order.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository initializes a repo backed by a redis client.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	if client == nil {
		panic("contacts: redis client required")
	}
	return &RedisRepository{client: client}
}

// Create stores the submission and appends its id to the index list.
func (r *RedisRepository) Create(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := newSubmission(req)
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("contacts: marshal failed: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+sub.ID, payload, 0)
	pipe.RPush(ctx, redisIndexKey, sub.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("contacts: redis write failed: %w", err)
	}

	return sub, nil
}

// ListAll returns every stored submission in insertion order.
func (r *RedisRepository) ListAll(ctx context.Context) ([]*ContactSubmission, error) {
	ids, err := r.client.LRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("contacts: redis index read failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("contacts: redis read failed: %w", err)
	}

	out := make([]*ContactSubmission, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var sub ContactSubmission
		if err := json.Unmarshal([]byte(raw), &sub); err != nil {
			return nil, fmt.Errorf("contacts: unmarshal failed: %w", err)
		}
		out = append(out, &sub)
	}
	return out, nil
}

var _ Repository = (*RedisRepository)(nil)
