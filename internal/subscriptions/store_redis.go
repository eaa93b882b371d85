package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/grantsy/mercuryhook/internal/triggers"
)

// RedisStore keeps each subscription in a hash at <prefix>:subscription:<node id>.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(nodeID string) string {
	return s.prefix + ":subscription:" + nodeID
}

func (s *RedisStore) Get(ctx context.Context, nodeID string) (*Subscription, error) {
	fields, err := s.client.HGetAll(ctx, s.key(nodeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("subscriptions: failed to get subscription: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	createdAt, _ := strconv.ParseInt(fields["created_at"], 10, 64)
	return &Subscription{
		NodeID:      nodeID,
		TriggerType: triggers.Type(fields["trigger_type"]),
		WebhookID:   fields["webhook_id"],
		Secret:      fields["secret"],
		CreatedAt:   createdAt,
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, sub *Subscription) error {
	key := s.key(sub.NodeID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			"trigger_type", string(sub.TriggerType),
			"webhook_id", sub.WebhookID,
			"secret", sub.Secret,
			"created_at", strconv.FormatInt(sub.CreatedAt, 10),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscriptions: failed to set subscription: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, nodeID string) error {
	if err := s.client.Del(ctx, s.key(nodeID)).Err(); err != nil {
		return fmt.Errorf("subscriptions: failed to clear subscription: %w", err)
	}
	return nil
}
