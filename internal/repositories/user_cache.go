package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
)

// UserCacheRepository caches username -> user id lookups in Redis.
// Users are never renamed or deleted, so entries only expire by TTL.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userIDKey(username string) string {
	return "user_id:" + username
}

// GetIDByUsername returns the cached id, or nil on a cache miss.
func (r *UserCacheRepository) GetIDByUsername(ctx context.Context, username string) (*int64, error) {
	key := userIDKey(username)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("user id cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// SetIDByUsername caches the id of username.
func (r *UserCacheRepository) SetIDByUsername(ctx context.Context, username string, id int64) error {
	key := userIDKey(username)
	err := r.client.Set(ctx, key, strconv.FormatInt(id, 10), r.exp).Err()

	logger.Log.Infow("user id cache set",
		"key", key,
		"id", id,
		"error", err,
	)

	return err
}
