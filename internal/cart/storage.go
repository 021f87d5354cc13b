package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sifted_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// Storage persists a cart between requests. The store treats every failure
// here as recoverable: a broken load yields an empty cart, a broken save is
// logged and ignored.
type Storage interface {
	Load(ctx context.Context, cartID string) ([]models.CartItem, error)
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	Clear(ctx context.Context, cartID string) error
}

// Abandoned carts expire on their own after 30 days.
const cartTTL = 30 * 24 * time.Hour

type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisStorage) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStorage) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cartID), data, cartTTL).Err()
}

func (s *RedisStorage) Clear(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKey(cartID)).Err()
}
