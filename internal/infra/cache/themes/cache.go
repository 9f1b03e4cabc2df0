package themes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/keystone-front/internal/domain"
)

const (
	keyAll    = "themes:all"
	keyPrefix = "themes:"
)

// Cache кэш каталога тем в Redis. Слоты сюда не попадают никогда.
// Нулевой *Cache и Cache без клиента работают как выключенный кэш.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш тем; client может быть nil
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetAll возвращает весь каталог
func (c *Cache) GetAll(ctx context.Context) ([]domain.Theme, error) {
	var cached []cachedTheme
	if err := c.get(ctx, keyAll, &cached); err != nil {
		return nil, err
	}

	themes := make([]domain.Theme, len(cached))
	for i, t := range cached {
		themes[i] = t.toDomain()
	}
	return themes, nil
}

// SetAll сохраняет весь каталог и каждую тему отдельно
func (c *Cache) SetAll(ctx context.Context, themes []domain.Theme) error {
	if !c.enabled() {
		return ErrCacheDisabled
	}

	cached := make([]cachedTheme, len(themes))
	for i, t := range themes {
		cached[i] = fromDomain(t)
	}

	pipe := c.client.TxPipeline()
	if err := c.setIn(ctx, pipe, keyAll, cached); err != nil {
		return err
	}
	for _, t := range cached {
		if err := c.setIn(ctx, pipe, themeKey(t.ID), t); err != nil {
			return err
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: set all: %v", ErrCacheFailure, err)
	}
	return nil
}

// Get возвращает одну тему
func (c *Cache) Get(ctx context.Context, themeID int64) (*domain.Theme, error) {
	var cached cachedTheme
	if err := c.get(ctx, themeKey(themeID), &cached); err != nil {
		return nil, err
	}

	theme := cached.toDomain()
	return &theme, nil
}

// Set сохраняет одну тему
func (c *Cache) Set(ctx context.Context, theme domain.Theme) error {
	if !c.enabled() {
		return ErrCacheDisabled
	}

	data, err := json.Marshal(fromDomain(theme))
	if err != nil {
		return fmt.Errorf("%w: marshal theme %d: %v", ErrCacheFailure, theme.ID, err)
	}
	if err := c.client.Set(ctx, themeKey(theme.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set theme %d: %v", ErrCacheFailure, theme.ID, err)
	}
	return nil
}

// Invalidate удаляет каталог целиком
func (c *Cache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return ErrCacheDisabled
	}

	var keys []string
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan: %v", ErrCacheFailure, err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheFailure, err)
	}
	return nil
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) get(ctx context.Context, key string, dest interface{}) error {
	if !c.enabled() {
		return ErrCacheDisabled
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("%w: get %s: %v", ErrCacheFailure, key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", ErrCacheFailure, key, err)
	}
	return nil
}

func (c *Cache) setIn(ctx context.Context, pipe redis.Pipeliner, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrCacheFailure, key, err)
	}
	pipe.Set(ctx, key, data, c.ttl)
	return nil
}

func themeKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
