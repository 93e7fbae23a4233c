package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unicostudio/b-ai-localization/internal/constants"
	"github.com/unicostudio/b-ai-localization/pkg/errors"
	"go.uber.org/zap"
)

const localizationKeyPrefix = "bai:localization:"

// LocalizationCache memoizes completed localization calls so re-runs over
// overlapping source sheets skip the remote call. Backed by Redis when
// configured, otherwise an in-process map.
type LocalizationCache interface {
	Get(ctx context.Context, key string) (map[string]string, bool)
	Set(ctx context.Context, key string, value map[string]string)
}

// CacheKey derives a stable key from everything that changes the model's
// answer: model ID, source text, target language set and image description.
func CacheKey(model, text string, languageNames []string, description string) string {
	langs := make([]string, len(languageNames))
	copy(langs, languageNames)
	sort.Strings(langs)

	h := sha256.Sum256([]byte(model + "\x00" + text + "\x00" + strings.Join(langs, ",") + "\x00" + description))
	return localizationKeyPrefix + hex.EncodeToString(h[:])
}

type RedisCacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisCache(cfg RedisCacheConfig, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis localization cache connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &RedisCache{client: client, logger: logger}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (map[string]string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		c.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value map[string]string) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, constants.CacheTTL.Localization).Err(); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// MemoryCache is the default in-process cache. Unbounded: a run touches each
// distinct source string a handful of times.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return copyEntry(value), true
}

func (c *MemoryCache) Set(_ context.Context, key string, value map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Stored copies are isolated from caller mutation.
	c.entries[key] = copyEntry(value)
}

func copyEntry(value map[string]string) map[string]string {
	out := make(map[string]string, len(value))
	for k, v := range value {
		out[k] = v
	}
	return out
}
