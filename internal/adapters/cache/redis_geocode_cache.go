package cache

import (
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisKeyPrefix = "geocode:"
	defaultRedisTTL       = 30 * 24 * time.Hour
)

// RedisGeocodeCache stores coordinates as JSON values under prefixed keys.
type RedisGeocodeCache struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{
		Client: client,
		Prefix: defaultRedisKeyPrefix,
		TTL:    defaultRedisTTL,
	}
}

type redisCoordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (r *RedisGeocodeCache) key(address string) string {
	return r.Prefix + address
}

// Fetch cached coordinates for the given addresses.
// Missing keys are absent from the result.
func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueAddresses(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	keys := make([]string, len(uniq))
	for i, a := range uniq {
		keys[i] = r.key(a)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var c redisCoordinates
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = domain.Coordinates{Lat: c.Lat, Lon: c.Lon}
	}

	return out, nil
}

// Store address -> coordinate mappings with the configured TTL.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.cache.redis.PutMany")(&err)

	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for addr, c := range results {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return errors.New("insert geocode cache: empty address key")
		}

		b, err := json.Marshal(redisCoordinates{Lat: c.Lat, Lon: c.Lon})
		if err != nil {
			return fmt.Errorf("insert geocode cache: encode %q: %w", addr, err)
		}
		pipe.Set(ctx, r.key(addr), b, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}
