// Package redis caches public tracking views in Redis.
package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// DefaultTTL bounds how long a stale view may be served if an invalidation is lost.
const DefaultTTL = 5 * time.Minute

// generationTTL outlives any in-flight load by a wide margin. An expired
// counter restarts at 0, which only matters to a load older than this.
const generationTTL = 24 * time.Hour

// TrackingCache keeps one view and one generation counter per token. Both keys
// share a hash tag so the guarded write works on a cluster too.
type TrackingCache struct {
	c   goredis.UniversalClient
	ttl time.Duration
}

// NewTrackingCache connects to a single redis node at addr.
func NewTrackingCache(addr string, ttl time.Duration) *TrackingCache {
	return NewTrackingCacheWithClient(goredis.NewClient(&goredis.Options{
		Addr: addr,
	}), ttl)
}

// NewTrackingCacheWithClient uses an existing client, e.g. one pointed at miniredis.
func NewTrackingCacheWithClient(c goredis.UniversalClient, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TrackingCache{c: c, ttl: ttl}
}

func entryKey(token string) string {
	return keyPrefix + "{" + token + "}"
}

func generationKey(token string) string {
	return keyPrefix + "{" + token + "}:gen"
}

func (r *TrackingCache) Get(ctx context.Context, token string) ([]byte, bool, error) {
	val, err := r.c.Get(ctx, entryKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

func (r *TrackingCache) Generation(ctx context.Context, token string) (int64, error) {
	gen, err := readGeneration(ctx, r.c, token)
	if err != nil {
		return 0, errors.Wrap(err, "redis generation")
	}
	return gen, nil
}

// Set writes the view inside a WATCH on the generation key. A concurrent
// Invalidate either moves the generation before the check or aborts EXEC;
// in both cases nothing is stored.
func (r *TrackingCache) Set(ctx context.Context, token string, generation int64, value []byte) (bool, error) {
	stored := false
	err := r.c.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := readGeneration(ctx, tx, token)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, entryKey(token), value, r.ttl)
			return nil
		})
		stored = err == nil
		return err
	}, generationKey(token))
	if errors.Is(err, goredis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "redis set")
	}
	return stored, nil
}

// Invalidate drops the view and bumps the generation in one transaction.
func (r *TrackingCache) Invalidate(ctx context.Context, token string) error {
	_, err := r.c.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(token))
		pipe.Expire(ctx, generationKey(token), generationTTL)
		pipe.Del(ctx, entryKey(token))
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis invalidate")
	}
	return nil
}

// Ping is used by the health endpoint.
func (r *TrackingCache) Ping(ctx context.Context) error {
	return errors.Wrap(r.c.Ping(ctx).Err(), "redis ping")
}

func (r *TrackingCache) Close() error {
	return r.c.Close()
}

type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func readGeneration(ctx context.Context, c getter, token string) (int64, error) {
	gen, err := c.Get(ctx, generationKey(token)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}
