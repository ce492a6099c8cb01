// Package cache provides a redis read-through cache for routing-token
// resolution. Token lookups run on every inbound email, including the
// large fraction that is rejected, so they are worth keeping off the
// database's hot path.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

const (
	// DefaultTTL bounds staleness after a domain's token is rotated.
	DefaultTTL = 10 * time.Minute

	keyPrefix = "dmarc:token:"
)

// TokenCachingStorage wraps a ReportStorage and caches
// LookupDomainByToken results in redis. Cache failures degrade to a
// direct database lookup; negative results are not cached, so an
// unknown token stays a (cheap) database miss.
type TokenCachingStorage struct {
	port.ReportStorage
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenCachingStorage(next port.ReportStorage, rdb *redis.Client) *TokenCachingStorage {
	return &TokenCachingStorage{
		ReportStorage: next,
		rdb:           rdb,
		ttl:           DefaultTTL,
	}
}

func (c *TokenCachingStorage) LookupDomainByToken(ctx context.Context, token string) (*domain.MonitoredDomain, error) {
	key := fmt.Sprintf("%s%s", keyPrefix, token)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var d domain.MonitoredDomain
		if err := json.Unmarshal(data, &d); err == nil {
			return &d, nil
		}
	} else if err != redis.Nil {
		log.WithError(err).Debug("Token cache read failed, falling back to database")
	}

	d, err := c.ReportStorage.LookupDomainByToken(ctx, token)
	if err != nil || d == nil {
		return d, err
	}

	if data, err := json.Marshal(d); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.WithError(err).Debug("Token cache write failed")
		}
	}

	return d, nil
}
