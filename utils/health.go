package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/config"
)

// HealthStatus reports the dependencies the service needs to price and
// finalize bookings.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`        // booking, revenue and modification stores
	QuoteCache   bool      `json:"quoteCache"`   // Redis DB caching remote pricing quotes
	BillingQueue bool      `json:"billingQueue"` // Redis DB backing the billing reminder queue
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

type pingFunc func(ctx context.Context) error

// collectHealth runs one sweep over the dependency pings. Failures are
// logged with the component name so an unhealthy snapshot can be traced.
func collectHealth(ctx context.Context, logger *zap.Logger, mongoPing, cachePing, queuePing pingFunc) HealthStatus {
	check := func(name string, ping pingFunc) bool {
		if err := ping(ctx); err != nil {
			logger.Warn("health check failed", zap.String("component", name), zap.Error(err))
			return false
		}
		return true
	}

	return HealthStatus{
		Mongo:        check("mongo", mongoPing),
		QuoteCache:   check("quote_cache", cachePing),
		BillingQueue: check("billing_queue", queuePing),
		CheckedAt:    time.Now(),
	}
}

// StartHealthMonitor performs periodic dependency checks and updates the
// in-memory snapshot served by the health endpoint. The sweep interval comes
// from HEALTH_CHECK_INTERVAL_SEC.
func StartHealthMonitor(cacheClient, queueClient *redis.Client, mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckIntervalSec) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}
	logger := GetLogger()

	mongoPing := func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
	cachePing := func(ctx context.Context) error { return cacheClient.Ping(ctx).Err() }
	queuePing := func(ctx context.Context) error { return queueClient.Ping(ctx).Err() }

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			snapshot := collectHealth(ctx, logger, mongoPing, cachePing, queuePing)

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
