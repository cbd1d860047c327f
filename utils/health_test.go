package utils

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestCollectHealth(t *testing.T) {
	healthy := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name                            string
		mongoPing, cachePing, queuePing pingFunc
		wantMongo, wantCache, wantQueue bool
	}{
		{"all dependencies up", healthy, healthy, healthy, true, true, true},
		{"quote cache down", healthy, down, healthy, true, false, true},
		{"mongo and billing queue down", down, healthy, down, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := collectHealth(context.Background(), zap.NewNop(), tt.mongoPing, tt.cachePing, tt.queuePing)
			if status.Mongo != tt.wantMongo {
				t.Errorf("Mongo = %v, want %v", status.Mongo, tt.wantMongo)
			}
			if status.QuoteCache != tt.wantCache {
				t.Errorf("QuoteCache = %v, want %v", status.QuoteCache, tt.wantCache)
			}
			if status.BillingQueue != tt.wantQueue {
				t.Errorf("BillingQueue = %v, want %v", status.BillingQueue, tt.wantQueue)
			}
			if status.CheckedAt.IsZero() {
				t.Error("CheckedAt must be stamped on every sweep")
			}
		})
	}
}
