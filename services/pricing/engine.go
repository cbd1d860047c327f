package pricing

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// Engine is the unified entry point for pricing computations. It dispatches
// on the context's duration type and normalizes the result shape, so callers
// never branch on billing mode themselves.
//
// The engine is stateless; concurrent previews are independent and callers
// discard stale results themselves.
type Engine struct {
	Quotes QuoteClient   // authoritative short-term pricing; nil means always compute locally
	Cache  *redis.Client // optional quote cache; nil disables caching
	Logger *zap.Logger
}

// NewEngine constructs a pricing engine.
func NewEngine(quotes QuoteClient, cache *redis.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Quotes: quotes, Cache: cache, Logger: logger}
}

// ComputePricing prices a booking configuration. Configuration problems
// (missing or unrecognized fields) come back as an isValid=false result, not
// an error; a non-nil error indicates an upstream contract violation.
func (e *Engine) ComputePricing(ctx context.Context, sel models.ServiceSelection, pc models.PricingContext) (*models.PricingResult, error) {
	switch pc.DurationType {
	case models.DurationLongTerm:
		return computeLongTerm(sel, pc), nil
	case models.DurationShortTerm:
		return e.computeShortTerm(ctx, sel, pc)
	// No label on the dispatch failures below: the "/month" vs "/total"
	// suffix is itself determined by the duration type that is missing or
	// unrecognized here.
	case "":
		return &models.PricingResult{
			IsValid: false,
			Errors:  []string{"missing required parameter: durationType"},
		}, nil
	default:
		return &models.PricingResult{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("unrecognized durationType: %s", pc.DurationType)},
		}, nil
	}
}
