package trigger

import (
	"fmt"
	"strings"
	"time"

	"freight-auction/internal/auctionerrors"
	model "freight-auction/internal/models"
)

// Rule is the compiled, typed form of a trigger's configuration. One
// variant exists per trigger kind; matchers type-assert to the variant
// they evaluate.
type Rule interface {
	rule()
}

// SimilarLoadRule scores open auctions against a carrier's favorites.
type SimilarLoadRule struct {
	// Maximum distance delta, in miles, between a favorite and a
	// candidate before the candidate is discarded outright.
	DistanceThresholdMiles int
}

// FavoriteMatchRule matches auctions against a distance range or an
// explicit list of favorited bid numbers. Backs both exact_match and
// favorite_available.
type FavoriteMatchRule struct {
	MinDistanceMiles int
	MaxDistanceMiles int
	HasRange         bool
	BidNumbers       []string
}

// NewRouteRule matches recently posted auctions tagged with one of the
// watched states.
type NewRouteRule struct {
	StateTags []string // upper-cased
}

// DeadlineRule matches auctions whose bidding window closes within the
// threshold.
type DeadlineRule struct {
	Threshold time.Duration
}

// PriceDropRule matches auctions whose lowest bid fell to or below the
// threshold.
type PriceDropRule struct {
	ThresholdCents int64
}

func (SimilarLoadRule) rule()   {}
func (FavoriteMatchRule) rule() {}
func (NewRouteRule) rule()      {}
func (DeadlineRule) rule()      {}
func (PriceDropRule) rule()     {}

// CompileRule turns a trigger's stored configuration into its typed
// rule. favoriteDistance resolves a favorited bid number to that
// auction's distance; it is consulted only for the legacy
// list-of-favorites shape, which compiles to the distance range spanned
// by the listed auctions.
func CompileRule(t model.Trigger, favoriteDistance func(bidNumber string) (int, bool)) (Rule, error) {
	cfg := t.Config
	switch t.Kind {
	case model.TriggerSimilarLoad:
		if cfg.DistanceThreshold == nil {
			return nil, fmt.Errorf("compile trigger %s: %w - distanceThreshold is required", t.TriggerID, auctionerrors.ErrInvalidTriggerConfig)
		}
		return SimilarLoadRule{DistanceThresholdMiles: *cfg.DistanceThreshold}, nil

	case model.TriggerExactMatch, model.TriggerFavoriteAvailable:
		r := FavoriteMatchRule{BidNumbers: cfg.FavoriteBidNumbers}
		if cfg.MinDistance != nil && cfg.MaxDistance != nil {
			r.MinDistanceMiles = *cfg.MinDistance
			r.MaxDistanceMiles = *cfg.MaxDistance
			r.HasRange = true
			return r, nil
		}
		// Legacy shape: derive the range from the listed favorites.
		for _, bidNumber := range cfg.FavoriteBidNumbers {
			d, ok := favoriteDistance(bidNumber)
			if !ok {
				continue
			}
			if !r.HasRange || d < r.MinDistanceMiles {
				r.MinDistanceMiles = d
			}
			if !r.HasRange || d > r.MaxDistanceMiles {
				r.MaxDistanceMiles = d
			}
			r.HasRange = true
		}
		return r, nil

	case model.TriggerNewRoute:
		tags := make([]string, 0, len(cfg.StateTags))
		for _, tag := range cfg.StateTags {
			tags = append(tags, strings.ToUpper(strings.TrimSpace(tag)))
		}
		return NewRouteRule{StateTags: tags}, nil

	case model.TriggerDeadlineApproaching:
		if cfg.TimeThresholdHours == nil {
			return nil, fmt.Errorf("compile trigger %s: %w - timeThreshold is required", t.TriggerID, auctionerrors.ErrInvalidTriggerConfig)
		}
		return DeadlineRule{Threshold: time.Duration(*cfg.TimeThresholdHours) * time.Hour}, nil

	case model.TriggerPriceDrop:
		if cfg.PriceThresholdCents == nil {
			return nil, fmt.Errorf("compile trigger %s: %w - priceThreshold is required", t.TriggerID, auctionerrors.ErrInvalidTriggerConfig)
		}
		return PriceDropRule{ThresholdCents: *cfg.PriceThresholdCents}, nil
	}
	return nil, fmt.Errorf("compile trigger %s: %w - %q", t.TriggerID, auctionerrors.ErrInvalidTriggerKind, t.Kind)
}
