package notifier

import (
	"fmt"
	"sort"
	"time"

	model "freight-auction/internal/models"
	trigger "freight-auction/internal/triggerService"
	"freight-auction/utils"
)

const (
	// Similarity scoring: a candidate qualifies at or above this score.
	minMatchScore = 70
	// Allowed distance slack between a favorite and a candidate, as a
	// percentage of the favorite's distance.
	distanceFlexibilityPct = 25.0
	// At most this many similar-load matches per trigger per cycle.
	maxSimilarMatches = 5

	// new_route only reports loads posted within this window.
	newRouteRecency = time.Hour
)

// Match is one (auction, message) pair produced by a matcher for a
// trigger. The dispatcher decides whether it actually sends.
type Match struct {
	Kind      model.NotificationKind
	BidNumber string
	Message   string
}

// Matcher evaluates one trigger kind against a snapshot. Matchers are
// pure: they read the snapshot and the compiled rule, and never touch
// storage.
type Matcher interface {
	Kind() model.TriggerKind
	Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error)
}

// Matchers returns the full matcher registry, one per trigger kind.
func Matchers() map[model.TriggerKind]Matcher {
	return map[model.TriggerKind]Matcher{
		model.TriggerSimilarLoad:         similarLoadMatcher{},
		model.TriggerExactMatch:          favoriteMatcher{kind: model.TriggerExactMatch},
		model.TriggerFavoriteAvailable:   favoriteMatcher{kind: model.TriggerFavoriteAvailable},
		model.TriggerNewRoute:            newRouteMatcher{},
		model.TriggerDeadlineApproaching: deadlineMatcher{},
		model.TriggerPriceDrop:           priceDropMatcher{},
	}
}

// similarLoadMatcher scores every open auction against the carrier's
// favorites and reports the best-scoring qualifiers.
type similarLoadMatcher struct{}

func (similarLoadMatcher) Kind() model.TriggerKind { return model.TriggerSimilarLoad }

func (similarLoadMatcher) Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error) {
	r, ok := rule.(trigger.SimilarLoadRule)
	if !ok {
		return nil, fmt.Errorf("similar_load matcher: unexpected rule type %T", rule)
	}
	if len(favorites) == 0 {
		return nil, nil
	}

	type scored struct {
		view  AuctionView
		score int
	}
	var candidates []scored
	for _, v := range snap.Open {
		best := 0
		for _, fav := range favorites {
			if fav.BidNumber == v.BidNumber {
				continue
			}
			if delta := v.DistanceMiles - fav.DistanceMiles; delta > r.DistanceThresholdMiles || -delta > r.DistanceThresholdMiles {
				continue
			}
			if s := similarityScore(fav, v); s > best {
				best = s
			}
		}
		if best >= minMatchScore {
			candidates = append(candidates, scored{view: v, score: best})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].view.BidNumber < candidates[j].view.BidNumber
	})
	if len(candidates) > maxSimilarMatches {
		candidates = candidates[:maxSimilarMatches]
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{
			Kind:      model.NotifySimilarLoad,
			BidNumber: c.view.BidNumber,
			Message: fmt.Sprintf("High-match load found! %s to %s, %d miles. Match: %d%%.",
				c.view.Origin(), c.view.Destination(), c.view.DistanceMiles, c.score),
		})
	}
	return matches, nil
}

// similarityScore blends route and distance similarity, half weight
// each. Route similarity credits matching endpoints in either
// direction, so a backhaul of a favorite lane scores as well as a
// repeat of it.
func similarityScore(fav FavoriteView, v AuctionView) int {
	route := routeScore(fav, v)
	dist := distanceScore(fav.DistanceMiles, v.DistanceMiles)
	return int(float64(route)*0.5 + float64(dist)*0.5)
}

func routeScore(fav FavoriteView, v AuctionView) int {
	forward := 0
	if equalStop(fav.Origin(), v.Origin()) {
		forward += 50
	}
	if equalStop(fav.Destination(), v.Destination()) {
		forward += 50
	}

	backhaul := 0
	if equalStop(fav.Origin(), v.Destination()) {
		backhaul += 50
	}
	if equalStop(fav.Destination(), v.Origin()) {
		backhaul += 50
	}

	if backhaul > forward {
		return backhaul
	}
	return forward
}

func distanceScore(favMiles, candMiles int) int {
	if favMiles <= 0 {
		return 0
	}
	diff := float64(candMiles - favMiles)
	if diff < 0 {
		diff = -diff
	}
	flex := float64(favMiles) * distanceFlexibilityPct / 100

	switch {
	case diff <= flex/2:
		return 100
	case diff <= flex:
		return 80
	case diff <= 1.5*flex:
		return 60
	case diff <= 2*flex:
		return 40
	}
	if pct := diff / float64(favMiles) * 100; pct < 100 {
		return int(100 - pct)
	}
	return 0
}

// favoriteMatcher backs both exact_match and favorite_available. An
// auction matches if it is one of the listed favorites or falls inside
// the configured distance range.
type favoriteMatcher struct {
	kind model.TriggerKind
}

func (m favoriteMatcher) Kind() model.TriggerKind { return m.kind }

func (m favoriteMatcher) Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error) {
	r, ok := rule.(trigger.FavoriteMatchRule)
	if !ok {
		return nil, fmt.Errorf("%s matcher: unexpected rule type %T", m.kind, rule)
	}

	listed := make(map[string]bool, len(r.BidNumbers))
	for _, bidNumber := range r.BidNumbers {
		listed[bidNumber] = true
	}

	var matches []Match
	for _, v := range snap.Open {
		inRange := r.HasRange && v.DistanceMiles >= r.MinDistanceMiles && v.DistanceMiles <= r.MaxDistanceMiles
		if !listed[v.BidNumber] && !inRange {
			continue
		}
		matches = append(matches, Match{
			Kind:      model.NotificationKind(m.kind),
			BidNumber: v.BidNumber,
			Message:   m.message(v),
		})
	}
	return matches, nil
}

func (m favoriteMatcher) message(v AuctionView) string {
	if m.kind == model.TriggerExactMatch {
		return fmt.Sprintf("Exact match found! Load %s, %s to %s, %d miles.",
			v.BidNumber, v.Origin(), v.Destination(), v.DistanceMiles)
	}
	return fmt.Sprintf("Favorite load %s is open for bidding, %s to %s, %d miles.",
		v.BidNumber, v.Origin(), v.Destination(), v.DistanceMiles)
}

// newRouteMatcher reports freshly posted loads tagged with a watched
// state.
type newRouteMatcher struct{}

func (newRouteMatcher) Kind() model.TriggerKind { return model.TriggerNewRoute }

func (newRouteMatcher) Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error) {
	r, ok := rule.(trigger.NewRouteRule)
	if !ok {
		return nil, fmt.Errorf("new_route matcher: unexpected rule type %T", rule)
	}

	watched := make(map[string]bool, len(r.StateTags))
	for _, tag := range r.StateTags {
		watched[tag] = true
	}

	var matches []Match
	for _, v := range snap.Open {
		if !watched[normalizeTag(v.Tag)] {
			continue
		}
		if snap.Now.Sub(v.ReceivedAt) > newRouteRecency {
			continue
		}
		matches = append(matches, Match{
			Kind:      model.NotifyNewRoute,
			BidNumber: v.BidNumber,
			Message: fmt.Sprintf("New load posted in %s: %s, %s to %s, %d miles.",
				v.Tag, v.BidNumber, v.Origin(), v.Destination(), v.DistanceMiles),
		})
	}
	return matches, nil
}

// deadlineMatcher reports auctions still open but closing within the
// configured threshold.
type deadlineMatcher struct{}

func (deadlineMatcher) Kind() model.TriggerKind { return model.TriggerDeadlineApproaching }

func (deadlineMatcher) Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error) {
	r, ok := rule.(trigger.DeadlineRule)
	if !ok {
		return nil, fmt.Errorf("deadline_approaching matcher: unexpected rule type %T", rule)
	}

	var matches []Match
	for _, v := range snap.Open {
		if v.TimeLeft <= 0 || v.TimeLeft > r.Threshold {
			continue
		}
		matches = append(matches, Match{
			Kind:      model.NotifyDeadlineApproaching,
			BidNumber: v.BidNumber,
			Message: fmt.Sprintf("Load %s closes in %d minutes.",
				v.BidNumber, int(v.TimeLeft.Minutes())),
		})
	}
	return matches, nil
}

// priceDropMatcher reports auctions whose lowest bid reached the
// carrier's threshold.
type priceDropMatcher struct{}

func (priceDropMatcher) Kind() model.TriggerKind { return model.TriggerPriceDrop }

func (priceDropMatcher) Match(t model.Trigger, rule trigger.Rule, favorites []FavoriteView, snap *Snapshot) ([]Match, error) {
	r, ok := rule.(trigger.PriceDropRule)
	if !ok {
		return nil, fmt.Errorf("price_drop matcher: unexpected rule type %T", rule)
	}

	var matches []Match
	for _, v := range snap.Open {
		if !v.HasBids || v.LowestCents > r.ThresholdCents {
			continue
		}
		matches = append(matches, Match{
			Kind:      model.NotifyPriceDrop,
			BidNumber: v.BidNumber,
			Message: fmt.Sprintf("Lowest bid on load %s dropped to %s.",
				v.BidNumber, utils.FormatMoney(v.LowestCents)),
		})
	}
	return matches, nil
}
