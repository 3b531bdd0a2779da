package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
	trigger "freight-auction/internal/triggerService"
	"freight-auction/utils"
)

// Deliverer is the dispatcher as the evaluator sees it.
type Deliverer interface {
	Deliver(carrierID, triggerID string, kind model.NotificationKind, bidNumber, message string) (bool, error)
}

// KindReport tallies what happened to one trigger kind in one cycle.
type KindReport struct {
	Triggers   int
	Matches    int
	Sent       int
	Suppressed int
	Failed     int
}

// Evaluator runs triggers against a marketplace snapshot and hands
// their matches to the dispatcher. A failure in one trigger is counted
// and logged but never stops the rest of its kind.
type Evaluator struct {
	auctions   repository.AuctionDB
	alerts     repository.AlertDB
	dispatcher Deliverer
	matchers   map[model.TriggerKind]Matcher
	workers    int
}

// NewEvaluator creates a new Evaluator instance. workers bounds the
// per-kind trigger fan-out.
func NewEvaluator(auctions repository.AuctionDB, alerts repository.AlertDB, dispatcher Deliverer, workers int) *Evaluator {
	if workers < 1 {
		workers = 1
	}
	return &Evaluator{
		auctions:   auctions,
		alerts:     alerts,
		dispatcher: dispatcher,
		matchers:   Matchers(),
		workers:    workers,
	}
}

// Snapshot captures the marketplace state one cycle will evaluate.
func (e *Evaluator) Snapshot(now time.Time) (*Snapshot, error) {
	return BuildSnapshot(e.auctions, now)
}

// EvaluateKind runs all triggers of one kind against the snapshot,
// fanning them across the worker pool. It returns when every trigger
// has been processed or the context ends, whichever comes first.
func (e *Evaluator) EvaluateKind(ctx context.Context, kind model.TriggerKind, triggers []model.Trigger, snap *Snapshot) KindReport {
	report := KindReport{Triggers: len(triggers)}
	matcher, ok := e.matchers[kind]
	if !ok {
		report.Failed = len(triggers)
		return report
	}

	jobs := make(chan model.Trigger)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				r := e.evaluateTrigger(t, matcher, snap)
				mu.Lock()
				report.Matches += r.Matches
				report.Sent += r.Sent
				report.Suppressed += r.Suppressed
				report.Failed += r.Failed
				mu.Unlock()
			}
		}()
	}

feed:
	for _, t := range triggers {
		select {
		case jobs <- t:
		case <-ctx.Done():
			mu.Lock()
			report.Failed++
			mu.Unlock()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return report
}

// evaluateTrigger compiles and runs one trigger. Panics inside a
// matcher are contained here so a single bad trigger cannot take down
// the cycle.
func (e *Evaluator) evaluateTrigger(t model.Trigger, matcher Matcher, snap *Snapshot) (report KindReport) {
	defer func() {
		if r := recover(); r != nil {
			report.Failed++
			utils.Error("Trigger evaluation panicked", map[string]any{
				"triggerID": t.TriggerID,
				"kind":      string(t.Kind),
				"panic":     fmt.Sprint(r),
			})
		}
	}()

	favorites, err := e.favoritesFor(t.CarrierID)
	if err != nil {
		report.Failed++
		utils.Warn("Failed to resolve favorites for trigger", map[string]any{
			"triggerID": t.TriggerID,
			"carrierID": t.CarrierID,
			"error":     err.Error(),
		})
		return report
	}

	byBid := make(map[string]int, len(favorites))
	for _, f := range favorites {
		byBid[f.BidNumber] = f.DistanceMiles
	}
	rule, err := trigger.CompileRule(t, func(bidNumber string) (int, bool) {
		d, ok := byBid[bidNumber]
		return d, ok
	})
	if err != nil {
		report.Failed++
		utils.Warn("Failed to compile trigger", map[string]any{
			"triggerID": t.TriggerID,
			"kind":      string(t.Kind),
			"error":     err.Error(),
		})
		return report
	}

	matches, err := matcher.Match(t, rule, favorites, snap)
	if err != nil {
		report.Failed++
		utils.Warn("Trigger matching failed", map[string]any{
			"triggerID": t.TriggerID,
			"kind":      string(t.Kind),
			"error":     err.Error(),
		})
		return report
	}
	report.Matches = len(matches)

	for _, m := range matches {
		sent, err := e.dispatcher.Deliver(t.CarrierID, t.TriggerID, m.Kind, m.BidNumber, m.Message)
		switch {
		case err != nil:
			report.Failed++
			utils.Warn("Failed to deliver trigger match", map[string]any{
				"triggerID": t.TriggerID,
				"bidNumber": m.BidNumber,
				"error":     err.Error(),
			})
		case sent:
			report.Sent++
		default:
			report.Suppressed++
		}
	}
	return report
}

// favoritesFor resolves a carrier's favorites to route facts. A
// favorite whose auction disappeared is skipped.
func (e *Evaluator) favoritesFor(carrierID string) ([]FavoriteView, error) {
	favs, err := e.auctions.FavoritesForCarrier(carrierID)
	if err != nil {
		return nil, fmt.Errorf("evaluator: failed to list favorites for carrier %s: %w", carrierID, err)
	}

	views := make([]FavoriteView, 0, len(favs))
	for _, f := range favs {
		a, err := e.auctions.GetAuction(f.BidNumber)
		if err != nil {
			continue
		}
		views = append(views, FavoriteView{
			BidNumber:     a.BidNumber,
			Stops:         a.Stops,
			DistanceMiles: a.DistanceMiles,
		})
	}
	return views, nil
}
