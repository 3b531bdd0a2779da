package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"freight-auction/internal/metrics"
	model "freight-auction/internal/models"
	"freight-auction/internal/notifier"
	"freight-auction/internal/repository"
	"freight-auction/utils"
)

// CycleReport summarizes one evaluation cycle across all trigger kinds.
type CycleReport struct {
	Skipped bool
	ByKind  map[model.TriggerKind]notifier.KindReport
}

// Scheduler runs trigger evaluation cycles on a fixed interval. A
// cycle still running when the next tick fires makes that tick a
// no-op; cycles never overlap.
type Scheduler struct {
	evaluator    *notifier.Evaluator
	alerts       repository.AlertDB
	interval     time.Duration
	cycleTimeout time.Duration

	mu   sync.Mutex
	busy bool
	cron *cron.Cron
}

// New creates a Scheduler that evaluates every interval, giving each
// cycle at most cycleTimeout to finish.
func New(evaluator *notifier.Evaluator, alerts repository.AlertDB, interval, cycleTimeout time.Duration) *Scheduler {
	return &Scheduler{
		evaluator:    evaluator,
		alerts:       alerts,
		interval:     interval,
		cycleTimeout: cycleTimeout,
	}
}

// Start begins the periodic cycles. The returned error only reflects
// schedule registration; cycle failures are logged and counted.
func (s *Scheduler) Start() error {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cycleTimeout)
		defer cancel()
		s.RunCycle(ctx)
	}); err != nil {
		return fmt.Errorf("scheduler: failed to register cycle at %q: %w", spec, err)
	}

	c.Start()
	s.cron = c
	utils.Info("Scheduler started", map[string]any{
		"interval":     s.interval.String(),
		"cycleTimeout": s.cycleTimeout.String(),
	})
	return nil
}

// Stop halts the schedule and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunCycle performs one full evaluation pass: snapshot the open
// auctions, group the active triggers by kind, and evaluate each kind
// in its own goroutine behind a panic boundary. One kind failing or
// panicking never suppresses the others.
func (s *Scheduler) RunCycle(ctx context.Context) CycleReport {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		utils.Warn("Evaluation cycle still running, skipping tick", nil)
		return CycleReport{Skipped: true}
	}
	s.busy = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	metrics.EvaluationCycles.Inc()
	started := time.Now().UTC()

	triggers, err := s.alerts.ListActiveTriggers()
	if err != nil {
		utils.Error("Failed to list active triggers", map[string]any{"error": err.Error()})
		return CycleReport{}
	}
	snap, err := s.evaluator.Snapshot(started)
	if err != nil {
		utils.Error("Failed to snapshot open auctions", map[string]any{"error": err.Error()})
		return CycleReport{}
	}

	byKind := make(map[model.TriggerKind][]model.Trigger)
	for _, t := range triggers {
		byKind[t.Kind] = append(byKind[t.Kind], t)
	}

	report := CycleReport{ByKind: make(map[model.TriggerKind]notifier.KindReport, len(byKind))}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for kind, kindTriggers := range byKind {
		kind, kindTriggers := kind, kindTriggers
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					metrics.CycleCategoryFailures.WithLabelValues(string(kind)).Inc()
					utils.Error("Trigger kind evaluation panicked", map[string]any{
						"kind":  string(kind),
						"panic": fmt.Sprint(r),
					})
				}
			}()

			kr := s.evaluator.EvaluateKind(ctx, kind, kindTriggers, snap)
			if kr.Failed > 0 {
				metrics.CycleCategoryFailures.WithLabelValues(string(kind)).Inc()
			}
			mu.Lock()
			report.ByKind[kind] = kr
			mu.Unlock()
		}()
	}
	wg.Wait()

	fields := map[string]any{
		"openAuctions":   len(snap.Open),
		"activeTriggers": len(triggers),
		"elapsed":        time.Since(started).String(),
	}
	for kind, kr := range report.ByKind {
		fields[string(kind)] = fmt.Sprintf("sent=%d suppressed=%d failed=%d", kr.Sent, kr.Suppressed, kr.Failed)
	}
	utils.Info("Evaluation cycle complete", fields)
	return report
}
