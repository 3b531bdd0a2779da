package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "freight-auction/internal/auctionService"
	model "freight-auction/internal/models"
	"freight-auction/internal/notifier"
	repository "freight-auction/internal/repository"
	"freight-auction/internal/scheduler"
)

func openAuction(bidNumber string) model.Auction {
	return model.Auction{
		BidNumber:     bidNumber,
		Stops:         []string{"Dallas, TX", "Atlanta, GA"},
		DistanceMiles: 780,
		Tag:           "TX",
		ReceivedAt:    time.Now().UTC(),
	}
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, notifier.NewDispatcher(repo))

	for i := 0; i < b.N; i++ {
		if err := repo.CreateAuction(openAuction(fmt.Sprintf("BN-%d", i))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		carrierID := fmt.Sprintf("carrier_%d", i)
		bidNumber := fmt.Sprintf("BN-%d", i)
		amount := int64(40000 + rand.Intn(20000))
		if _, err := svc.PlaceBid(bidNumber, carrierID, amount, ""); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, notifier.NewDispatcher(repo))

	if err := repo.CreateAuction(openAuction("BN-shared")); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastAmount int64 = 40000

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			carrierID := fmt.Sprintf("carrier_parallel_%d", rnd.Int())

			// Rising amounts keep the new-lowest path quiet.
			next := atomic.AddInt64(&lastAmount, int64(rnd.Intn(500)+1))
			_, _ = svc.PlaceBid("BN-shared", carrierID, next, "")
		}
	})
}

// Benchmark 3: GetLowestBid - Single-Threaded (Low Contention)
func Benchmark_GetLowestBid_SingleThreaded(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, notifier.NewDispatcher(repo))

	for i := 0; i < b.N; i++ {
		bidNumber := fmt.Sprintf("BN-%d", i)
		if err := repo.CreateAuction(openAuction(bidNumber)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}

		for j := 0; j < 10; j++ {
			carrierID := fmt.Sprintf("carrier_%d_%d", i, j)
			amount := int64(40000 + j*1000)
			_, _ = svc.PlaceBid(bidNumber, carrierID, amount, "")
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidNumber := fmt.Sprintf("BN-%d", i)
		if _, err := svc.GetLowestBid(bidNumber); err != nil {
			b.Fatalf("failed to get lowest bid: %v", err)
		}
	}
}

// Benchmark 4: GetLowestBid - Concurrent (High Contention)
func Benchmark_GetLowestBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, notifier.NewDispatcher(repo))

	if err := repo.CreateAuction(openAuction("BN-shared")); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	for j := 0; j < 100; j++ {
		carrierID := fmt.Sprintf("carrier_%d", j)
		amount := int64(40000 + j*100)
		_, _ = svc.PlaceBid("BN-shared", carrierID, amount, "")
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetLowestBid("BN-shared"); err != nil {
				b.Fatalf("failed to get lowest bid: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, notifier.NewDispatcher(repo))

	if err := repo.CreateAuction(openAuction("BN-shared")); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	for j := 0; j < 50; j++ {
		carrierID := fmt.Sprintf("carrier_seed_%d", j)
		amount := int64(40000 + j*200)
		_, _ = svc.PlaceBid("BN-shared", carrierID, amount, "")
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastAmount int64 = 50000
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				carrierID := fmt.Sprintf("carrier_writer_%d", rnd.Int())
				next := atomic.AddInt64(&lastAmount, int64(rnd.Intn(500)+1))
				_, _ = svc.PlaceBid("BN-shared", carrierID, next, "")
			default:
				// Reader: get lowest bid
				_, _ = svc.GetLowestBid("BN-shared")
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 6: RunCycle - trigger evaluation across many open auctions
func Benchmark_RunCycle(b *testing.B) {
	repo := repository.NewMemoryRepo()

	for i := 0; i < 500; i++ {
		if err := repo.CreateAuction(openAuction(fmt.Sprintf("BN-%d", i))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	threshold := 1
	for i := 0; i < 50; i++ {
		err := repo.CreateTrigger(model.Trigger{
			TriggerID: fmt.Sprintf("t-%d", i),
			CarrierID: fmt.Sprintf("carrier_%d", i),
			Kind:      model.TriggerDeadlineApproaching,
			Config:    model.TriggerConfig{TimeThresholdHours: &threshold},
			Active:    true,
		})
		if err != nil {
			b.Fatalf("failed to seed trigger: %v", err)
		}
	}

	evaluator := notifier.NewEvaluator(repo, repo, notifier.NewDispatcher(repo), 4)
	sched := scheduler.New(evaluator, repo, time.Minute, 30*time.Second)

	b.ReportAllocs()
	b.ResetTimer()

	// The first cycle sends, later ones hit the dedup ledger. Both paths
	// walk the full trigger/auction cross product, which is the cost we
	// care about here.
	for i := 0; i < b.N; i++ {
		report := sched.RunCycle(context.Background())
		if report.Skipped {
			b.Fatalf("cycle unexpectedly skipped")
		}
	}
}
