package notifier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight-auction/internal/auctionerrors"
	"freight-auction/internal/repository"
)

// AuctionView is an open auction as seen by one evaluation cycle, with
// the clock-derived and bid-derived fields fixed at snapshot time so
// every matcher in the cycle sees the same state.
type AuctionView struct {
	BidNumber     string
	Stops         []string
	DistanceMiles int
	Tag           string
	ReceivedAt    time.Time
	TimeLeft      time.Duration
	BidCount      int
	LowestCents   int64
	HasBids       bool
}

// Origin returns the first stop, or "" for an auction without stops.
func (v AuctionView) Origin() string {
	if len(v.Stops) == 0 {
		return ""
	}
	return v.Stops[0]
}

// Destination returns the last stop, or "" for an auction without stops.
func (v AuctionView) Destination() string {
	if len(v.Stops) == 0 {
		return ""
	}
	return v.Stops[len(v.Stops)-1]
}

// FavoriteView is a carrier favorite resolved to the favorited
// auction's route facts.
type FavoriteView struct {
	BidNumber     string
	Stops         []string
	DistanceMiles int
}

// Origin returns the favorite's first stop.
func (f FavoriteView) Origin() string {
	if len(f.Stops) == 0 {
		return ""
	}
	return f.Stops[0]
}

// Destination returns the favorite's last stop.
func (f FavoriteView) Destination() string {
	if len(f.Stops) == 0 {
		return ""
	}
	return f.Stops[len(f.Stops)-1]
}

// Snapshot is the fixed view of the marketplace one evaluation cycle
// runs against.
type Snapshot struct {
	Now  time.Time
	Open []AuctionView
}

// BuildSnapshot captures the open auctions with their time-left and
// lowest-bid state at the given instant.
func BuildSnapshot(repo repository.AuctionDB, now time.Time) (*Snapshot, error) {
	open, err := repo.ListOpenAuctions(now)
	if err != nil {
		return nil, fmt.Errorf("snapshot: failed to list open auctions: %w", err)
	}

	snap := &Snapshot{Now: now, Open: make([]AuctionView, 0, len(open))}
	for _, a := range open {
		v := AuctionView{
			BidNumber:     a.BidNumber,
			Stops:         a.Stops,
			DistanceMiles: a.DistanceMiles,
			Tag:           a.Tag,
			ReceivedAt:    a.ReceivedAt,
			TimeLeft:      a.TimeLeft(now),
		}

		count, err := repo.BidCount(a.BidNumber)
		if err != nil {
			return nil, fmt.Errorf("snapshot: failed to count bids for auction %s: %w", a.BidNumber, err)
		}
		v.BidCount = count

		if count > 0 {
			lowest, err := repo.LowestBid(a.BidNumber)
			if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
				return nil, fmt.Errorf("snapshot: failed to get lowest bid for auction %s: %w", a.BidNumber, err)
			}
			if err == nil {
				v.LowestCents = lowest.AmountCents
				v.HasBids = true
			}
		}
		snap.Open = append(snap.Open, v)
	}
	return snap, nil
}

// equalStop compares two stop names ignoring case and surrounding
// whitespace. Empty names never match.
func equalStop(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// normalizeTag canonicalizes a state tag for comparison.
func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}
