package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"freight-auction/internal/auctionerrors"
	model "freight-auction/internal/models"
)

// AuctionDB defines storage for auctions, bids, awards and favorites.
type AuctionDB interface {
	CreateAuction(a model.Auction) error
	GetAuction(bidNumber string) (model.Auction, error)
	ListAuctions(includeArchived bool) ([]model.Auction, error)
	ListOpenAuctions(now time.Time) ([]model.Auction, error)
	ArchiveAuction(bidNumber string) error

	RecordBid(bid model.Bid) error
	BidsForAuction(bidNumber string) ([]model.Bid, error)
	LowestBid(bidNumber string) (model.Bid, error)
	BidCount(bidNumber string) (int, error)
	CarrierBids(bidNumber, carrierID string) ([]model.Bid, error)

	CreateAward(aw model.Award) error
	AwardForAuction(bidNumber string) (model.Award, bool, error)
	ListAwardsForCarrier(carrierID string) ([]model.Award, error)

	AddFavorite(f model.Favorite) error
	RemoveFavorite(carrierID, bidNumber string) error
	FavoritesForCarrier(carrierID string) ([]model.Favorite, error)
}

// AlertDB defines storage for notification triggers and the
// notification ledger.
type AlertDB interface {
	CreateTrigger(t model.Trigger) error
	GetTrigger(carrierID, triggerID string) (model.Trigger, error)
	UpdateTrigger(t model.Trigger) error
	DeleteTrigger(carrierID, triggerID string) error
	ListTriggersForCarrier(carrierID string) ([]model.Trigger, error)
	ListActiveTriggers() ([]model.Trigger, error)

	RecordNotificationOnce(n model.Notification, cooldown time.Duration) (bool, error)
	ListNotificationsForCarrier(carrierID string) ([]model.Notification, error)
	MarkNotificationRead(carrierID, notificationID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of
// AuctionDB and AlertDB.
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      map[string]model.Auction      // key: bid number
	bids          map[string][]model.Bid        // key: bid number
	awards        map[string]model.Award        // key: bid number, at most one entry per auction
	favorites     map[string][]model.Favorite   // key: carrier ID
	triggers      map[string]model.Trigger      // key: trigger ID
	notifications []model.Notification          // ledger, in send order
	lastSent      map[dedupKey]time.Time        // dedup index over the ledger
}

type dedupKey struct {
	carrierID string
	bidNumber string
	kind      model.NotificationKind
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:  make(map[string]model.Auction),
		bids:      make(map[string][]model.Bid),
		awards:    make(map[string]model.Award),
		favorites: make(map[string][]model.Favorite),
		triggers:  make(map[string]model.Trigger),
		lastSent:  make(map[dedupKey]time.Time),
	}
}

// CreateAuction stores a new auction row keyed by its bid number.
func (r *MemoryRepo) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.BidNumber]; ok {
		return fmt.Errorf("create auction %s: %w", a.BidNumber, auctionerrors.ErrDuplicateAuction)
	}
	r.auctions[a.BidNumber] = a
	return nil
}

// GetAuction returns the auction with the given bid number.
func (r *MemoryRepo) GetAuction(bidNumber string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[bidNumber]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", bidNumber, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListAuctions returns all auctions, newest first.
func (r *MemoryRepo) ListAuctions(includeArchived bool) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if a.Archived && !includeArchived {
			continue
		}
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].ReceivedAt.After(auctions[j].ReceivedAt)
	})
	return auctions, nil
}

// ListOpenAuctions returns non-archived auctions whose bidding window
// is still open at the given instant, newest first.
func (r *MemoryRepo) ListOpenAuctions(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var open []model.Auction
	for _, a := range r.auctions {
		if a.Archived || a.IsExpired(now) {
			continue
		}
		open = append(open, a)
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].ReceivedAt.After(open[j].ReceivedAt)
	})
	return open, nil
}

// ArchiveAuction flips the archival flag, the only mutation an auction
// allows after creation.
func (r *MemoryRepo) ArchiveAuction(bidNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[bidNumber]
	if !ok {
		return fmt.Errorf("archive auction %s: %w", bidNumber, auctionerrors.ErrAuctionNotFound)
	}
	a.Archived = true
	r.auctions[bidNumber] = a
	return nil
}

// RecordBid appends a carrier's bid to an auction. Bids are append-only.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.BidNumber]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.BidNumber, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[bid.BidNumber] = append(r.bids[bid.BidNumber], bid)
	return nil
}

// BidsForAuction returns all bids for an auction in placement order.
func (r *MemoryRepo) BidsForAuction(bidNumber string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[bidNumber]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", bidNumber, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), r.bids[bidNumber]...), nil
}

// LowestBid returns the bid with the minimum amount for an auction.
// Ties go to the earlier bid.
func (r *MemoryRepo) LowestBid(bidNumber string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[bidNumber]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get lowest bid for auction %s: %w", bidNumber, auctionerrors.ErrNoBids)
	}

	lowest := bids[0]
	for _, b := range bids[1:] {
		if b.AmountCents < lowest.AmountCents ||
			(b.AmountCents == lowest.AmountCents && b.CreatedAt.Before(lowest.CreatedAt)) {
			lowest = b
		}
	}
	return lowest, nil
}

// BidCount returns the number of bids placed on an auction.
func (r *MemoryRepo) BidCount(bidNumber string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bids[bidNumber]), nil
}

// CarrierBids returns the bids a single carrier has placed on an auction.
func (r *MemoryRepo) CarrierBids(bidNumber, carrierID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, b := range r.bids[bidNumber] {
		if b.CarrierID == carrierID {
			out = append(out, b)
		}
	}
	return out, nil
}

// CreateAward inserts the award for an auction if and only if none
// exists yet. The check and insert happen under one lock so concurrent
// award attempts serialize: exactly one succeeds, the rest get
// ErrAlreadyAwarded.
func (r *MemoryRepo) CreateAward(aw model.Award) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[aw.BidNumber]; !ok {
		return fmt.Errorf("award auction %s: %w", aw.BidNumber, auctionerrors.ErrAuctionNotFound)
	}
	if _, ok := r.awards[aw.BidNumber]; ok {
		return fmt.Errorf("award auction %s: %w", aw.BidNumber, auctionerrors.ErrAlreadyAwarded)
	}
	r.awards[aw.BidNumber] = aw
	return nil
}

// AwardForAuction returns the award for an auction, if one exists.
func (r *MemoryRepo) AwardForAuction(bidNumber string) (model.Award, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aw, ok := r.awards[bidNumber]
	return aw, ok, nil
}

// ListAwardsForCarrier returns all awards won by a carrier, newest first.
func (r *MemoryRepo) ListAwardsForCarrier(carrierID string) ([]model.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var awards []model.Award
	for _, aw := range r.awards {
		if aw.WinnerID == carrierID {
			awards = append(awards, aw)
		}
	}
	sort.Slice(awards, func(i, j int) bool {
		return awards[i].AwardedAt.After(awards[j].AwardedAt)
	})
	return awards, nil
}

// AddFavorite saves a carrier's favorite. Re-favoriting the same
// auction is a no-op.
func (r *MemoryRepo) AddFavorite(f model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[f.BidNumber]; !ok {
		return fmt.Errorf("favorite auction %s: %w", f.BidNumber, auctionerrors.ErrAuctionNotFound)
	}
	for _, existing := range r.favorites[f.CarrierID] {
		if existing.BidNumber == f.BidNumber {
			return nil
		}
	}
	r.favorites[f.CarrierID] = append(r.favorites[f.CarrierID], f)
	return nil
}

// RemoveFavorite deletes a carrier's favorite by auction identity.
func (r *MemoryRepo) RemoveFavorite(carrierID, bidNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	favs := r.favorites[carrierID]
	for i, f := range favs {
		if f.BidNumber == bidNumber {
			r.favorites[carrierID] = append(favs[:i:i], favs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove favorite %s for carrier %s: %w", bidNumber, carrierID, auctionerrors.ErrFavoriteNotFound)
}

// FavoritesForCarrier returns a carrier's favorites in save order.
func (r *MemoryRepo) FavoritesForCarrier(carrierID string) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Favorite(nil), r.favorites[carrierID]...), nil
}

// CreateTrigger stores a new notification trigger.
func (r *MemoryRepo) CreateTrigger(t model.Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.triggers[t.TriggerID] = t
	return nil
}

// GetTrigger returns a carrier's trigger by ID.
func (r *MemoryRepo) GetTrigger(carrierID, triggerID string) (model.Trigger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.triggers[triggerID]
	if !ok || t.CarrierID != carrierID {
		return model.Trigger{}, fmt.Errorf("get trigger %s: %w", triggerID, auctionerrors.ErrTriggerNotFound)
	}
	return t, nil
}

// UpdateTrigger replaces a stored trigger. The trigger must exist and
// belong to the same carrier.
func (r *MemoryRepo) UpdateTrigger(t model.Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.triggers[t.TriggerID]
	if !ok || existing.CarrierID != t.CarrierID {
		return fmt.Errorf("update trigger %s: %w", t.TriggerID, auctionerrors.ErrTriggerNotFound)
	}
	r.triggers[t.TriggerID] = t
	return nil
}

// DeleteTrigger removes a carrier's trigger.
func (r *MemoryRepo) DeleteTrigger(carrierID, triggerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.triggers[triggerID]
	if !ok || t.CarrierID != carrierID {
		return fmt.Errorf("delete trigger %s: %w", triggerID, auctionerrors.ErrTriggerNotFound)
	}
	delete(r.triggers, triggerID)
	return nil
}

// ListTriggersForCarrier returns all of a carrier's triggers, newest first.
func (r *MemoryRepo) ListTriggersForCarrier(carrierID string) ([]model.Trigger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Trigger
	for _, t := range r.triggers {
		if t.CarrierID == carrierID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListActiveTriggers returns every active trigger across carriers,
// ordered by carrier then kind for stable cycle processing.
func (r *MemoryRepo) ListActiveTriggers() ([]model.Trigger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Trigger
	for _, t := range r.triggers {
		if t.Active {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CarrierID != out[j].CarrierID {
			return out[i].CarrierID < out[j].CarrierID
		}
		return out[i].Kind < out[j].Kind
	})
	return out, nil
}

// RecordNotificationOnce appends a notification to the ledger unless
// one with the same (carrier, auction, kind) was sent within the
// cooldown window. The read and the write happen under one lock, so
// two concurrent cycle runs cannot double-send. Returns true when the
// notification was recorded, false when it was suppressed.
func (r *MemoryRepo) RecordNotificationOnce(n model.Notification, cooldown time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dedupKey{carrierID: n.CarrierID, bidNumber: n.BidNumber, kind: n.Kind}
	if cooldown > 0 {
		if last, ok := r.lastSent[key]; ok && n.SentAt.Sub(last) < cooldown {
			return false, nil
		}
	}
	r.notifications = append(r.notifications, n)
	r.lastSent[key] = n.SentAt
	return true, nil
}

// ListNotificationsForCarrier returns a carrier's notifications, newest first.
func (r *MemoryRepo) ListNotificationsForCarrier(carrierID string) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Notification
	for _, n := range r.notifications {
		if n.CarrierID == carrierID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SentAt.After(out[j].SentAt)
	})
	return out, nil
}

// MarkNotificationRead flags a carrier's notification as read, the only
// user-driven mutation a notification allows.
func (r *MemoryRepo) MarkNotificationRead(carrierID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.NotificationID == notificationID && n.CarrierID == carrierID {
			r.notifications[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("mark notification %s read: %w", notificationID, auctionerrors.ErrNotificationNotFound)
}
