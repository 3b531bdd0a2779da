package auction

import (
	"errors"
	"fmt"
	"time"

	"freight-auction/internal/auctionerrors"
	"freight-auction/internal/metrics"
	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
	"freight-auction/utils"
)

// OperationsRecipient is the ledger identity new-lowest-bid alerts are
// addressed to. Operators read them from the same notification feed as
// carriers.
const OperationsRecipient = "operations"

// Notifier delivers deduplicated notifications. Satisfied by
// notifier.Dispatcher.
type Notifier interface {
	Deliver(carrierID, triggerID string, kind model.NotificationKind, bidNumber, message string) (bool, error)
}

// AuctionView is the read shape for an auction: the stored row plus
// the fields derived from the clock and the bid table.
type AuctionView struct {
	BidNumber         string              `json:"bid_number"`
	Stops             []string            `json:"stops"`
	DistanceMiles     int                 `json:"distance_miles"`
	Tag               string              `json:"tag"`
	ReceivedAt        time.Time           `json:"received_at"`
	ExpiresAt         time.Time           `json:"expires_at"`
	IsExpired         bool                `json:"is_expired"`
	TimeLeftSeconds   int64               `json:"time_left_seconds"`
	Archived          bool                `json:"archived"`
	Status            model.AuctionStatus `json:"status"`
	BidCount          int                 `json:"bid_count"`
	LowestAmountCents *int64              `json:"lowest_amount_cents,omitempty"`
	MyBidCents        *int64              `json:"my_bid_cents,omitempty"`
}

// AuctionService defines the business logic for auction listing and
// carrier bidding.
type AuctionService struct {
	repo     repository.AuctionDB
	notifier Notifier
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, notifier Notifier) *AuctionService {
	return &AuctionService{
		repo:     repo,
		notifier: notifier,
	}
}

// CreateAuction registers a load for bidding. The bidding window opens
// at receivedAt and its length is fixed; a zero receivedAt means now.
func (s *AuctionService) CreateAuction(bidNumber string, stops []string, distanceMiles int, tag string, receivedAt time.Time) (model.Auction, error) {
	if bidNumber == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing bid number", auctionerrors.ErrInvalidAuction)
	}
	if distanceMiles < 0 {
		return model.Auction{}, fmt.Errorf("service: %w - negative distance", auctionerrors.ErrInvalidAuction)
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	a := model.Auction{
		BidNumber:     bidNumber,
		Stops:         stops,
		DistanceMiles: distanceMiles,
		Tag:           tag,
		ReceivedAt:    receivedAt,
	}
	if err := s.repo.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction %s: %w", bidNumber, err)
	}
	return a, nil
}

// ListAuctions returns auctions with their derived time and bid fields.
// carrierID is optional; when set, each view carries that carrier's own
// lowest bid.
func (s *AuctionService) ListAuctions(includeArchived bool, carrierID string) ([]AuctionView, error) {
	auctions, err := s.repo.ListAuctions(includeArchived)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	now := time.Now().UTC()
	views := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		v, err := s.buildView(a, carrierID, now)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// GetAuction returns a single auction view.
func (s *AuctionService) GetAuction(bidNumber, carrierID string) (AuctionView, error) {
	if bidNumber == "" {
		return AuctionView{}, fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAuction)
	}

	a, err := s.repo.GetAuction(bidNumber)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", bidNumber, err)
	}
	return s.buildView(a, carrierID, time.Now().UTC())
}

// ArchiveAuction removes an auction from the active listing.
func (s *AuctionService) ArchiveAuction(bidNumber string) error {
	if bidNumber == "" {
		return fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAuction)
	}
	if err := s.repo.ArchiveAuction(bidNumber); err != nil {
		return fmt.Errorf("service: failed to archive auction %s: %w", bidNumber, err)
	}
	return nil
}

// PlaceBid validates and records a carrier's bid on an auction. Bids
// that arrive after the window closed are accepted but flagged late so
// the award step can see they missed the deadline.
func (s *AuctionService) PlaceBid(bidNumber, carrierID string, amountCents int64, notes string) (model.Bid, error) {
	if bidNumber == "" || carrierID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing bid number or carrier ID", auctionerrors.ErrInvalidBid)
	}
	if amountCents <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - got %d", auctionerrors.ErrInvalidAmount, amountCents)
	}

	a, err := s.repo.GetAuction(bidNumber)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get auction %s: %w", bidNumber, err)
	}
	if a.Archived {
		return model.Bid{}, fmt.Errorf("service: %w - auction %s", auctionerrors.ErrAuctionArchived, bidNumber)
	}

	now := time.Now().UTC()
	previousLowest, err := s.repo.LowestBid(bidNumber)
	hadBids := err == nil
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("service: failed to check lowest bid for auction %s: %w", bidNumber, err)
	}

	bid := model.Bid{
		BidID:       utils.GenerateID(),
		BidNumber:   bidNumber,
		CarrierID:   carrierID,
		AmountCents: amountCents,
		Notes:       notes,
		Late:        a.IsExpired(now),
		CreatedAt:   now,
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by carrier %s: %w", bidNumber, carrierID, err)
	}
	metrics.BidsPlaced.Inc()

	if hadBids && amountCents < previousLowest.AmountCents {
		s.notifyNewLowest(bid, previousLowest.AmountCents)
	}

	return bid, nil
}

// notifyNewLowest tells operations that the auction's floor moved.
// Best effort; a notification failure never fails the bid.
func (s *AuctionService) notifyNewLowest(bid model.Bid, previousCents int64) {
	msg := fmt.Sprintf("New lowest bid on load %s: %s (was %s) from carrier %s.",
		bid.BidNumber, utils.FormatMoney(bid.AmountCents), utils.FormatMoney(previousCents), bid.CarrierID)
	if _, err := s.notifier.Deliver(OperationsRecipient, "", model.NotifyNewLowestBid, bid.BidNumber, msg); err != nil {
		utils.Warn("Failed to record new lowest bid notification", map[string]any{
			"bidNumber": bid.BidNumber,
			"error":     err.Error(),
		})
	}
}

// GetBidsForAuction returns all bids for an auction in placement order.
func (s *AuctionService) GetBidsForAuction(bidNumber string) ([]model.Bid, error) {
	if bidNumber == "" {
		return nil, fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAuction)
	}

	bids, err := s.repo.BidsForAuction(bidNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", bidNumber, err)
	}
	return bids, nil
}

// GetLowestBid returns the current lowest bid for an auction.
func (s *AuctionService) GetLowestBid(bidNumber string) (model.Bid, error) {
	if bidNumber == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAuction)
	}

	lowest, err := s.repo.LowestBid(bidNumber)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get lowest bid for auction %s: %w", bidNumber, err)
	}
	return lowest, nil
}

// AddFavorite saves an auction to a carrier's favorites.
func (s *AuctionService) AddFavorite(carrierID, bidNumber string) (model.Favorite, error) {
	if carrierID == "" || bidNumber == "" {
		return model.Favorite{}, fmt.Errorf("service: %w - missing carrier ID or bid number", auctionerrors.ErrInvalidAuction)
	}

	f := model.Favorite{
		FavoriteID: utils.GenerateID(),
		CarrierID:  carrierID,
		BidNumber:  bidNumber,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.AddFavorite(f); err != nil {
		return model.Favorite{}, fmt.Errorf("service: failed to favorite auction %s for carrier %s: %w", bidNumber, carrierID, err)
	}
	return f, nil
}

// RemoveFavorite deletes a carrier's favorite.
func (s *AuctionService) RemoveFavorite(carrierID, bidNumber string) error {
	if carrierID == "" || bidNumber == "" {
		return fmt.Errorf("service: %w - missing carrier ID or bid number", auctionerrors.ErrInvalidAuction)
	}
	if err := s.repo.RemoveFavorite(carrierID, bidNumber); err != nil {
		return fmt.Errorf("service: failed to remove favorite %s for carrier %s: %w", bidNumber, carrierID, err)
	}
	return nil
}

// GetFavorites returns a carrier's saved auctions.
func (s *AuctionService) GetFavorites(carrierID string) ([]model.Favorite, error) {
	if carrierID == "" {
		return nil, fmt.Errorf("service: %w - empty carrier ID", auctionerrors.ErrInvalidAuction)
	}

	favs, err := s.repo.FavoritesForCarrier(carrierID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get favorites for carrier %s: %w", carrierID, err)
	}
	return favs, nil
}

func (s *AuctionService) buildView(a model.Auction, carrierID string, now time.Time) (AuctionView, error) {
	count, err := s.repo.BidCount(a.BidNumber)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to count bids for auction %s: %w", a.BidNumber, err)
	}
	_, hasAward, err := s.repo.AwardForAuction(a.BidNumber)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to check award for auction %s: %w", a.BidNumber, err)
	}

	v := AuctionView{
		BidNumber:       a.BidNumber,
		Stops:           a.Stops,
		DistanceMiles:   a.DistanceMiles,
		Tag:             a.Tag,
		ReceivedAt:      a.ReceivedAt,
		ExpiresAt:       a.ExpiresAt(),
		IsExpired:       a.IsExpired(now),
		TimeLeftSeconds: int64(a.TimeLeft(now) / time.Second),
		Archived:        a.Archived,
		Status:          a.Status(now, hasAward, count),
		BidCount:        count,
	}

	if count > 0 {
		lowest, err := s.repo.LowestBid(a.BidNumber)
		if err != nil {
			return AuctionView{}, fmt.Errorf("service: failed to get lowest bid for auction %s: %w", a.BidNumber, err)
		}
		amount := lowest.AmountCents
		v.LowestAmountCents = &amount
	}

	if carrierID != "" {
		own, err := s.repo.CarrierBids(a.BidNumber, carrierID)
		if err != nil {
			return AuctionView{}, fmt.Errorf("service: failed to get carrier bids for auction %s: %w", a.BidNumber, err)
		}
		for _, b := range own {
			if v.MyBidCents == nil || b.AmountCents < *v.MyBidCents {
				amount := b.AmountCents
				v.MyBidCents = &amount
			}
		}
	}
	return v, nil
}
