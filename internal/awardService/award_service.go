package award

import (
	"fmt"
	"time"

	"freight-auction/internal/auctionerrors"
	"freight-auction/internal/metrics"
	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
	"freight-auction/utils"
)

// Notifier delivers deduplicated notifications. Satisfied by
// notifier.Dispatcher.
type Notifier interface {
	Deliver(carrierID, triggerID string, kind model.NotificationKind, bidNumber, message string) (bool, error)
}

// AwardService defines the business logic for closing auctions: picking
// a winner or declaring no contest.
type AwardService struct {
	repo     repository.AuctionDB
	notifier Notifier
}

// NewAwardService creates a new AwardService instance
func NewAwardService(repo repository.AuctionDB, notifier Notifier) *AwardService {
	return &AwardService{
		repo:     repo,
		notifier: notifier,
	}
}

// Award assigns an auction to a winning carrier. The winner must have
// at least one bid on the auction and the awarded amount is that
// carrier's lowest bid. Exactly one award can ever succeed per auction;
// any retry, including one naming the same winner, gets
// ErrAlreadyAwarded.
func (s *AwardService) Award(bidNumber, winnerID, awardedBy, notes string) (model.Award, error) {
	if bidNumber == "" || winnerID == "" || awardedBy == "" {
		return model.Award{}, fmt.Errorf("service: %w - missing bid number, winner or awarder", auctionerrors.ErrInvalidAward)
	}

	if _, err := s.repo.GetAuction(bidNumber); err != nil {
		return model.Award{}, fmt.Errorf("service: failed to get auction %s: %w", bidNumber, err)
	}

	winnerBids, err := s.repo.CarrierBids(bidNumber, winnerID)
	if err != nil {
		return model.Award{}, fmt.Errorf("service: failed to get bids by carrier %s on auction %s: %w", winnerID, bidNumber, err)
	}
	if len(winnerBids) == 0 {
		return model.Award{}, fmt.Errorf("service: %w - carrier %s has no bid on auction %s", auctionerrors.ErrNoSuchBid, winnerID, bidNumber)
	}

	amount := winnerBids[0].AmountCents
	for _, b := range winnerBids[1:] {
		if b.AmountCents < amount {
			amount = b.AmountCents
		}
	}

	aw := model.Award{
		AwardID:     utils.GenerateID(),
		BidNumber:   bidNumber,
		WinnerID:    winnerID,
		AmountCents: amount,
		AwardedBy:   awardedBy,
		Notes:       notes,
		AwardedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateAward(aw); err != nil {
		return model.Award{}, fmt.Errorf("service: failed to award auction %s to carrier %s: %w", bidNumber, winnerID, err)
	}
	metrics.AuctionsAwarded.Inc()
	utils.Info("Auction awarded", map[string]any{
		"bidNumber": bidNumber,
		"winnerID":  winnerID,
		"amount":    amount,
	})

	s.notifyOutcome(aw)
	return aw, nil
}

// notifyOutcome tells the winner and every losing bidder how the
// auction closed. Best effort; the award already stands.
func (s *AwardService) notifyOutcome(aw model.Award) {
	wonMsg := fmt.Sprintf("You won load %s at %s. Check your email for rate confirmation.",
		aw.BidNumber, utils.FormatMoney(aw.AmountCents))
	s.deliver(aw.WinnerID, model.NotifyAuctionWon, aw.BidNumber, wonMsg)

	lostMsg := fmt.Sprintf("Load %s has been awarded to another carrier.", aw.BidNumber)
	for _, carrierID := range s.bidderIDs(aw.BidNumber) {
		if carrierID == aw.WinnerID {
			continue
		}
		s.deliver(carrierID, model.NotifyAuctionLost, aw.BidNumber, lostMsg)
	}
}

// MarkNoContest closes an auction without a winner and archives it.
// Every carrier that bid is told the auction will not be awarded.
// Fails with ErrAlreadyAwarded if a winner was already picked.
func (s *AwardService) MarkNoContest(bidNumber, notes string) error {
	if bidNumber == "" {
		return fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAward)
	}

	if _, err := s.repo.GetAuction(bidNumber); err != nil {
		return fmt.Errorf("service: failed to get auction %s: %w", bidNumber, err)
	}
	if _, awarded, err := s.repo.AwardForAuction(bidNumber); err != nil {
		return fmt.Errorf("service: failed to check award for auction %s: %w", bidNumber, err)
	} else if awarded {
		return fmt.Errorf("service: %w - auction %s cannot be marked no contest", auctionerrors.ErrAlreadyAwarded, bidNumber)
	}

	if err := s.repo.ArchiveAuction(bidNumber); err != nil {
		return fmt.Errorf("service: failed to archive auction %s: %w", bidNumber, err)
	}
	utils.Info("Auction marked no contest", map[string]any{
		"bidNumber": bidNumber,
		"notes":     notes,
	})

	msg := fmt.Sprintf("Load %s was closed without an award.", bidNumber)
	for _, carrierID := range s.bidderIDs(bidNumber) {
		s.deliver(carrierID, model.NotifyNoContest, bidNumber, msg)
	}
	return nil
}

// GetAwardForAuction returns the award for an auction, if one exists.
func (s *AwardService) GetAwardForAuction(bidNumber string) (model.Award, bool, error) {
	if bidNumber == "" {
		return model.Award{}, false, fmt.Errorf("service: %w - empty bid number", auctionerrors.ErrInvalidAward)
	}

	aw, found, err := s.repo.AwardForAuction(bidNumber)
	if err != nil {
		return model.Award{}, false, fmt.Errorf("service: failed to get award for auction %s: %w", bidNumber, err)
	}
	return aw, found, nil
}

// GetAwardsForCarrier returns all auctions a carrier has won.
func (s *AwardService) GetAwardsForCarrier(carrierID string) ([]model.Award, error) {
	if carrierID == "" {
		return nil, fmt.Errorf("service: %w - empty carrier ID", auctionerrors.ErrInvalidAward)
	}

	awards, err := s.repo.ListAwardsForCarrier(carrierID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get awards for carrier %s: %w", carrierID, err)
	}
	return awards, nil
}

// bidderIDs returns the distinct carriers that bid on an auction, in
// first-bid order.
func (s *AwardService) bidderIDs(bidNumber string) []string {
	bids, err := s.repo.BidsForAuction(bidNumber)
	if err != nil {
		utils.Warn("Failed to list bidders for outcome notifications", map[string]any{
			"bidNumber": bidNumber,
			"error":     err.Error(),
		})
		return nil
	}

	seen := make(map[string]bool, len(bids))
	var ids []string
	for _, b := range bids {
		if !seen[b.CarrierID] {
			seen[b.CarrierID] = true
			ids = append(ids, b.CarrierID)
		}
	}
	return ids
}

func (s *AwardService) deliver(carrierID string, kind model.NotificationKind, bidNumber, message string) {
	if _, err := s.notifier.Deliver(carrierID, "", kind, bidNumber, message); err != nil {
		utils.Warn("Failed to send outcome notification", map[string]any{
			"carrierID": carrierID,
			"kind":      string(kind),
			"bidNumber": bidNumber,
			"error":     err.Error(),
		})
	}
}
