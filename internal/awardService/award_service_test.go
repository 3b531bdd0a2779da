package award

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"freight-auction/internal/auctionerrors"
	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
)

type delivery struct {
	carrierID string
	kind      model.NotificationKind
	bidNumber string
}

type fakeNotifier struct {
	deliveries []delivery
}

func (f *fakeNotifier) Deliver(carrierID, triggerID string, kind model.NotificationKind, bidNumber, message string) (bool, error) {
	f.deliveries = append(f.deliveries, delivery{carrierID: carrierID, kind: kind, bidNumber: bidNumber})
	return true, nil
}

func auctionRow(bidNumber string, now time.Time) model.Auction {
	return model.Auction{
		BidNumber:     bidNumber,
		Stops:         []string{"Dallas, TX", "Atlanta, GA"},
		DistanceMiles: 780,
		ReceivedAt:    now.Add(-30 * time.Minute),
	}
}

// Awarding notifies the winner and every losing bidder exactly once.
func TestAwardService_Award(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	bids := []model.Bid{
		{BidID: "b1", BidNumber: "BN-1", CarrierID: "c1", AmountCents: 50000, CreatedAt: now.Add(-25 * time.Minute)},
		{BidID: "b2", BidNumber: "BN-1", CarrierID: "c2", AmountCents: 45000, CreatedAt: now.Add(-20 * time.Minute)},
		{BidID: "b3", BidNumber: "BN-1", CarrierID: "c2", AmountCents: 44000, CreatedAt: now.Add(-15 * time.Minute)},
		{BidID: "b4", BidNumber: "BN-1", CarrierID: "c3", AmountCents: 47000, CreatedAt: now.Add(-10 * time.Minute)},
	}

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction("BN-1").Return(auctionRow("BN-1", now), nil)
	mockRepo.EXPECT().CarrierBids("BN-1", "c2").Return([]model.Bid{bids[1], bids[2]}, nil)
	mockRepo.EXPECT().CreateAward(gomock.Any()).Return(nil)
	mockRepo.EXPECT().BidsForAuction("BN-1").Return(bids, nil)

	notifier := &fakeNotifier{}
	service := NewAwardService(mockRepo, notifier)

	aw, err := service.Award("BN-1", "c2", "ops", "good rate")
	require.NoError(t, err)
	require.Equal(t, "c2", aw.WinnerID)
	// Awarded at the winner's lowest bid.
	require.Equal(t, int64(44000), aw.AmountCents)

	require.Len(t, notifier.deliveries, 3)
	require.Equal(t, delivery{carrierID: "c2", kind: model.NotifyAuctionWon, bidNumber: "BN-1"}, notifier.deliveries[0])

	losers := map[string]bool{}
	for _, d := range notifier.deliveries[1:] {
		require.Equal(t, model.NotifyAuctionLost, d.kind)
		losers[d.carrierID] = true
	}
	require.Equal(t, map[string]bool{"c1": true, "c3": true}, losers)
}

func TestAwardService_Award_Errors(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name          string
		bidNumber     string
		winnerID      string
		awardedBy     string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:          "missing_fields",
			bidNumber:     "BN-1",
			winnerID:      "",
			awardedBy:     "ops",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidAward,
		},
		{
			name:      "auction_not_found",
			bidNumber: "missing",
			winnerID:  "c1",
			awardedBy: "ops",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetAuction("missing").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "winner_never_bid",
			bidNumber: "BN-1",
			winnerID:  "c9",
			awardedBy: "ops",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetAuction("BN-1").Return(auctionRow("BN-1", now), nil)
				mockRepo.EXPECT().CarrierBids("BN-1", "c9").Return(nil, nil)
			},
			expectedError: auctionerrors.ErrNoSuchBid,
		},
		{
			name:      "already_awarded",
			bidNumber: "BN-1",
			winnerID:  "c1",
			awardedBy: "ops",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetAuction("BN-1").Return(auctionRow("BN-1", now), nil)
				mockRepo.EXPECT().CarrierBids("BN-1", "c1").Return([]model.Bid{
					{BidID: "b1", BidNumber: "BN-1", CarrierID: "c1", AmountCents: 45000},
				}, nil)
				mockRepo.EXPECT().CreateAward(gomock.Any()).Return(auctionerrors.ErrAlreadyAwarded)
			},
			expectedError: auctionerrors.ErrAlreadyAwarded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tt.mockSetup(mockRepo)
			service := NewAwardService(mockRepo, &fakeNotifier{})

			_, err := service.Award(tt.bidNumber, tt.winnerID, tt.awardedBy, "")
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// No contest archives the auction and tells every bidder.
func TestAwardService_MarkNoContest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction("BN-1").Return(auctionRow("BN-1", now), nil)
	mockRepo.EXPECT().AwardForAuction("BN-1").Return(model.Award{}, false, nil)
	mockRepo.EXPECT().ArchiveAuction("BN-1").Return(nil)
	mockRepo.EXPECT().BidsForAuction("BN-1").Return([]model.Bid{
		{BidID: "b1", CarrierID: "c1", AmountCents: 50000},
		{BidID: "b2", CarrierID: "c2", AmountCents: 48000},
	}, nil)

	notifier := &fakeNotifier{}
	service := NewAwardService(mockRepo, notifier)

	require.NoError(t, service.MarkNoContest("BN-1", "rates too high"))
	require.Len(t, notifier.deliveries, 2)
	for _, d := range notifier.deliveries {
		require.Equal(t, model.NotifyNoContest, d.kind)
	}
}

func TestAwardService_MarkNoContest_AlreadyAwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction("BN-1").Return(auctionRow("BN-1", now), nil)
	mockRepo.EXPECT().AwardForAuction("BN-1").Return(model.Award{AwardID: "aw1"}, true, nil)

	service := NewAwardService(mockRepo, &fakeNotifier{})

	err := service.MarkNoContest("BN-1", "")
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyAwarded)
}
