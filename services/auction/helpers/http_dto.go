package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	BidNumber     string   `json:"bid_number" binding:"required"`
	Stops         []string `json:"stops" binding:"required,min=1"`
	DistanceMiles int      `json:"distance_miles" binding:"gte=0"`
	Tag           string   `json:"tag"`
	ReceivedAt    string   `json:"received_at"` // RFC3339, defaults to now
}

type PlaceBidRequest struct {
	BidNumber   string `json:"bid_number" binding:"required"`
	CarrierID   string `json:"carrier_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Notes       string `json:"notes"`
}

type AwardRequest struct {
	WinnerID  string `json:"winner_id" binding:"required"`
	AwardedBy string `json:"awarded_by" binding:"required"`
	Notes     string `json:"notes"`
}

type NoContestRequest struct {
	Notes string `json:"notes"`
}

type FavoriteRequest struct {
	BidNumber string `json:"bid_number" binding:"required"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	BidNumber   string `json:"bid_number"`
	CarrierID   string `json:"carrier_id"`
	AmountCents int64  `json:"amount_cents"`
	Notes       string `json:"notes,omitempty"`
	Late        bool   `json:"late"`
	CreatedAt   string `json:"created_at"`
}

type AwardResponse struct {
	AwardID     string `json:"award_id"`
	BidNumber   string `json:"bid_number"`
	WinnerID    string `json:"winner_id"`
	AmountCents int64  `json:"amount_cents"`
	AwardedBy   string `json:"awarded_by"`
	Notes       string `json:"notes,omitempty"`
	AwardedAt   string `json:"awarded_at"`
}
