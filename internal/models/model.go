package models

import "time"

// BiddingWindow is the fixed bidding window applied to every auction.
// Expiry is always derived from ReceivedAt + BiddingWindow, never stored.
const BiddingWindow = 25 * time.Minute

// AuctionStatus is the derived lifecycle state of an auction.
type AuctionStatus string

const (
	StatusOpen           AuctionStatus = "open"
	StatusAwarded        AuctionStatus = "awarded"
	StatusExpiredNoAward AuctionStatus = "expired_no_award"
	StatusClosedNoBids   AuctionStatus = "closed_no_bids"
)

// Auction represents a time-boxed freight load open for carrier bidding.
// Immutable after creation except for archival.
type Auction struct {
	BidNumber     string    `json:"bid_number"`
	Stops         []string  `json:"stops"`
	DistanceMiles int       `json:"distance_miles"`
	Tag           string    `json:"tag"`
	ReceivedAt    time.Time `json:"received_at"`
	Archived      bool      `json:"archived"`
}

// ExpiresAt returns the end of the bidding window.
func (a Auction) ExpiresAt() time.Time {
	return a.ReceivedAt.Add(BiddingWindow)
}

// IsExpired reports whether the bidding window has closed at the given
// instant. Monotonic: once true for an auction it never reverts.
func (a Auction) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt())
}

// TimeLeft returns the remaining bidding time, clamped at zero.
func (a Auction) TimeLeft(now time.Time) time.Duration {
	left := a.ExpiresAt().Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Status derives the lifecycle state from time and the award/bid facts.
func (a Auction) Status(now time.Time, hasAward bool, bidCount int) AuctionStatus {
	if hasAward {
		return StatusAwarded
	}
	if !a.IsExpired(now) {
		return StatusOpen
	}
	if bidCount == 0 {
		return StatusClosedNoBids
	}
	return StatusExpiredNoAward
}

// Bid is a carrier's monetary offer against an auction. Append-only;
// Late marks a bid accepted after the window closed.
type Bid struct {
	BidID       string    `json:"bid_id"`
	BidNumber   string    `json:"bid_number"`
	CarrierID   string    `json:"carrier_id"`
	AmountCents int64     `json:"amount_cents"`
	Notes       string    `json:"notes,omitempty"`
	Late        bool      `json:"late"`
	CreatedAt   time.Time `json:"created_at"`
}

// Award is the one-time, exclusive assignment of an auction's winner.
type Award struct {
	AwardID     string    `json:"award_id"`
	BidNumber   string    `json:"bid_number"`
	WinnerID    string    `json:"winner_id"`
	AmountCents int64     `json:"amount_cents"`
	AwardedBy   string    `json:"awarded_by"`
	Notes       string    `json:"notes,omitempty"`
	AwardedAt   time.Time `json:"awarded_at"`
}

// Favorite is a carrier-saved reference auction used to derive
// similarity and range criteria for several trigger kinds.
type Favorite struct {
	FavoriteID string    `json:"favorite_id"`
	CarrierID  string    `json:"carrier_id"`
	BidNumber  string    `json:"bid_number"`
	CreatedAt  time.Time `json:"created_at"`
}

// TriggerKind enumerates the recognized notification trigger kinds.
type TriggerKind string

const (
	TriggerSimilarLoad         TriggerKind = "similar_load"
	TriggerExactMatch          TriggerKind = "exact_match"
	TriggerNewRoute            TriggerKind = "new_route"
	TriggerFavoriteAvailable   TriggerKind = "favorite_available"
	TriggerDeadlineApproaching TriggerKind = "deadline_approaching"
	TriggerPriceDrop           TriggerKind = "price_drop"
)

// TriggerKinds lists all recognized kinds in evaluation order.
var TriggerKinds = []TriggerKind{
	TriggerSimilarLoad,
	TriggerExactMatch,
	TriggerNewRoute,
	TriggerFavoriteAvailable,
	TriggerDeadlineApproaching,
	TriggerPriceDrop,
}

// Valid reports whether k is a recognized trigger kind.
func (k TriggerKind) Valid() bool {
	switch k {
	case TriggerSimilarLoad, TriggerExactMatch, TriggerNewRoute,
		TriggerFavoriteAvailable, TriggerDeadlineApproaching, TriggerPriceDrop:
		return true
	}
	return false
}

// TriggerConfig is the wire payload of a trigger. It is a flat object
// keyed by recognized option names; only the fields relevant to the
// trigger's kind are consulted and unrecognized JSON fields are dropped
// by the decoder. Pointer fields distinguish "absent" from zero so that
// partial updates can merge.
type TriggerConfig struct {
	// similar_load
	DistanceThreshold *int `json:"distanceThreshold,omitempty"`
	// exact_match / favorite_available: current range shape...
	MinDistance *int `json:"minDistance,omitempty"`
	MaxDistance *int `json:"maxDistance,omitempty"`
	// ...or the legacy list-of-favorites shape.
	FavoriteBidNumbers []string `json:"favoriteBidNumbers,omitempty"`
	// new_route
	StateTags []string `json:"stateTags,omitempty"`
	// deadline_approaching, in hours
	TimeThresholdHours *int `json:"timeThreshold,omitempty"`
	// price_drop, in minor currency units
	PriceThresholdCents *int64 `json:"priceThreshold,omitempty"`
}

// Merge overlays the populated fields of patch onto c, leaving absent
// fields untouched. Column-wise COALESCE semantics.
func (c TriggerConfig) Merge(patch TriggerConfig) TriggerConfig {
	if patch.DistanceThreshold != nil {
		c.DistanceThreshold = patch.DistanceThreshold
	}
	if patch.MinDistance != nil {
		c.MinDistance = patch.MinDistance
	}
	if patch.MaxDistance != nil {
		c.MaxDistance = patch.MaxDistance
	}
	if patch.FavoriteBidNumbers != nil {
		c.FavoriteBidNumbers = patch.FavoriteBidNumbers
	}
	if patch.StateTags != nil {
		c.StateTags = patch.StateTags
	}
	if patch.TimeThresholdHours != nil {
		c.TimeThresholdHours = patch.TimeThresholdHours
	}
	if patch.PriceThresholdCents != nil {
		c.PriceThresholdCents = patch.PriceThresholdCents
	}
	return c
}

// Trigger is a carrier-configured rule describing what kind of auction
// match should generate a notification.
type Trigger struct {
	TriggerID string        `json:"trigger_id"`
	CarrierID string        `json:"carrier_id"`
	Kind      TriggerKind   `json:"kind"`
	Config    TriggerConfig `json:"config"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NotificationKind covers the trigger kinds plus the award-path kinds.
type NotificationKind string

const (
	NotifySimilarLoad         = NotificationKind(TriggerSimilarLoad)
	NotifyExactMatch          = NotificationKind(TriggerExactMatch)
	NotifyNewRoute            = NotificationKind(TriggerNewRoute)
	NotifyFavoriteAvailable   = NotificationKind(TriggerFavoriteAvailable)
	NotifyDeadlineApproaching = NotificationKind(TriggerDeadlineApproaching)
	NotifyPriceDrop           = NotificationKind(TriggerPriceDrop)
	NotifyAuctionWon          NotificationKind = "auction_won"
	NotifyAuctionLost         NotificationKind = "auction_lost"
	NotifyNoContest           NotificationKind = "no_contest"
	NotifyNewLowestBid        NotificationKind = "new_lowest_bid"
)

// Title returns the user-facing headline for a notification kind.
func (k NotificationKind) Title() string {
	switch k {
	case NotifySimilarLoad:
		return "Similar Load Found"
	case NotifyExactMatch:
		return "Exact Match Available"
	case NotifyNewRoute:
		return "New Route Posted"
	case NotifyFavoriteAvailable:
		return "Favorite Load Available"
	case NotifyDeadlineApproaching:
		return "Deadline Approaching"
	case NotifyPriceDrop:
		return "Price Drop"
	case NotifyAuctionWon:
		return "Auction Won!"
	case NotifyAuctionLost:
		return "Auction Awarded"
	case NotifyNoContest:
		return "Auction Closed"
	case NotifyNewLowestBid:
		return "New Lowest Bid"
	}
	return "Auction Notification"
}

// Notification is created by the dispatcher only. It is both the
// user-visible notification and the dedup ledger entry for its
// (carrier, auction, kind) triple.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	CarrierID      string           `json:"carrier_id"`
	TriggerID      string           `json:"trigger_id,omitempty"`
	Kind           NotificationKind `json:"kind"`
	BidNumber      string           `json:"bid_number"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	DeliveryStatus string           `json:"delivery_status"`
	Read           bool             `json:"read"`
	SentAt         time.Time        `json:"sent_at"`
}
