package auctionerrors

import "errors"

// Not-found errors
var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrTriggerNotFound      = errors.New("trigger not found")
	ErrFavoriteNotFound     = errors.New("favorite not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoBids               = errors.New("no bids found for auction")
)

// Validation errors
var (
	ErrInvalidBid           = errors.New("invalid bid")
	ErrInvalidAward         = errors.New("invalid award request")
	ErrInvalidAuction       = errors.New("invalid auction")
	ErrInvalidAmount        = errors.New("bid amount must be a positive integer")
	ErrInvalidTriggerKind   = errors.New("unrecognized trigger kind")
	ErrInvalidTriggerConfig = errors.New("invalid trigger configuration")
	ErrAuctionArchived      = errors.New("auction is archived")
)

// Conflict errors
var (
	ErrAlreadyAwarded   = errors.New("auction already awarded")
	ErrNoSuchBid        = errors.New("winner must have an existing bid on the auction")
	ErrDuplicateTrigger = errors.New("an active trigger with the same configuration already exists")
	ErrDuplicateAuction = errors.New("auction with this bid number already exists")
)
