package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"freight-auction/internal/auctionerrors"
	auction "freight-auction/internal/auctionService"
	model "freight-auction/internal/models"
	"freight-auction/services/auction/helpers"
	"freight-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(bidNumber string, stops []string, distanceMiles int, tag string, receivedAt time.Time) (model.Auction, error)
	ListAuctions(includeArchived bool, carrierID string) ([]auction.AuctionView, error)
	GetAuction(bidNumber, carrierID string) (auction.AuctionView, error)
	ArchiveAuction(bidNumber string) error
	PlaceBid(bidNumber, carrierID string, amountCents int64, notes string) (model.Bid, error)
	GetBidsForAuction(bidNumber string) ([]model.Bid, error)
	GetLowestBid(bidNumber string) (model.Bid, error)
	AddFavorite(carrierID, bidNumber string) (model.Favorite, error)
	RemoveFavorite(carrierID, bidNumber string) error
	GetFavorites(carrierID string) ([]model.Favorite, error)
}

type AwardServiceInterface interface {
	Award(bidNumber, winnerID, awardedBy, notes string) (model.Award, error)
	MarkNoContest(bidNumber, notes string) error
	GetAwardsForCarrier(carrierID string) ([]model.Award, error)
}

type AuctionHandler struct {
	auctions AuctionServiceInterface
	awards   AwardServiceInterface
}

func NewAuctionHandler(auctions AuctionServiceInterface, awards AwardServiceInterface) *AuctionHandler {
	return &AuctionHandler{auctions: auctions, awards: awards}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	var receivedAt time.Time
	if req.ReceivedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReceivedAt)
		if err != nil {
			helpers.HandleBindError(c, "CreateAuctionHandler", fmt.Errorf("received_at must be RFC3339: %w", err))
			return
		}
		receivedAt = parsed
	}

	a, err := h.auctions.CreateAuction(req.BidNumber, req.Stops, req.DistanceMiles, req.Tag, receivedAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"bid_number": req.BidNumber,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"bid_number": a.BidNumber,
		"distance":   a.DistanceMiles,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	carrierID := c.Query("carrier_id")

	views, err := h.auctions.ListAuctions(includeArchived, carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if views == nil {
		views = []auction.AuctionView{}
	}

	utils.JSONResponse(c, http.StatusOK, views, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(views),
	})
}

// GetAuctionHandler handles GET /auctions/:bid_number
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	view, err := h.auctions.GetAuction(bidNumber, c.Query("carrier_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"bid_number": bidNumber, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"bid_number": bidNumber,
		"status":     string(view.Status),
	})
}

// ArchiveAuctionHandler handles POST /auctions/:bid_number/archive
func (h *AuctionHandler) ArchiveAuctionHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	if err := h.auctions.ArchiveAuction(bidNumber); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ArchiveAuctionHandler: error archiving auction", map[string]any{"bid_number": bidNumber, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_number": bidNumber}, "auction archived successfully")
	helpers.LogSuccess("ArchiveAuctionHandler", "auction archived successfully", map[string]any{
		"bid_number": bidNumber,
	})
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.auctions.PlaceBid(req.BidNumber, req.CarrierID, req.AmountCents, req.Notes)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"bid_number": req.BidNumber,
			"carrier_id": req.CarrierID,
			"error":      err.Error(),
		})
		return
	}

	resp := toBidResponse(bid)
	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"bid_number": bid.BidNumber,
		"carrier_id": bid.CarrierID,
		"amount":     bid.AmountCents,
		"late":       bid.Late,
	})
}

// GetBidsForAuctionHandler handles GET /auctions/:bid_number/bids
func (h *AuctionHandler) GetBidsForAuctionHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	bids, err := h.auctions.GetBidsForAuction(bidNumber)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsForAuctionHandler: error retrieving bids", map[string]any{"bid_number": bidNumber, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsForAuctionHandler", "bids retrieved successfully", map[string]any{
		"bid_number": bidNumber,
		"count":      len(bids),
	})
}

// GetLowestBidHandler handles GET /auctions/:bid_number/lowest
func (h *AuctionHandler) GetLowestBidHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	bid, err := h.auctions.GetLowestBid(bidNumber)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bids found for auction")
			utils.Info("GetLowestBidHandler: no bids found", map[string]any{"bid_number": bidNumber})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLowestBidHandler: lowest bid error", map[string]any{"bid_number": bidNumber, "error": err.Error()})
		return
	}

	resp := toBidResponse(bid)
	utils.JSONResponse(c, http.StatusOK, resp, "lowest bid retrieved successfully")
	helpers.LogSuccess("GetLowestBidHandler", "lowest bid retrieved successfully", map[string]any{
		"bid_number": bidNumber,
		"bid_id":     bid.BidID,
		"amount":     bid.AmountCents,
	})
}

// AwardHandler handles POST /auctions/:bid_number/award
func (h *AuctionHandler) AwardHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	var req helpers.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AwardHandler", err)
		return
	}

	aw, err := h.awards.Award(bidNumber, req.WinnerID, req.AwardedBy, req.Notes)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AwardHandler: failed to award auction", map[string]any{
			"bid_number": bidNumber,
			"winner_id":  req.WinnerID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AwardResponse{
		AwardID:     aw.AwardID,
		BidNumber:   aw.BidNumber,
		WinnerID:    aw.WinnerID,
		AmountCents: aw.AmountCents,
		AwardedBy:   aw.AwardedBy,
		Notes:       aw.Notes,
		AwardedAt:   aw.AwardedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auction awarded successfully")
	helpers.LogSuccess("AwardHandler", "auction awarded successfully", map[string]any{
		"bid_number": aw.BidNumber,
		"winner_id":  aw.WinnerID,
		"amount":     aw.AmountCents,
	})
}

// NoContestHandler handles POST /auctions/:bid_number/no-contest
func (h *AuctionHandler) NoContestHandler(c *gin.Context) {
	bidNumber := c.Param("bid_number")
	var req helpers.NoContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "NoContestHandler", err)
		return
	}

	if err := h.awards.MarkNoContest(bidNumber, req.Notes); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("NoContestHandler: failed to mark no contest", map[string]any{
			"bid_number": bidNumber,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_number": bidNumber}, "auction marked no contest")
	helpers.LogSuccess("NoContestHandler", "auction marked no contest", map[string]any{
		"bid_number": bidNumber,
	})
}

// GetAwardsForCarrierHandler handles GET /carriers/:carrier_id/awards
func (h *AuctionHandler) GetAwardsForCarrierHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	awards, err := h.awards.GetAwardsForCarrier(carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAwardsForCarrierHandler: error retrieving awards", map[string]any{"carrier_id": carrierID, "error": err.Error()})
		return
	}

	if awards == nil {
		awards = []model.Award{}
	}

	utils.JSONResponse(c, http.StatusOK, awards, "awards retrieved successfully")
	helpers.LogSuccess("GetAwardsForCarrierHandler", "awards retrieved successfully", map[string]any{
		"carrier_id": carrierID,
		"count":      len(awards),
	})
}

// AddFavoriteHandler handles POST /carriers/:carrier_id/favorites
func (h *AuctionHandler) AddFavoriteHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	var req helpers.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddFavoriteHandler", err)
		return
	}

	f, err := h.auctions.AddFavorite(carrierID, req.BidNumber)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddFavoriteHandler: error saving favorite", map[string]any{
			"carrier_id": carrierID,
			"bid_number": req.BidNumber,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, f, "favorite saved successfully")
	helpers.LogSuccess("AddFavoriteHandler", "favorite saved successfully", map[string]any{
		"carrier_id": carrierID,
		"bid_number": f.BidNumber,
	})
}

// RemoveFavoriteHandler handles DELETE /carriers/:carrier_id/favorites/:bid_number
func (h *AuctionHandler) RemoveFavoriteHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	bidNumber := c.Param("bid_number")
	if err := h.auctions.RemoveFavorite(carrierID, bidNumber); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveFavoriteHandler: error removing favorite", map[string]any{
			"carrier_id": carrierID,
			"bid_number": bidNumber,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_number": bidNumber}, "favorite removed successfully")
	helpers.LogSuccess("RemoveFavoriteHandler", "favorite removed successfully", map[string]any{
		"carrier_id": carrierID,
		"bid_number": bidNumber,
	})
}

// GetFavoritesHandler handles GET /carriers/:carrier_id/favorites
func (h *AuctionHandler) GetFavoritesHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	favs, err := h.auctions.GetFavorites(carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetFavoritesHandler: error retrieving favorites", map[string]any{"carrier_id": carrierID, "error": err.Error()})
		return
	}

	if favs == nil {
		favs = []model.Favorite{}
	}

	utils.JSONResponse(c, http.StatusOK, favs, "favorites retrieved successfully")
	helpers.LogSuccess("GetFavoritesHandler", "favorites retrieved successfully", map[string]any{
		"carrier_id": carrierID,
		"count":      len(favs),
	})
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:       bid.BidID,
		BidNumber:   bid.BidNumber,
		CarrierID:   bid.CarrierID,
		AmountCents: bid.AmountCents,
		Notes:       bid.Notes,
		Late:        bid.Late,
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
