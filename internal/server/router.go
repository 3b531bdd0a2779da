package server

import (
	"net/http"

	auction "freight-auction/internal/auctionService"
	award "freight-auction/internal/awardService"
	trigger "freight-auction/internal/triggerService"
	alertshandler "freight-auction/services/alerts/handler"
	auctionhandler "freight-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, awardService *award.AwardService, triggerService *trigger.TriggerService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService, awardService)
	alertsHandler := alertshandler.NewAlertsHandler(triggerService)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:bid_number", auctionHandler.GetAuctionHandler)
		auctions.POST("/:bid_number/archive", auctionHandler.ArchiveAuctionHandler)
		auctions.GET("/:bid_number/bids", auctionHandler.GetBidsForAuctionHandler)
		auctions.GET("/:bid_number/lowest", auctionHandler.GetLowestBidHandler)
		auctions.POST("/:bid_number/award", auctionHandler.AwardHandler)
		auctions.POST("/:bid_number/no-contest", auctionHandler.NoContestHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	carriers := router.Group("/carriers")
	{
		carriers.GET("/:carrier_id/awards", auctionHandler.GetAwardsForCarrierHandler)

		carriers.GET("/:carrier_id/favorites", auctionHandler.GetFavoritesHandler)
		carriers.POST("/:carrier_id/favorites", auctionHandler.AddFavoriteHandler)
		carriers.DELETE("/:carrier_id/favorites/:bid_number", auctionHandler.RemoveFavoriteHandler)

		carriers.GET("/:carrier_id/triggers", alertsHandler.GetTriggersHandler)
		carriers.POST("/:carrier_id/triggers", alertsHandler.CreateTriggerHandler)
		carriers.PUT("/:carrier_id/triggers/:trigger_id", alertsHandler.UpdateTriggerHandler)
		carriers.DELETE("/:carrier_id/triggers/:trigger_id", alertsHandler.DeleteTriggerHandler)

		carriers.GET("/:carrier_id/notifications", alertsHandler.GetNotificationsHandler)
		carriers.POST("/:carrier_id/notifications/:notification_id/read", alertsHandler.MarkNotificationReadHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
