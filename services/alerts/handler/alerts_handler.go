package handler

import (
	"fmt"
	"net/http"

	model "freight-auction/internal/models"
	"freight-auction/services/alerts/helpers"
	"freight-auction/utils"

	"github.com/gin-gonic/gin"
)

type TriggerServiceInterface interface {
	CreateTrigger(carrierID string, kind model.TriggerKind, cfg model.TriggerConfig, active bool) (model.Trigger, error)
	GetTrigger(carrierID, triggerID string) (model.Trigger, error)
	UpdateTrigger(carrierID, triggerID string, patch *model.TriggerConfig, active *bool) (model.Trigger, error)
	DeleteTrigger(carrierID, triggerID string) error
	GetTriggersForCarrier(carrierID string) ([]model.Trigger, error)
	GetNotifications(carrierID string) ([]model.Notification, error)
	MarkNotificationRead(carrierID, notificationID string) error
}

type AlertsHandler struct {
	service TriggerServiceInterface
}

func NewAlertsHandler(service TriggerServiceInterface) *AlertsHandler {
	return &AlertsHandler{service: service}
}

// CreateTriggerHandler handles POST /carriers/:carrier_id/triggers
func (h *AlertsHandler) CreateTriggerHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	var req helpers.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTriggerHandler", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	t, err := h.service.CreateTrigger(carrierID, req.Kind, req.Config, active)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateTriggerHandler: failed to create trigger", map[string]any{
			"carrier_id": carrierID,
			"kind":       string(req.Kind),
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, t, "trigger created successfully")
	helpers.LogSuccess("CreateTriggerHandler", "trigger created successfully", map[string]any{
		"carrier_id": carrierID,
		"trigger_id": t.TriggerID,
		"kind":       string(t.Kind),
	})
}

// GetTriggersHandler handles GET /carriers/:carrier_id/triggers
func (h *AlertsHandler) GetTriggersHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	triggers, err := h.service.GetTriggersForCarrier(carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTriggersHandler: error retrieving triggers", map[string]any{"carrier_id": carrierID, "error": err.Error()})
		return
	}

	if triggers == nil {
		triggers = []model.Trigger{}
	}

	utils.JSONResponse(c, http.StatusOK, triggers, "triggers retrieved successfully")
	helpers.LogSuccess("GetTriggersHandler", "triggers retrieved successfully", map[string]any{
		"carrier_id": carrierID,
		"count":      len(triggers),
	})
}

// UpdateTriggerHandler handles PUT /carriers/:carrier_id/triggers/:trigger_id
func (h *AlertsHandler) UpdateTriggerHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	triggerID := c.Param("trigger_id")
	var req helpers.UpdateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateTriggerHandler", err)
		return
	}

	t, err := h.service.UpdateTrigger(carrierID, triggerID, req.Config, req.Active)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateTriggerHandler: failed to update trigger", map[string]any{
			"carrier_id": carrierID,
			"trigger_id": triggerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, t, "trigger updated successfully")
	helpers.LogSuccess("UpdateTriggerHandler", "trigger updated successfully", map[string]any{
		"carrier_id": carrierID,
		"trigger_id": t.TriggerID,
		"active":     t.Active,
	})
}

// DeleteTriggerHandler handles DELETE /carriers/:carrier_id/triggers/:trigger_id
func (h *AlertsHandler) DeleteTriggerHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	triggerID := c.Param("trigger_id")
	if err := h.service.DeleteTrigger(carrierID, triggerID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteTriggerHandler: error deleting trigger", map[string]any{
			"carrier_id": carrierID,
			"trigger_id": triggerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"trigger_id": triggerID}, "trigger deleted successfully")
	helpers.LogSuccess("DeleteTriggerHandler", "trigger deleted successfully", map[string]any{
		"carrier_id": carrierID,
		"trigger_id": triggerID,
	})
}

// GetNotificationsHandler handles GET /carriers/:carrier_id/notifications
func (h *AlertsHandler) GetNotificationsHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	notifications, err := h.service.GetNotifications(carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetNotificationsHandler: error retrieving notifications", map[string]any{"carrier_id": carrierID, "error": err.Error()})
		return
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, notifications, "notifications retrieved successfully")
	helpers.LogSuccess("GetNotificationsHandler", "notifications retrieved successfully", map[string]any{
		"carrier_id": carrierID,
		"count":      len(notifications),
	})
}

// MarkNotificationReadHandler handles POST /carriers/:carrier_id/notifications/:notification_id/read
func (h *AlertsHandler) MarkNotificationReadHandler(c *gin.Context) {
	carrierID := c.Param("carrier_id")
	notificationID := c.Param("notification_id")
	if err := h.service.MarkNotificationRead(carrierID, notificationID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MarkNotificationReadHandler: error marking notification read", map[string]any{
			"carrier_id":      carrierID,
			"notification_id": notificationID,
			"error":           err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"notification_id": notificationID}, "notification marked read")
	helpers.LogSuccess("MarkNotificationReadHandler", "notification marked read", map[string]any{
		"carrier_id":      carrierID,
		"notification_id": notificationID,
	})
}
