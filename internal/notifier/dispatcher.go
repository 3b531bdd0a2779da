package notifier

import (
	"fmt"
	"time"

	"freight-auction/internal/metrics"
	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
	"freight-auction/utils"
)

// Per-kind cooldown windows. Within the window, a repeat notification
// for the same (carrier, auction, kind) triple is suppressed. Kinds
// without an entry (award outcomes, operator alerts) always send.
var cooldowns = map[model.NotificationKind]time.Duration{
	model.NotifySimilarLoad:         time.Hour,
	model.NotifyExactMatch:          2 * time.Hour,
	model.NotifyNewRoute:            30 * time.Minute,
	model.NotifyFavoriteAvailable:   time.Hour,
	model.NotifyDeadlineApproaching: 30 * time.Minute,
	model.NotifyPriceDrop:           time.Hour,
}

// CooldownFor returns the dedup window for a notification kind.
func CooldownFor(kind model.NotificationKind) time.Duration {
	return cooldowns[kind]
}

// Dispatcher is the single write path for notifications. Creating the
// ledger row and checking the dedup window happen in one repository
// call, so concurrent evaluation cycles cannot double-send.
type Dispatcher struct {
	alerts repository.AlertDB
}

// NewDispatcher creates a new Dispatcher instance
func NewDispatcher(alerts repository.AlertDB) *Dispatcher {
	return &Dispatcher{alerts: alerts}
}

// Deliver records and sends a notification unless one of the same kind
// for the same carrier and auction is still inside its cooldown window.
// Returns true when the notification was sent, false when suppressed.
func (d *Dispatcher) Deliver(carrierID, triggerID string, kind model.NotificationKind, bidNumber, message string) (bool, error) {
	n := model.Notification{
		NotificationID: utils.GenerateID(),
		CarrierID:      carrierID,
		TriggerID:      triggerID,
		Kind:           kind,
		BidNumber:      bidNumber,
		Title:          kind.Title(),
		Message:        message,
		DeliveryStatus: "sent",
		SentAt:         time.Now().UTC(),
	}

	sent, err := d.alerts.RecordNotificationOnce(n, CooldownFor(kind))
	if err != nil {
		return false, fmt.Errorf("dispatcher: failed to record %s notification for carrier %s: %w", kind, carrierID, err)
	}
	if !sent {
		metrics.NotificationsSuppressed.WithLabelValues(string(kind)).Inc()
		return false, nil
	}

	metrics.NotificationsSent.WithLabelValues(string(kind)).Inc()
	utils.Info("Notification sent", map[string]any{
		"carrierID": carrierID,
		"kind":      string(kind),
		"bidNumber": bidNumber,
	})
	return true, nil
}
