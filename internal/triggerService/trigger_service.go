package trigger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"freight-auction/internal/auctionerrors"
	model "freight-auction/internal/models"
	"freight-auction/internal/repository"
	"freight-auction/utils"
)

// TriggerService defines the business logic for carrier notification
// triggers.
type TriggerService struct {
	repo repository.AlertDB
}

// NewTriggerService creates a new TriggerService instance
func NewTriggerService(repo repository.AlertDB) *TriggerService {
	return &TriggerService{
		repo: repo,
	}
}

// CreateTrigger validates and stores a new trigger for a carrier.
func (s *TriggerService) CreateTrigger(carrierID string, kind model.TriggerKind, cfg model.TriggerConfig, active bool) (model.Trigger, error) {
	if carrierID == "" {
		return model.Trigger{}, fmt.Errorf("service: %w - empty carrier ID", auctionerrors.ErrInvalidTriggerConfig)
	}
	if !kind.Valid() {
		return model.Trigger{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidTriggerKind, kind)
	}
	if err := validateConfig(kind, cfg); err != nil {
		return model.Trigger{}, err
	}

	if kind == model.TriggerExactMatch {
		if err := s.checkDuplicate(carrierID, kind, cfg, ""); err != nil {
			return model.Trigger{}, err
		}
	}

	now := time.Now().UTC()
	t := model.Trigger{
		TriggerID: utils.GenerateID(),
		CarrierID: carrierID,
		Kind:      kind,
		Config:    cfg,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateTrigger(t); err != nil {
		return model.Trigger{}, fmt.Errorf("service: failed to create %s trigger for carrier %s: %w", kind, carrierID, err)
	}
	return t, nil
}

// GetTrigger returns a carrier's trigger by ID.
func (s *TriggerService) GetTrigger(carrierID, triggerID string) (model.Trigger, error) {
	if carrierID == "" || triggerID == "" {
		return model.Trigger{}, fmt.Errorf("service: %w - missing carrier ID or trigger ID", auctionerrors.ErrInvalidTriggerConfig)
	}

	t, err := s.repo.GetTrigger(carrierID, triggerID)
	if err != nil {
		return model.Trigger{}, fmt.Errorf("service: failed to get trigger %s: %w", triggerID, err)
	}
	return t, nil
}

// UpdateTrigger applies a partial update to a trigger's configuration
// and active flag. Absent config fields keep their stored values; the
// merged configuration is re-validated as a whole.
func (s *TriggerService) UpdateTrigger(carrierID, triggerID string, patch *model.TriggerConfig, active *bool) (model.Trigger, error) {
	if carrierID == "" || triggerID == "" {
		return model.Trigger{}, fmt.Errorf("service: %w - missing carrier ID or trigger ID", auctionerrors.ErrInvalidTriggerConfig)
	}

	t, err := s.repo.GetTrigger(carrierID, triggerID)
	if err != nil {
		return model.Trigger{}, fmt.Errorf("service: failed to get trigger %s: %w", triggerID, err)
	}

	if patch != nil {
		t.Config = t.Config.Merge(*patch)
	}
	if active != nil {
		t.Active = *active
	}
	if err := validateConfig(t.Kind, t.Config); err != nil {
		return model.Trigger{}, err
	}
	if t.Kind == model.TriggerExactMatch && t.Active {
		if err := s.checkDuplicate(carrierID, t.Kind, t.Config, t.TriggerID); err != nil {
			return model.Trigger{}, err
		}
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTrigger(t); err != nil {
		return model.Trigger{}, fmt.Errorf("service: failed to update trigger %s: %w", triggerID, err)
	}
	return t, nil
}

// DeleteTrigger removes a carrier's trigger.
func (s *TriggerService) DeleteTrigger(carrierID, triggerID string) error {
	if carrierID == "" || triggerID == "" {
		return fmt.Errorf("service: %w - missing carrier ID or trigger ID", auctionerrors.ErrInvalidTriggerConfig)
	}
	if err := s.repo.DeleteTrigger(carrierID, triggerID); err != nil {
		return fmt.Errorf("service: failed to delete trigger %s: %w", triggerID, err)
	}
	return nil
}

// GetTriggersForCarrier returns all of a carrier's triggers.
func (s *TriggerService) GetTriggersForCarrier(carrierID string) ([]model.Trigger, error) {
	if carrierID == "" {
		return nil, fmt.Errorf("service: %w - empty carrier ID", auctionerrors.ErrInvalidTriggerConfig)
	}

	triggers, err := s.repo.ListTriggersForCarrier(carrierID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list triggers for carrier %s: %w", carrierID, err)
	}
	return triggers, nil
}

// GetNotifications returns a carrier's notification feed, newest first.
func (s *TriggerService) GetNotifications(carrierID string) ([]model.Notification, error) {
	if carrierID == "" {
		return nil, fmt.Errorf("service: %w - empty carrier ID", auctionerrors.ErrInvalidTriggerConfig)
	}

	notifications, err := s.repo.ListNotificationsForCarrier(carrierID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notifications for carrier %s: %w", carrierID, err)
	}
	return notifications, nil
}

// MarkNotificationRead flags one of the carrier's notifications as read.
func (s *TriggerService) MarkNotificationRead(carrierID, notificationID string) error {
	if carrierID == "" || notificationID == "" {
		return fmt.Errorf("service: %w - missing carrier ID or notification ID", auctionerrors.ErrInvalidTriggerConfig)
	}
	if err := s.repo.MarkNotificationRead(carrierID, notificationID); err != nil {
		return fmt.Errorf("service: failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}

// checkDuplicate rejects a second active trigger whose normalized
// configuration is identical to an existing one of the same kind.
func (s *TriggerService) checkDuplicate(carrierID string, kind model.TriggerKind, cfg model.TriggerConfig, excludeID string) error {
	existing, err := s.repo.ListTriggersForCarrier(carrierID)
	if err != nil {
		return fmt.Errorf("service: failed to check for duplicate triggers: %w", err)
	}

	key := normalizeConfig(kind, cfg)
	for _, t := range existing {
		if t.TriggerID == excludeID || !t.Active || t.Kind != kind {
			continue
		}
		if normalizeConfig(t.Kind, t.Config) == key {
			return fmt.Errorf("service: %w - matches trigger %s", auctionerrors.ErrDuplicateTrigger, t.TriggerID)
		}
	}
	return nil
}

// normalizeConfig renders the fields relevant to a kind as a canonical
// comparison key. Field order and list order do not matter.
func normalizeConfig(kind model.TriggerKind, cfg model.TriggerConfig) string {
	var b strings.Builder
	writeInt := func(name string, v *int) {
		if v != nil {
			fmt.Fprintf(&b, "%s=%d;", name, *v)
		}
	}
	writeList := func(name string, vs []string) {
		if len(vs) == 0 {
			return
		}
		sorted := append([]string(nil), vs...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, "%s=%s;", name, strings.Join(sorted, ","))
	}

	switch kind {
	case model.TriggerSimilarLoad:
		writeInt("distance", cfg.DistanceThreshold)
	case model.TriggerExactMatch, model.TriggerFavoriteAvailable:
		writeInt("min", cfg.MinDistance)
		writeInt("max", cfg.MaxDistance)
		writeList("favorites", cfg.FavoriteBidNumbers)
	case model.TriggerNewRoute:
		writeList("states", cfg.StateTags)
	case model.TriggerDeadlineApproaching:
		writeInt("hours", cfg.TimeThresholdHours)
	case model.TriggerPriceDrop:
		if cfg.PriceThresholdCents != nil {
			fmt.Fprintf(&b, "price=%d;", *cfg.PriceThresholdCents)
		}
	}
	return b.String()
}

// validateConfig applies the per-kind configuration rules. Every
// violation wraps ErrInvalidTriggerConfig and names the offending
// field.
func validateConfig(kind model.TriggerKind, cfg model.TriggerConfig) error {
	fail := func(detail string) error {
		return fmt.Errorf("service: %w - %s", auctionerrors.ErrInvalidTriggerConfig, detail)
	}

	switch kind {
	case model.TriggerSimilarLoad:
		if cfg.DistanceThreshold == nil {
			return fail("distanceThreshold is required for similar_load")
		}
		if *cfg.DistanceThreshold < 1 || *cfg.DistanceThreshold > 500 {
			return fail("distanceThreshold must be between 1 and 500 miles")
		}

	case model.TriggerExactMatch, model.TriggerFavoriteAvailable:
		hasRange := cfg.MinDistance != nil && cfg.MaxDistance != nil
		if !hasRange && len(cfg.FavoriteBidNumbers) == 0 {
			return fail("minDistance/maxDistance or favoriteBidNumbers is required")
		}
		if cfg.MinDistance != nil && *cfg.MinDistance < 0 {
			return fail("minDistance must not be negative")
		}
		if hasRange && *cfg.MaxDistance < *cfg.MinDistance {
			return fail("maxDistance must not be below minDistance")
		}

	case model.TriggerNewRoute:
		if len(cfg.StateTags) == 0 {
			return fail("stateTags must name at least one state")
		}
		for _, tag := range cfg.StateTags {
			if strings.TrimSpace(tag) == "" {
				return fail("stateTags must not contain blank entries")
			}
		}

	case model.TriggerDeadlineApproaching:
		if cfg.TimeThresholdHours == nil {
			return fail("timeThreshold is required for deadline_approaching")
		}
		if *cfg.TimeThresholdHours < 1 || *cfg.TimeThresholdHours > 24 {
			return fail("timeThreshold must be between 1 and 24 hours")
		}

	case model.TriggerPriceDrop:
		if cfg.PriceThresholdCents == nil {
			return fail("priceThreshold is required for price_drop")
		}
		if *cfg.PriceThresholdCents <= 0 {
			return fail("priceThreshold must be a positive amount in cents")
		}
	}
	return nil
}
