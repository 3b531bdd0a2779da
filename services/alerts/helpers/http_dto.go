package helpers

import model "freight-auction/internal/models"

// Request/Response DTOs
type CreateTriggerRequest struct {
	Kind   model.TriggerKind   `json:"kind" binding:"required"`
	Config model.TriggerConfig `json:"config"`
	Active *bool               `json:"active"`
}

type UpdateTriggerRequest struct {
	Config *model.TriggerConfig `json:"config"`
	Active *bool                `json:"active"`
}
