package request

import (
	"github.com/google/uuid"
)

type ClaimSlotRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}
