package delivery

import (
	"strings"
	"time"

	"delivery-marketplace/internal/entities"
)

func validateDraft(draft entities.DeliveryDraft, now time.Time) error {
	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Description) == "" ||
		strings.TrimSpace(draft.Pickup.Address) == "" ||
		strings.TrimSpace(draft.Dropoff.Address) == "" {
		return ErrMissingRequiredFields
	}

	if draft.Price <= 0 {
		return ErrInvalidPrice
	}

	if !draft.AcceptDeadline.After(now) {
		return ErrAcceptDeadlineInPast
	}

	if !draft.DeliveryDeadline.After(draft.AcceptDeadline) {
		return ErrDeliveryDeadlineTooEarly
	}

	return nil
}

func isValidMineFilter(filter entities.MineFilter) bool {
	switch filter {
	case entities.MineAll, entities.MineRequested, entities.MineDelivering:
		return true
	default:
		return false
	}
}

func isUpdatableStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryInProgress, entities.DeliveryCompleted, entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
