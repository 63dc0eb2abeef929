package notification

import "delivery-marketplace/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       entities.NotificationType(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		DeliveryID: n.DeliveryID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

func ToDomainList(models []NotificationDB) []entities.Notification {
	notifications := make([]entities.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, *ToDomain(&models[i]))
	}
	return notifications
}
