package dto

import "delivery-marketplace/internal/entities"

func NewDelivery(e *entities.Delivery) Delivery {
	return Delivery{
		ID:               e.ID,
		RequesterID:      e.RequesterID,
		DeliveryPersonID: e.DeliveryPersonID,
		Title:            e.Title,
		Description:      e.Description,
		Pickup: Location{
			Address: e.Pickup.Address,
			Lat:     e.Pickup.Lat,
			Lng:     e.Pickup.Lng,
		},
		Dropoff: Location{
			Address: e.Dropoff.Address,
			Lat:     e.Dropoff.Lat,
			Lng:     e.Dropoff.Lng,
		},
		Package: Package{
			Weight:     e.Package.Weight,
			Dimensions: e.Package.Dimensions,
			Fragile:    e.Package.Fragile,
		},
		Images:             e.Images,
		AcceptDeadline:     e.AcceptDeadline,
		DeliveryDeadline:   e.DeliveryDeadline,
		Price:              e.Price,
		Status:             e.Status.String(),
		PaymentStatus:      e.PaymentStatus.String(),
		AcceptedAt:         e.AcceptedAt,
		CompletedAt:        e.CompletedAt,
		CancelledAt:        e.CancelledAt,
		CancellationReason: e.CancellationReason,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func NewDeliveryList(list []entities.Delivery) []Delivery {
	deliveries := make([]Delivery, 0, len(list))
	for i := range list {
		deliveries = append(deliveries, NewDelivery(&list[i]))
	}
	return deliveries
}

func NewNotification(e *entities.Notification) Notification {
	return Notification{
		ID:         e.ID,
		UserID:     e.UserID,
		Type:       e.Type.String(),
		Title:      e.Title,
		Message:    e.Message,
		DeliveryID: e.DeliveryID,
		Read:       e.Read,
		CreatedAt:  e.CreatedAt,
	}
}

func NewNotificationList(list []entities.Notification) []Notification {
	notifications := make([]Notification, 0, len(list))
	for i := range list {
		notifications = append(notifications, NewNotification(&list[i]))
	}
	return notifications
}
