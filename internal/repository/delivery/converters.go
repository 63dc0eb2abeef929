package delivery

import "delivery-marketplace/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	domain := &entities.Delivery{
		ID:               d.ID,
		RequesterID:      d.RequesterID,
		DeliveryPersonID: d.DeliveryPersonID,
		Title:            d.Title,
		Description:      d.Description,
		Pickup: entities.Location{
			Address: d.PickupAddress,
			Lat:     d.PickupLat,
			Lng:     d.PickupLng,
		},
		Dropoff: entities.Location{
			Address: d.DropoffAddress,
			Lat:     d.DropoffLat,
			Lng:     d.DropoffLng,
		},
		Package: entities.PackageDetails{
			Weight:  d.PackageWeight,
			Fragile: d.PackageFragile,
		},
		Images:           d.Images,
		AcceptDeadline:   d.AcceptDeadline,
		DeliveryDeadline: d.DeliveryDeadline,
		Price:            d.Price,
		Status:           entities.DeliveryStatusType(d.Status),
		PaymentStatus:    entities.PaymentStatusType(d.PaymentStatus),
		AcceptedAt:       d.AcceptedAt,
		CompletedAt:      d.CompletedAt,
		CancelledAt:      d.CancelledAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}

	if d.PackageDimensions != nil {
		domain.Package.Dimensions = *d.PackageDimensions
	}
	if d.CancellationReason != nil {
		domain.CancellationReason = *d.CancellationReason
	}

	return domain
}

func ToDomainList(models []DeliveryDB) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(models))
	for i := range models {
		deliveries = append(deliveries, *ToDomain(&models[i]))
	}
	return deliveries
}
