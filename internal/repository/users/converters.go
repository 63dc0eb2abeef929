package users

import "delivery-marketplace/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		CompletedDeliveries: u.CompletedDeliveries,
		CreatedAt:           u.CreatedAt,
	}
}
