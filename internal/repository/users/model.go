package users

import "time"

type UserDB struct {
	ID                  int64
	Name                string
	Email               string
	CompletedDeliveries int64
	CreatedAt           time.Time
}
