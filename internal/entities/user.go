package entities

import "time"

// User carries only what notifications and the completed-deliveries counter
// need. Accounts, auth and profiles live outside this service.
type User struct {
	ID                  int64
	Name                string
	Email               string
	CompletedDeliveries int64
	CreatedAt           time.Time
}
