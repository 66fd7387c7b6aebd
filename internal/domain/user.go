package domain

import "time"

// User identity is owned by the account service. The engine reads identity
// and the gateway payout destination, and fills GatewaySubaccountID on first
// use (lazy provisioning).
type User struct {
	ID                  string
	Email               string
	FirstName           string
	LastName            string
	Phone               string
	Role                string
	GatewaySubaccountID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
