package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is owned by the catalog service; the escrow engine only reads
// price/owner and toggles availability inside settlement transactions.
type Product struct {
	ID          string
	OwnerID     string
	Name        string
	Price       decimal.Decimal
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
