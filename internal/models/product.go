package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers; decoding still accepts quoted values.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in a store.
type Product struct {
	ID        ID              `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string          `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Stock     int             `json:"stock" validate:"gte=0"`
	StoreID   ID              `json:"store_id" gorm:"index;type:varchar(36)"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
