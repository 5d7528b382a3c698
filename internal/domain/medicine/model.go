package medicine

import "time"

// Medicine maps to the medicine table.
type Medicine struct {
	ID         int64      `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Stock      int        `db:"stock" json:"stock"`
	Price      float64    `db:"price" json:"price"`
	ExpiryDate *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
}

// Input carries submitted form fields. Stock, price and expiry arrive as
// strings and are coerced by the service.
type Input struct {
	Name       string `json:"name" form:"name"`
	Stock      string `json:"stock" form:"stock"`
	Price      string `json:"price" form:"price"`
	ExpiryDate string `json:"expiry_date" form:"expiry_date"`
}
