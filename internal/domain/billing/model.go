package billing

import "time"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Bill maps to the bill table.
type Bill struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	Amount      float64   `db:"amount" json:"amount"`
	Description *string   `db:"description" json:"description,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Input carries submitted form fields. The patient reference and amount
// arrive as strings and are coerced by the service.
type Input struct {
	PatientID   string `json:"patient_id" form:"patient_id"`
	Amount      string `json:"amount" form:"amount"`
	Description string `json:"description" form:"description"`
}
