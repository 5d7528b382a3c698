package patient

import "time"

// Patient maps to the patient table.
type Patient struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	City      *string   `db:"city" json:"city,omitempty"`
	State     *string   `db:"state" json:"state,omitempty"`
	PinCode   *string   `db:"pin_code" json:"pin_code,omitempty"`
	Age       *int      `db:"age" json:"age,omitempty"`
	Gender    *string   `db:"gender" json:"gender,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Input carries submitted form fields for create and update. Age arrives as a
// string and is coerced by the service.
type Input struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Address string `json:"address" form:"address"`
	City    string `json:"city" form:"city"`
	State   string `json:"state" form:"state"`
	PinCode string `json:"pin_code" form:"pin_code"`
	Age     string `json:"age" form:"age"`
	Gender  string `json:"gender" form:"gender"`
}

// ListFilter narrows the active-patient roster.
type ListFilter struct {
	Search string
	Gender string
}
