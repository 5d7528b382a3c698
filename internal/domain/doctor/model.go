package doctor

// Doctor maps to the doctor table.
type Doctor struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Specialization string  `db:"specialization" json:"specialization"`
	Phone          string  `db:"phone" json:"phone"`
	Email          *string `db:"email" json:"email,omitempty"`
}

// Input carries submitted form fields for create and update.
type Input struct {
	Name           string `json:"name" form:"name"`
	Specialization string `json:"specialization" form:"specialization"`
	Phone          string `json:"phone" form:"phone"`
	Email          string `json:"email" form:"email"`
}
