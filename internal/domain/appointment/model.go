package appointment

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Appointment maps to the appointment table.
type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Status    string    `db:"status" json:"status"`
}

// Detail is an appointment joined with its patient and doctor for display.
type Detail struct {
	Appointment
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

// Input carries submitted form fields. References and the date arrive as
// strings and are coerced by the service.
type Input struct {
	PatientID string `json:"patient_id" form:"patient_id"`
	DoctorID  string `json:"doctor_id" form:"doctor_id"`
	Date      string `json:"date" form:"date"`
	Time      string `json:"time" form:"time"`
	Status    string `json:"status" form:"status"`
}
