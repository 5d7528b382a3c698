// Package dashboard aggregates record counts for the landing page.
package dashboard

import "context"

type Stats struct {
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Appointments int `json:"appointments"`
	Medicines    int `json:"medicines"`
}

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
}
