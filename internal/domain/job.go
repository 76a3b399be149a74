package domain

import "time"

// Job es una oferta de trabajo publicada.
type Job struct {
	ID          string    `json:"id"`
	JobName     string    `json:"jobName"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location"`
	Mail        string    `json:"mail"`
	CreatedAt   time.Time `json:"created_at"`
}
