package domain

import "time"

// Profile guarda los datos profesionales de un usuario, uno por email.
type Profile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Education  string    `json:"education"`
	Degree     string    `json:"degree"`
	Experience string    `json:"experience"`
	Address    string    `json:"address"`
	GitHubLink string    `json:"githubLink"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
