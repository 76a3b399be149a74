package domain

import "time"

type GitHubLink struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	GitHubLink string    `json:"githubLink"`
	UpdatedAt  time.Time `json:"updated_at"`
}
