package models

import "time"

// User approval statuses. New accounts start unapproved; flipping an account
// to active is an administrative action with no endpoint in this API.
const (
	StatusUnapproved = "unapproved"
	StatusActive     = "active"
)

// User represents a user account in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	ImgURL       string    `json:"imgUrl"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
