package models

import "time"

// PostStatusActive is the default status for newly created posts.
const PostStatusActive = "active"

// Post represents a listing created by an approved user. Price and quota are
// free-form strings stored as submitted. Author is the creator's display name
// at creation time, not a live reference.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Quota       string    `json:"quota"`
	AuthorID    string    `json:"author_id"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
