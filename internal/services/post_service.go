package services

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/jastip-id/jastip-be/internal/models"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	CreatePost(authorID, title, description, price, quota string) (models.Post, error)
	GetAllPosts() ([]models.Post, error)
}

// PostService provides business logic for listings.
type PostService struct {
	db    *sql.DB
	users UserServiceProvider
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB, users UserServiceProvider) *PostService {
	return &PostService{db: db, users: users}
}

// CreatePost stores a new listing. The author's current display name is
// re-read from the store and snapshotted onto the post; it does not track
// later renames.
func (s *PostService) CreatePost(authorID, title, description, price, quota string) (models.Post, error) {
	user, err := s.users.GetUserByID(authorID)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Price:       price,
		Quota:       quota,
		AuthorID:    user.ID,
		Author:      user.Name,
		Status:      models.PostStatusActive,
	}

	stmt, err := s.db.Prepare("INSERT INTO posts(id, title, description, price, quota, author_id, author, status) VALUES(?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Post{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(post.ID, post.Title, post.Description, post.Price, post.Quota, post.AuthorID, post.Author, post.Status); err != nil {
		return models.Post{}, err
	}

	return s.getPostByID(post.ID)
}

// GetAllPosts retrieves every post. An empty result is an empty slice, not
// nil, so it encodes as a JSON array.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, title, description, price, quota, author_id, author, status, created_at, updated_at FROM posts ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Description, &post.Price, &post.Quota, &post.AuthorID, &post.Author, &post.Status, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *PostService) getPostByID(id string) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRow("SELECT id, title, description, price, quota, author_id, author, status, created_at, updated_at FROM posts WHERE id = ?", id)
	err := row.Scan(&post.ID, &post.Title, &post.Description, &post.Price, &post.Quota, &post.AuthorID, &post.Author, &post.Status, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}
