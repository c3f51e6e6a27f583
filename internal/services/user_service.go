package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jastip-id/jastip-be/internal/auth"
	"github.com/jastip-id/jastip-be/internal/httperr"
	"github.com/jastip-id/jastip-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(name, email, password, imgURL string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// NormalizeEmail lowercases and trims an email so lookups and the UNIQUE
// constraint agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, img_url, status, created_at, updated_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.ImgURL, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, httperr.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their normalized email, including
// the password hash.
func (s *UserService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, img_url, status, created_at, updated_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.ImgURL, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, httperr.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Register creates a new account with the default unapproved status. The
// pre-insert existence check is best effort; a concurrent duplicate register
// loses on the UNIQUE constraint and is reported the same way.
func (s *UserService) Register(name, email, password, imgURL string) (models.User, error) {
	email = NormalizeEmail(email)

	if _, err := s.GetUserByEmail(email); err == nil {
		return models.User{}, httperr.ErrEmailTaken
	} else if !errors.Is(err, httperr.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		ImgURL:       imgURL,
		Status:       models.StatusUnapproved,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password_hash, img_url, status) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Name, user.Email, user.PasswordHash, user.ImgURL, user.Status); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, httperr.ErrEmailTaken
		}
		return models.User{}, err
	}

	return s.GetUserByID(user.ID)
}

// Authenticate verifies a user's credentials. It deliberately does not check
// the approval status; unapproved users can log in, the gate rejects them on
// protected routes.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, err
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return models.User{}, httperr.ErrInvalidCredentials
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
