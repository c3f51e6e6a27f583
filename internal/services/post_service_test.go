package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jastip-id/jastip-be/internal/httperr"
	"github.com/jastip-id/jastip-be/internal/models"
)

func TestPostService_CreatePost(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db, users)

	author, err := users.Register("A", "a@x.com", "p1", "")
	require.NoError(t, err)

	post, err := posts.CreatePost(author.ID, "Snacks from Seoul", "box of snacks", "15000", "10")
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Snacks from Seoul", post.Title)
	assert.Equal(t, "15000", post.Price)
	assert.Equal(t, "10", post.Quota)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, "A", post.Author)
	assert.Equal(t, models.PostStatusActive, post.Status)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostService_CreatePost_UnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, NewUserService(db))

	_, err := posts.CreatePost("no-such-user", "t", "d", "1", "1")
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)
}

func TestPostService_GetAllPosts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db, users)

	// Empty store yields an empty slice, not nil.
	all, err := posts.GetAllPosts()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	author, err := users.Register("A", "a@x.com", "p1", "")
	require.NoError(t, err)

	_, err = posts.CreatePost(author.ID, "first", "d", "1", "1")
	require.NoError(t, err)
	_, err = posts.CreatePost(author.ID, "second", "d", "2", "2")
	require.NoError(t, err)

	all, err = posts.GetAllPosts()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
