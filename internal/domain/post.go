package domain

import (
	"time"
)

// Post is a free-board entry: anyone can write, staff moderate.
type Post struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ViewCount  int       `json:"view_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreatePostDTO struct {
	AuthorName string `json:"author_name" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type UpdatePostDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PostFilter struct {
	Keyword *string `json:"keyword"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}
