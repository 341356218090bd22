package domain

import (
	"time"
)

// Review is a patient treatment review. Reviews go live only after a staff
// member publishes them.
type Review struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id,omitempty"`
	AuthorName  string    `json:"author_name"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	Treatment   string    `json:"treatment,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateReviewDTO struct {
	AuthorName string `json:"author_name" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Treatment  string `json:"treatment"`
}

type UpdateReviewDTO struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsPublished *bool   `json:"is_published"`
}

type ReviewFilter struct {
	// PublishedOnly is forced on for public listings; admin sees everything.
	PublishedOnly bool `json:"published_only"`
	MinRating     *int `json:"min_rating"`
	Limit         int  `json:"limit"`
	Offset        int  `json:"offset"`
}
