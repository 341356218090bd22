package domain

import (
	"time"
)

type FAQ struct {
	ID           int64     `json:"id"`
	Category     string    `json:"category"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateFAQDTO struct {
	Category     string `json:"category" binding:"required"`
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateFAQDTO struct {
	Category     *string `json:"category"`
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"display_order"`
}

type FAQFilter struct {
	Category *string `json:"category"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
