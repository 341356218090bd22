package domain

import (
	"time"
)

// Consultation is a public Q&A entry. A secret entry hides its content behind
// a per-post password; the hash never leaves the server.
type Consultation struct {
	ID           int64      `json:"id"`
	UserID       *int64     `json:"user_id,omitempty"`
	AuthorName   string     `json:"author_name"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	Title        string     `json:"title"`
	Content      string     `json:"content,omitempty"`
	IsSecret     bool       `json:"is_secret"`
	PasswordHash string     `json:"-"`
	Reply        *string    `json:"reply,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Redacted strips everything a non-verified reader must not see.
func (c Consultation) Redacted() Consultation {
	if !c.IsSecret {
		return c
	}
	c.Content = ""
	c.Reply = nil
	c.PhoneNumber = ""
	return c
}

type CreateConsultationDTO struct {
	AuthorName  string `json:"author_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsSecret    bool   `json:"is_secret"`
	Password    string `json:"password"`
}

type UpdateConsultationDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// VerifyConsultationDTO unlocks a consultation. Non-secret entries verify
// with an empty password.
type VerifyConsultationDTO struct {
	Password string `json:"password"`
}

type ReplyConsultationDTO struct {
	Content string `json:"content" binding:"required"`
}

type ConsultationFilter struct {
	UserID      *int64  `json:"user_id"`
	PhoneNumber *string `json:"phone_number"`
	Replied     *bool   `json:"replied"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
}
