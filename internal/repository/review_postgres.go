package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smileon/internal/domain"
)

type ReviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Create(ctx context.Context, userID *int64, dto domain.CreateReviewDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO reviews (user_id, author_name, title, content, rating, treatment, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		userID, dto.AuthorName, dto.Title, dto.Content, dto.Rating, dto.Treatment, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create review: %w", err)
	}

	return id, nil
}

const reviewColumns = `id, user_id, author_name, title, content, rating, treatment, is_published, created_at, updated_at`

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	var rev domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rev.ID, &rev.UserID, &rev.AuthorName, &rev.Title, &rev.Content,
		&rev.Rating, &rev.Treatment, &rev.IsPublished, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return &rev, nil
}

func (r *ReviewRepo) Update(ctx context.Context, id int64, dto domain.UpdateReviewDTO) error {
	query := `
		UPDATE reviews
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    rating = COALESCE($3, rating),
		    is_published = COALESCE($4, is_published),
		    updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query, dto.Title, dto.Content, dto.Rating, dto.IsPublished, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReviewRepo) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error) {
	countQuery := `SELECT COUNT(*) FROM reviews WHERE 1=1`
	selectQuery := `SELECT ` + reviewColumns + ` FROM reviews WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.PublishedOnly {
		conditions += " AND is_published = true"
	}

	if filter.MinRating != nil {
		conditions += fmt.Sprintf(" AND rating >= $%d", argPos)
		args = append(args, *filter.MinRating)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(
			&rev.ID, &rev.UserID, &rev.AuthorName, &rev.Title, &rev.Content,
			&rev.Rating, &rev.Treatment, &rev.IsPublished, &rev.CreatedAt, &rev.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}

	return reviews, total, rows.Err()
}
