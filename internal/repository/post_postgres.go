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

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) PostRepository {
	return &PostRepo{db: db}
}

func (r *PostRepo) Create(ctx context.Context, userID *int64, dto domain.CreatePostDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO posts (user_id, author_name, title, content, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, userID, dto.AuthorName, dto.Title, dto.Content, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}

	return id, nil
}

const postColumns = `id, user_id, author_name, title, content, view_count, created_at, updated_at`

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var p domain.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.AuthorName, &p.Title, &p.Content, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &p, nil
}

func (r *PostRepo) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, dto.Title, dto.Content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PostRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	countQuery := `SELECT COUNT(*) FROM posts WHERE 1=1`
	selectQuery := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.Keyword != nil {
		conditions += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*filter.Keyword+"%")
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.AuthorName, &p.Title, &p.Content, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

func (r *PostRepo) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment post view count: %w", err)
	}
	return nil
}
