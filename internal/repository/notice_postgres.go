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

type NoticeRepo struct {
	db *pgxpool.Pool
}

func NewNoticeRepository(db *pgxpool.Pool) NoticeRepository {
	return &NoticeRepo{db: db}
}

func (r *NoticeRepo) Create(ctx context.Context, dto domain.CreateNoticeDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO notices (title, content, is_pinned, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, dto.Title, dto.Content, dto.IsPinned, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create notice: %w", err)
	}

	return id, nil
}

const noticeColumns = `id, title, content, is_pinned, view_count, created_at, updated_at`

func (r *NoticeRepo) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE id = $1`

	var n domain.Notice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Content, &n.IsPinned, &n.ViewCount, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get notice: %w", err)
	}

	return &n, nil
}

func (r *NoticeRepo) Update(ctx context.Context, id int64, dto domain.UpdateNoticeDTO) error {
	query := `
		UPDATE notices
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    is_pinned = COALESCE($3, is_pinned),
		    updated_at = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query, dto.Title, dto.Content, dto.IsPinned, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *NoticeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *NoticeRepo) List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, int, error) {
	countQuery := `SELECT COUNT(*) FROM notices WHERE 1=1`
	selectQuery := `SELECT ` + noticeColumns + ` FROM notices WHERE 1=1`

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
		return nil, 0, fmt.Errorf("count notices: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY is_pinned DESC, id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.IsPinned, &n.ViewCount, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan notice row: %w", err)
		}
		notices = append(notices, n)
	}

	return notices, total, rows.Err()
}

func (r *NoticeRepo) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE notices SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment notice view count: %w", err)
	}
	return nil
}
