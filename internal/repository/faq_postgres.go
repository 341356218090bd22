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

type FAQRepo struct {
	db *pgxpool.Pool
}

func NewFAQRepository(db *pgxpool.Pool) FAQRepository {
	return &FAQRepo{db: db}
}

func (r *FAQRepo) Create(ctx context.Context, dto domain.CreateFAQDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO faqs (category, question, answer, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, dto.Category, dto.Question, dto.Answer, dto.DisplayOrder, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create faq: %w", err)
	}

	return id, nil
}

const faqColumns = `id, category, question, answer, display_order, created_at, updated_at`

func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id = $1`

	var f domain.FAQ
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Category, &f.Question, &f.Answer, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get faq: %w", err)
	}

	return &f, nil
}

func (r *FAQRepo) Update(ctx context.Context, id int64, dto domain.UpdateFAQDTO) error {
	query := `
		UPDATE faqs
		SET category = COALESCE($1, category),
		    question = COALESCE($2, question),
		    answer = COALESCE($3, answer),
		    display_order = COALESCE($4, display_order),
		    updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query, dto.Category, dto.Question, dto.Answer, dto.DisplayOrder, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FAQRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FAQRepo) List(ctx context.Context, filter domain.FAQFilter) ([]domain.FAQ, int, error) {
	countQuery := `SELECT COUNT(*) FROM faqs WHERE 1=1`
	selectQuery := `SELECT ` + faqColumns + ` FROM faqs WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.Category != nil {
		conditions += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, *filter.Category)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count faqs: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY category, display_order, id LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Category, &f.Question, &f.Answer, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan faq row: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, total, rows.Err()
}
