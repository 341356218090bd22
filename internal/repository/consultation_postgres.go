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

type ConsultationRepo struct {
	db *pgxpool.Pool
}

func NewConsultationRepository(db *pgxpool.Pool) ConsultationRepository {
	return &ConsultationRepo{db: db}
}

func (r *ConsultationRepo) Create(ctx context.Context, userID *int64, dto domain.CreateConsultationDTO, passwordHash string) (int64, error) {
	var id int64

	query := `
		INSERT INTO consultations (
			user_id, author_name, phone_number, title, content, is_secret, password_hash, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		userID,
		dto.AuthorName,
		dto.PhoneNumber,
		dto.Title,
		dto.Content,
		dto.IsSecret,
		passwordHash,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("create consultation: %w", err)
	}

	return id, nil
}

const consultationColumns = `id, user_id, author_name, phone_number, title, content, is_secret, password_hash, reply, replied_at, created_at, updated_at`

func (r *ConsultationRepo) GetByID(ctx context.Context, id int64) (*domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`

	var c domain.Consultation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.UserID,
		&c.AuthorName,
		&c.PhoneNumber,
		&c.Title,
		&c.Content,
		&c.IsSecret,
		&c.PasswordHash,
		&c.Reply,
		&c.RepliedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get consultation: %w", err)
	}

	return &c, nil
}

func (r *ConsultationRepo) Update(ctx context.Context, id int64, dto domain.UpdateConsultationDTO) error {
	query := `
		UPDATE consultations
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, dto.Title, dto.Content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update consultation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ConsultationRepo) SetReply(ctx context.Context, id int64, content string) error {
	query := `UPDATE consultations SET reply = $1, replied_at = $2, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set consultation reply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ConsultationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ConsultationRepo) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	countQuery := `SELECT COUNT(*) FROM consultations WHERE 1=1`
	selectQuery := `SELECT ` + consultationColumns + ` FROM consultations WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.UserID != nil {
		conditions += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, *filter.UserID)
		argPos++
	}

	if filter.PhoneNumber != nil {
		conditions += fmt.Sprintf(" AND phone_number = $%d", argPos)
		args = append(args, *filter.PhoneNumber)
		argPos++
	}

	if filter.Replied != nil {
		if *filter.Replied {
			conditions += " AND reply IS NOT NULL"
		} else {
			conditions += " AND reply IS NULL"
		}
	}

	countQuery += conditions
	selectQuery += conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count consultations: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list consultations: %w", err)
	}
	defer rows.Close()

	var consultations []domain.Consultation
	for rows.Next() {
		var c domain.Consultation
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.AuthorName,
			&c.PhoneNumber,
			&c.Title,
			&c.Content,
			&c.IsSecret,
			&c.PasswordHash,
			&c.Reply,
			&c.RepliedAt,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan consultation row: %w", err)
		}
		consultations = append(consultations, c)
	}

	return consultations, total, rows.Err()
}
