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

type ScheduleRepo struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) CreateBlockedSlot(ctx context.Context, date, timeSlot string) (int64, error) {
	var id int64

	query := `
		INSERT INTO blocked_slots (slot_date, slot_time, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot_date, slot_time) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, date, timeSlot, time.Now()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict target hit: the slot is already blocked.
			return 0, domain.ErrAlreadyBlocked
		}
		return 0, fmt.Errorf("create blocked slot: %w", err)
	}

	return id, nil
}

func (r *ScheduleRepo) DeleteBlockedSlot(ctx context.Context, date, timeSlot string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blocked_slots WHERE slot_date = $1 AND slot_time = $2`, date, timeSlot)
	if err != nil {
		return fmt.Errorf("delete blocked slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ScheduleRepo) GetBlockedSlot(ctx context.Context, date, timeSlot string) (*domain.BlockedSlot, error) {
	query := `
		SELECT id, to_char(slot_date, 'YYYY-MM-DD'), slot_time, created_at
		FROM blocked_slots
		WHERE slot_date = $1 AND slot_time = $2
	`

	var slot domain.BlockedSlot
	err := r.db.QueryRow(ctx, query, date, timeSlot).Scan(&slot.ID, &slot.SlotDate, &slot.SlotTime, &slot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blocked slot: %w", err)
	}

	return &slot, nil
}

func (r *ScheduleRepo) ListBlockedSlotsByRange(ctx context.Context, from, to string) ([]domain.BlockedSlot, error) {
	query := `
		SELECT id, to_char(slot_date, 'YYYY-MM-DD'), slot_time, created_at
		FROM blocked_slots
		WHERE slot_date >= $1 AND slot_date < $2
		ORDER BY slot_date, slot_time
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list blocked slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.BlockedSlot
	for rows.Next() {
		var slot domain.BlockedSlot
		if err := rows.Scan(&slot.ID, &slot.SlotDate, &slot.SlotTime, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blocked slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}
