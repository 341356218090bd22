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

type ReservationRepo struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Create(ctx context.Context, userID *int64, dto domain.CreateReservationDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO reservations (
			user_id, patient_name, phone_number, desired_date, desired_time, notes, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		userID,
		dto.PatientName,
		dto.PhoneNumber,
		dto.DesiredDate,
		dto.DesiredTime,
		dto.Notes,
		domain.ReservationStatusPending,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("create reservation: %w", err)
	}

	return id, nil
}

const reservationColumns = `id, user_id, patient_name, phone_number, to_char(desired_date, 'YYYY-MM-DD'), desired_time, notes, status, created_at, updated_at`

func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var res domain.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.UserID,
		&res.PatientName,
		&res.PhoneNumber,
		&res.DesiredDate,
		&res.DesiredTime,
		&res.Notes,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	countQuery := `SELECT COUNT(*) FROM reservations WHERE 1=1`
	selectQuery := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`

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

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND desired_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND desired_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}

	selectQuery += fmt.Sprintf(" ORDER BY desired_date DESC, desired_time DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.PatientName,
			&res.PhoneNumber,
			&res.DesiredDate,
			&res.DesiredTime,
			&res.Notes,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, total, rows.Err()
}

func (r *ReservationRepo) CountByMonth(ctx context.Context, firstDay, nextMonthDay string) ([]domain.SlotCount, error) {
	query := `
		SELECT to_char(desired_date, 'YYYY-MM-DD'),
		       desired_time,
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'confirmed')
		FROM reservations
		WHERE desired_date >= $1 AND desired_date < $2
		  AND status IN ('pending', 'confirmed')
		GROUP BY desired_date, desired_time
	`

	rows, err := r.db.Query(ctx, query, firstDay, nextMonthDay)
	if err != nil {
		return nil, fmt.Errorf("count reservations by month: %w", err)
	}
	defer rows.Close()

	var counts []domain.SlotCount
	for rows.Next() {
		var c domain.SlotCount
		if err := rows.Scan(&c.SlotDate, &c.SlotTime, &c.Pending, &c.Confirmed); err != nil {
			return nil, fmt.Errorf("scan slot count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *ReservationRepo) CountActiveBySlot(ctx context.Context, date, timeSlot string) (int, int, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'confirmed')
		FROM reservations
		WHERE desired_date = $1 AND desired_time = $2
	`

	var pending, confirmed int
	if err := r.db.QueryRow(ctx, query, date, timeSlot).Scan(&pending, &confirmed); err != nil {
		return 0, 0, fmt.Errorf("count reservations by slot: %w", err)
	}

	return pending, confirmed, nil
}
