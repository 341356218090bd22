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

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) DoctorRepository {
	return &DoctorRepo{db: db}
}

func (r *DoctorRepo) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO doctors (name, position, specialty, introduction, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		dto.Name, dto.Position, dto.Specialty, dto.Introduction, dto.DisplayOrder, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create doctor: %w", err)
	}

	return id, nil
}

const doctorColumns = `id, name, position, specialty, introduction, COALESCE(photo_url, ''), display_order, created_at, updated_at`

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`

	var d domain.Doctor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Position, &d.Specialty, &d.Introduction,
		&d.PhotoURL, &d.DisplayOrder, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	return &d, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	query := `
		UPDATE doctors
		SET name = COALESCE($1, name),
		    position = COALESCE($2, position),
		    specialty = COALESCE($3, specialty),
		    introduction = COALESCE($4, introduction),
		    display_order = COALESCE($5, display_order),
		    updated_at = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		dto.Name, dto.Position, dto.Specialty, dto.Introduction, dto.DisplayOrder, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE doctors SET photo_url = NULLIF($1, ''), updated_at = $2 WHERE id = $3`,
		photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update doctor photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		err := rows.Scan(
			&d.ID, &d.Name, &d.Position, &d.Specialty, &d.Introduction,
			&d.PhotoURL, &d.DisplayOrder, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan doctor row: %w", err)
		}
		doctors = append(doctors, d)
	}

	return doctors, rows.Err()
}

func (r *DoctorRepo) AddEducation(ctx context.Context, doctorID int64, dto domain.DoctorEducationDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO doctor_educations (doctor_id, school, degree, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, doctorID, dto.School, dto.Degree, dto.Year).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add doctor education: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) DeleteEducation(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctor_educations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) ListEducation(ctx context.Context, doctorID int64) ([]domain.DoctorEducation, error) {
	query := `
		SELECT id, doctor_id, school, degree, year
		FROM doctor_educations
		WHERE doctor_id = $1
		ORDER BY year NULLS LAST, id
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor education: %w", err)
	}
	defer rows.Close()

	var educations []domain.DoctorEducation
	for rows.Next() {
		var e domain.DoctorEducation
		if err := rows.Scan(&e.ID, &e.DoctorID, &e.School, &e.Degree, &e.Year); err != nil {
			return nil, fmt.Errorf("scan doctor education row: %w", err)
		}
		educations = append(educations, e)
	}

	return educations, rows.Err()
}

func (r *DoctorRepo) AddCareer(ctx context.Context, doctorID int64, dto domain.DoctorCareerDTO) (int64, error) {
	var id int64

	query := `
		INSERT INTO doctor_careers (doctor_id, title, current)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, doctorID, dto.Title, dto.Current).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add doctor career: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) DeleteCareer(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctor_careers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor career: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) ListCareers(ctx context.Context, doctorID int64) ([]domain.DoctorCareer, error) {
	query := `
		SELECT id, doctor_id, title, current
		FROM doctor_careers
		WHERE doctor_id = $1
		ORDER BY current DESC, id
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor careers: %w", err)
	}
	defer rows.Close()

	var careers []domain.DoctorCareer
	for rows.Next() {
		var c domain.DoctorCareer
		if err := rows.Scan(&c.ID, &c.DoctorID, &c.Title, &c.Current); err != nil {
			return nil, fmt.Errorf("scan doctor career row: %w", err)
		}
		careers = append(careers, c)
	}

	return careers, rows.Err()
}
