package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"smileon/internal/domain"
)

type Repositories struct {
	User         UserRepository
	Auth         AuthRepository
	Reservation  ReservationRepository
	Schedule     ScheduleRepository
	Consultation ConsultationRepository
	Notice       NoticeRepository
	Post         PostRepository
	Review       ReviewRepository
	Doctor       DoctorRepository
	FAQ          FAQRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Auth:         NewAuthRepository(db),
		Reservation:  NewReservationRepository(db),
		Schedule:     NewScheduleRepository(db),
		Consultation: NewConsultationRepository(db),
		Notice:       NewNoticeRepository(db),
		Post:         NewPostRepository(db),
		Review:       NewReviewRepository(db),
		Doctor:       NewDoctorRepository(db),
		FAQ:          NewFAQRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, userID *int64, reservation domain.CreateReservationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error)
	// CountByMonth aggregates pending/confirmed counts per (date, time) cell
	// for the month starting at firstDay (YYYY-MM-DD, inclusive..exclusive next month).
	CountByMonth(ctx context.Context, firstDay, nextMonthDay string) ([]domain.SlotCount, error)
	// CountActiveBySlot counts non-cancelled, non-completed reservations on one slot.
	CountActiveBySlot(ctx context.Context, date, timeSlot string) (pending int, confirmed int, err error)
}

type ScheduleRepository interface {
	CreateBlockedSlot(ctx context.Context, date, timeSlot string) (int64, error)
	DeleteBlockedSlot(ctx context.Context, date, timeSlot string) error
	GetBlockedSlot(ctx context.Context, date, timeSlot string) (*domain.BlockedSlot, error)
	ListBlockedSlotsByRange(ctx context.Context, from, to string) ([]domain.BlockedSlot, error)
}

type ConsultationRepository interface {
	Create(ctx context.Context, userID *int64, dto domain.CreateConsultationDTO, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultation, error)
	Update(ctx context.Context, id int64, dto domain.UpdateConsultationDTO) error
	SetReply(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, dto domain.CreateNoticeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	Update(ctx context.Context, id int64, dto domain.UpdateNoticeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, int, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, userID *int64, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, userID *int64, dto domain.CreateReviewDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	Update(ctx context.Context, id int64, dto domain.UpdateReviewDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Doctor, error)

	AddEducation(ctx context.Context, doctorID int64, dto domain.DoctorEducationDTO) (int64, error)
	DeleteEducation(ctx context.Context, id int64) error
	ListEducation(ctx context.Context, doctorID int64) ([]domain.DoctorEducation, error)

	AddCareer(ctx context.Context, doctorID int64, dto domain.DoctorCareerDTO) (int64, error)
	DeleteCareer(ctx context.Context, id int64) error
	ListCareers(ctx context.Context, doctorID int64) ([]domain.DoctorCareer, error)
}

type FAQRepository interface {
	Create(ctx context.Context, dto domain.CreateFAQDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.FAQ, error)
	Update(ctx context.Context, id int64, dto domain.UpdateFAQDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.FAQFilter) ([]domain.FAQ, int, error)
}
