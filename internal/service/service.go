package service

import (
	"context"

	"go.uber.org/zap"

	"smileon/config"
	"smileon/internal/cache"
	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/internal/storage"
)

type Deps struct {
	Repos         *repository.Repositories
	Logger        *zap.Logger
	Config        *config.Config
	FileStorage   storage.FileStorage
	ScheduleCache cache.ScheduleCache
}

type Services struct {
	User         UserService
	Auth         AuthService
	Reservation  ReservationService
	Schedule     ScheduleService
	Consultation ConsultationService
	Notice       NoticeService
	Post         PostService
	Review       ReviewService
	Doctor       DoctorService
	FAQ          FAQService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Config.Admin, deps.Logger),
		Reservation:  NewReservationService(deps.Repos.Reservation, deps.Repos.Schedule, deps.ScheduleCache, deps.Config.JWT, deps.Logger),
		Schedule:     NewScheduleService(deps.Repos.Schedule, deps.Repos.Reservation, deps.ScheduleCache, deps.Logger),
		Consultation: NewConsultationService(deps.Repos.Consultation, deps.Logger),
		Notice:       NewNoticeService(deps.Repos.Notice, deps.Logger),
		Post:         NewPostService(deps.Repos.Post, deps.Logger),
		Review:       NewReviewService(deps.Repos.Review, deps.Logger),
		Doctor:       NewDoctorService(deps.Repos.Doctor, deps.FileStorage, deps.Logger),
		FAQ:          NewFAQService(deps.Repos.FAQ, deps.Logger),
	}
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	AdminLogin(ctx context.Context, dto domain.AdminLoginRequest) (string, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type ReservationService interface {
	Create(ctx context.Context, userID *int64, dto domain.CreateReservationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// Verify exchanges (name, phone) for a short-lived lookup token plus the
	// matching reservations.
	Verify(ctx context.Context, dto domain.VerifyReservationDTO) (string, []domain.Reservation, error)
	ParseLookupToken(token string) (string, error)
	ListByPhone(ctx context.Context, phone string, limit, offset int) ([]domain.Reservation, int, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, int, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	CancelOwn(ctx context.Context, id int64, phone string) error
	Delete(ctx context.Context, id int64) error
}

type ScheduleService interface {
	GetMonthSchedule(ctx context.Context, year, month int) (domain.Schedule, error)
	BlockSlot(ctx context.Context, dto domain.BlockSlotDTO) (int64, error)
	UnblockSlot(ctx context.Context, dto domain.BlockSlotDTO) error
}

type ConsultationService interface {
	Create(ctx context.Context, userID *int64, dto domain.CreateConsultationDTO) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Consultation, error)
	// GetFull skips redaction; admin handlers only.
	GetFull(ctx context.Context, id int64) (*domain.Consultation, error)
	// Verify unlocks a consultation's content. Non-secret entries verify with
	// an empty password; a wrong password yields domain.ErrVerificationFailed.
	Verify(ctx context.Context, id int64, password string) (*domain.Consultation, error)
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Consultation, int, error)
	Update(ctx context.Context, id int64, dto domain.UpdateConsultationDTO) error
	Reply(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

type NoticeService interface {
	Create(ctx context.Context, dto domain.CreateNoticeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	Update(ctx context.Context, id int64, dto domain.UpdateNoticeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, int, error)
}

type PostService interface {
	Create(ctx context.Context, userID *int64, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
}

type ReviewService interface {
	Create(ctx context.Context, userID *int64, dto domain.CreateReviewDTO) (int64, error)
	GetByID(ctx context.Context, id int64, includeUnpublished bool) (*domain.Review, error)
	Update(ctx context.Context, id int64, dto domain.UpdateReviewDTO) error
	SetPublished(ctx context.Context, id int64, published bool) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error)
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Doctor, error)

	UploadPhoto(ctx context.Context, doctorID int64, photo []byte, filename string) (string, error)
	DeletePhoto(ctx context.Context, doctorID int64) error

	AddEducation(ctx context.Context, doctorID int64, dto domain.DoctorEducationDTO) (int64, error)
	DeleteEducation(ctx context.Context, id int64) error
	AddCareer(ctx context.Context, doctorID int64, dto domain.DoctorCareerDTO) (int64, error)
	DeleteCareer(ctx context.Context, id int64) error
}

type FAQService interface {
	Create(ctx context.Context, dto domain.CreateFAQDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.FAQ, error)
	Update(ctx context.Context, id int64, dto domain.UpdateFAQDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.FAQFilter) ([]domain.FAQ, int, error)
}
