package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"smileon/config"
	"smileon/internal/cache"
	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/pkg/validator"
)

// lookupClaims back the no-account reservation lookup: the token is scoped to
// a single phone number and lives for minutes, not days.
type lookupClaims struct {
	jwt.RegisteredClaims
	Phone string `json:"phone"`
}

type ReservationServiceImpl struct {
	reservationRepo repository.ReservationRepository
	scheduleRepo    repository.ScheduleRepository
	cache           cache.ScheduleCache
	jwtConfig       config.JWTConfig
	logger          *zap.Logger
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	scheduleRepo repository.ScheduleRepository,
	scheduleCache cache.ScheduleCache,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) *ReservationServiceImpl {
	return &ReservationServiceImpl{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		cache:           scheduleCache,
		jwtConfig:       jwtConfig,
		logger:          logger,
	}
}

func (s *ReservationServiceImpl) Create(ctx context.Context, userID *int64, dto domain.CreateReservationDTO) (int64, error) {
	if _, err := time.Parse(domain.DateKeyLayout, dto.DesiredDate); err != nil {
		return 0, errors.New("날짜 형식이 올바르지 않습니다")
	}

	if !domain.IsValidTimeSlot(dto.DesiredTime) {
		return 0, domain.ErrUnknownTimeSlot
	}

	if !validator.ValidatePhone(dto.PhoneNumber) {
		return 0, errors.New("올바른 전화번호 형식이 아닙니다")
	}
	dto.PhoneNumber = validator.NormalizePhone(dto.PhoneNumber)

	if _, err := s.scheduleRepo.GetBlockedSlot(ctx, dto.DesiredDate, dto.DesiredTime); err == nil {
		return 0, domain.ErrSlotBlocked
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to check blocked slot", zap.Error(err))
		return 0, errors.New("예약 접수 중 오류가 발생했습니다")
	}

	_, confirmed, err := s.reservationRepo.CountActiveBySlot(ctx, dto.DesiredDate, dto.DesiredTime)
	if err != nil {
		s.logger.Error("failed to check slot occupancy", zap.Error(err))
		return 0, errors.New("예약 접수 중 오류가 발생했습니다")
	}

	// A confirmed reservation consumes the slot. Pending requests may stack;
	// staff resolve them when confirming.
	if confirmed > 0 {
		return 0, domain.ErrSlotTaken
	}

	id, err := s.reservationRepo.Create(ctx, userID, dto)
	if err != nil {
		s.logger.Error("failed to create reservation", zap.Error(err))
		return 0, errors.New("예약 접수 중 오류가 발생했습니다")
	}

	InvalidateMonthFor(ctx, s.cache, dto.DesiredDate)

	return id, nil
}

func (s *ReservationServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("예약을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get reservation", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("예약 조회 중 오류가 발생했습니다")
	}

	return reservation, nil
}

func (s *ReservationServiceImpl) Verify(ctx context.Context, dto domain.VerifyReservationDTO) (string, []domain.Reservation, error) {
	phone := validator.NormalizePhone(dto.PhoneNumber)

	filter := domain.ReservationFilter{
		PhoneNumber: &phone,
		Limit:       50,
	}

	reservations, _, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list reservations for lookup", zap.Error(err))
		return "", nil, errors.New("예약 조회 중 오류가 발생했습니다")
	}

	matched := reservations[:0:0]
	for _, r := range reservations {
		if r.PatientName == dto.PatientName {
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		return "", nil, errors.New("일치하는 예약이 없습니다")
	}

	claims := lookupClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.ReservationTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Phone: phone,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		s.logger.Error("failed to sign lookup token", zap.Error(err))
		return "", nil, errors.New("예약 조회 중 오류가 발생했습니다")
	}

	return signed, matched, nil
}

// ParseLookupToken returns the phone number a lookup token is scoped to.
func (s *ReservationServiceImpl) ParseLookupToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &lookupClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return "", errors.New("유효하지 않은 토큰입니다")
	}

	claims, ok := token.Claims.(*lookupClaims)
	if !ok || !token.Valid || claims.Phone == "" {
		return "", errors.New("유효하지 않은 토큰입니다")
	}

	return claims.Phone, nil
}

func (s *ReservationServiceImpl) ListByPhone(ctx context.Context, phone string, limit, offset int) ([]domain.Reservation, int, error) {
	filter := domain.ReservationFilter{
		PhoneNumber: &phone,
		Limit:       limit,
		Offset:      offset,
	}
	return s.list(ctx, filter)
}

func (s *ReservationServiceImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, int, error) {
	filter := domain.ReservationFilter{
		UserID: &userID,
		Limit:  limit,
		Offset: offset,
	}
	return s.list(ctx, filter)
}

func (s *ReservationServiceImpl) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	return s.list(ctx, filter)
}

func (s *ReservationServiceImpl) list(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	reservations, total, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list reservations", zap.Error(err))
		return nil, 0, errors.New("예약 목록을 불러오지 못했습니다")
	}
	return reservations, total, nil
}

func (s *ReservationServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("예약을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get reservation", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 상태 변경 중 오류가 발생했습니다")
	}

	if !reservation.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update reservation status", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 상태 변경 중 오류가 발생했습니다")
	}

	InvalidateMonthFor(ctx, s.cache, reservation.DesiredDate)

	return nil
}

// CancelOwn lets a lookup-token holder cancel their own pending reservation.
func (s *ReservationServiceImpl) CancelOwn(ctx context.Context, id int64, phone string) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("예약을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get reservation", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 취소 중 오류가 발생했습니다")
	}

	if reservation.PhoneNumber != phone {
		return errors.New("본인의 예약만 취소할 수 있습니다")
	}

	if !reservation.Status.CanTransitionTo(domain.ReservationStatusCancelled) {
		return domain.ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled); err != nil {
		s.logger.Error("failed to cancel reservation", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 취소 중 오류가 발생했습니다")
	}

	InvalidateMonthFor(ctx, s.cache, reservation.DesiredDate)

	return nil
}

func (s *ReservationServiceImpl) Delete(ctx context.Context, id int64) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("예약을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get reservation", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 삭제 중 오류가 발생했습니다")
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete reservation", zap.Int64("id", id), zap.Error(err))
		return errors.New("예약 삭제 중 오류가 발생했습니다")
	}

	InvalidateMonthFor(ctx, s.cache, reservation.DesiredDate)

	return nil
}
