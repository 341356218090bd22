package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"smileon/internal/cache"
	"smileon/internal/domain"
	"smileon/internal/repository"
)

type ScheduleServiceImpl struct {
	scheduleRepo    repository.ScheduleRepository
	reservationRepo repository.ReservationRepository
	cache           cache.ScheduleCache
	logger          *zap.Logger
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	reservationRepo repository.ReservationRepository,
	scheduleCache cache.ScheduleCache,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		cache:           scheduleCache,
		logger:          logger,
	}
}

func monthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format(domain.DateKeyLayout), first.AddDate(0, 1, 0).Format(domain.DateKeyLayout)
}

func validateMonth(year, month int) error {
	if year < 1000 || year > 9999 {
		return errors.New("연도 형식이 올바르지 않습니다")
	}
	if month < 1 || month > 12 {
		return errors.New("월은 1에서 12 사이여야 합니다")
	}
	return nil
}

// GetMonthSchedule assembles the month's slot map from reservation counts and
// blocked slots. Days and slots with nothing to report are absent; the client
// resolves those to available.
func (s *ScheduleServiceImpl) GetMonthSchedule(ctx context.Context, year, month int) (domain.Schedule, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, year, month); ok {
			return cached, nil
		}
	}

	firstDay, nextMonthDay := monthRange(year, month)

	counts, err := s.reservationRepo.CountByMonth(ctx, firstDay, nextMonthDay)
	if err != nil {
		s.logger.Error("failed to aggregate reservations", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, errors.New("예약 현황을 불러오지 못했습니다")
	}

	blocked, err := s.scheduleRepo.ListBlockedSlotsByRange(ctx, firstDay, nextMonthDay)
	if err != nil {
		s.logger.Error("failed to list blocked slots", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, errors.New("예약 현황을 불러오지 못했습니다")
	}

	schedule := make(domain.Schedule)

	upsert := func(date, timeSlot string) *domain.SlotState {
		day, ok := schedule[date]
		if !ok {
			day = make(domain.DaySlots)
			schedule[date] = day
		}
		state := day[timeSlot]
		return &state
	}

	for _, c := range counts {
		state := upsert(c.SlotDate, c.SlotTime)
		state.Pending = c.Pending
		state.Confirmed = c.Confirmed
		schedule[c.SlotDate][c.SlotTime] = *state
	}

	for _, b := range blocked {
		state := upsert(b.SlotDate, b.SlotTime)
		state.Blocked = true
		schedule[b.SlotDate][b.SlotTime] = *state
	}

	if s.cache != nil {
		s.cache.Set(ctx, year, month, schedule)
	}

	return schedule, nil
}

func validateSlot(date, timeSlot string) error {
	if _, err := time.Parse(domain.DateKeyLayout, date); err != nil {
		return errors.New("날짜 형식이 올바르지 않습니다")
	}
	if !domain.IsValidTimeSlot(timeSlot) {
		return domain.ErrUnknownTimeSlot
	}
	return nil
}

// BlockSlot closes a slot for new reservations. A slot holding pending or
// confirmed reservations cannot be blocked; the caller gets ErrSlotOccupied
// and nothing is written.
func (s *ScheduleServiceImpl) BlockSlot(ctx context.Context, dto domain.BlockSlotDTO) (int64, error) {
	if err := validateSlot(dto.SlotDate, dto.SlotTime); err != nil {
		return 0, err
	}

	pending, confirmed, err := s.reservationRepo.CountActiveBySlot(ctx, dto.SlotDate, dto.SlotTime)
	if err != nil {
		s.logger.Error("failed to check slot occupancy", zap.String("date", dto.SlotDate), zap.String("time", dto.SlotTime), zap.Error(err))
		return 0, errors.New("시간 차단 중 오류가 발생했습니다")
	}

	if pending > 0 || confirmed > 0 {
		return 0, domain.ErrSlotOccupied
	}

	id, err := s.scheduleRepo.CreateBlockedSlot(ctx, dto.SlotDate, dto.SlotTime)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyBlocked) {
			return 0, err
		}
		s.logger.Error("failed to create blocked slot", zap.Error(err))
		return 0, errors.New("시간 차단 중 오류가 발생했습니다")
	}

	s.invalidateMonth(ctx, dto.SlotDate)

	return id, nil
}

func (s *ScheduleServiceImpl) UnblockSlot(ctx context.Context, dto domain.BlockSlotDTO) error {
	if err := validateSlot(dto.SlotDate, dto.SlotTime); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteBlockedSlot(ctx, dto.SlotDate, dto.SlotTime); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete blocked slot", zap.Error(err))
		return errors.New("차단 해제 중 오류가 발생했습니다")
	}

	s.invalidateMonth(ctx, dto.SlotDate)

	return nil
}

func (s *ScheduleServiceImpl) invalidateMonth(ctx context.Context, date string) {
	if s.cache == nil {
		return
	}

	t, err := time.Parse(domain.DateKeyLayout, date)
	if err != nil {
		return
	}

	s.cache.Invalidate(ctx, t.Year(), int(t.Month()))
}

// InvalidateMonthFor is shared with the reservation flow: any reservation
// mutation changes the aggregate counts for its month.
func InvalidateMonthFor(ctx context.Context, scheduleCache cache.ScheduleCache, date string) {
	if scheduleCache == nil {
		return
	}

	t, err := time.Parse(domain.DateKeyLayout, date)
	if err != nil {
		return
	}

	scheduleCache.Invalidate(ctx, t.Year(), int(t.Month()))
}
