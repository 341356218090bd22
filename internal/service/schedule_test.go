package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"smileon/internal/cache"
	"smileon/internal/domain"
)

func newScheduleService(resRepo *fakeReservationRepo, schedRepo *fakeScheduleRepo, c *fakeScheduleCache) *ScheduleServiceImpl {
	// A typed nil pointer inside the interface would defeat the service's
	// nil check, so a nil fake must stay a nil interface.
	var sc cache.ScheduleCache
	if c != nil {
		sc = c
	}
	return NewScheduleService(schedRepo, resRepo, sc, zap.NewNop())
}

func TestBlockSlotOccupied(t *testing.T) {
	tests := []struct {
		name   string
		active [2]int
	}{
		{"pending reservation", [2]int{1, 0}},
		{"confirmed reservation", [2]int{0, 1}},
		{"both", [2]int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resRepo := newFakeReservationRepo()
			schedRepo := newFakeScheduleRepo()
			resRepo.active[slotKey("2026-03-02", "10:00")] = tt.active

			svc := newScheduleService(resRepo, schedRepo, nil)

			_, err := svc.BlockSlot(context.Background(), domain.BlockSlotDTO{SlotDate: "2026-03-02", SlotTime: "10:00"})
			if !errors.Is(err, domain.ErrSlotOccupied) {
				t.Fatalf("BlockSlot() error = %v, want ErrSlotOccupied", err)
			}
			if schedRepo.createCalls != 0 {
				t.Errorf("BlockSlot() wrote despite occupied slot")
			}
		})
	}
}

func TestBlockSlot(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	c := newFakeScheduleCache()

	svc := newScheduleService(resRepo, schedRepo, c)

	id, err := svc.BlockSlot(context.Background(), domain.BlockSlotDTO{SlotDate: "2026-03-02", SlotTime: "10:00"})
	if err != nil {
		t.Fatalf("BlockSlot() error = %v", err)
	}
	if id == 0 {
		t.Errorf("BlockSlot() returned zero id")
	}

	if len(c.invalidated) != 1 || c.invalidated[0] != "2026-03" {
		t.Errorf("BlockSlot() invalidated = %v, want [2026-03]", c.invalidated)
	}

	// Blocking the same slot again reports the conflict.
	if _, err := svc.BlockSlot(context.Background(), domain.BlockSlotDTO{SlotDate: "2026-03-02", SlotTime: "10:00"}); !errors.Is(err, domain.ErrAlreadyBlocked) {
		t.Errorf("second BlockSlot() error = %v, want ErrAlreadyBlocked", err)
	}
}

func TestBlockSlotValidation(t *testing.T) {
	svc := newScheduleService(newFakeReservationRepo(), newFakeScheduleRepo(), nil)

	if _, err := svc.BlockSlot(context.Background(), domain.BlockSlotDTO{SlotDate: "2026-3-2", SlotTime: "10:00"}); err == nil {
		t.Errorf("BlockSlot() accepted malformed date")
	}

	if _, err := svc.BlockSlot(context.Background(), domain.BlockSlotDTO{SlotDate: "2026-03-02", SlotTime: "13:00"}); !errors.Is(err, domain.ErrUnknownTimeSlot) {
		t.Errorf("BlockSlot(13:00) error = %v, want ErrUnknownTimeSlot", err)
	}
}

func TestUnblockSlot(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	c := newFakeScheduleCache()

	svc := newScheduleService(resRepo, schedRepo, c)

	dto := domain.BlockSlotDTO{SlotDate: "2026-03-02", SlotTime: "14:00"}

	if err := svc.UnblockSlot(context.Background(), dto); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UnblockSlot() on free slot error = %v, want ErrNotFound", err)
	}

	if _, err := svc.BlockSlot(context.Background(), dto); err != nil {
		t.Fatalf("BlockSlot() error = %v", err)
	}
	if err := svc.UnblockSlot(context.Background(), dto); err != nil {
		t.Fatalf("UnblockSlot() error = %v", err)
	}
}

func TestGetMonthSchedule(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()

	resRepo.counts = []domain.SlotCount{
		{SlotDate: "2026-03-02", SlotTime: "10:00", Pending: 2},
		{SlotDate: "2026-03-02", SlotTime: "11:00", Confirmed: 1},
		{SlotDate: "2026-03-05", SlotTime: "14:00", Pending: 1, Confirmed: 1},
	}
	schedRepo.blocked[slotKey("2026-03-02", "12:00")] = domain.BlockedSlot{ID: 1, SlotDate: "2026-03-02", SlotTime: "12:00"}

	svc := newScheduleService(resRepo, schedRepo, nil)

	schedule, err := svc.GetMonthSchedule(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("GetMonthSchedule() error = %v", err)
	}

	if got := domain.ResolveSlotStatus(schedule, "2026-03-02", "10:00"); got != domain.SlotStatusPending {
		t.Errorf("10:00 = %s, want pending", got)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-02", "11:00"); got != domain.SlotStatusConfirmed {
		t.Errorf("11:00 = %s, want confirmed", got)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-02", "12:00"); got != domain.SlotStatusBlocked {
		t.Errorf("12:00 = %s, want blocked", got)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-05", "14:00"); got != domain.SlotStatusConfirmed {
		t.Errorf("05 14:00 = %s, want confirmed", got)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-09", "10:00"); got != domain.SlotStatusAvailable {
		t.Errorf("untouched day = %s, want available", got)
	}

	if state := schedule["2026-03-02"]["10:00"]; state.Pending != 2 {
		t.Errorf("pending count = %d, want 2", state.Pending)
	}
}

func TestGetMonthScheduleValidation(t *testing.T) {
	svc := newScheduleService(newFakeReservationRepo(), newFakeScheduleRepo(), nil)

	for _, tt := range []struct {
		year, month int
	}{
		{2026, 0}, {2026, 13}, {99, 3}, {10000, 3},
	} {
		if _, err := svc.GetMonthSchedule(context.Background(), tt.year, tt.month); err == nil {
			t.Errorf("GetMonthSchedule(%d, %d) accepted invalid input", tt.year, tt.month)
		}
	}
}

func TestGetMonthScheduleCache(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	c := newFakeScheduleCache()

	cached := domain.Schedule{
		"2026-03-02": {"10:00": {Blocked: true}},
	}
	c.Set(context.Background(), 2026, 3, cached)

	// The counts would produce a different answer; a cache hit must win.
	resRepo.counts = []domain.SlotCount{{SlotDate: "2026-03-02", SlotTime: "10:00", Pending: 1}}

	svc := newScheduleService(resRepo, schedRepo, c)

	schedule, err := svc.GetMonthSchedule(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("GetMonthSchedule() error = %v", err)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-02", "10:00"); got != domain.SlotStatusBlocked {
		t.Errorf("cache hit returned %s, want blocked", got)
	}

	// After invalidation the fresh assembly is served and cached again.
	c.Invalidate(context.Background(), 2026, 3)
	schedule, err = svc.GetMonthSchedule(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("GetMonthSchedule() error = %v", err)
	}
	if got := domain.ResolveSlotStatus(schedule, "2026-03-02", "10:00"); got != domain.SlotStatusPending {
		t.Errorf("fresh assembly returned %s, want pending", got)
	}
	if _, ok := c.Get(context.Background(), 2026, 3); !ok {
		t.Errorf("fresh assembly was not written back to the cache")
	}
}
