package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"smileon/config"
	"smileon/internal/cache"
	"smileon/internal/domain"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SigningKey:          "test-signing-key",
		AccessTokenTTL:      30 * time.Minute,
		RefreshTokenTTL:     168 * time.Hour,
		ReservationTokenTTL: 30 * time.Minute,
	}
}

func newReservationService(resRepo *fakeReservationRepo, schedRepo *fakeScheduleRepo, c *fakeScheduleCache) *ReservationServiceImpl {
	var sc cache.ScheduleCache
	if c != nil {
		sc = c
	}
	return NewReservationService(resRepo, schedRepo, sc, testJWTConfig(), zap.NewNop())
}

func validCreateDTO() domain.CreateReservationDTO {
	return domain.CreateReservationDTO{
		PatientName: "김철수",
		PhoneNumber: "010-1234-5678",
		DesiredDate: "2026-03-02",
		DesiredTime: "10:00",
	}
}

func TestCreateReservation(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	c := newFakeScheduleCache()

	svc := newReservationService(resRepo, schedRepo, c)

	id, err := svc.Create(context.Background(), nil, validCreateDTO())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r := resRepo.reservations[id]
	if r == nil {
		t.Fatalf("reservation not stored")
	}
	if r.Status != domain.ReservationStatusPending {
		t.Errorf("status = %s, want pending", r.Status)
	}
	if r.PhoneNumber != "01012345678" {
		t.Errorf("phone not normalized: %s", r.PhoneNumber)
	}

	if len(c.invalidated) != 1 || c.invalidated[0] != "2026-03" {
		t.Errorf("Create() invalidated = %v, want [2026-03]", c.invalidated)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	svc := newReservationService(newFakeReservationRepo(), newFakeScheduleRepo(), nil)

	dto := validCreateDTO()
	dto.DesiredTime = "13:00"
	if _, err := svc.Create(context.Background(), nil, dto); !errors.Is(err, domain.ErrUnknownTimeSlot) {
		t.Errorf("Create(13:00) error = %v, want ErrUnknownTimeSlot", err)
	}

	dto = validCreateDTO()
	dto.DesiredDate = "02.03.2026"
	if _, err := svc.Create(context.Background(), nil, dto); err == nil {
		t.Errorf("Create() accepted malformed date")
	}

	dto = validCreateDTO()
	dto.PhoneNumber = "12345"
	if _, err := svc.Create(context.Background(), nil, dto); err == nil {
		t.Errorf("Create() accepted malformed phone")
	}
}

func TestCreateReservationBlockedSlot(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	schedRepo.blocked[slotKey("2026-03-02", "10:00")] = domain.BlockedSlot{ID: 1, SlotDate: "2026-03-02", SlotTime: "10:00"}

	svc := newReservationService(resRepo, schedRepo, nil)

	if _, err := svc.Create(context.Background(), nil, validCreateDTO()); !errors.Is(err, domain.ErrSlotBlocked) {
		t.Errorf("Create() error = %v, want ErrSlotBlocked", err)
	}
	if resRepo.createCalls != 0 {
		t.Errorf("Create() wrote despite blocked slot")
	}
}

func TestCreateReservationTakenSlot(t *testing.T) {
	resRepo := newFakeReservationRepo()
	schedRepo := newFakeScheduleRepo()
	resRepo.active[slotKey("2026-03-02", "10:00")] = [2]int{0, 1}

	svc := newReservationService(resRepo, schedRepo, nil)

	if _, err := svc.Create(context.Background(), nil, validCreateDTO()); !errors.Is(err, domain.ErrSlotTaken) {
		t.Errorf("Create() error = %v, want ErrSlotTaken", err)
	}

	// Pending requests stack; only a confirmed reservation consumes the slot.
	resRepo.active[slotKey("2026-03-02", "10:00")] = [2]int{3, 0}
	if _, err := svc.Create(context.Background(), nil, validCreateDTO()); err != nil {
		t.Errorf("Create() on pending-only slot error = %v", err)
	}
}

func TestVerifyAndLookupToken(t *testing.T) {
	resRepo := newFakeReservationRepo()
	svc := newReservationService(resRepo, newFakeScheduleRepo(), nil)

	if _, err := svc.Create(context.Background(), nil, validCreateDTO()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	token, matched, err := svc.Verify(context.Background(), domain.VerifyReservationDTO{
		PatientName: "김철수",
		PhoneNumber: "010-1234-5678",
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if len(matched) != 1 {
		t.Errorf("Verify() matched %d reservations, want 1", len(matched))
	}

	phone, err := svc.ParseLookupToken(token)
	if err != nil {
		t.Fatalf("ParseLookupToken() error = %v", err)
	}
	if phone != "01012345678" {
		t.Errorf("token phone = %s, want 01012345678", phone)
	}

	// Name mismatch must not leak the phone's reservations.
	if _, _, err := svc.Verify(context.Background(), domain.VerifyReservationDTO{
		PatientName: "박영희",
		PhoneNumber: "010-1234-5678",
	}); err == nil {
		t.Errorf("Verify() accepted mismatched name")
	}

	if _, err := svc.ParseLookupToken("not-a-token"); err == nil {
		t.Errorf("ParseLookupToken() accepted garbage")
	}
}

func TestUpdateStatus(t *testing.T) {
	resRepo := newFakeReservationRepo()
	c := newFakeScheduleCache()
	svc := newReservationService(resRepo, newFakeScheduleRepo(), c)

	id, err := svc.Create(context.Background(), nil, validCreateDTO())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	c.invalidated = nil

	if err := svc.UpdateStatus(context.Background(), id, domain.ReservationStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus(confirmed) error = %v", err)
	}
	if len(c.invalidated) != 1 {
		t.Errorf("UpdateStatus() did not invalidate the month")
	}

	if err := svc.UpdateStatus(context.Background(), id, domain.ReservationStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus(completed) error = %v", err)
	}

	// Terminal states are frozen.
	if err := svc.UpdateStatus(context.Background(), id, domain.ReservationStatusCancelled); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("UpdateStatus() on completed error = %v, want ErrInvalidTransition", err)
	}
	if resRepo.reservations[id].Status != domain.ReservationStatusCompleted {
		t.Errorf("rejected transition mutated status: %s", resRepo.reservations[id].Status)
	}
}

func TestCancelOwn(t *testing.T) {
	resRepo := newFakeReservationRepo()
	svc := newReservationService(resRepo, newFakeScheduleRepo(), nil)

	id, err := svc.Create(context.Background(), nil, validCreateDTO())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.CancelOwn(context.Background(), id, "01099998888"); err == nil {
		t.Errorf("CancelOwn() accepted a foreign phone")
	}

	if err := svc.CancelOwn(context.Background(), id, "01012345678"); err != nil {
		t.Fatalf("CancelOwn() error = %v", err)
	}
	if resRepo.reservations[id].Status != domain.ReservationStatusCancelled {
		t.Errorf("status = %s, want cancelled", resRepo.reservations[id].Status)
	}

	// Already cancelled: nothing left to cancel.
	if err := svc.CancelOwn(context.Background(), id, "01012345678"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("CancelOwn() on cancelled error = %v, want ErrInvalidTransition", err)
	}
}
