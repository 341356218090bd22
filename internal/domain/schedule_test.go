package domain

import "testing"

func TestIsValidTimeSlot(t *testing.T) {
	valid := []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
	for _, slot := range valid {
		if !IsValidTimeSlot(slot) {
			t.Errorf("IsValidTimeSlot(%q) = false, want true", slot)
		}
	}

	invalid := []string{"13:00", "09:00", "18:00", "10:30", "", "10시"}
	for _, slot := range invalid {
		if IsValidTimeSlot(slot) {
			t.Errorf("IsValidTimeSlot(%q) = true, want false", slot)
		}
	}
}

func TestResolveSlotStatus(t *testing.T) {
	schedule := Schedule{
		"2026-03-02": DaySlots{
			"10:00": {Pending: 1},
			"11:00": {Confirmed: 1},
			"12:00": {Blocked: true},
			"14:00": {Pending: 2, Confirmed: 1},
			"15:00": {Confirmed: 1, Blocked: true},
			"16:00": {},
		},
	}

	tests := []struct {
		name string
		date string
		slot string
		want SlotStatus
	}{
		{"pending only", "2026-03-02", "10:00", SlotStatusPending},
		{"confirmed only", "2026-03-02", "11:00", SlotStatusConfirmed},
		{"blocked only", "2026-03-02", "12:00", SlotStatusBlocked},
		{"confirmed beats pending", "2026-03-02", "14:00", SlotStatusConfirmed},
		{"blocked beats confirmed", "2026-03-02", "15:00", SlotStatusBlocked},
		{"zero state is available", "2026-03-02", "16:00", SlotStatusAvailable},
		{"missing slot is available", "2026-03-02", "17:00", SlotStatusAvailable},
		{"missing day is available", "2026-03-03", "10:00", SlotStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSlotStatus(schedule, tt.date, tt.slot); got != tt.want {
				t.Errorf("ResolveSlotStatus(%s %s) = %s, want %s", tt.date, tt.slot, got, tt.want)
			}
		})
	}
}

func TestResolveSlotStatusNilSchedule(t *testing.T) {
	if got := ResolveSlotStatus(nil, "2026-03-02", "10:00"); got != SlotStatusAvailable {
		t.Errorf("ResolveSlotStatus(nil) = %s, want %s", got, SlotStatusAvailable)
	}
}
