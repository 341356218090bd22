package domain

import (
	"time"
)

// DateKeyLayout is the calendar-day key used throughout the schedule map.
const DateKeyLayout = "2006-01-02"

// TimeSlots is the clinic's fixed bookable grid. 13:00 is the lunch break.
var TimeSlots = []string{
	"10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotState aggregates what the backend knows about one (date, time) cell.
// Counters are informational; Blocked is the administrative close switch.
type SlotState struct {
	Pending   int  `json:"pending"`
	Confirmed int  `json:"confirmed"`
	Blocked   bool `json:"blocked"`
}

// DaySlots maps a time slot label to its state.
type DaySlots map[string]SlotState

// Schedule maps a YYYY-MM-DD date key to that day's slots. A month response
// contains only days/slots with something to report; absent entries resolve
// to available.
type Schedule map[string]DaySlots

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusPending   SlotStatus = "pending"
	SlotStatusConfirmed SlotStatus = "confirmed"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// ResolveSlotStatus maps a (date, time) pair to exactly one display status.
// Precedence: blocked > confirmed > pending. A block wins even over a
// confirmed reservation, since it is the stronger administrative signal.
// Missing entries resolve to available; the function never fails.
func ResolveSlotStatus(schedule Schedule, date, timeSlot string) SlotStatus {
	day, ok := schedule[date]
	if !ok {
		return SlotStatusAvailable
	}

	slot, ok := day[timeSlot]
	if !ok {
		return SlotStatusAvailable
	}

	switch {
	case slot.Blocked:
		return SlotStatusBlocked
	case slot.Confirmed > 0:
		return SlotStatusConfirmed
	case slot.Pending > 0:
		return SlotStatusPending
	default:
		return SlotStatusAvailable
	}
}

type BlockedSlot struct {
	ID        int64     `json:"id"`
	SlotDate  string    `json:"slot_date"`
	SlotTime  string    `json:"slot_time"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockSlotDTO struct {
	SlotDate string `json:"slot_date" binding:"required"`
	SlotTime string `json:"slot_time" binding:"required"`
}
