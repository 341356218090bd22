package domain

import (
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// CanTransitionTo encodes the admin-driven lifecycle: pending → confirmed or
// cancelled, confirmed → completed or cancelled. Completed and cancelled are
// terminal.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return target == ReservationStatusConfirmed || target == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return target == ReservationStatusCompleted || target == ReservationStatusCancelled
	default:
		return false
	}
}

type Reservation struct {
	ID          int64             `json:"id"`
	UserID      *int64            `json:"user_id,omitempty"`
	PatientName string            `json:"patient_name"`
	PhoneNumber string            `json:"phone_number"`
	DesiredDate string            `json:"desired_date"`
	DesiredTime string            `json:"desired_time"`
	Notes       string            `json:"notes,omitempty"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateReservationDTO struct {
	PatientName string `json:"patient_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	DesiredDate string `json:"desired_date" binding:"required"`
	DesiredTime string `json:"desired_time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateReservationStatusDTO struct {
	Status ReservationStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// VerifyReservationDTO is the no-account lookup: name + phone exchange for a
// short-lived token scoped to that phone number.
type VerifyReservationDTO struct {
	PatientName string `json:"patient_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type ReservationFilter struct {
	UserID      *int64             `json:"user_id"`
	PhoneNumber *string            `json:"phone_number"`
	Status      *ReservationStatus `json:"status"`
	StartDate   *string            `json:"start_date"`
	EndDate     *string            `json:"end_date"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}

// SlotCount is one row of the month aggregate: how many pending/confirmed
// reservations occupy a (date, time) cell.
type SlotCount struct {
	SlotDate  string `json:"slot_date"`
	SlotTime  string `json:"slot_time"`
	Pending   int    `json:"pending"`
	Confirmed int    `json:"confirmed"`
}
