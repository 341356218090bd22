package domain

import "errors"

var (
	ErrNotFound = errors.New("리소스를 찾을 수 없습니다")

	// Schedule / blocked slots.
	ErrUnknownTimeSlot = errors.New("진료 시간이 아닙니다")
	ErrSlotBlocked     = errors.New("예약이 불가능한 시간입니다")
	ErrSlotTaken       = errors.New("이미 예약이 확정된 시간입니다")
	ErrSlotOccupied    = errors.New("예약이 있는 시간은 차단할 수 없습니다")
	ErrAlreadyBlocked  = errors.New("이미 차단된 시간입니다")

	// Reservation lifecycle.
	ErrInvalidTransition = errors.New("변경할 수 없는 예약 상태입니다")

	// Secret consultation gate.
	ErrVerificationFailed = errors.New("인증 중 오류가 발생했습니다.")
)
