package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusPending, ReservationStatusPending, false},

		{ReservationStatusConfirmed, ReservationStatusCompleted, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusConfirmed, ReservationStatusConfirmed, false},

		{ReservationStatusCompleted, ReservationStatusPending, false},
		{ReservationStatusCompleted, ReservationStatusConfirmed, false},
		{ReservationStatusCompleted, ReservationStatusCancelled, false},

		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConsultationRedacted(t *testing.T) {
	reply := "답변입니다"
	secret := Consultation{
		ID:          1,
		AuthorName:  "김철수",
		PhoneNumber: "01012345678",
		Title:       "임플란트 상담",
		Content:     "비용이 궁금합니다",
		IsSecret:    true,
		Reply:       &reply,
	}

	got := secret.Redacted()
	if got.Content != "" || got.Reply != nil || got.PhoneNumber != "" {
		t.Errorf("Redacted() leaked secret fields: %+v", got)
	}
	if got.Title != secret.Title || got.AuthorName != secret.AuthorName {
		t.Errorf("Redacted() stripped public fields: %+v", got)
	}

	open := Consultation{ID: 2, Title: "공개 질문", Content: "내용", IsSecret: false}
	if got := open.Redacted(); got.Content != open.Content {
		t.Errorf("Redacted() modified a non-secret entry: %+v", got)
	}
}
