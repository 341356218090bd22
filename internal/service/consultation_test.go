package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"smileon/internal/domain"
)

func TestConsultationSecretGate(t *testing.T) {
	repo := newFakeConsultationRepo()
	svc := NewConsultationService(repo, zap.NewNop())

	id, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName: "김철수",
		Title:      "임플란트 비용 문의",
		Content:    "앞니 임플란트 비용이 궁금합니다",
		IsSecret:   true,
		Password:   "1234",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if repo.items[id].PasswordHash == "" || repo.items[id].PasswordHash == "1234" {
		t.Fatalf("password stored without hashing: %q", repo.items[id].PasswordHash)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), id, "9999")
		if !errors.Is(err, domain.ErrVerificationFailed) {
			t.Fatalf("Verify() error = %v, want ErrVerificationFailed", err)
		}
		if err.Error() != "인증 중 오류가 발생했습니다." {
			t.Errorf("Verify() message = %q", err.Error())
		}
	})

	t.Run("empty password", func(t *testing.T) {
		if _, err := svc.Verify(context.Background(), id, ""); !errors.Is(err, domain.ErrVerificationFailed) {
			t.Fatalf("Verify(\"\") error = %v, want ErrVerificationFailed", err)
		}
	})

	t.Run("correct password", func(t *testing.T) {
		c, err := svc.Verify(context.Background(), id, "1234")
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if c.Content != "앞니 임플란트 비용이 궁금합니다" {
			t.Errorf("Verify() content = %q", c.Content)
		}
	})
}

func TestConsultationNonSecretVerify(t *testing.T) {
	repo := newFakeConsultationRepo()
	svc := NewConsultationService(repo, zap.NewNop())

	id, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName: "박영희",
		Title:      "진료 시간 문의",
		Content:    "토요일 진료 시간이 궁금합니다",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Open entries unlock with whatever the client sends, including nothing.
	c, err := svc.Verify(context.Background(), id, "")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if c.Content == "" {
		t.Errorf("Verify() returned empty content for open entry")
	}
}

func TestConsultationSecretRequiresPassword(t *testing.T) {
	svc := NewConsultationService(newFakeConsultationRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName: "김철수",
		Title:      "비밀 문의",
		Content:    "내용",
		IsSecret:   true,
	})
	if err == nil {
		t.Fatalf("Create() accepted a secret entry without a password")
	}
}

func TestConsultationListRedaction(t *testing.T) {
	repo := newFakeConsultationRepo()
	svc := NewConsultationService(repo, zap.NewNop())

	secretID, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName:  "김철수",
		PhoneNumber: "01012345678",
		Title:       "비밀 문의",
		Content:     "비밀 내용",
		IsSecret:    true,
		Password:    "1234",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName: "박영희",
		Title:      "공개 문의",
		Content:    "공개 내용",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, total, err := svc.List(context.Background(), domain.ConsultationFilter{Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Fatalf("List() total = %d, want 2", total)
	}

	for _, c := range list {
		if c.IsSecret && (c.Content != "" || c.PhoneNumber != "") {
			t.Errorf("List() leaked secret fields: %+v", c)
		}
		if !c.IsSecret && c.Content == "" {
			t.Errorf("List() redacted an open entry: %+v", c)
		}
	}

	// The gate in List must not touch the stored row.
	if repo.items[secretID].Content != "비밀 내용" {
		t.Errorf("List() mutated stored entry")
	}
}

func TestConsultationReply(t *testing.T) {
	repo := newFakeConsultationRepo()
	svc := NewConsultationService(repo, zap.NewNop())

	id, err := svc.Create(context.Background(), nil, domain.CreateConsultationDTO{
		AuthorName: "김철수",
		Title:      "문의",
		Content:    "내용",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Reply(context.Background(), id, "안녕하세요, 답변드립니다"); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	c, err := svc.GetFull(context.Background(), id)
	if err != nil {
		t.Fatalf("GetFull() error = %v", err)
	}
	if c.Reply == nil || *c.Reply != "안녕하세요, 답변드립니다" {
		t.Errorf("reply not stored: %v", c.Reply)
	}
	if c.RepliedAt == nil {
		t.Errorf("replied_at not set")
	}

	if err := svc.Reply(context.Background(), 999, "x"); err == nil {
		t.Errorf("Reply() on missing entry did not fail")
	}
}
