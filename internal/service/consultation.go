package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/pkg/auth"
)

type ConsultationServiceImpl struct {
	consultationRepo repository.ConsultationRepository
	logger           *zap.Logger
}

func NewConsultationService(consultationRepo repository.ConsultationRepository, logger *zap.Logger) *ConsultationServiceImpl {
	return &ConsultationServiceImpl{
		consultationRepo: consultationRepo,
		logger:           logger,
	}
}

func (s *ConsultationServiceImpl) Create(ctx context.Context, userID *int64, dto domain.CreateConsultationDTO) (int64, error) {
	var passwordHash string

	if dto.IsSecret {
		if dto.Password == "" {
			return 0, errors.New("비밀글에는 비밀번호가 필요합니다")
		}

		hash, err := auth.HashPassword(dto.Password)
		if err != nil {
			s.logger.Error("failed to hash consultation password", zap.Error(err))
			return 0, errors.New("상담 등록 중 오류가 발생했습니다")
		}
		passwordHash = hash
	}

	id, err := s.consultationRepo.Create(ctx, userID, dto, passwordHash)
	if err != nil {
		s.logger.Error("failed to create consultation", zap.Error(err))
		return 0, errors.New("상담 등록 중 오류가 발생했습니다")
	}

	return id, nil
}

// Get returns a consultation for listing or detail chrome. Secret entries
// come back redacted; content is only released through Verify.
func (s *ConsultationServiceImpl) Get(ctx context.Context, id int64) (*domain.Consultation, error) {
	c, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get consultation", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("상담글 조회 중 오류가 발생했습니다")
	}

	redacted := c.Redacted()
	return &redacted, nil
}

// GetFull returns the entry without redaction for back-office screens.
func (s *ConsultationServiceImpl) GetFull(ctx context.Context, id int64) (*domain.Consultation, error) {
	c, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get consultation", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("상담글 조회 중 오류가 발생했습니다")
	}

	return c, nil
}

func (s *ConsultationServiceImpl) Verify(ctx context.Context, id int64, password string) (*domain.Consultation, error) {
	c, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get consultation", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("상담글 조회 중 오류가 발생했습니다")
	}

	// Non-secret entries verify unconditionally; the client sends an empty
	// password on load.
	if !c.IsSecret {
		return c, nil
	}

	ok, err := auth.VerifyPassword(password, c.PasswordHash)
	if err != nil {
		s.logger.Error("failed to verify consultation password", zap.Int64("id", id), zap.Error(err))
		return nil, domain.ErrVerificationFailed
	}
	if !ok {
		return nil, domain.ErrVerificationFailed
	}

	return c, nil
}

func (s *ConsultationServiceImpl) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	consultations, total, err := s.consultationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list consultations", zap.Error(err))
		return nil, 0, errors.New("상담 목록을 불러오지 못했습니다")
	}

	for i := range consultations {
		consultations[i] = consultations[i].Redacted()
	}

	return consultations, total, nil
}

// ListByUser returns a user's own consultations unredacted; authorship
// already proves the right to read them.
func (s *ConsultationServiceImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Consultation, int, error) {
	filter := domain.ConsultationFilter{
		UserID: &userID,
		Limit:  limit,
		Offset: offset,
	}

	consultations, total, err := s.consultationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list user consultations", zap.Error(err))
		return nil, 0, errors.New("상담 목록을 불러오지 못했습니다")
	}

	return consultations, total, nil
}

func (s *ConsultationServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateConsultationDTO) error {
	if err := s.consultationRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to update consultation", zap.Int64("id", id), zap.Error(err))
		return errors.New("상담글 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *ConsultationServiceImpl) Reply(ctx context.Context, id int64, content string) error {
	if err := s.consultationRepo.SetReply(ctx, id, content); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to reply to consultation", zap.Int64("id", id), zap.Error(err))
		return errors.New("답변 등록 중 오류가 발생했습니다")
	}
	return nil
}

func (s *ConsultationServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.consultationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("상담글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete consultation", zap.Int64("id", id), zap.Error(err))
		return errors.New("상담글 삭제 중 오류가 발생했습니다")
	}
	return nil
}
