package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
)

type FAQServiceImpl struct {
	faqRepo repository.FAQRepository
	logger  *zap.Logger
}

func NewFAQService(faqRepo repository.FAQRepository, logger *zap.Logger) *FAQServiceImpl {
	return &FAQServiceImpl{
		faqRepo: faqRepo,
		logger:  logger,
	}
}

func (s *FAQServiceImpl) Create(ctx context.Context, dto domain.CreateFAQDTO) (int64, error) {
	id, err := s.faqRepo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create faq", zap.Error(err))
		return 0, errors.New("FAQ 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

func (s *FAQServiceImpl) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("FAQ를 찾을 수 없습니다")
		}
		s.logger.Error("failed to get faq", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("FAQ 조회 중 오류가 발생했습니다")
	}
	return faq, nil
}

func (s *FAQServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateFAQDTO) error {
	if err := s.faqRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("FAQ를 찾을 수 없습니다")
		}
		s.logger.Error("failed to update faq", zap.Int64("id", id), zap.Error(err))
		return errors.New("FAQ 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *FAQServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("FAQ를 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete faq", zap.Int64("id", id), zap.Error(err))
		return errors.New("FAQ 삭제 중 오류가 발생했습니다")
	}
	return nil
}

func (s *FAQServiceImpl) List(ctx context.Context, filter domain.FAQFilter) ([]domain.FAQ, int, error) {
	faqs, total, err := s.faqRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list faqs", zap.Error(err))
		return nil, 0, errors.New("FAQ 목록을 불러오지 못했습니다")
	}
	return faqs, total, nil
}
