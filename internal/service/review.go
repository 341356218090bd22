package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
)

type ReviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	logger     *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, logger *zap.Logger) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, userID *int64, dto domain.CreateReviewDTO) (int64, error) {
	id, err := s.reviewRepo.Create(ctx, userID, dto)
	if err != nil {
		s.logger.Error("failed to create review", zap.Error(err))
		return 0, errors.New("후기 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

// GetByID hides unpublished reviews from the public; admin callers pass
// includeUnpublished.
func (s *ReviewServiceImpl) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("후기를 찾을 수 없습니다")
		}
		s.logger.Error("failed to get review", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("후기 조회 중 오류가 발생했습니다")
	}

	if !review.IsPublished && !includeUnpublished {
		return nil, errors.New("후기를 찾을 수 없습니다")
	}

	return review, nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateReviewDTO) error {
	if err := s.reviewRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("후기를 찾을 수 없습니다")
		}
		s.logger.Error("failed to update review", zap.Int64("id", id), zap.Error(err))
		return errors.New("후기 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *ReviewServiceImpl) SetPublished(ctx context.Context, id int64, published bool) error {
	dto := domain.UpdateReviewDTO{IsPublished: &published}
	if err := s.reviewRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("후기를 찾을 수 없습니다")
		}
		s.logger.Error("failed to set review published", zap.Int64("id", id), zap.Bool("published", published), zap.Error(err))
		return errors.New("후기 상태 변경 중 오류가 발생했습니다")
	}
	return nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("후기를 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete review", zap.Int64("id", id), zap.Error(err))
		return errors.New("후기 삭제 중 오류가 발생했습니다")
	}
	return nil
}

func (s *ReviewServiceImpl) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, int, error) {
	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list reviews", zap.Error(err))
		return nil, 0, errors.New("후기 목록을 불러오지 못했습니다")
	}
	return reviews, total, nil
}
