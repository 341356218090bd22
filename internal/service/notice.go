package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
)

type NoticeServiceImpl struct {
	noticeRepo repository.NoticeRepository
	logger     *zap.Logger
}

func NewNoticeService(noticeRepo repository.NoticeRepository, logger *zap.Logger) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		noticeRepo: noticeRepo,
		logger:     logger,
	}
}

func (s *NoticeServiceImpl) Create(ctx context.Context, dto domain.CreateNoticeDTO) (int64, error) {
	id, err := s.noticeRepo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create notice", zap.Error(err))
		return 0, errors.New("공지사항 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

// GetByID bumps the view count on every read; a stale counter is acceptable,
// so the increment failure is only logged.
func (s *NoticeServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("공지사항을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get notice", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("공지사항 조회 중 오류가 발생했습니다")
	}

	if err := s.noticeRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment notice view count", zap.Int64("id", id), zap.Error(err))
	}

	return notice, nil
}

func (s *NoticeServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateNoticeDTO) error {
	if err := s.noticeRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("공지사항을 찾을 수 없습니다")
		}
		s.logger.Error("failed to update notice", zap.Int64("id", id), zap.Error(err))
		return errors.New("공지사항 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *NoticeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("공지사항을 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete notice", zap.Int64("id", id), zap.Error(err))
		return errors.New("공지사항 삭제 중 오류가 발생했습니다")
	}
	return nil
}

func (s *NoticeServiceImpl) List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, int, error) {
	notices, total, err := s.noticeRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list notices", zap.Error(err))
		return nil, 0, errors.New("공지사항 목록을 불러오지 못했습니다")
	}
	return notices, total, nil
}
