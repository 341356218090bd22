package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/pkg/validator"
)

type PostServiceImpl struct {
	postRepo repository.PostRepository
	logger   *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, logger *zap.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (s *PostServiceImpl) Create(ctx context.Context, userID *int64, dto domain.CreatePostDTO) (int64, error) {
	dto.Title = validator.SanitizeString(dto.Title)
	dto.AuthorName = validator.SanitizeString(dto.AuthorName)

	id, err := s.postRepo.Create(ctx, userID, dto)
	if err != nil {
		s.logger.Error("failed to create post", zap.Error(err))
		return 0, errors.New("게시글 등록 중 오류가 발생했습니다")
	}
	return id, nil
}

func (s *PostServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("게시글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to get post", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("게시글 조회 중 오류가 발생했습니다")
	}

	if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment post view count", zap.Int64("id", id), zap.Error(err))
	}

	return post, nil
}

func (s *PostServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	if err := s.postRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("게시글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to update post", zap.Int64("id", id), zap.Error(err))
		return errors.New("게시글 수정 중 오류가 발생했습니다")
	}
	return nil
}

func (s *PostServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("게시글을 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete post", zap.Int64("id", id), zap.Error(err))
		return errors.New("게시글 삭제 중 오류가 발생했습니다")
	}
	return nil
}

func (s *PostServiceImpl) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list posts", zap.Error(err))
		return nil, 0, errors.New("게시글 목록을 불러오지 못했습니다")
	}
	return posts, total, nil
}
