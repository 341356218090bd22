package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/pkg/validator"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("사용자를 찾을 수 없습니다")
		}
		s.logger.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("사용자 조회 중 오류가 발생했습니다")
	}

	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	if dto.Phone != nil {
		if !validator.ValidatePhone(*dto.Phone) {
			return errors.New("올바른 전화번호 형식이 아닙니다")
		}
		normalized := validator.NormalizePhone(*dto.Phone)
		dto.Phone = &normalized
	}

	if err := s.userRepo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("사용자를 찾을 수 없습니다")
		}
		s.logger.Error("failed to update user", zap.Int64("id", id), zap.Error(err))
		return errors.New("사용자 정보 수정 중 오류가 발생했습니다")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("사용자를 찾을 수 없습니다")
		}
		s.logger.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return errors.New("비밀번호 변경 중 오류가 발생했습니다")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.OldPassword)); err != nil {
		return errors.New("현재 비밀번호가 올바르지 않습니다")
	}

	if !validator.ValidatePassword(dto.NewPassword) {
		return errors.New("비밀번호는 6자 이상이어야 합니다")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return errors.New("비밀번호 변경 중 오류가 발생했습니다")
	}

	if err := s.userRepo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("failed to update password", zap.Int64("id", id), zap.Error(err))
		return errors.New("비밀번호 변경 중 오류가 발생했습니다")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("사용자를 찾을 수 없습니다")
		}
		s.logger.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return errors.New("회원 탈퇴 중 오류가 발생했습니다")
	}

	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	users, total, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, 0, errors.New("사용자 목록을 불러오지 못했습니다")
	}

	return users, total, nil
}
