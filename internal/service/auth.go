package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smileon/config"
	"smileon/internal/domain"
	"smileon/internal/repository"
	"smileon/pkg/validator"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
	// Legacy marks tokens issued by the shared-password admin login.
	Legacy bool `json:"legacy,omitempty"`
}

type AuthServiceImpl struct {
	authRepo    repository.AuthRepository
	userRepo    repository.UserRepository
	jwtConfig   config.JWTConfig
	adminConfig config.AdminConfig
	logger      *zap.Logger
}

func NewAuthService(
	authRepo repository.AuthRepository,
	userRepo repository.UserRepository,
	jwtConfig config.JWTConfig,
	adminConfig config.AdminConfig,
	logger *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		authRepo:    authRepo,
		userRepo:    userRepo,
		jwtConfig:   jwtConfig,
		adminConfig: adminConfig,
		logger:      logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (int64, error) {
	if !validator.ValidatePhone(dto.Phone) {
		return 0, errors.New("올바른 전화번호 형식이 아닙니다")
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err == nil && existingUser != nil {
		return 0, errors.New("이미 가입된 이메일입니다")
	}

	phone := validator.NormalizePhone(dto.Phone)
	existingUser, err = s.userRepo.GetByPhone(ctx, phone)
	if err == nil && existingUser != nil {
		return 0, errors.New("이미 가입된 전화번호입니다")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return 0, errors.New("회원가입 중 오류가 발생했습니다")
	}

	createUserDTO := domain.CreateUserDTO{
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    phone,
		Password: string(hashedPassword),
		Role:     domain.UserRolePatient,
	}

	userID, err := s.userRepo.Create(ctx, createUserDTO)
	if err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return 0, errors.New("회원가입 중 오류가 발생했습니다")
	}

	return userID, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Warn("login for unknown email", zap.String("email", dto.Email))
		return nil, errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	}

	if !user.IsActive {
		return nil, errors.New("비활성화된 계정입니다")
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, errors.New("로그인 중 오류가 발생했습니다")
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("failed to store session", zap.Error(err))
		return nil, errors.New("로그인 중 오류가 발생했습니다")
	}

	return tokens, nil
}

// AdminLogin is the legacy back-office door: one shared password from config,
// no account row. It issues an admin token marked legacy so it can be told
// apart from account-based admin tokens in logs.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, dto domain.AdminLoginRequest) (string, error) {
	if s.adminConfig.PasswordHash == "" {
		s.logger.Warn("admin login attempted but no admin password configured")
		return "", errors.New("관리자 로그인이 비활성화되어 있습니다")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminConfig.PasswordHash), []byte(dto.Password)); err != nil {
		return "", errors.New("비밀번호가 올바르지 않습니다")
	}

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role:   domain.UserRoleAdmin,
		Legacy: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		s.logger.Error("failed to sign admin token", zap.Error(err))
		return "", errors.New("로그인 중 오류가 발생했습니다")
	}

	return signed, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.New("유효하지 않은 토큰입니다")
	}

	if session.ExpiresAt.Before(time.Now()) {
		s.authRepo.DeleteSession(ctx, session.ID)
		return nil, errors.New("만료된 토큰입니다")
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		s.logger.Error("session user missing", zap.Int64("user_id", session.UserID), zap.Error(err))
		return nil, errors.New("사용자를 찾을 수 없습니다")
	}

	if !user.IsActive {
		return nil, errors.New("비활성화된 계정입니다")
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Warn("failed to delete rotated session", zap.Error(err))
	}

	tokens, err := s.generateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, errors.New("토큰 갱신 중 오류가 발생했습니다")
	}

	newSession := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, newSession); err != nil {
		s.logger.Error("failed to store session", zap.Error(err))
		return nil, errors.New("토큰 갱신 중 오류가 발생했습니다")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		// Already gone; logout is idempotent.
		return nil
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Error("failed to delete session", zap.Error(err))
		return errors.New("로그아웃 중 오류가 발생했습니다")
	}

	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (int64, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})

	if err != nil {
		return 0, "", fmt.Errorf("유효하지 않은 토큰입니다: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("유효하지 않은 토큰입니다")
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) generateTokens(userID int64, role domain.UserRole) (*domain.Tokens, error) {
	accessTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	// The jti keeps every refresh token unique even when two are signed
	// within the same second, so rotation never reissues the same string.
	refreshTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshTokenClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
	}, nil
}
