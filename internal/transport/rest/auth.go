package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 회원가입
// @Description 새 사용자를 등록합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "가입 정보"
// @Success 201 {object} successResponseBody "생성된 사용자 ID"
// @Failure 400 {object} errorResponseBody "요청 형식 오류"
// @Failure 500 {object} errorResponseBody "서버 내부 오류"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	id, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 로그인
// @Description 사용자를 인증하고 토큰을 발급합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "로그인 정보"
// @Success 200 {object} domain.Tokens "액세스/리프레시 토큰"
// @Failure 400 {object} errorResponseBody "요청 형식 오류"
// @Failure 401 {object} errorResponseBody "인증 실패"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	tokens, err := h.services.Auth.Login(c.Request.Context(), input, userAgent, ip)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary 관리자 로그인
// @Description 관리자 공용 비밀번호로 관리자 토큰을 발급합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param input body domain.AdminLoginRequest true "관리자 비밀번호"
// @Success 200 {object} successResponseBody "관리자 액세스 토큰"
// @Failure 401 {object} errorResponseBody "비밀번호 불일치"
// @Router /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	var input domain.AdminLoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	token, err := h.services.Auth.AdminLogin(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"access_token": token,
	})
}

// @Summary 토큰 갱신
// @Description 리프레시 토큰으로 새 토큰 쌍을 발급합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "리프레시 토큰"
// @Success 200 {object} domain.Tokens "새 토큰"
// @Failure 401 {object} errorResponseBody "유효하지 않은 토큰"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var input domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), input.RefreshToken, userAgent, ip)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary 로그아웃
// @Description 세션을 종료하고 리프레시 토큰을 무효화합니다
// @Tags 인증
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "리프레시 토큰"
// @Success 204 {object} nil "로그아웃 완료"
// @Failure 400 {object} errorResponseBody "요청 형식 오류"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var input domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
