package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 내 정보 조회
// @Tags 회원
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponseBody "인증 필요"
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary 내 정보 수정
// @Tags 회원
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.UpdateUserDTO true "수정할 정보"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "요청 형식 오류"
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	// IsActive is an admin concern; members cannot deactivate through here.
	input.IsActive = nil

	if err := h.services.User.Update(c.Request.Context(), userID, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "회원 정보가 수정되었습니다")
}

// @Summary 비밀번호 변경
// @Tags 회원
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.PasswordUpdateDTO true "현재/새 비밀번호"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "비밀번호 불일치 또는 형식 오류"
// @Router /users/me/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), userID, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "비밀번호가 변경되었습니다")
}

// @Summary 회원 탈퇴
// @Tags 회원
// @Produce json
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} errorResponseBody "인증 필요"
// @Router /users/me [delete]
func (h *Handler) deleteCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), userID); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary 회원 목록 (관리자)
// @Tags 회원
// @Produce json
// @Security BearerAuth
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Failure 403 {object} errorResponseBody "관리자 권한 필요"
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	limit, offset := paginationParams(c)

	users, total, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, users, total, offset/limit+1, limit)
}

// @Summary 회원 조회 (관리자)
// @Tags 회원
// @Produce json
// @Security BearerAuth
// @Param id path int true "사용자 ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} errorResponseBody "사용자 없음"
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary 회원 삭제 (관리자)
// @Tags 회원
// @Produce json
// @Security BearerAuth
// @Param id path int true "사용자 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "사용자 없음"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
