package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 상담 목록
// @Description 상담글 목록을 반환합니다. 비밀글은 제목과 작성자만 노출됩니다.
// @Tags 상담
// @Produce json
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /consultations [get]
func (h *Handler) getConsultations(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.ConsultationFilter{
		Limit:  limit,
		Offset: offset,
	}

	consultations, total, err := h.services.Consultation.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, consultations, total, offset/limit+1, limit)
}

// @Summary 상담글 조회
// @Description 상담글 메타 정보를 반환합니다. 비밀글 본문은 인증 후에만 열립니다.
// @Tags 상담
// @Produce json
// @Param id path int true "상담글 ID"
// @Success 200 {object} domain.Consultation
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /consultations/{id} [get]
func (h *Handler) getConsultationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	consultation, err := h.services.Consultation.Get(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, consultation)
}

// @Summary 상담글 작성
// @Description 상담글을 등록합니다. 비밀글은 비밀번호가 필요합니다.
// @Tags 상담
// @Accept json
// @Produce json
// @Param input body domain.CreateConsultationDTO true "상담 내용"
// @Success 201 {object} successResponseBody "생성된 상담글 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /consultations [post]
func (h *Handler) createConsultation(c *gin.Context) {
	var input domain.CreateConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userID := getOptionalUserID(c)

	id, err := h.services.Consultation.Create(c.Request.Context(), userID, input)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 상담글 본문 열람
// @Description 비밀번호를 확인하고 상담글 본문과 답변을 반환합니다. 공개글은 빈 비밀번호로 열립니다.
// @Tags 상담
// @Accept json
// @Produce json
// @Param id path int true "상담글 ID"
// @Param input body domain.VerifyConsultationDTO true "비밀번호"
// @Success 200 {object} domain.Consultation
// @Failure 401 {object} errorResponseBody "비밀번호 불일치"
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /consultations/{id}/verify [post]
func (h *Handler) verifyConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.VerifyConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	consultation, err := h.services.Consultation.Verify(c.Request.Context(), id, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrVerificationFailed) {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, consultation)
}

// @Summary 내 상담 목록 (회원)
// @Tags 상담
// @Produce json
// @Security BearerAuth
// @Success 200 {object} paginatedResponse
// @Failure 401 {object} errorResponseBody "인증 필요"
// @Router /users/me/consultations [get]
func (h *Handler) getMyConsultations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	limit, offset := paginationParams(c)

	consultations, total, err := h.services.Consultation.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, consultations, total, offset/limit+1, limit)
}

// @Summary 상담글 상세 (관리자)
// @Description 관리자용 상담글 조회. 비밀글도 전체 내용이 반환됩니다.
// @Tags 상담
// @Produce json
// @Security BearerAuth
// @Param id path int true "상담글 ID"
// @Success 200 {object} domain.Consultation
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /admin/consultations/{id} [get]
func (h *Handler) getConsultationForAdmin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	consultation, err := h.services.Consultation.GetFull(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, consultation)
}

// @Summary 상담 답변 등록 (관리자)
// @Tags 상담
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "상담글 ID"
// @Param input body domain.ReplyConsultationDTO true "답변 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /admin/consultations/{id}/reply [post]
func (h *Handler) replyConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.ReplyConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Consultation.Reply(c.Request.Context(), id, input.Content); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "답변이 등록되었습니다")
}

// @Summary 상담글 수정 (관리자)
// @Tags 상담
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "상담글 ID"
// @Param input body domain.UpdateConsultationDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /admin/consultations/{id} [put]
func (h *Handler) updateConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Consultation.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "상담글이 수정되었습니다")
}

// @Summary 상담글 삭제 (관리자)
// @Tags 상담
// @Produce json
// @Security BearerAuth
// @Param id path int true "상담글 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "상담글 없음"
// @Router /admin/consultations/{id} [delete]
func (h *Handler) deleteConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Consultation.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
