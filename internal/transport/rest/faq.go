package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary FAQ 목록
// @Tags FAQ
// @Produce json
// @Param category query string false "카테고리 필터"
// @Param limit query int false "페이지 크기" default(50)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /faqs [get]
func (h *Handler) getFAQs(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.FAQFilter{
		Limit:  limit,
		Offset: offset,
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}

	faqs, total, err := h.services.FAQ.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, faqs, total, offset/limit+1, limit)
}

// @Summary FAQ 조회
// @Tags FAQ
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} domain.FAQ
// @Failure 404 {object} errorResponseBody "FAQ 없음"
// @Router /faqs/{id} [get]
func (h *Handler) getFAQByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	faq, err := h.services.FAQ.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, faq)
}

// @Summary FAQ 등록 (관리자)
// @Tags FAQ
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.CreateFAQDTO true "질문과 답변"
// @Success 201 {object} successResponseBody "생성된 FAQ ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /admin/faqs [post]
func (h *Handler) createFAQ(c *gin.Context) {
	var input domain.CreateFAQDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	id, err := h.services.FAQ.Create(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary FAQ 수정 (관리자)
// @Tags FAQ
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Param input body domain.UpdateFAQDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "FAQ 없음"
// @Router /admin/faqs/{id} [put]
func (h *Handler) updateFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateFAQDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.FAQ.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "FAQ가 수정되었습니다")
}

// @Summary FAQ 삭제 (관리자)
// @Tags FAQ
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "FAQ 없음"
// @Router /admin/faqs/{id} [delete]
func (h *Handler) deleteFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.FAQ.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
