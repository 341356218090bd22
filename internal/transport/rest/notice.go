package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 공지사항 목록
// @Tags 공지사항
// @Produce json
// @Param keyword query string false "제목/내용 검색어"
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /notices [get]
func (h *Handler) getNotices(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.NoticeFilter{
		Limit:  limit,
		Offset: offset,
	}
	if keyword := c.Query("keyword"); keyword != "" {
		filter.Keyword = &keyword
	}

	notices, total, err := h.services.Notice.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, notices, total, offset/limit+1, limit)
}

// @Summary 공지사항 조회
// @Tags 공지사항
// @Produce json
// @Param id path int true "공지사항 ID"
// @Success 200 {object} domain.Notice
// @Failure 404 {object} errorResponseBody "공지사항 없음"
// @Router /notices/{id} [get]
func (h *Handler) getNoticeByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	notice, err := h.services.Notice.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, notice)
}

// @Summary 공지사항 등록 (관리자)
// @Tags 공지사항
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.CreateNoticeDTO true "공지 내용"
// @Success 201 {object} successResponseBody "생성된 공지 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /admin/notices [post]
func (h *Handler) createNotice(c *gin.Context) {
	var input domain.CreateNoticeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	id, err := h.services.Notice.Create(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 공지사항 수정 (관리자)
// @Tags 공지사항
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "공지사항 ID"
// @Param input body domain.UpdateNoticeDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "공지사항 없음"
// @Router /admin/notices/{id} [put]
func (h *Handler) updateNotice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateNoticeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Notice.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "공지사항이 수정되었습니다")
}

// @Summary 공지사항 삭제 (관리자)
// @Tags 공지사항
// @Produce json
// @Security BearerAuth
// @Param id path int true "공지사항 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "공지사항 없음"
// @Router /admin/notices/{id} [delete]
func (h *Handler) deleteNotice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Notice.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
