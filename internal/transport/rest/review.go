package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 치료 후기 목록
// @Description 게시 승인된 후기만 반환합니다
// @Tags 후기
// @Produce json
// @Param min_rating query int false "최소 평점"
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /reviews [get]
func (h *Handler) getReviews(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.ReviewFilter{
		PublishedOnly: true,
		Limit:         limit,
		Offset:        offset,
	}
	if ratingStr := c.Query("min_rating"); ratingStr != "" {
		if rating, err := strconv.Atoi(ratingStr); err == nil && rating >= 1 && rating <= 5 {
			filter.MinRating = &rating
		}
	}

	reviews, total, err := h.services.Review.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, reviews, total, offset/limit+1, limit)
}

// @Summary 후기 조회
// @Tags 후기
// @Produce json
// @Param id path int true "후기 ID"
// @Success 200 {object} domain.Review
// @Failure 404 {object} errorResponseBody "후기 없음 또는 미게시"
// @Router /reviews/{id} [get]
func (h *Handler) getReviewByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	review, err := h.services.Review.GetByID(c.Request.Context(), id, false)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, review)
}

// @Summary 후기 작성
// @Description 후기를 등록합니다. 관리자 게시 승인 후 공개됩니다.
// @Tags 후기
// @Accept json
// @Produce json
// @Param input body domain.CreateReviewDTO true "후기 내용"
// @Success 201 {object} successResponseBody "생성된 후기 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	var input domain.CreateReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userID := getOptionalUserID(c)

	id, err := h.services.Review.Create(c.Request.Context(), userID, input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 후기 목록 (관리자)
// @Description 미게시 후기를 포함한 전체 목록
// @Tags 후기
// @Produce json
// @Security BearerAuth
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /admin/reviews [get]
func (h *Handler) getReviewsForAdmin(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.ReviewFilter{
		PublishedOnly: false,
		Limit:         limit,
		Offset:        offset,
	}

	reviews, total, err := h.services.Review.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, reviews, total, offset/limit+1, limit)
}

// @Summary 후기 수정 (관리자)
// @Tags 후기
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "후기 ID"
// @Param input body domain.UpdateReviewDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "후기 없음"
// @Router /admin/reviews/{id} [put]
func (h *Handler) updateReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Review.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "후기가 수정되었습니다")
}

type publishReviewDTO struct {
	Published bool `json:"published"`
}

// @Summary 후기 게시/숨김 (관리자)
// @Tags 후기
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "후기 ID"
// @Param input body publishReviewDTO true "게시 여부"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "후기 없음"
// @Router /admin/reviews/{id}/publish [put]
func (h *Handler) publishReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input publishReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Review.SetPublished(c.Request.Context(), id, input.Published); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "후기 게시 상태가 변경되었습니다")
}

// @Summary 후기 삭제 (관리자)
// @Tags 후기
// @Produce json
// @Security BearerAuth
// @Param id path int true "후기 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "후기 없음"
// @Router /admin/reviews/{id} [delete]
func (h *Handler) deleteReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Review.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
