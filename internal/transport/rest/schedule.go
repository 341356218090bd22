package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 월별 예약 현황 조회
// @Description 해당 월의 날짜·시간대별 슬롯 상태 맵을 반환합니다. 비어 있는 슬롯은 생략됩니다.
// @Tags 예약현황
// @Produce json
// @Param year query int true "연도 (YYYY)"
// @Param month query int true "월 (1-12)"
// @Success 200 {object} successResponseBody "날짜별 슬롯 맵"
// @Failure 400 {object} errorResponseBody "연/월 형식 오류"
// @Router /schedule [get]
func (h *Handler) getMonthSchedule(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		badRequestResponse(c, "연도 형식이 올바르지 않습니다")
		return
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		badRequestResponse(c, "월 형식이 올바르지 않습니다")
		return
	}

	schedule, err := h.services.Schedule.GetMonthSchedule(c.Request.Context(), year, month)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"year":     year,
		"month":    month,
		"schedule": schedule,
	})
}

// @Summary 시간대 차단 (관리자)
// @Description 해당 슬롯을 예약 불가로 차단합니다. 대기 또는 확정 예약이 있는 슬롯은 차단할 수 없습니다.
// @Tags 예약현황
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.BlockSlotDTO true "차단할 날짜와 시간"
// @Success 201 {object} successResponseBody "생성된 차단 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Failure 409 {object} errorResponseBody "예약이 있거나 이미 차단된 슬롯"
// @Router /admin/blocked-slots [post]
func (h *Handler) blockSlot(c *gin.Context) {
	var input domain.BlockSlotDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	id, err := h.services.Schedule.BlockSlot(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrSlotOccupied) || errors.Is(err, domain.ErrAlreadyBlocked) {
			conflictResponse(c, err.Error())
			return
		}
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 시간대 차단 해제 (관리자)
// @Tags 예약현황
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.BlockSlotDTO true "해제할 날짜와 시간"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "차단되지 않은 슬롯"
// @Router /admin/blocked-slots [delete]
func (h *Handler) unblockSlot(c *gin.Context) {
	var input domain.BlockSlotDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Schedule.UnblockSlot(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "차단된 슬롯이 아닙니다")
			return
		}
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
