package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 예약 접수
// @Description 진료 예약을 접수합니다. 회원이 아니어도 이름과 전화번호만으로 예약할 수 있습니다.
// @Tags 예약
// @Accept json
// @Produce json
// @Param input body domain.CreateReservationDTO true "예약 정보"
// @Success 201 {object} successResponseBody "생성된 예약 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Failure 409 {object} errorResponseBody "차단되었거나 이미 확정 예약이 있는 시간"
// @Router /reservations [post]
func (h *Handler) createReservation(c *gin.Context) {
	var input domain.CreateReservationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userID := getOptionalUserID(c)

	id, err := h.services.Reservation.Create(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrSlotBlocked) || errors.Is(err, domain.ErrSlotTaken) {
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

// @Summary 예약 조회 인증
// @Description 이름과 전화번호로 본인 예약을 확인하고 조회 토큰을 발급받습니다
// @Tags 예약
// @Accept json
// @Produce json
// @Param input body domain.VerifyReservationDTO true "이름과 전화번호"
// @Success 200 {object} successResponseBody "조회 토큰과 예약 목록"
// @Failure 404 {object} errorResponseBody "일치하는 예약 없음"
// @Router /reservations/verify [post]
func (h *Handler) verifyReservations(c *gin.Context) {
	var input domain.VerifyReservationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	token, reservations, err := h.services.Reservation.Verify(c.Request.Context(), input)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"lookup_token": token,
		"reservations": reservations,
	})
}

// @Summary 내 예약 목록 (조회 토큰)
// @Tags 예약
// @Produce json
// @Param X-Lookup-Token header string true "예약 조회 토큰"
// @Success 200 {object} paginatedResponse
// @Failure 401 {object} errorResponseBody "토큰 없음 또는 만료"
// @Router /reservations [get]
func (h *Handler) getReservationsByLookup(c *gin.Context) {
	phone, err := getLookupPhone(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	limit, offset := paginationParams(c)

	reservations, total, err := h.services.Reservation.ListByPhone(c.Request.Context(), phone, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, reservations, total, offset/limit+1, limit)
}

// @Summary 예약 취소 (조회 토큰)
// @Description 대기 상태인 본인 예약을 취소합니다
// @Tags 예약
// @Produce json
// @Param X-Lookup-Token header string true "예약 조회 토큰"
// @Param id path int true "예약 ID"
// @Success 200 {object} messageResponseType
// @Failure 409 {object} errorResponseBody "취소할 수 없는 상태"
// @Router /reservations/{id}/cancel [post]
func (h *Handler) cancelOwnReservation(c *gin.Context) {
	phone, err := getLookupPhone(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Reservation.CancelOwn(c.Request.Context(), id, phone); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			conflictResponse(c, "취소할 수 없는 예약 상태입니다")
			return
		}
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "예약이 취소되었습니다")
}

// @Summary 내 예약 목록 (회원)
// @Tags 예약
// @Produce json
// @Security BearerAuth
// @Success 200 {object} paginatedResponse
// @Failure 401 {object} errorResponseBody "인증 필요"
// @Router /users/me/reservations [get]
func (h *Handler) getMyReservations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	limit, offset := paginationParams(c)

	reservations, total, err := h.services.Reservation.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, reservations, total, offset/limit+1, limit)
}

// @Summary 예약 목록 (관리자)
// @Tags 예약
// @Produce json
// @Security BearerAuth
// @Param status query string false "상태 필터" Enums(pending, confirmed, completed, cancelled)
// @Param date_from query string false "조회 시작일 (YYYY-MM-DD)"
// @Param date_to query string false "조회 종료일 (YYYY-MM-DD)"
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /admin/reservations [get]
func (h *Handler) getReservations(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.ReservationFilter{
		Limit:  limit,
		Offset: offset,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ReservationStatus(statusStr)
		filter.Status = &status
	}
	if from := c.Query("date_from"); from != "" {
		filter.StartDate = &from
	}
	if to := c.Query("date_to"); to != "" {
		filter.EndDate = &to
	}
	if phone := c.Query("phone"); phone != "" {
		filter.PhoneNumber = &phone
	}

	reservations, total, err := h.services.Reservation.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, reservations, total, offset/limit+1, limit)
}

// @Summary 예약 상세 (관리자)
// @Tags 예약
// @Produce json
// @Security BearerAuth
// @Param id path int true "예약 ID"
// @Success 200 {object} domain.Reservation
// @Failure 404 {object} errorResponseBody "예약 없음"
// @Router /admin/reservations/{id} [get]
func (h *Handler) getReservationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	reservation, err := h.services.Reservation.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, reservation)
}

// @Summary 예약 상태 변경 (관리자)
// @Description 대기→확정/취소, 확정→완료/취소만 허용됩니다. 완료·취소는 최종 상태입니다.
// @Tags 예약
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "예약 ID"
// @Param input body domain.UpdateReservationStatusDTO true "변경할 상태"
// @Success 200 {object} messageResponseType
// @Failure 409 {object} errorResponseBody "허용되지 않는 상태 전이"
// @Router /admin/reservations/{id}/status [put]
func (h *Handler) updateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateReservationStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Reservation.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			conflictResponse(c, "허용되지 않는 상태 변경입니다")
			return
		}
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "예약 상태가 변경되었습니다")
}

// @Summary 예약 삭제 (관리자)
// @Tags 예약
// @Produce json
// @Security BearerAuth
// @Param id path int true "예약 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "예약 없음"
// @Router /admin/reservations/{id} [delete]
func (h *Handler) deleteReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Reservation.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
