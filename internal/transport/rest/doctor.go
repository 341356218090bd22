package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// 5 MB is plenty for a profile photo.
const maxPhotoSize = 5 << 20

// @Summary 의료진 목록
// @Description 표시 순서대로 학력·경력을 포함한 의료진 프로필을 반환합니다
// @Tags 의료진
// @Produce json
// @Success 200 {array} domain.Doctor
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	doctors, err := h.services.Doctor.List(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, doctors)
}

// @Summary 의료진 프로필 조회
// @Tags 의료진
// @Produce json
// @Param id path int true "의료진 ID"
// @Success 200 {object} domain.Doctor
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary 의료진 등록 (관리자)
// @Tags 의료진
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body domain.CreateDoctorDTO true "프로필 정보"
// @Success 201 {object} successResponseBody "생성된 의료진 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /admin/doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var input domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	id, err := h.services.Doctor.Create(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 의료진 수정 (관리자)
// @Tags 의료진
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Param input body domain.UpdateDoctorDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /admin/doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Doctor.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "의료진 정보가 수정되었습니다")
}

// @Summary 의료진 삭제 (관리자)
// @Tags 의료진
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /admin/doctors/{id} [delete]
func (h *Handler) deleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Doctor.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary 의료진 사진 업로드 (관리자)
// @Tags 의료진
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Param photo formData file true "프로필 사진 (최대 5MB)"
// @Success 200 {object} successResponseBody "업로드된 사진 URL"
// @Failure 400 {object} errorResponseBody "파일 오류"
// @Router /admin/doctors/{id}/photo [post]
func (h *Handler) uploadDoctorPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "사진 파일이 필요합니다")
		return
	}

	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "파일 크기는 5MB 이하여야 합니다")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	url, err := h.services.Doctor.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"photo_url": url,
	})
}

// @Summary 의료진 사진 삭제 (관리자)
// @Tags 의료진
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /admin/doctors/{id}/photo [delete]
func (h *Handler) deleteDoctorPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Doctor.DeletePhoto(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary 학력 추가 (관리자)
// @Tags 의료진
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Param input body domain.DoctorEducationDTO true "학력 정보"
// @Success 201 {object} successResponseBody "생성된 학력 ID"
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /admin/doctors/{id}/education [post]
func (h *Handler) addDoctorEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.DoctorEducationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	eduID, err := h.services.Doctor.AddEducation(c.Request.Context(), id, input)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": eduID,
	})
}

// @Summary 학력 삭제 (관리자)
// @Tags 의료진
// @Produce json
// @Security BearerAuth
// @Param eduId path int true "학력 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "학력 정보 없음"
// @Router /admin/doctors/education/{eduId} [delete]
func (h *Handler) deleteDoctorEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("eduId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Doctor.DeleteEducation(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary 경력 추가 (관리자)
// @Tags 의료진
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "의료진 ID"
// @Param input body domain.DoctorCareerDTO true "경력 정보"
// @Success 201 {object} successResponseBody "생성된 경력 ID"
// @Failure 404 {object} errorResponseBody "의료진 없음"
// @Router /admin/doctors/{id}/careers [post]
func (h *Handler) addDoctorCareer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.DoctorCareerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	careerID, err := h.services.Doctor.AddCareer(c.Request.Context(), id, input)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": careerID,
	})
}

// @Summary 경력 삭제 (관리자)
// @Tags 의료진
// @Produce json
// @Security BearerAuth
// @Param careerId path int true "경력 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "경력 정보 없음"
// @Router /admin/doctors/careers/{careerId} [delete]
func (h *Handler) deleteDoctorCareer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("careerId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Doctor.DeleteCareer(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
