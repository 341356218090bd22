package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smileon/internal/domain"
)

// @Summary 자유게시판 목록
// @Tags 게시판
// @Produce json
// @Param keyword query string false "제목/내용 검색어"
// @Param limit query int false "페이지 크기" default(20)
// @Param offset query int false "오프셋" default(0)
// @Success 200 {object} paginatedResponse
// @Router /posts [get]
func (h *Handler) getPosts(c *gin.Context) {
	limit, offset := paginationParams(c)

	filter := domain.PostFilter{
		Limit:  limit,
		Offset: offset,
	}
	if keyword := c.Query("keyword"); keyword != "" {
		filter.Keyword = &keyword
	}

	posts, total, err := h.services.Post.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	paginatedSuccessResponse(c, posts, total, offset/limit+1, limit)
}

// @Summary 게시글 조회
// @Tags 게시판
// @Produce json
// @Param id path int true "게시글 ID"
// @Success 200 {object} domain.Post
// @Failure 404 {object} errorResponseBody "게시글 없음"
// @Router /posts/{id} [get]
func (h *Handler) getPostByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	post, err := h.services.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary 게시글 작성
// @Tags 게시판
// @Accept json
// @Produce json
// @Param input body domain.CreatePostDTO true "게시글 내용"
// @Success 201 {object} successResponseBody "생성된 게시글 ID"
// @Failure 400 {object} errorResponseBody "형식 오류"
// @Router /posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var input domain.CreatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	userID := getOptionalUserID(c)

	id, err := h.services.Post.Create(c.Request.Context(), userID, input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary 게시글 수정 (관리자)
// @Tags 게시판
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "게시글 ID"
// @Param input body domain.UpdatePostDTO true "수정 내용"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody "게시글 없음"
// @Router /admin/posts/{id} [put]
func (h *Handler) updatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	var input domain.UpdatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "요청 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Post.Update(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "게시글이 수정되었습니다")
}

// @Summary 게시글 삭제 (관리자)
// @Tags 게시판
// @Produce json
// @Security BearerAuth
// @Param id path int true "게시글 ID"
// @Success 204 {object} nil
// @Failure 404 {object} errorResponseBody "게시글 없음"
// @Router /admin/posts/{id} [delete]
func (h *Handler) deletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "ID 형식이 올바르지 않습니다")
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	noContentResponse(c)
}
