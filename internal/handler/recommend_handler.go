package handler

import (
	"errors"
	"net/http"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/middleware"
	"github.com/damoang/angple-moderation/internal/service"
	"github.com/gin-gonic/gin"
)

// RecommendHandler handles recommend HTTP requests
type RecommendHandler struct {
	service service.RecommendService
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(svc service.RecommendService) *RecommendHandler {
	return &RecommendHandler{service: svc}
}

func handleRecommendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrUnknownContentType):
		common.ErrorResponse(c, http.StatusBadRequest, "알 수 없는 게시판 유형입니다", err)
	case errors.Is(err, common.ErrPostNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "게시글을 찾을 수 없습니다", err)
	case errors.Is(err, common.ErrSelfRecommend):
		common.ErrorResponse(c, http.StatusForbidden, "본인 글은 추천할 수 없습니다", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "처리 중 오류가 발생했습니다", err)
	}
}

// Recommend handles POST /boards/:type/posts/:id/recommend
func (h *RecommendHandler) Recommend(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "로그인이 필요합니다", nil)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.Recommend(c.Param("type"), id, userID)
	if err != nil {
		handleRecommendError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// CancelRecommend handles DELETE /boards/:type/posts/:id/recommend
func (h *RecommendHandler) CancelRecommend(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "로그인이 필요합니다", nil)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.CancelRecommend(c.Param("type"), id, userID)
	if err != nil {
		handleRecommendError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}

// GetStatus handles GET /boards/:type/posts/:id/recommend
func (h *RecommendHandler) GetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetStatus(c.Param("type"), id, middleware.GetUserID(c))
	if err != nil {
		handleRecommendError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: result})
}
