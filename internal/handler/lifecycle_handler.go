package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/middleware"
	"github.com/damoang/angple-moderation/internal/service"
	"github.com/damoang/angple-moderation/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LifecycleHandler handles soft-delete, recovery, and view-count HTTP requests
type LifecycleHandler struct {
	service     service.LifecycleService
	redisClient *redis.Client
	viewedTTL   time.Duration
}

// NewLifecycleHandler creates a new LifecycleHandler
func NewLifecycleHandler(svc service.LifecycleService, redisClient *redis.Client, viewedTTL time.Duration) *LifecycleHandler {
	return &LifecycleHandler{
		service:     svc,
		redisClient: redisClient,
		viewedTTL:   viewedTTL,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 ID입니다", err)
		return 0, false
	}
	return id, true
}

func handleLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrUnknownContentType):
		common.ErrorResponse(c, http.StatusBadRequest, "알 수 없는 게시판 유형입니다", err)
	case errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrAttachmentNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "대상을 찾을 수 없습니다", err)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "처리 중 오류가 발생했습니다", err)
	}
}

// GetPost handles GET /boards/:type/posts/:id
func (h *LifecycleHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.GetPost(c.Param("type"), id)
	if err != nil {
		handleLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: post})
}

// DeletePost handles DELETE /boards/:type/posts/:id
func (h *LifecycleHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.DeletePost(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("delete_post", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"deleted": changed}})
}

// RecoverPost handles POST /boards/:type/posts/:id/recover
func (h *LifecycleHandler) RecoverPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.RecoverPost(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("recover_post", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"recovered": changed}})
}

// DeleteComment handles DELETE /boards/:type/comments/:id
func (h *LifecycleHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.DeleteComment(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("delete_comment", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"deleted": changed}})
}

// RecoverComment handles POST /boards/:type/comments/:id/recover
func (h *LifecycleHandler) RecoverComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.RecoverComment(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("recover_comment", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"recovered": changed}})
}

// DeleteAttachment handles DELETE /boards/:type/attachments/:id
func (h *LifecycleHandler) DeleteAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.DeleteAttachment(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("delete_attachment", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"deleted": changed}})
}

// RecoverAttachment handles POST /boards/:type/attachments/:id/recover
func (h *LifecycleHandler) RecoverAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contentType := c.Param("type")
	changed, err := h.service.RecoverAttachment(contentType, id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}
	if changed {
		middleware.CountModerationAction("recover_attachment", contentType)
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"recovered": changed}})
}

// RecordView handles POST /boards/:type/posts/:id/view
// The session ID comes from the X-Session-ID header set by the gateway.
func (h *LifecycleHandler) RecordView(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "세션 정보가 없습니다", nil)
		return
	}

	contentType := c.Param("type")
	viewed := session.NewRedisViewedSet(h.redisClient, sessionID, contentType, h.viewedTTL)

	counted, err := h.service.RecordView(c.Request.Context(), contentType, id, viewed)
	if err != nil {
		handleLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"counted": counted}})
}

// LogModification handles POST /boards/:type/audit/:kind/:id/modify
// Called by the editing collaborator after a successful content update.
func (h *LifecycleHandler) LogModification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.LogModification(c.Param("type"), c.Param("kind"), id, middleware.GetUserID(c))
	if err != nil {
		handleLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"logged": true}})
}

// GetAuditTrail handles GET /boards/:type/audit/:kind/:id
func (h *LifecycleHandler) GetAuditTrail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, total, err := h.service.GetAuditTrail(c.Param("type"), c.Param("kind"), id, page, limit)
	if err != nil {
		handleLifecycleError(c, err)
		return
	}

	common.SuccessResponse(c, entries, &common.Meta{Page: page, Limit: limit, Total: total})
}
