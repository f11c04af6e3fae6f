package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/damoang/angple-moderation/internal/middleware"
	"github.com/damoang/angple-moderation/internal/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report and penalty HTTP requests
type ReportHandler struct {
	service service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

func handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrReportNotFound),
		errors.Is(err, common.ErrPenaltyNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "대상을 찾을 수 없습니다", err)
	case errors.Is(err, common.ErrInvalidStatus):
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 상태값입니다", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "처리 중 오류가 발생했습니다", err)
	}
}

// FileReport handles POST /reports
func (h *ReportHandler) FileReport(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "로그인이 필요합니다", nil)
		return
	}

	var req domain.FileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다", err)
		return
	}

	result, err := h.service.FileReport(userID, &req)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: result})
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	reports, total, err := h.service.ListReports(status, page, limit)
	if err != nil {
		handleReportError(c, err)
		return
	}

	common.SuccessResponse(c, reports, &common.Meta{Page: page, Limit: limit, Total: total})
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := h.service.GetReport(id)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: report})
}

// UpdateReportStatus handles PATCH /reports/:id/status
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다", err)
		return
	}

	if err := h.service.UpdateReportStatus(id, req.Status); err != nil {
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"status": req.Status}})
}

// ApplyPenalty handles POST /penalties
func (h *ReportHandler) ApplyPenalty(c *gin.Context) {
	var req domain.ApplyPenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "잘못된 요청입니다", err)
		return
	}

	result, err := h.service.ApplyPenalty(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleReportError(c, err)
		return
	}
	middleware.CountModerationAction("apply_penalty", "")

	c.JSON(http.StatusCreated, common.APIResponse{Data: result})
}

// LiftPenalty handles POST /penalties/:id/lift
func (h *ReportHandler) LiftPenalty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lifted, err := h.service.LiftPenalty(id)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"lifted": lifted}})
}

// GetUserPenalties handles GET /users/:id/penalties
func (h *ReportHandler) GetUserPenalties(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	penalties, total, err := h.service.GetUserPenalties(userID, page, limit)
	if err != nil {
		handleReportError(c, err)
		return
	}

	common.SuccessResponse(c, penalties, &common.Meta{Page: page, Limit: limit, Total: total})
}

// GetAccountStatus handles GET /users/:id/status
func (h *ReportHandler) GetAccountStatus(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetAccountStatus(c.Request.Context(), userID)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: gin.H{"user_id": userID, "status": status}})
}
