package service

import (
	"context"
	"fmt"
	"time"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/damoang/angple-moderation/internal/repository"
	"github.com/damoang/angple-moderation/pkg/cache"
	"github.com/damoang/angple-moderation/pkg/logger"
)

// ReportService defines report and penalty business logic
type ReportService interface {
	FileReport(reporterID int64, req *domain.FileReportRequest) (*domain.ReportResponse, error)
	UpdateReportStatus(id int64, status string) error
	GetReport(id int64) (*domain.ReportResponse, error)
	ListReports(status string, page, limit int) ([]domain.ReportResponse, int64, error)

	ApplyPenalty(ctx context.Context, adminID int64, req *domain.ApplyPenaltyRequest) (*domain.PenaltyResponse, error)
	LiftPenalty(id int64) (bool, error)
	GetUserPenalties(userID int64, page, limit int) ([]domain.PenaltyResponse, int64, error)
	GetAccountStatus(ctx context.Context, userID int64) (string, error)
}

type reportService struct {
	reportRepo  repository.ReportRepository
	penaltyRepo repository.PenaltyRepository
	cache       cache.Capability
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repository.ReportRepository, penaltyRepo repository.PenaltyRepository, c cache.Capability) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		penaltyRepo: penaltyRepo,
		cache:       c,
	}
}

func accountStatusKey(userID int64) string {
	return fmt.Sprintf("account_status:%d", userID)
}

// FileReport records a new abuse report. The category is normalized to the
// fixed set before insert.
func (s *reportService) FileReport(reporterID int64, req *domain.FileReportRequest) (*domain.ReportResponse, error) {
	report := &domain.ReportEntry{
		TargetType:   domain.NormalizeCategory(req.TargetType),
		Reason:       req.Reason,
		Status:       domain.ReportStatusActive,
		ReporterID:   reporterID,
		TargetUserID: req.TargetUserID,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}

	logger.GetLogger().Info().
		Int64("report_id", report.ID).
		Int64("reporter_id", reporterID).
		Int64("target_user_id", req.TargetUserID).
		Str("category", report.TargetType).
		Msg("report filed")

	return report.ToResponse(), nil
}

// UpdateReportStatus moves a report to any known status
func (s *reportService) UpdateReportStatus(id int64, status string) error {
	if !domain.ValidReportStatus(status) {
		return fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}
	return s.reportRepo.UpdateStatus(id, status)
}

// GetReport retrieves a single report
func (s *reportService) GetReport(id int64) (*domain.ReportResponse, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return report.ToResponse(), nil
}

// ListReports returns reports filtered by status (empty means all)
func (s *reportService) ListReports(status string, page, limit int) ([]domain.ReportResponse, int64, error) {
	if status != "" && !domain.ValidReportStatus(status) {
		return nil, 0, fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}

	reports, total, err := s.reportRepo.List(status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *reports[i].ToResponse()
	}
	return responses, total, nil
}

// ApplyPenalty restricts a user. The optional report, the penalty row, and
// the account status flip land in one transaction; the cached account status
// is invalidated afterwards.
func (s *reportService) ApplyPenalty(ctx context.Context, adminID int64, req *domain.ApplyPenaltyRequest) (*domain.PenaltyResponse, error) {
	now := time.Now()
	duration, endDate := domain.PenaltyTerm(now, req.PenaltyType, req.DurationDays)

	penalty := &domain.PenaltyEntry{
		UserID:    req.UserID,
		Reason:    req.Reason,
		StartDate: now,
		EndDate:   endDate,
		Status:    domain.PenaltyStatusActive,
		Duration:  duration,
		IssuedBy:  adminID,
	}

	var report *domain.ReportEntry
	if req.Report != nil {
		report = &domain.ReportEntry{
			TargetType:   domain.NormalizeCategory(req.Report.TargetType),
			Reason:       req.Report.Reason,
			Status:       domain.ReportStatusActive,
			ReporterID:   adminID,
			TargetUserID: req.UserID,
		}
	}

	if err := s.penaltyRepo.ApplyPenalty(penalty, report); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, accountStatusKey(req.UserID)); err != nil {
		logger.Warn("failed to invalidate account status cache: %v", err)
	}

	logger.GetLogger().Info().
		Int64("penalty_id", penalty.ID).
		Int64("user_id", req.UserID).
		Int64("admin_id", adminID).
		Str("duration", duration).
		Time("end_date", endDate).
		Msg("penalty applied")

	return penalty.ToResponse(), nil
}

// LiftPenalty marks a penalty as lifted. The account status is not touched;
// restoring it is a separate admin action.
func (s *reportService) LiftPenalty(id int64) (bool, error) {
	lifted, err := s.penaltyRepo.LiftPenalty(id)
	if err != nil {
		return false, err
	}
	if lifted {
		logger.GetLogger().Info().
			Int64("penalty_id", id).
			Msg("penalty lifted")
	}
	return lifted, nil
}

// GetUserPenalties returns a user's penalty history
func (s *reportService) GetUserPenalties(userID int64, page, limit int) ([]domain.PenaltyResponse, int64, error) {
	penalties, total, err := s.penaltyRepo.FindByUser(userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.PenaltyResponse, len(penalties))
	for i := range penalties {
		responses[i] = *penalties[i].ToResponse()
	}
	return responses, total, nil
}

// GetAccountStatus returns a user's account status, cached with the
// capability's TTL
func (s *reportService) GetAccountStatus(ctx context.Context, userID int64) (string, error) {
	key := accountStatusKey(userID)

	var cached string
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	status, err := s.penaltyRepo.GetAccountStatus(userID)
	if err != nil {
		return "", err
	}

	if err := s.cache.Put(ctx, key, status); err != nil {
		logger.Warn("failed to cache account status: %v", err)
	}
	return status, nil
}
