package repository

import (
	"errors"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/domain"
	"gorm.io/gorm"
)

// ReportRepository handles abuse report data operations
type ReportRepository interface {
	Create(report *domain.ReportEntry) error
	GetByID(id int64) (*domain.ReportEntry, error)
	UpdateStatus(id int64, status string) error
	List(status string, page, limit int) ([]domain.ReportEntry, int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a new report
func (r *reportRepository) Create(report *domain.ReportEntry) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by ID
func (r *reportRepository) GetByID(id int64) (*domain.ReportEntry, error) {
	var report domain.ReportEntry
	err := r.db.Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// UpdateStatus sets a report's status. Any known status may move to any
// other; moderators flip reports back and forth while reviewing, so no
// transition graph is enforced here.
func (r *reportRepository) UpdateStatus(id int64, status string) error {
	result := r.db.Model(&domain.ReportEntry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// unchanged value도 RowsAffected 0이므로 존재 여부로 구분
		var count int64
		if err := r.db.Model(&domain.ReportEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return common.ErrReportNotFound
		}
	}
	return nil
}

// List returns reports filtered by status (empty status means all), newest first
func (r *reportRepository) List(status string, page, limit int) ([]domain.ReportEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := r.db.Model(&domain.ReportEntry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []domain.ReportEntry
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
