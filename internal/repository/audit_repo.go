package repository

import (
	"github.com/damoang/angple-moderation/internal/domain"
	"gorm.io/gorm"
)

// AuditRepository handles the append-only moderation log relations
// (log_delete_post, log_delete_comment, log_delete_attach)
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// WithTx returns a new AuditRepository bound to the given transaction
func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

// Append inserts an audit entry into the given log relation
func (r *AuditRepository) Append(table string, entry *domain.AuditLogEntry) error {
	return r.db.Table(table).Create(entry).Error
}

// Remove deletes audit entries for a target and action, returning the number
// of rows removed. Used by recovery to retract the matching delete entry.
func (r *AuditRepository) Remove(table, boardType string, targetID int64, action string) (int64, error) {
	result := r.db.Table(table).
		Where("board_type = ? AND target_id = ? AND action = ?", boardType, targetID, action).
		Delete(&domain.AuditLogEntry{})
	return result.RowsAffected, result.Error
}

// ListByTarget returns audit entries for one target, newest first
func (r *AuditRepository) ListByTarget(table, boardType string, targetID int64, page, limit int) ([]domain.AuditLogEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	query := r.db.Table(table).
		Where("board_type = ? AND target_id = ?", boardType, targetID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []domain.AuditLogEntry
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
