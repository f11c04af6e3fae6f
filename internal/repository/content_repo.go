package repository

import (
	"errors"
	"time"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/contenttype"
	"github.com/damoang/angple-moderation/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository defines lifecycle operations over the per-type content
// relations. Every method takes resolved table names so that dispatch stays
// in one place (contenttype.Resolve) and nothing here can touch a table
// outside the registry.
type ContentRepository interface {
	GetPost(tables contenttype.Tables, id int64) (*domain.ContentRecord, error)
	GetPostAuthorID(tables contenttype.Tables, id int64) (int64, error)
	IncrementViewCount(tables contenttype.Tables, id int64) error

	SoftDeletePost(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
	RecoverPost(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
	SoftDeleteComment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
	RecoverComment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
	SoftDeleteAttachment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
	RecoverAttachment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error)
}

type contentRepository struct {
	db    *gorm.DB
	audit *AuditRepository
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB, audit *AuditRepository) ContentRepository {
	return &contentRepository{db: db, audit: audit}
}

// GetPost retrieves a post by ID regardless of its status
func (r *contentRepository) GetPost(tables contenttype.Tables, id int64) (*domain.ContentRecord, error) {
	var post domain.ContentRecord
	err := r.db.Table(tables.Post).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostAuthorID returns the author of a post (self-vote 검사용)
func (r *contentRepository) GetPostAuthorID(tables contenttype.Tables, id int64) (int64, error) {
	var result struct {
		AuthorID int64 `gorm:"column:author_id"`
	}
	err := r.db.Table(tables.Post).
		Select("author_id").
		Where("id = ?", id).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.ErrPostNotFound
		}
		return 0, err
	}
	return result.AuthorID, nil
}

// IncrementViewCount bumps the view counter atomically
func (r *contentRepository) IncrementViewCount(tables contenttype.Tables, id int64) error {
	result := r.db.Table(tables.Post).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

// softDelete flips one record from active to deleted and appends the audit
// entry in the same transaction. Returns false without error when the record
// is already deleted, and notFound when it does not exist at all.
func (r *contentRepository) softDelete(table, auditTable string, boardType string, id, actorID int64, notFound error) (bool, error) {
	changed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Table(table).
			Where("id = ? AND status = ?", id, domain.ContentStatusActive).
			Updates(map[string]interface{}{
				"status":     domain.ContentStatusDeleted,
				"deleted_at": now,
				"deleted_by": actorID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return notFound
			}
			// 이미 삭제됨
			return nil
		}

		changed = true
		return r.audit.WithTx(tx).Append(auditTable, &domain.AuditLogEntry{
			Action:    domain.AuditActionDelete,
			BoardType: boardType,
			TargetID:  id,
			ActorID:   actorID,
		})
	})
	return changed, err
}

// recover flips one record from deleted back to active and retracts the
// delete audit entry in the same transaction. A deleted record without its
// audit entry is corrupt state; recovery refuses it and rolls back.
func (r *contentRepository) recover(table, auditTable string, boardType string, id int64, notFound error) (bool, error) {
	changed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Table(table).
			Where("id = ? AND status = ?", id, domain.ContentStatusDeleted).
			Updates(map[string]interface{}{
				"status":     domain.ContentStatusActive,
				"deleted_at": nil,
				"deleted_by": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return notFound
			}
			// 이미 활성 상태
			return nil
		}

		removed, err := r.audit.WithTx(tx).Remove(auditTable, boardType, id, domain.AuditActionDelete)
		if err != nil {
			return err
		}
		// 삭제 로그가 없으면 상태 전환도 되돌림. 둘은 항상 함께 움직인다.
		if removed == 0 {
			return common.ErrAuditEntryMissing
		}

		changed = true
		return nil
	})
	return changed, err
}

// SoftDeletePost marks a post as deleted
func (r *contentRepository) SoftDeletePost(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error) {
	return r.softDelete(tables.Post, domain.AuditTablePost, ct.String(), id, actorID, common.ErrPostNotFound)
}

// RecoverPost restores a soft-deleted post
func (r *contentRepository) RecoverPost(ct contenttype.ContentType, tables contenttype.Tables, id, _ int64) (bool, error) {
	return r.recover(tables.Post, domain.AuditTablePost, ct.String(), id, common.ErrPostNotFound)
}

// SoftDeleteComment marks a comment as deleted
func (r *contentRepository) SoftDeleteComment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error) {
	return r.softDelete(tables.Comment, domain.AuditTableComment, ct.String(), id, actorID, common.ErrCommentNotFound)
}

// RecoverComment restores a soft-deleted comment
func (r *contentRepository) RecoverComment(ct contenttype.ContentType, tables contenttype.Tables, id, _ int64) (bool, error) {
	return r.recover(tables.Comment, domain.AuditTableComment, ct.String(), id, common.ErrCommentNotFound)
}

// SoftDeleteAttachment marks an attachment record as deleted. Physical file
// removal is handled elsewhere.
func (r *contentRepository) SoftDeleteAttachment(ct contenttype.ContentType, tables contenttype.Tables, id, actorID int64) (bool, error) {
	return r.softDelete(tables.Attachment, domain.AuditTableAttachment, ct.String(), id, actorID, common.ErrAttachmentNotFound)
}

// RecoverAttachment restores a soft-deleted attachment record
func (r *contentRepository) RecoverAttachment(ct contenttype.ContentType, tables contenttype.Tables, id, _ int64) (bool, error) {
	return r.recover(tables.Attachment, domain.AuditTableAttachment, ct.String(), id, common.ErrAttachmentNotFound)
}
