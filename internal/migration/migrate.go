package migration

import (
	"github.com/damoang/angple-moderation/internal/contenttype"
	"github.com/damoang/angple-moderation/internal/domain"
	"gorm.io/gorm"
)

// Run creates every relation the moderation subsystem owns. Safe to run
// multiple times (AutoMigrate is idempotent).
func Run(db *gorm.DB) error {
	if err := runShared(db); err != nil {
		return err
	}
	return runContentTables(db)
}

// runShared creates the relations shared by all content types
func runShared(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.RecommendationEntry{},
		&domain.ReportEntry{},
		&domain.PenaltyEntry{},
		&domain.AccountStatus{},
	); err != nil {
		return err
	}

	// 삭제 감사 로그는 대상 종류별로 한 테이블씩
	for _, table := range []string{
		domain.AuditTablePost,
		domain.AuditTableComment,
		domain.AuditTableAttachment,
	} {
		if err := db.Table(table).AutoMigrate(&domain.AuditLogEntry{}); err != nil {
			return err
		}
	}
	return nil
}

// runContentTables creates the post, comment, and attachment relations for
// every registered content type
func runContentTables(db *gorm.DB) error {
	for _, ct := range contenttype.All() {
		_, tables, err := contenttype.Resolve(ct.String())
		if err != nil {
			return err
		}
		if err := db.Table(tables.Post).AutoMigrate(&domain.ContentRecord{}); err != nil {
			return err
		}
		if err := db.Table(tables.Comment).AutoMigrate(&domain.CommentRecord{}); err != nil {
			return err
		}
		if err := db.Table(tables.Attachment).AutoMigrate(&domain.AttachmentRecord{}); err != nil {
			return err
		}
	}
	return nil
}
