package service

import (
	"context"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/contenttype"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/damoang/angple-moderation/internal/repository"
	"github.com/damoang/angple-moderation/internal/session"
	"github.com/damoang/angple-moderation/pkg/logger"
)

// LifecycleService defines soft-delete, recovery, and view-count business
// logic. Every operation resolves the content type first; an unknown key
// never reaches a repository.
type LifecycleService interface {
	GetPost(contentType string, id int64) (*domain.ContentRecord, error)

	DeletePost(contentType string, id, actorID int64) (bool, error)
	RecoverPost(contentType string, id, actorID int64) (bool, error)
	DeleteComment(contentType string, id, actorID int64) (bool, error)
	RecoverComment(contentType string, id, actorID int64) (bool, error)
	DeleteAttachment(contentType string, id, actorID int64) (bool, error)
	RecoverAttachment(contentType string, id, actorID int64) (bool, error)

	RecordView(ctx context.Context, contentType string, id int64, viewed session.ViewedSet) (bool, error)

	LogModification(contentType, targetKind string, targetID, actorID int64) error
	GetAuditTrail(contentType, targetKind string, targetID int64, page, limit int) ([]domain.AuditLogEntry, int64, error)
}

type lifecycleService struct {
	contentRepo repository.ContentRepository
	auditRepo   *repository.AuditRepository
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(contentRepo repository.ContentRepository, auditRepo *repository.AuditRepository) LifecycleService {
	return &lifecycleService{
		contentRepo: contentRepo,
		auditRepo:   auditRepo,
	}
}

// GetPost retrieves a post including soft-deleted ones (관리 화면용)
func (s *lifecycleService) GetPost(contentType string, id int64) (*domain.ContentRecord, error) {
	_, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.GetPost(tables, id)
}

// DeletePost soft-deletes a post. Returns false when it was already deleted.
func (s *lifecycleService) DeletePost(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	changed, err := s.contentRepo.SoftDeletePost(ct, tables, id, actorID)
	if err != nil {
		return false, err
	}
	if changed {
		logger.GetLogger().Info().
			Str("content_type", contentType).
			Int64("post_id", id).
			Int64("actor_id", actorID).
			Msg("post soft-deleted")
	}
	return changed, nil
}

// RecoverPost restores a soft-deleted post. Returns false when it was
// already active.
func (s *lifecycleService) RecoverPost(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	changed, err := s.contentRepo.RecoverPost(ct, tables, id, actorID)
	if err != nil {
		return false, err
	}
	if changed {
		logger.GetLogger().Info().
			Str("content_type", contentType).
			Int64("post_id", id).
			Int64("actor_id", actorID).
			Msg("post recovered")
	}
	return changed, nil
}

// DeleteComment soft-deletes a comment
func (s *lifecycleService) DeleteComment(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	return s.contentRepo.SoftDeleteComment(ct, tables, id, actorID)
}

// RecoverComment restores a soft-deleted comment
func (s *lifecycleService) RecoverComment(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	return s.contentRepo.RecoverComment(ct, tables, id, actorID)
}

// DeleteAttachment soft-deletes an attachment record
func (s *lifecycleService) DeleteAttachment(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	return s.contentRepo.SoftDeleteAttachment(ct, tables, id, actorID)
}

// RecoverAttachment restores a soft-deleted attachment record
func (s *lifecycleService) RecoverAttachment(contentType string, id, actorID int64) (bool, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}
	return s.contentRepo.RecoverAttachment(ct, tables, id, actorID)
}

// RecordView increments a post's view counter at most once per session.
// The viewed set is owned by the caller's session; a repeat view within the
// same session returns false and leaves the counter untouched.
func (s *lifecycleService) RecordView(ctx context.Context, contentType string, id int64, viewed session.ViewedSet) (bool, error) {
	_, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return false, err
	}

	seen, err := viewed.HasViewed(ctx, id)
	if err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	if err := s.contentRepo.IncrementViewCount(tables, id); err != nil {
		return false, err
	}

	// 세션 기록 실패는 카운트 증가를 되돌리지 않음 (최악의 경우 중복 1회)
	if err := viewed.MarkViewed(ctx, id); err != nil {
		logger.Warn("failed to mark viewed: %v", err)
	}
	return true, nil
}

// LogModification appends a modify entry for an edit made by its author or
// a moderator
func (s *lifecycleService) LogModification(contentType, targetKind string, targetID, actorID int64) error {
	ct, _, err := contenttype.Resolve(contentType)
	if err != nil {
		return err
	}
	table, ok := domain.AuditTableFor(targetKind)
	if !ok {
		return common.ErrInvalidInput
	}
	return s.auditRepo.Append(table, &domain.AuditLogEntry{
		Action:    domain.AuditActionModify,
		BoardType: ct.String(),
		TargetID:  targetID,
		ActorID:   actorID,
	})
}

// GetAuditTrail returns the moderation history of one target, newest first
func (s *lifecycleService) GetAuditTrail(contentType, targetKind string, targetID int64, page, limit int) ([]domain.AuditLogEntry, int64, error) {
	ct, _, err := contenttype.Resolve(contentType)
	if err != nil {
		return nil, 0, err
	}
	table, ok := domain.AuditTableFor(targetKind)
	if !ok {
		return nil, 0, common.ErrInvalidInput
	}
	return s.auditRepo.ListByTarget(table, ct.String(), targetID, page, limit)
}
