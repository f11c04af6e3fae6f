package domain

import "time"

// Audit log actions
const (
	AuditActionDelete    = "delete"
	AuditActionModify    = "modify"
	AuditActionRecommend = "recommend"
)

// Audit log relations, one per target kind. Each delete entry is the proof
// that its target is soft-deleted; recovery removes the entry in the same
// transaction that flips the content status.
const (
	AuditTablePost       = "log_delete_post"
	AuditTableComment    = "log_delete_comment"
	AuditTableAttachment = "log_delete_attach"
)

// Audit target kinds, used to pick the log relation at the API boundary
const (
	TargetKindPost       = "post"
	TargetKindComment    = "comment"
	TargetKindAttachment = "attachment"
)

// AuditTableFor maps a target kind to its log relation. Unknown kinds
// return false.
func AuditTableFor(kind string) (string, bool) {
	switch kind {
	case TargetKindPost:
		return AuditTablePost, true
	case TargetKindComment:
		return AuditTableComment, true
	case TargetKindAttachment:
		return AuditTableAttachment, true
	default:
		return "", false
	}
}

// AuditLogEntry is an append-only record of a moderation action, keyed by
// content type + target id. Immutable until recovery removes it.
type AuditLogEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"column:action;size:20" json:"action"`
	BoardType string    `gorm:"column:board_type;size:20;index:idx_audit_target" json:"board_type"`
	TargetID  int64     `gorm:"column:target_id;index:idx_audit_target" json:"target_id"`
	ActorID   int64     `gorm:"column:actor_id" json:"actor_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
