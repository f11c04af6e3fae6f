package domain

import "time"

// Report status values. No transition graph is enforced between them;
// moderators may move a report back and forth while reviewing.
const (
	ReportStatusActive   = "active"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

// Report categories (sg_type의 후속). 고정된 집합.
const (
	CategorySpamAd        = "spam_ad"
	CategoryProfanity     = "profanity_hate_speech"
	CategoryAdultContent  = "adult_content"
	CategoryImpersonation = "impersonation_fraud"
	CategoryCopyright     = "copyright_infringement"
)

var reportCategories = map[string]bool{
	CategorySpamAd:        true,
	CategoryProfanity:     true,
	CategoryAdultContent:  true,
	CategoryImpersonation: true,
	CategoryCopyright:     true,
}

// NormalizeCategory coerces arbitrary input to a member of the fixed
// category set. Unrecognized values map to spam_ad rather than failing —
// the legacy platform accepted free-form categories from old clients and
// we keep accepting them until every client is migrated. The policy lives
// in this one function so tightening it later is a one-line change.
func NormalizeCategory(category string) string {
	if reportCategories[category] {
		return category
	}
	return CategorySpamAd
}

// ValidReportStatus reports whether s is a known report status
func ValidReportStatus(s string) bool {
	return s == ReportStatusActive || s == ReportStatusResolved || s == ReportStatusRejected
}

// ReportEntry represents an abuse report in the shared report table
type ReportEntry struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TargetType   string    `gorm:"column:target_type;size:40" json:"target_type"`
	Reason       string    `gorm:"column:reason;type:text" json:"reason"`
	Status       string    `gorm:"column:status;size:10;default:active;index" json:"status"`
	ReporterID   int64     `gorm:"column:reporter_id;index" json:"reporter_id"`
	TargetUserID int64     `gorm:"column:target_user_id;index" json:"target_user_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (ReportEntry) TableName() string {
	return "report"
}

// FileReportRequest represents a report submission
type FileReportRequest struct {
	TargetType   string `json:"target_type"`
	Reason       string `json:"reason" binding:"required"`
	TargetUserID int64  `json:"target_user_id" binding:"required"`
}

// UpdateReportStatusRequest represents a report status change
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReportResponse represents report list response
type ReportResponse struct {
	ID           int64  `json:"id"`
	TargetType   string `json:"target_type"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	ReporterID   int64  `json:"reporter_id"`
	TargetUserID int64  `json:"target_user_id"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts a ReportEntry to its response DTO
func (r *ReportEntry) ToResponse() *ReportResponse {
	return &ReportResponse{
		ID:           r.ID,
		TargetType:   r.TargetType,
		Reason:       r.Reason,
		Status:       r.Status,
		ReporterID:   r.ReporterID,
		TargetUserID: r.TargetUserID,
		CreatedAt:    r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
