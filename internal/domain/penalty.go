package domain

import "time"

// Penalty status and duration values
const (
	PenaltyStatusActive = "active"
	PenaltyStatusLifted = "lifted"

	PenaltyDurationTemporary = "temporary"
	PenaltyDurationPermanent = "permanent"
)

// Account status values. Mutated only by the report workflow.
const (
	AccountStatusActive     = "active"
	AccountStatusRestricted = "restricted"
)

// PermanentEndDate is the sentinel stored for permanent penalties
// (그누보드 mb_intercept_date '9999-12-31' 관례를 따름)
var PermanentEndDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// PenaltyEntry represents a user restriction in the user_penalty table
type PenaltyEntry struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          int64     `gorm:"column:user_id;index" json:"user_id"`
	Reason          string    `gorm:"column:reason;type:text" json:"reason"`
	StartDate       time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate         time.Time `gorm:"column:end_date" json:"end_date"`
	Status          string    `gorm:"column:status;size:10;default:active;index" json:"status"`
	Duration        string    `gorm:"column:duration;size:10" json:"duration"`
	IssuedBy        int64     `gorm:"column:issued_by" json:"issued_by"`
	RelatedReportID *int64    `gorm:"column:related_report_id" json:"related_report_id,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (PenaltyEntry) TableName() string {
	return "user_penalty"
}

// IsPermanent reports whether the penalty has no enforced expiry
func (p *PenaltyEntry) IsPermanent() bool {
	return p.Duration == PenaltyDurationPermanent
}

// AccountStatus tracks whether a user account is restricted
type AccountStatus struct {
	UserID    int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	Status    string    `gorm:"column:status;size:10;default:active" json:"status"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name
func (AccountStatus) TableName() string {
	return "account_status"
}

// PenaltyTerm computes the duration kind and end date for a penalty.
// durationDays <= 0 or penaltyType "permanent" means no enforced expiry;
// otherwise endDate = start + durationDays days.
func PenaltyTerm(start time.Time, penaltyType string, durationDays int) (duration string, endDate time.Time) {
	if penaltyType == PenaltyDurationPermanent || durationDays <= 0 {
		return PenaltyDurationPermanent, PermanentEndDate
	}
	return PenaltyDurationTemporary, start.AddDate(0, 0, durationDays)
}

// ApplyPenaltyRequest represents an admin penalty action. When Report is
// set, the report is filed in the same transaction as the penalty.
type ApplyPenaltyRequest struct {
	UserID       int64              `json:"user_id" binding:"required"`
	Reason       string             `json:"reason" binding:"required"`
	PenaltyType  string             `json:"penalty_type"`
	DurationDays int                `json:"duration_days"`
	Report       *FileReportRequest `json:"report,omitempty"`
}

// PenaltyResponse is the response DTO for penalty records
type PenaltyResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	Reason          string `json:"reason"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`
	Duration        string `json:"duration"`
	IssuedBy        int64  `json:"issued_by"`
	RelatedReportID *int64 `json:"related_report_id,omitempty"`
}

// ToResponse converts a PenaltyEntry to its response DTO
func (p *PenaltyEntry) ToResponse() *PenaltyResponse {
	return &PenaltyResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Reason:          p.Reason,
		StartDate:       p.StartDate.Format("2006-01-02 15:04:05"),
		EndDate:         p.EndDate.Format("2006-01-02 15:04:05"),
		Status:          p.Status,
		Duration:        p.Duration,
		IssuedBy:        p.IssuedBy,
		RelatedReportID: p.RelatedReportID,
	}
}
