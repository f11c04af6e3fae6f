package domain

import "time"

// Content status values. A record is never hard-deleted while an audit log
// entry references it; recovery flips the status back.
const (
	ContentStatusActive  = "active"
	ContentStatusDeleted = "deleted"
)

// ContentRecord represents a post row. The same shape lives in a separate
// relation per content type (freeboard, news, notice, inquiry, chatboard),
// so there is no fixed TableName — repositories bind it with Table().
type ContentRecord struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID       int64      `gorm:"column:author_id;index" json:"author_id"`
	Subject        string     `gorm:"column:subject;size:255" json:"subject"`
	Content        string     `gorm:"column:content;type:mediumtext" json:"content"`
	Status         string     `gorm:"column:status;size:10;default:active;index" json:"status"`
	RecommendCount int        `gorm:"column:recommend_count;default:0" json:"recommend_count"`
	ViewCount      int        `gorm:"column:view_count;default:0" json:"view_count"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ModifiedAt     time.Time  `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`
	DeletedAt      *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy      *int64     `gorm:"column:deleted_by" json:"deleted_by,omitempty"`
}

// CommentRecord represents a comment row in the per-type X_comment relation
type CommentRecord struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentID  int64      `gorm:"column:content_id;index" json:"content_id"`
	AuthorID   int64      `gorm:"column:author_id;index" json:"author_id"`
	Content    string     `gorm:"column:content;type:text" json:"content"`
	Status     string     `gorm:"column:status;size:10;default:active;index" json:"status"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ModifiedAt time.Time  `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`
	DeletedAt  *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy  *int64     `gorm:"column:deleted_by" json:"deleted_by,omitempty"`
}

// AttachmentRecord tracks an uploaded file by metadata only; byte transfer
// and physical storage belong to a separate collaborator.
type AttachmentRecord struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentID     int64      `gorm:"column:content_id;index" json:"content_id"`
	FileName      string     `gorm:"column:file_name;size:255" json:"file_name"`
	StoredPath    string     `gorm:"column:stored_path;size:500" json:"stored_path"`
	SizeBytes     int64      `gorm:"column:size_bytes" json:"size_bytes"`
	DownloadCount int        `gorm:"column:download_count;default:0" json:"download_count"`
	Status        string     `gorm:"column:status;size:10;default:active" json:"status"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt     *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy     *int64     `gorm:"column:deleted_by" json:"deleted_by,omitempty"`
}

// IsDeleted reports whether the record is currently soft-deleted
func (c *ContentRecord) IsDeleted() bool {
	return c.Status == ContentStatusDeleted
}
